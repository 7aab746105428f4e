// internal/repository/postgres/profile_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

const profileColumns = `id, email, full_name, role, country, is_suspended, suspended_reason, created_at, updated_at`

// ProfileRepository implements repository.ProfileRepository for PostgreSQL.
type ProfileRepository struct{}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository() repository.ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) GetProfileByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	if err := q.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID %s: %w", id, err)
	}
	return &p, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context, q repository.DBExecutor, suspended *bool) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles`
	var args []interface{}
	if suspended != nil {
		query += ` WHERE is_suspended = $1`
		args = append(args, *suspended)
	}
	query += ` ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, q repository.DBExecutor, id uuid.UUID, edit domain.ProfileEdit) error {
	var (
		result sql.Result
		err    error
	)
	now := time.Now().UTC()
	if edit.Role != "" {
		query := `UPDATE profiles SET full_name = $1, country = $2, role = $3, updated_at = $4 WHERE id = $5`
		result, err = q.ExecContext(ctx, query, edit.FullName, edit.Country, edit.Role, now, id)
	} else {
		query := `UPDATE profiles SET full_name = $1, country = $2, updated_at = $3 WHERE id = $4`
		result, err = q.ExecContext(ctx, query, edit.FullName, edit.Country, now, id)
	}
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return expectOneRow(result, "profile", id)
}

func (r *ProfileRepository) SetSuspension(ctx context.Context, q repository.DBExecutor, id uuid.UUID, suspended bool, reason *string) error {
	if !suspended {
		reason = nil
	}
	query := `UPDATE profiles SET is_suspended = $1, suspended_reason = $2, updated_at = $3 WHERE id = $4`
	result, err := q.ExecContext(ctx, query, suspended, reason, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set suspension of profile %s: %w", id, err)
	}
	return expectOneRow(result, "profile", id)
}

func (r *ProfileRepository) IsSuspended(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (bool, error) {
	var suspended bool
	query := `SELECT COALESCE((SELECT is_suspended FROM profiles WHERE id = $1), false)`
	if err := q.GetContext(ctx, &suspended, query, id); err != nil {
		return false, fmt.Errorf("failed to check suspension of profile %s: %w", id, err)
	}
	return suspended, nil
}

func (r *ProfileRepository) DeleteProfile(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return expectOneRow(result, "profile", id)
}
