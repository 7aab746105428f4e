// internal/repository/profile_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// ProfileRepository defines the interface for account profile operations.
type ProfileRepository interface {
	GetProfileByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Profile, error)
	// ListProfiles returns profiles newest first. A nil suspended lists all.
	ListProfiles(ctx context.Context, q DBExecutor, suspended *bool) ([]domain.Profile, error)
	// UpdateProfile writes name and country, and the role when role is set.
	UpdateProfile(ctx context.Context, q DBExecutor, id uuid.UUID, edit domain.ProfileEdit) error
	// SetSuspension suspends with reason, or lifts the suspension when
	// suspended is false.
	SetSuspension(ctx context.Context, q DBExecutor, id uuid.UUID, suspended bool, reason *string) error
	// IsSuspended reports false for unknown users.
	IsSuspended(ctx context.Context, q DBExecutor, id uuid.UUID) (bool, error)
	// DeleteProfile removes the profile. Investments, balances and
	// notifications cascade.
	DeleteProfile(ctx context.Context, q DBExecutor, id uuid.UUID) error
}
