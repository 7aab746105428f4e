// internal/repository/postgres/weekly_update_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// WeeklyUpdateRepository implements repository.WeeklyUpdateRepository for PostgreSQL.
type WeeklyUpdateRepository struct{}

// NewWeeklyUpdateRepository creates a new WeeklyUpdateRepository.
func NewWeeklyUpdateRepository() repository.WeeklyUpdateRepository {
	return &WeeklyUpdateRepository{}
}

func (r *WeeklyUpdateRepository) CreateWeeklyUpdate(ctx context.Context, q repository.DBExecutor, u *domain.WeeklyUpdate) error {
	query := `INSERT INTO weekly_updates (id, project_id, week_number, title, description, image_url, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query, u.ID, u.ProjectID, u.WeekNumber, u.Title, u.Description, u.ImageURL, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create weekly update: %w", err)
	}
	return nil
}

func (r *WeeklyUpdateRepository) ListWeeklyUpdatesByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]domain.WeeklyUpdate, error) {
	updates := []domain.WeeklyUpdate{}
	query := `SELECT id, project_id, week_number, title, description, image_url, created_at
              FROM weekly_updates WHERE project_id = $1 ORDER BY week_number ASC, created_at ASC`
	if err := q.SelectContext(ctx, &updates, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list updates for project %s: %w", projectID, err)
	}
	return updates, nil
}
