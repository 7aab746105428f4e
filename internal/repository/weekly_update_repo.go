// internal/repository/weekly_update_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// WeeklyUpdateRepository defines the interface for project progress updates.
type WeeklyUpdateRepository interface {
	CreateWeeklyUpdate(ctx context.Context, q DBExecutor, update *domain.WeeklyUpdate) error
	// ListWeeklyUpdatesByProject returns updates ordered by week ascending.
	ListWeeklyUpdatesByProject(ctx context.Context, q DBExecutor, projectID uuid.UUID) ([]domain.WeeklyUpdate, error)
}
