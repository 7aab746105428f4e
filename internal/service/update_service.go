// internal/service/update_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// UpdateInput is what an admin submits for a weekly update.
type UpdateInput struct {
	WeekNumber  int     `json:"week_number"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateService defines weekly progress updates and their fan-out.
type UpdateService interface {
	Create(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input UpdateInput) (*domain.WeeklyUpdate, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.WeeklyUpdate, error)
}

type updateService struct {
	store          Store
	projectRepo    repository.ProjectRepository
	updateRepo     repository.WeeklyUpdateRepository
	investmentRepo repository.InvestmentRepository
	notifier       *Notifier
	logger         *slog.Logger
}

// NewUpdateService creates a new instance of UpdateService.
func NewUpdateService(
	store Store,
	projectRepo repository.ProjectRepository,
	updateRepo repository.WeeklyUpdateRepository,
	investmentRepo repository.InvestmentRepository,
	notifier *Notifier,
	logger *slog.Logger,
) UpdateService {
	return &updateService{
		store:          store,
		projectRepo:    projectRepo,
		updateRepo:     updateRepo,
		investmentRepo: investmentRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Create stores the update, then notifies every distinct investor in the
// project. Failing to notify never fails the update.
func (s *updateService) Create(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input UpdateInput) (*domain.WeeklyUpdate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	update, err := domain.NewWeeklyUpdate(projectID, input.WeekNumber, input.Title, input.Description, input.ImageURL)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetProjectByID(ctx, s.store.Executor, projectID); err != nil {
		return nil, fmt.Errorf("create update: failed to get project %s: %w", projectID, err)
	}
	if err := s.updateRepo.CreateWeeklyUpdate(ctx, s.store.Executor, update); err != nil {
		return nil, fmt.Errorf("create update: %w", err)
	}

	s.fanOut(ctx, update)
	return update, nil
}

func (s *updateService) fanOut(ctx context.Context, update *domain.WeeklyUpdate) {
	investors, err := s.investmentRepo.ListInvestorIDsByProject(ctx, s.store.Executor, update.ProjectID)
	if err != nil {
		s.logger.Error("Failed to look up investors for update", "project_id", update.ProjectID, "error", err)
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(investors))
	batch := make([]domain.Notification, 0, len(investors))
	for _, id := range investors {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		batch = append(batch, domain.ProjectUpdateNotice(id, update))
	}
	s.notifier.Notify(ctx, batch...)
}

func (s *updateService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.WeeklyUpdate, error) {
	updates, err := s.updateRepo.ListWeeklyUpdatesByProject(ctx, s.store.Executor, projectID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}
