// internal/service/project_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// ProjectService defines project browsing and administration.
type ProjectService interface {
	List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, actor domain.Actor, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, changes *domain.Project) (*domain.Project, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ProjectStatus) error
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type projectService struct {
	store       Store
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(store Store, projectRepo repository.ProjectRepository, logger *slog.Logger) ProjectService {
	return &projectService{store: store, projectRepo: projectRepo, logger: logger}
}

func (s *projectService) List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", util.ErrInvalidInput, *status)
	}
	projects, err := s.projectRepo.ListProjects(ctx, s.store.Executor, status)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, s.store.Executor, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

// Create validates and stores a new project. Funding always starts at zero.
func (s *projectService) Create(ctx context.Context, actor domain.Actor, project *domain.Project) (*domain.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	project.Normalize()
	if err := project.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project.ID = uuid.New()
	project.CurrentFunding = decimal.Zero
	project.EmergencyBufferAmount = decimal.Zero
	project.CreatedBy = &actor.UserID
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.projectRepo.CreateProject(ctx, s.store.Executor, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.logger.Info("Project created", "project_id", project.ID, "currency", project.Currency)
	return project, nil
}

// Update applies the editable fields of changes to an existing project and
// returns the stored result.
func (s *projectService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, changes *domain.Project) (*domain.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *domain.Project
	err := s.store.inTx(ctx, "update project", func(q repository.DBExecutor) error {
		existing, err := s.projectRepo.GetProjectByID(ctx, q, id)
		if err != nil {
			return fmt.Errorf("update project: failed to get project %s: %w", id, err)
		}

		next := *existing
		next.Title = changes.Title
		next.Description = changes.Description
		next.Location = changes.Location
		next.Category = changes.Category
		next.RequiredCapital = changes.RequiredCapital
		next.ExpectedROI = changes.ExpectedROI
		next.DurationMonths = changes.DurationMonths
		next.StartDate = changes.StartDate
		next.ExpectedHarvestDate = changes.ExpectedHarvestDate
		next.RiskLevel = changes.RiskLevel
		next.Status = changes.Status
		next.Currency = changes.Currency
		next.EmergencyBufferPercentage = changes.EmergencyBufferPercentage
		next.OwnerName = changes.OwnerName
		next.OwnerBio = changes.OwnerBio
		next.UpdatedAt = time.Now().UTC()
		next.Normalize()
		if err := next.Validate(); err != nil {
			return err
		}

		if err := s.projectRepo.UpdateProject(ctx, q, &next); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		updated, err = s.projectRepo.GetProjectByID(ctx, q, id)
		if err != nil {
			return fmt.Errorf("update project: failed to re-fetch project %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *projectService) UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ProjectStatus) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", util.ErrInvalidInput, status)
	}
	if err := s.projectRepo.UpdateProjectStatus(ctx, s.store.Executor, id, status); err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	s.logger.Info("Project status changed", "project_id", id, "status", status)
	return nil
}

func (s *projectService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, s.store.Executor, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.logger.Warn("Project deleted", "project_id", id, "admin", actor.UserID)
	return nil
}
