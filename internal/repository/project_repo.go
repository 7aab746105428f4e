// internal/repository/project_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	CreateProject(ctx context.Context, q DBExecutor, project *domain.Project) error
	GetProjectByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Project, error)
	// ListProjects returns projects newest first, optionally by status.
	ListProjects(ctx context.Context, q DBExecutor, status *domain.ProjectStatus) ([]domain.Project, error)
	// UpdateProject writes the admin-editable fields. Funding and buffer
	// amounts are left to the procedures.
	UpdateProject(ctx context.Context, q DBExecutor, project *domain.Project) error
	UpdateProjectStatus(ctx context.Context, q DBExecutor, id uuid.UUID, status domain.ProjectStatus) error
	DeleteProject(ctx context.Context, q DBExecutor, id uuid.UUID) error
}
