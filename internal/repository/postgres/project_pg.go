// internal/repository/postgres/project_pg.go
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

const projectColumns = `id, title, description, location, category, required_capital, current_funding,
       expected_roi, duration_months, start_date, expected_harvest_date, risk_level, status, currency,
       emergency_buffer_percentage, emergency_buffer_amount, owner_name, owner_bio, created_by,
       created_at, updated_at`

// ProjectRepository implements repository.ProjectRepository for PostgreSQL.
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository() repository.ProjectRepository {
	return &ProjectRepository{}
}

// CreateProject inserts a project. The database assigns funding and buffer
// amounts, which start at zero.
func (r *ProjectRepository) CreateProject(ctx context.Context, q repository.DBExecutor, p *domain.Project) error {
	query := `INSERT INTO projects (id, title, description, location, category, required_capital, expected_roi,
                  duration_months, start_date, expected_harvest_date, risk_level, status, currency,
                  emergency_buffer_percentage, owner_name, owner_bio, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := q.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Location, p.Category, p.RequiredCapital, p.ExpectedROI,
		p.DurationMonths, p.StartDate, p.ExpectedHarvestDate, p.RiskLevel, p.Status, p.Currency,
		p.EmergencyBufferPercentage, p.OwnerName, p.OwnerBio, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a project by its ID.
func (r *ProjectRepository) GetProjectByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	if err := q.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID %s: %w", id, err)
	}
	return &p, nil
}

// ListProjects retrieves projects newest first.
func (r *ProjectRepository) ListProjects(ctx context.Context, q repository.DBExecutor, status *domain.ProjectStatus) ([]domain.Project, error) {
	projects := []domain.Project{}
	var err error
	if status != nil {
		query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY created_at DESC`
		err = q.SelectContext(ctx, &projects, query, *status)
	} else {
		query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
		err = q.SelectContext(ctx, &projects, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject writes the editable fields of a project.
func (r *ProjectRepository) UpdateProject(ctx context.Context, q repository.DBExecutor, p *domain.Project) error {
	query := `UPDATE projects
                 SET title = $1, description = $2, location = $3, category = $4, required_capital = $5,
                     expected_roi = $6, duration_months = $7, start_date = $8, expected_harvest_date = $9,
                     risk_level = $10, status = $11, currency = $12, emergency_buffer_percentage = $13,
                     emergency_buffer_amount = round(current_funding * $13 / 100, 4),
                     owner_name = $14, owner_bio = $15, updated_at = $16
               WHERE id = $17`
	result, err := q.ExecContext(ctx, query,
		p.Title, p.Description, p.Location, p.Category, p.RequiredCapital,
		p.ExpectedROI, p.DurationMonths, p.StartDate, p.ExpectedHarvestDate,
		p.RiskLevel, p.Status, p.Currency, p.EmergencyBufferPercentage,
		p.OwnerName, p.OwnerBio, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", p.ID, err)
	}
	return expectOneRow(result, "project", p.ID)
}

// UpdateProjectStatus changes only the status of a project.
func (r *ProjectRepository) UpdateProjectStatus(ctx context.Context, q repository.DBExecutor, id uuid.UUID, status domain.ProjectStatus) error {
	query := `UPDATE projects SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update status of project %s: %w", id, err)
	}
	return expectOneRow(result, "project", id)
}

// DeleteProject removes a project. Investments, questions and updates
// cascade.
func (r *ProjectRepository) DeleteProject(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return expectOneRow(result, "project", id)
}

// expectOneRow maps a zero-row write to util.ErrNotFound.
func expectOneRow(result sql.Result, entity string, id uuid.UUID) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s %s: %w", entity, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, util.ErrNotFound)
	}
	return nil
}
