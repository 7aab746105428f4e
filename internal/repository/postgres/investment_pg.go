// internal/repository/postgres/investment_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// Currency lives on the project, so every read joins it in.
const investmentColumns = `i.id, i.investor_id, i.project_id, i.amount, i.expected_return, p.currency,
       i.status, i.invested_at, i.reviewed_by, i.reviewed_at, i.rejection_reason`

// InvestmentRepository implements repository.InvestmentRepository for PostgreSQL.
type InvestmentRepository struct{}

// NewInvestmentRepository creates a new InvestmentRepository.
func NewInvestmentRepository() repository.InvestmentRepository {
	return &InvestmentRepository{}
}

// CreateInvestment inserts a new investment using the provided DBExecutor.
func (r *InvestmentRepository) CreateInvestment(ctx context.Context, q repository.DBExecutor, inv *domain.Investment) error {
	query := `INSERT INTO investments (id, investor_id, project_id, amount, expected_return, status, invested_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query, inv.ID, inv.InvestorID, inv.ProjectID, inv.Amount, inv.ExpectedReturn, inv.Status, inv.InvestedAt)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// GetInvestmentByID retrieves an investment by its ID.
func (r *InvestmentRepository) GetInvestmentByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Investment, error) {
	var inv domain.Investment
	query := `SELECT ` + investmentColumns + `
              FROM investments i JOIN projects p ON p.id = i.project_id
              WHERE i.id = $1`
	err := q.GetContext(ctx, &inv, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get investment by ID %s: %w", id, err)
	}
	return &inv, nil
}

// ListInvestments retrieves investments matching filter, newest first.
func (r *InvestmentRepository) ListInvestments(ctx context.Context, q repository.DBExecutor, filter repository.InvestmentFilter) ([]domain.InvestmentDetail, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if filter.InvestorID != nil {
		args = append(args, *filter.InvestorID)
		conds = append(conds, fmt.Sprintf("i.investor_id = $%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conds = append(conds, fmt.Sprintf("i.project_id = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + investmentColumns + `,
       COALESCE(pr.email, '') AS investor_email, COALESCE(pr.full_name, '') AS investor_name, p.title AS project_title
  FROM investments i
  JOIN projects p ON p.id = i.project_id
  LEFT JOIN profiles pr ON pr.id = i.investor_id`)
	if len(conds) > 0 {
		sb.WriteString("\n WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString("\n ORDER BY i.invested_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	investments := []domain.InvestmentDetail{}
	if err := q.SelectContext(ctx, &investments, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

// ListInvestorIDsByProject retrieves the distinct investors of a project.
func (r *InvestmentRepository) ListInvestorIDsByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	query := `SELECT DISTINCT investor_id FROM investments WHERE project_id = $1`
	if err := q.SelectContext(ctx, &ids, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list investors for project %s: %w", projectID, err)
	}
	return ids, nil
}
