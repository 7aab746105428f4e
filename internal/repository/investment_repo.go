// internal/repository/investment_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// InvestmentFilter narrows an investment listing. Nil fields are ignored.
type InvestmentFilter struct {
	Status     *domain.ReviewStatus
	InvestorID *uuid.UUID
	ProjectID  *uuid.UUID
	Limit      int
}

// InvestmentRepository defines the interface for investment data operations.
type InvestmentRepository interface {
	// CreateInvestment inserts a new investment record.
	CreateInvestment(ctx context.Context, q DBExecutor, investment *domain.Investment) error
	// GetInvestmentByID retrieves one investment with its project currency.
	GetInvestmentByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Investment, error)
	// ListInvestments returns matching investments joined with investor and
	// project, newest first.
	ListInvestments(ctx context.Context, q DBExecutor, filter InvestmentFilter) ([]domain.InvestmentDetail, error)
	// ListInvestorIDsByProject returns each distinct investor holding any
	// investment, of any status, in the project.
	ListInvestorIDsByProject(ctx context.Context, q DBExecutor, projectID uuid.UUID) ([]uuid.UUID, error)
}
