// internal/service/investment_service.go
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

// Portfolio is an investor's dashboard: approved and pending commitments
// per currency plus the credited balances.
type Portfolio struct {
	Investments []domain.InvestmentDetail `json:"investments"`
	Approved    domain.CurrencyLedger     `json:"approved"`
	Pending     domain.CurrencyLedger     `json:"pending"`
	Balances    []domain.Balance          `json:"balances"`

	// Set only when every approved investment shares one currency.
	TotalInvested *decimal.Decimal `json:"total_invested,omitempty"`
	TotalCurrency string           `json:"total_currency,omitempty"`
}

// InvestmentService defines the investor-facing investment operations.
type InvestmentService interface {
	Submit(ctx context.Context, actor domain.Actor, projectID uuid.UUID, rawAmount string) (*domain.Investment, domain.Admission, error)
	Withdraw(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (domain.Withdrawn, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error)
	ListMineForProject(ctx context.Context, actor domain.Actor, projectID uuid.UUID) ([]domain.InvestmentDetail, error)
	Portfolio(ctx context.Context, actor domain.Actor) (*Portfolio, error)
}

type investmentService struct {
	store          Store
	projectRepo    repository.ProjectRepository
	investmentRepo repository.InvestmentRepository
	balanceRepo    repository.BalanceRepository
	procedures     repository.ProcedureGateway
	recorder       Recorder
	logger         *slog.Logger
	now            func() time.Time
}

// NewInvestmentService creates a new instance of InvestmentService.
func NewInvestmentService(
	store Store,
	projectRepo repository.ProjectRepository,
	investmentRepo repository.InvestmentRepository,
	balanceRepo repository.BalanceRepository,
	procedures repository.ProcedureGateway,
	recorder Recorder,
	logger *slog.Logger,
) InvestmentService {
	return &investmentService{
		store:          store,
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		balanceRepo:    balanceRepo,
		procedures:     procedures,
		recorder:       recorderOrNop(recorder),
		logger:         logger,
		now:            time.Now,
	}
}

// Submit records a pending investment, or a non-binding interest when the
// project is still upcoming. Amount validation happens before any store
// access.
func (s *investmentService) Submit(ctx context.Context, actor domain.Actor, projectID uuid.UUID, rawAmount string) (*domain.Investment, domain.Admission, error) {
	if err := requireActor(actor); err != nil {
		return nil, "", err
	}
	amount, err := domain.ParseAmount(rawAmount)
	if err != nil {
		return nil, "", err
	}

	var (
		investment *domain.Investment
		admission  domain.Admission
	)
	err = s.store.inTx(ctx, "submit investment", func(q repository.DBExecutor) error {
		project, err := s.projectRepo.GetProjectByID(ctx, q, projectID)
		if err != nil {
			return fmt.Errorf("submit investment: failed to get project %s: %w", projectID, err)
		}
		admission, err = project.Admit(s.now())
		if err != nil {
			return err
		}

		investment = domain.NewInvestment(actor.UserID, project, amount)
		if err := s.investmentRepo.CreateInvestment(ctx, q, investment); err != nil {
			return fmt.Errorf("submit investment: failed to create investment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	s.recorder.InvestmentSubmitted(string(admission))
	s.logger.Info("Investment submitted", "investment_id", investment.ID, "project_id", projectID,
		"admission", admission, "currency", investment.Currency)
	return investment, admission, nil
}

// Withdraw removes the actor's own pending investment and reports when it
// left the queue. Anything else is refused before the procedure is called.
func (s *investmentService) Withdraw(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (domain.Withdrawn, error) {
	if err := requireActor(actor); err != nil {
		return domain.Withdrawn{}, err
	}

	investment, err := s.investmentRepo.GetInvestmentByID(ctx, s.store.Executor, investmentID)
	if err != nil {
		return domain.Withdrawn{}, fmt.Errorf("withdraw: failed to get investment %s: %w", investmentID, err)
	}
	if investment.InvestorID != actor.UserID {
		return domain.Withdrawn{}, util.ErrForbidden
	}
	if !investment.Withdrawable() {
		return domain.Withdrawn{}, util.ErrNotPending
	}

	err = s.procedures.WithdrawInvestment(ctx, investmentID, actor.UserID)
	s.recorder.ProcedureCalled(repository.ProcWithdrawInvestment, err)
	if err != nil {
		return domain.Withdrawn{}, fmt.Errorf("withdraw: %w", err)
	}

	s.logger.Info("Investment withdrawn", "investment_id", investmentID, "investor_id", actor.UserID)
	return domain.Withdrawn{At: s.now().UTC()}, nil
}

func (s *investmentService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := s.investmentRepo.ListInvestments(ctx, s.store.Executor, repository.InvestmentFilter{InvestorID: &actor.UserID})
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return list, nil
}

// ListMineForProject returns the actor's commitments to a single project,
// used by the project page to show pending requests.
func (s *investmentService) ListMineForProject(ctx context.Context, actor domain.Actor, projectID uuid.UUID) ([]domain.InvestmentDetail, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := s.investmentRepo.ListInvestments(ctx, s.store.Executor, repository.InvestmentFilter{
		InvestorID: &actor.UserID,
		ProjectID:  &projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("list project investments: %w", err)
	}
	return list, nil
}

func (s *investmentService) Portfolio(ctx context.Context, actor domain.Actor) (*Portfolio, error) {
	list, err := s.ListMine(ctx, actor)
	if err != nil {
		return nil, err
	}
	balances, err := s.balanceRepo.GetBalancesByUserID(ctx, s.store.Executor, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("portfolio: %w", err)
	}

	investments := domain.DetailsToInvestments(list)
	pending := make([]domain.Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.Status == domain.StatusPending {
			pending = append(pending, inv)
		}
	}
	portfolio := &Portfolio{
		Investments: list,
		Approved:    domain.AggregateByCurrency(investments, true),
		Pending:     domain.AggregateByCurrency(pending, false),
		Balances:    balances,
	}
	total, code, err := portfolio.Approved.SingleTotal()
	switch {
	case util.IsError(err, util.ErrMixedCurrencies):
		// Currencies are never summed together.
	case err != nil:
		return nil, fmt.Errorf("portfolio: %w", err)
	case code != "":
		portfolio.TotalInvested, portfolio.TotalCurrency = &total, code
	}
	return portfolio, nil
}
