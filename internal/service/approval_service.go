// internal/service/approval_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// EmergencyDeleteConfirmation must be typed to delete an investment outside
// the normal review flow.
const EmergencyDeleteConfirmation = "DELETE"

// ApprovalService defines the admin review queue for investments.
type ApprovalService interface {
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error)
	Approve(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (*domain.Credit, error)
	Reject(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, reason string) error
	EmergencyDelete(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, confirmation string) error
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error)
	PlatformLedger(ctx context.Context, actor domain.Actor) (domain.CurrencyLedger, error)
}

type approvalService struct {
	store          Store
	investmentRepo repository.InvestmentRepository
	procedures     repository.ProcedureGateway
	notifier       *Notifier
	recorder       Recorder
	logger         *slog.Logger
}

// NewApprovalService creates a new instance of ApprovalService.
func NewApprovalService(
	store Store,
	investmentRepo repository.InvestmentRepository,
	procedures repository.ProcedureGateway,
	notifier *Notifier,
	recorder Recorder,
	logger *slog.Logger,
) ApprovalService {
	return &approvalService{
		store:          store,
		investmentRepo: investmentRepo,
		procedures:     procedures,
		notifier:       notifier,
		recorder:       recorderOrNop(recorder),
		logger:         logger,
	}
}

// ListPending returns the pending queue, newest first.
func (s *approvalService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	status := domain.StatusPending
	list, err := s.investmentRepo.ListInvestments(ctx, s.store.Executor, repository.InvestmentFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("list pending investments: %w", err)
	}
	return newestFirst(list), nil
}

// Approve credits the investor through the approval procedure. On any
// failure nothing else is changed.
func (s *approvalService) Approve(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (*domain.Credit, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	credit, err := s.procedures.ApproveInvestment(ctx, investmentID, actor.UserID)
	s.recorder.ProcedureCalled(repository.ProcApproveInvestment, err)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}

	s.logger.Info("Investment approved", "investment_id", investmentID, "reviewer", actor.UserID,
		"currency", credit.Currency, "total_return", credit.TotalReturn)
	return credit, nil
}

// Reject removes a pending investment and tells the investor why. The
// notification is best-effort.
func (s *approvalService) Reject(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, reason string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return util.ErrReasonRequired
	}

	investment, err := s.investmentRepo.GetInvestmentByID(ctx, s.store.Executor, investmentID)
	if err != nil {
		return fmt.Errorf("reject: failed to get investment %s: %w", investmentID, err)
	}
	if investment.Status != domain.StatusPending {
		return util.ErrAlreadyReviewed
	}

	err = s.procedures.AdminDeleteInvestment(ctx, investmentID, actor.UserID)
	s.recorder.ProcedureCalled(repository.ProcAdminDeleteInvestment, err)
	if err != nil {
		return fmt.Errorf("reject: %w", err)
	}

	s.notifier.Notify(ctx, domain.InvestmentRejectedNotice(investment.InvestorID, reason))
	s.logger.Info("Investment rejected", "investment_id", investmentID, "reviewer", actor.UserID)
	return nil
}

// EmergencyDelete removes any investment, approved ones included, after an
// explicit confirmation. Credits are unwound by the procedure.
func (s *approvalService) EmergencyDelete(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, confirmation string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if strings.TrimSpace(confirmation) != EmergencyDeleteConfirmation {
		return util.ErrConfirmation
	}

	err := s.procedures.AdminDeleteInvestment(ctx, investmentID, actor.UserID)
	s.recorder.ProcedureCalled(repository.ProcAdminDeleteInvestment, err)
	if err != nil {
		return fmt.Errorf("emergency delete: %w", err)
	}

	s.logger.Warn("Investment deleted by admin", "investment_id", investmentID, "admin", actor.UserID)
	return nil
}

func (s *approvalService) ListAll(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	list, err := s.investmentRepo.ListInvestments(ctx, s.store.Executor, repository.InvestmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return list, nil
}

// PlatformLedger totals every investment of every status per currency.
func (s *approvalService) PlatformLedger(ctx context.Context, actor domain.Actor) (domain.CurrencyLedger, error) {
	list, err := s.ListAll(ctx, actor)
	if err != nil {
		return domain.CurrencyLedger{}, err
	}
	return domain.AggregateByCurrency(domain.DetailsToInvestments(list), false), nil
}
