// internal/service/approval_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

type approvalFixture struct {
	exec          *MockDBExecutor
	investments   *MockInvestmentRepository
	procedures    *MockProcedureGateway
	notifications *MockNotificationRepository
	notifier      *Notifier
	service       ApprovalService
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		exec:          new(MockDBExecutor),
		investments:   new(MockInvestmentRepository),
		procedures:    new(MockProcedureGateway),
		notifications: new(MockNotificationRepository),
	}
	logger := util.DiscardLogger()
	f.notifier = NewNotifier(f.exec, f.notifications, time.Second, logger, nil)
	f.service = NewApprovalService(
		newTestStore(new(MockDBBeginner), f.exec, new(MockTxController)),
		f.investments,
		f.procedures,
		f.notifier,
		nil,
		logger,
	)
	return f
}

func (f *approvalFixture) assertExpectations(t *testing.T) {
	f.notifier.Wait()
	mock.AssertExpectationsForObjects(t, f.exec, f.investments, f.procedures, f.notifications)
}

func adminActor() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Email: "admin@farmvora.com", Admin: true}
}

func TestListPending(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		older := domain.InvestmentDetail{Investment: domain.Investment{ID: uuid.New(), Status: domain.StatusPending, InvestedAt: base}}
		newer := domain.InvestmentDetail{Investment: domain.Investment{ID: uuid.New(), Status: domain.StatusPending, InvestedAt: base.Add(time.Hour)}}
		status := domain.StatusPending

		f.investments.On("ListInvestments", ctx, f.exec, repository.InvestmentFilter{Status: &status}).
			Return([]domain.InvestmentDetail{older, newer}, nil).Once()

		list, err := f.service.ListPending(ctx, adminActor())

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)
		f.assertExpectations(t)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		f := newApprovalFixture()

		_, err := f.service.ListPending(context.Background(), investorActor())

		assert.ErrorIs(t, err, util.ErrForbidden)
		f.assertExpectations(t)
	})
}

func TestApprove(t *testing.T) {
	t.Run("ReturnsCredit", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		id := uuid.New()
		credit := &domain.Credit{InvestmentID: id, Currency: "USD", Amount: decimal.NewFromInt(1000), TotalReturn: decimal.NewFromInt(1150)}

		f.procedures.On("ApproveInvestment", ctx, id, admin.UserID).Return(credit, nil).Once()

		got, err := f.service.Approve(ctx, admin, id)

		require.NoError(t, err)
		assert.Equal(t, "USD", got.Currency)
		assert.True(t, got.TotalReturn.Equal(decimal.NewFromInt(1150)))
		f.assertExpectations(t)
	})

	t.Run("LogicalFailureIsAnError", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		id := uuid.New()

		f.procedures.On("ApproveInvestment", ctx, id, admin.UserID).
			Return(nil, &util.ProcedureError{Procedure: repository.ProcApproveInvestment, Message: "Investment is not pending"}).Once()

		got, err := f.service.Approve(ctx, admin, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, util.ErrProcedureFailed)
		assert.Contains(t, err.Error(), "Investment is not pending")
		f.notifications.AssertNotCalled(t, "CreateNotifications", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("TransportFailure", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		id := uuid.New()

		f.procedures.On("ApproveInvestment", ctx, id, admin.UserID).Return(nil, errors.New("connection refused")).Once()

		_, err := f.service.Approve(ctx, admin, id)

		assert.ErrorContains(t, err, "connection refused")
		f.assertExpectations(t)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		f := newApprovalFixture()

		_, err := f.service.Approve(context.Background(), investorActor(), uuid.New())

		assert.ErrorIs(t, err, util.ErrForbidden)
		f.procedures.AssertNotCalled(t, "ApproveInvestment", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestReject(t *testing.T) {
	t.Run("BlankReasonMakesNoRemoteCall", func(t *testing.T) {
		for _, reason := range []string{"", "   "} {
			f := newApprovalFixture()

			err := f.service.Reject(context.Background(), adminActor(), uuid.New(), reason)

			assert.ErrorIs(t, err, util.ErrReasonRequired)
			f.investments.AssertNotCalled(t, "GetInvestmentByID", mock.Anything, mock.Anything, mock.Anything)
			f.procedures.AssertNotCalled(t, "AdminDeleteInvestment", mock.Anything, mock.Anything, mock.Anything)
			f.assertExpectations(t)
		}
	})

	t.Run("DeletesAndNotifiesInvestor", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		inv := &domain.Investment{ID: uuid.New(), InvestorID: uuid.New(), Status: domain.StatusPending}

		f.investments.On("GetInvestmentByID", ctx, f.exec, inv.ID).Return(inv, nil).Once()
		f.procedures.On("AdminDeleteInvestment", ctx, inv.ID, admin.UserID).Return(nil).Once()
		f.notifications.On("CreateNotifications", mock.Anything, f.exec, mock.MatchedBy(func(batch []domain.Notification) bool {
			return len(batch) == 1 &&
				batch[0].UserID == inv.InvestorID &&
				batch[0].Type == domain.NotificationInvestmentRejected &&
				batch[0].Link == "/dashboard" &&
				batch[0].Message == "Your investment request was not approved. Reason: Incomplete KYC. You can submit a new investment request."
		})).Return(nil).Once()

		require.NoError(t, f.service.Reject(ctx, admin, inv.ID, "Incomplete KYC"))
		f.assertExpectations(t)
	})

	t.Run("NotificationFailureIsNotFatal", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		inv := &domain.Investment{ID: uuid.New(), InvestorID: uuid.New(), Status: domain.StatusPending}

		f.investments.On("GetInvestmentByID", ctx, f.exec, inv.ID).Return(inv, nil).Once()
		f.procedures.On("AdminDeleteInvestment", ctx, inv.ID, admin.UserID).Return(nil).Once()
		f.notifications.On("CreateNotifications", mock.Anything, f.exec, mock.Anything).Return(errors.New("insert failed")).Once()

		assert.NoError(t, f.service.Reject(ctx, admin, inv.ID, "Duplicate request"))
		f.assertExpectations(t)
	})

	t.Run("ProcedureFailureSkipsNotification", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		inv := &domain.Investment{ID: uuid.New(), InvestorID: uuid.New(), Status: domain.StatusPending}

		f.investments.On("GetInvestmentByID", ctx, f.exec, inv.ID).Return(inv, nil).Once()
		f.procedures.On("AdminDeleteInvestment", ctx, inv.ID, admin.UserID).
			Return(&util.ProcedureError{Procedure: repository.ProcAdminDeleteInvestment, Message: "Investment not found"}).Once()

		err := f.service.Reject(ctx, admin, inv.ID, "Duplicate request")

		assert.ErrorIs(t, err, util.ErrProcedureFailed)
		f.notifications.AssertNotCalled(t, "CreateNotifications", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("AlreadyApproved", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		inv := &domain.Investment{ID: uuid.New(), InvestorID: uuid.New(), Status: domain.StatusApproved}

		f.investments.On("GetInvestmentByID", ctx, f.exec, inv.ID).Return(inv, nil).Once()

		err := f.service.Reject(ctx, adminActor(), inv.ID, "Too late")

		assert.ErrorIs(t, err, util.ErrAlreadyReviewed)
		f.procedures.AssertNotCalled(t, "AdminDeleteInvestment", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestEmergencyDelete(t *testing.T) {
	t.Run("RequiresConfirmation", func(t *testing.T) {
		f := newApprovalFixture()

		err := f.service.EmergencyDelete(context.Background(), adminActor(), uuid.New(), "delete")

		assert.ErrorIs(t, err, util.ErrConfirmation)
		f.procedures.AssertNotCalled(t, "AdminDeleteInvestment", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Confirmed", func(t *testing.T) {
		ctx := context.Background()
		f := newApprovalFixture()
		admin := adminActor()
		id := uuid.New()

		f.procedures.On("AdminDeleteInvestment", ctx, id, admin.UserID).Return(nil).Once()

		assert.NoError(t, f.service.EmergencyDelete(ctx, admin, id, "DELETE"))
		f.assertExpectations(t)
	})
}

func TestPlatformLedger(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	list := []domain.InvestmentDetail{
		{Investment: domain.Investment{Currency: "USD", Status: domain.StatusApproved, Amount: decimal.NewFromInt(100), ExpectedReturn: decimal.NewFromInt(10)}},
		{Investment: domain.Investment{Currency: "USD", Status: domain.StatusPending, Amount: decimal.NewFromInt(50), ExpectedReturn: decimal.NewFromInt(5)}},
		{Investment: domain.Investment{Currency: "", Status: domain.StatusApproved, Amount: decimal.NewFromInt(200), ExpectedReturn: decimal.NewFromInt(20)}},
	}
	f.investments.On("ListInvestments", ctx, f.exec, repository.InvestmentFilter{}).Return(list, nil).Once()

	ledger, err := f.service.PlatformLedger(ctx, adminActor())
	require.NoError(t, err)

	require.Len(t, ledger.Buckets, 2)
	assert.Equal(t, "NGN", ledger.Buckets[0].Currency)
	assert.Equal(t, "USD", ledger.Buckets[1].Currency)
	assert.True(t, ledger.Buckets[1].TotalInvested.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, ledger.Buckets[1].Count)

	_, _, err = ledger.SingleTotal()
	assert.ErrorIs(t, err, util.ErrMixedCurrencies)
	f.assertExpectations(t)
}
