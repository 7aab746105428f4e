// internal/api/handler/mocks_test.go
package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
)

type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) Submit(ctx context.Context, actor domain.Actor, projectID uuid.UUID, rawAmount string) (*domain.Investment, domain.Admission, error) {
	args := m.Called(ctx, actor, projectID, rawAmount)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Investment), args.Get(1).(domain.Admission), args.Error(2)
}

func (m *MockInvestmentService) Withdraw(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (domain.Withdrawn, error) {
	args := m.Called(ctx, actor, investmentID)
	return args.Get(0).(domain.Withdrawn), args.Error(1)
}

func (m *MockInvestmentService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentDetail), args.Error(1)
}

func (m *MockInvestmentService) ListMineForProject(ctx context.Context, actor domain.Actor, projectID uuid.UUID) ([]domain.InvestmentDetail, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentDetail), args.Error(1)
}

func (m *MockInvestmentService) Portfolio(ctx context.Context, actor domain.Actor) (*service.Portfolio, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Portfolio), args.Error(1)
}

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentDetail), args.Error(1)
}

func (m *MockApprovalService) Approve(ctx context.Context, actor domain.Actor, investmentID uuid.UUID) (*domain.Credit, error) {
	args := m.Called(ctx, actor, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockApprovalService) Reject(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, reason string) error {
	return m.Called(ctx, actor, investmentID, reason).Error(0)
}

func (m *MockApprovalService) EmergencyDelete(ctx context.Context, actor domain.Actor, investmentID uuid.UUID, confirmation string) error {
	return m.Called(ctx, actor, investmentID, confirmation).Error(0)
}

func (m *MockApprovalService) ListAll(ctx context.Context, actor domain.Actor) ([]domain.InvestmentDetail, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentDetail), args.Error(1)
}

func (m *MockApprovalService) PlatformLedger(ctx context.Context, actor domain.Actor) (domain.CurrencyLedger, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.CurrencyLedger), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, actor domain.Actor, project *domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, actor, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, changes *domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, actor, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) UpdateStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ProjectStatus) error {
	return m.Called(ctx, actor, id, status).Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

type MockUpdateService struct {
	mock.Mock
}

func (m *MockUpdateService) Create(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input service.UpdateInput) (*domain.WeeklyUpdate, error) {
	args := m.Called(ctx, actor, projectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyUpdate), args.Error(1)
}

func (m *MockUpdateService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.WeeklyUpdate, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyUpdate), args.Error(1)
}

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Ask(ctx context.Context, actor domain.Actor, projectID uuid.UUID, text string) (*domain.Question, error) {
	args := m.Called(ctx, actor, projectID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) ListApproved(ctx context.Context, projectID uuid.UUID) ([]domain.QuestionDetail, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionDetail), args.Error(1)
}

func (m *MockQuestionService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.QuestionDetail, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionDetail), args.Error(1)
}

func (m *MockQuestionService) Approve(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reply *string) error {
	return m.Called(ctx, actor, questionID, reply).Error(0)
}

func (m *MockQuestionService) Reject(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reason string) error {
	return m.Called(ctx, actor, questionID, reason).Error(0)
}

func (m *MockQuestionService) Answer(ctx context.Context, actor domain.Actor, questionID uuid.UUID, answer string) error {
	return m.Called(ctx, actor, questionID, answer).Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, actor domain.Actor, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, actor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetMine(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateMine(ctx context.Context, actor domain.Actor, edit domain.ProfileEdit) (*domain.Profile, error) {
	args := m.Called(ctx, actor, edit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) ListUsers(ctx context.Context, actor domain.Actor, status domain.UserStatus) ([]domain.Profile, error) {
	args := m.Called(ctx, actor, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileService) EditUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, edit domain.ProfileEdit) (*domain.Profile, error) {
	args := m.Called(ctx, actor, userID, edit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Suspend(ctx context.Context, actor domain.Actor, userID uuid.UUID, reason string) error {
	return m.Called(ctx, actor, userID, reason).Error(0)
}

func (m *MockProfileService) Unsuspend(ctx context.Context, actor domain.Actor, userID uuid.UUID) error {
	return m.Called(ctx, actor, userID).Error(0)
}

func (m *MockProfileService) DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, confirmation string) error {
	return m.Called(ctx, actor, userID, confirmation).Error(0)
}

func (m *MockProfileService) IsSuspended(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Toggle(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actor, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) IsFavorite(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actor, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) List(ctx context.Context, actor domain.Actor) ([]domain.Project, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// asActor attaches actor to req the way the auth middleware would.
func asActor(req *http.Request, actor domain.Actor) *http.Request {
	return req.WithContext(auth.WithActor(req.Context(), actor))
}

func investor() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Email: "investor@farmvora.ng"}
}

func admin() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Email: "admin@farmvora.ng", Admin: true}
}
