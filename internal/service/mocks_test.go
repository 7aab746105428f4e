// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/pkg/db"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController. It embeds
// MockDBExecutor so it also satisfies repository.DBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// newTestStore wires the injected transaction hooks to tx.
func newTestStore(beginner *MockDBBeginner, exec *MockDBExecutor, tx *MockTxController) Store {
	return Store{
		Beginner: beginner,
		Executor: exec,
		BeginTx: func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return tx, nil
		},
		CommitTx: func(t db.TxController) error {
			return tx.Commit()
		},
		RollbackTx: func(t db.TxController) {
			_ = tx.Rollback()
		},
	}
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) CreateProject(ctx context.Context, q repository.DBExecutor, p *domain.Project) error {
	return m.Called(ctx, q, p).Error(0)
}

func (m *MockProjectRepository) GetProjectByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, q repository.DBExecutor, status *domain.ProjectStatus) ([]domain.Project, error) {
	args := m.Called(ctx, q, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, q repository.DBExecutor, p *domain.Project) error {
	return m.Called(ctx, q, p).Error(0)
}

func (m *MockProjectRepository) UpdateProjectStatus(ctx context.Context, q repository.DBExecutor, id uuid.UUID, status domain.ProjectStatus) error {
	return m.Called(ctx, q, id, status).Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	return m.Called(ctx, q, id).Error(0)
}

// MockInvestmentRepository is a mock implementation of repository.InvestmentRepository.
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) CreateInvestment(ctx context.Context, q repository.DBExecutor, inv *domain.Investment) error {
	return m.Called(ctx, q, inv).Error(0)
}

func (m *MockInvestmentRepository) GetInvestmentByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Investment, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, q repository.DBExecutor, filter repository.InvestmentFilter) ([]domain.InvestmentDetail, error) {
	args := m.Called(ctx, q, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentDetail), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestorIDsByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, q, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockBalanceRepository is a mock implementation of repository.BalanceRepository.
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetBalancesByUserID(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.Balance, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotifications(ctx context.Context, q repository.DBExecutor, batch []domain.Notification) error {
	return m.Called(ctx, q, batch).Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByUserID(ctx context.Context, q repository.DBExecutor, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, q, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	return m.Called(ctx, q, userID, id).Error(0)
}

// MockQuestionRepository is a mock implementation of repository.QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, q repository.DBExecutor, question *domain.Question) error {
	return m.Called(ctx, q, question).Error(0)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context, q repository.DBExecutor, filter repository.QuestionFilter) ([]domain.QuestionDetail, error) {
	args := m.Called(ctx, q, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionDetail), args.Error(1)
}

func (m *MockQuestionRepository) ReviewQuestion(ctx context.Context, q repository.DBExecutor, id uuid.UUID, review repository.QuestionReview) error {
	return m.Called(ctx, q, id, review).Error(0)
}

func (m *MockQuestionRepository) AnswerQuestion(ctx context.Context, q repository.DBExecutor, id, answeredBy uuid.UUID, answer string, at time.Time) error {
	return m.Called(ctx, q, id, answeredBy, answer, at).Error(0)
}

// MockWeeklyUpdateRepository is a mock implementation of repository.WeeklyUpdateRepository.
type MockWeeklyUpdateRepository struct {
	mock.Mock
}

func (m *MockWeeklyUpdateRepository) CreateWeeklyUpdate(ctx context.Context, q repository.DBExecutor, u *domain.WeeklyUpdate) error {
	return m.Called(ctx, q, u).Error(0)
}

func (m *MockWeeklyUpdateRepository) ListWeeklyUpdatesByProject(ctx context.Context, q repository.DBExecutor, projectID uuid.UUID) ([]domain.WeeklyUpdate, error) {
	args := m.Called(ctx, q, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyUpdate), args.Error(1)
}

// MockProcedureGateway is a mock implementation of repository.ProcedureGateway.
type MockProcedureGateway struct {
	mock.Mock
}

func (m *MockProcedureGateway) ApproveInvestment(ctx context.Context, investmentID, reviewerID uuid.UUID) (*domain.Credit, error) {
	args := m.Called(ctx, investmentID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockProcedureGateway) AdminDeleteInvestment(ctx context.Context, investmentID, adminID uuid.UUID) error {
	return m.Called(ctx, investmentID, adminID).Error(0)
}

func (m *MockProcedureGateway) WithdrawInvestment(ctx context.Context, investmentID, investorID uuid.UUID) error {
	return m.Called(ctx, investmentID, investorID).Error(0)
}

func (m *MockProcedureGateway) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfileByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, q repository.DBExecutor, suspended *bool) ([]domain.Profile, error) {
	args := m.Called(ctx, q, suspended)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, q repository.DBExecutor, id uuid.UUID, edit domain.ProfileEdit) error {
	return m.Called(ctx, q, id, edit).Error(0)
}

func (m *MockProfileRepository) SetSuspension(ctx context.Context, q repository.DBExecutor, id uuid.UUID, suspended bool, reason *string) error {
	return m.Called(ctx, q, id, suspended, reason).Error(0)
}

func (m *MockProfileRepository) IsSuspended(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) DeleteProfile(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	return m.Called(ctx, q, id).Error(0)
}

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) AddFavorite(ctx context.Context, q repository.DBExecutor, favorite *domain.Favorite) error {
	return m.Called(ctx, q, favorite).Error(0)
}

func (m *MockFavoriteRepository) RemoveFavorite(ctx context.Context, q repository.DBExecutor, userID, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, q, userID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) IsFavorite(ctx context.Context, q repository.DBExecutor, userID, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, q, userID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListFavoriteProjects(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func strPtr(s string) *string { return &s }
