package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

var investmentRowColumns = []string{
	"id", "investor_id", "project_id", "amount", "expected_return", "currency",
	"status", "invested_at", "reviewed_by", "reviewed_at", "rejection_reason",
}

func TestInvestmentRepository_GetInvestmentByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepository()

	t.Run("JoinsProjectCurrency", func(t *testing.T) {
		db, mock := newMockDB(t)
		id, investor, project := uuid.New(), uuid.New(), uuid.New()
		at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("FROM investments i JOIN projects p ON p.id = i.project_id")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(investmentRowColumns).
				AddRow(id.String(), investor.String(), project.String(), "1000", "150", "USD", "pending", at, nil, nil, nil))

		inv, err := repo.GetInvestmentByID(ctx, db, id)
		require.NoError(t, err)
		assert.Equal(t, id, inv.ID)
		assert.Equal(t, "USD", inv.Currency)
		assert.Equal(t, domain.StatusPending, inv.Status)
		assert.True(t, inv.Amount.Equal(decimal.NewFromInt(1000)))
		assert.Nil(t, inv.ReviewedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()
		mock.ExpectQuery("FROM investments").WithArgs(id).WillReturnError(sql.ErrNoRows)

		inv, err := repo.GetInvestmentByID(ctx, db, id)
		assert.Nil(t, inv)
		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvestmentRepository_ListInvestments(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepository()

	t.Run("PendingNewestFirst", func(t *testing.T) {
		db, mock := newMockDB(t)
		status := domain.StatusPending
		at := time.Now().UTC()
		cols := append(append([]string{}, investmentRowColumns...), "investor_email", "investor_name", "project_title")

		mock.ExpectQuery(`WHERE i.status = \$1\s+ORDER BY i.invested_at DESC`).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), "500", "50", "NGN", "pending", at, nil, nil, nil,
					"ada@example.com", "Ada", "Cassava Farm"))

		list, err := repo.ListInvestments(ctx, db, repository.InvestmentFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "ada@example.com", list[0].InvestorEmail)
		assert.Equal(t, "Cassava Farm", list[0].ProjectTitle)
		assert.Equal(t, "NGN", list[0].Currency)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CombinedFiltersAndLimit", func(t *testing.T) {
		db, mock := newMockDB(t)
		investor, project := uuid.New(), uuid.New()
		cols := append(append([]string{}, investmentRowColumns...), "investor_email", "investor_name", "project_title")

		mock.ExpectQuery(`WHERE i.investor_id = \$1 AND i.project_id = \$2\s+ORDER BY i.invested_at DESC LIMIT \$3`).
			WithArgs(investor, project, 5).
			WillReturnRows(sqlmock.NewRows(cols))

		list, err := repo.ListInvestments(ctx, db, repository.InvestmentFilter{InvestorID: &investor, ProjectID: &project, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM investments").WillReturnError(errors.New("connection reset"))

		list, err := repo.ListInvestments(ctx, db, repository.InvestmentFilter{})
		assert.Nil(t, list)
		assert.ErrorContains(t, err, "failed to list investments")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvestmentRepository_CreateInvestment(t *testing.T) {
	db, mock := newMockDB(t)
	project := &domain.Project{ID: uuid.New(), ExpectedROI: decimal.NewFromInt(15), Currency: "USD"}
	inv := domain.NewInvestment(uuid.New(), project, decimal.NewFromInt(1000))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO investments")).
		WithArgs(inv.ID, inv.InvestorID, inv.ProjectID, inv.Amount, inv.ExpectedReturn, "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewInvestmentRepository().CreateInvestment(context.Background(), db, inv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvestmentRepository_ListInvestorIDsByProject(t *testing.T) {
	db, mock := newMockDB(t)
	project, a, b := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT investor_id FROM investments WHERE project_id = $1")).
		WithArgs(project).
		WillReturnRows(sqlmock.NewRows([]string{"investor_id"}).AddRow(a.String()).AddRow(b.String()))

	ids, err := NewInvestmentRepository().ListInvestorIDsByProject(context.Background(), db, project)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
