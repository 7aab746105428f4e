// internal/repository/postgres/balance_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// BalanceRepository implements repository.BalanceRepository for PostgreSQL.
type BalanceRepository struct{}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository() repository.BalanceRepository {
	return &BalanceRepository{}
}

// GetBalancesByUserID retrieves every currency balance of a user.
func (r *BalanceRepository) GetBalancesByUserID(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.Balance, error) {
	balances := []domain.Balance{}
	query := `SELECT user_id, currency, balance, updated_at FROM investor_balances WHERE user_id = $1 ORDER BY currency`
	if err := q.SelectContext(ctx, &balances, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get balances for user %s: %w", userID, err)
	}
	return balances, nil
}
