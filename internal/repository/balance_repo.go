// internal/repository/balance_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// BalanceRepository reads the per-currency balances credited on approval.
type BalanceRepository interface {
	// GetBalancesByUserID returns one row per currency, ordered by code.
	GetBalancesByUserID(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]domain.Balance, error)
}
