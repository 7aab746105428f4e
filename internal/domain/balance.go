// internal/domain/balance.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is the amount credited to an investor in one currency. It is
// written only by the approval procedure.
type Balance struct {
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Currency  string          `db:"currency" json:"currency"`
	Balance   decimal.Decimal `db:"balance" json:"balance"` // NUMERIC(20, 4) in DB
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Credit is what the approval procedure reports after crediting a balance.
type Credit struct {
	InvestmentID uuid.UUID       `json:"investment_id"`
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	TotalReturn  decimal.Decimal `json:"total_return"`
}
