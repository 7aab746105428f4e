// internal/domain/investment.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations

	"farmvora/internal/util"
)

// Investment is one investor's commitment to one project.
type Investment struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvestorID      uuid.UUID       `db:"investor_id" json:"investor_id"`
	ProjectID       uuid.UUID       `db:"project_id" json:"project_id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`                   // NUMERIC(20, 4) in DB
	ExpectedReturn  decimal.Decimal `db:"expected_return" json:"expected_return"` // fixed at submission
	Currency        string          `db:"currency" json:"currency"`               // joined from the owning project
	Status          ReviewStatus    `db:"status" json:"status"`
	InvestedAt      time.Time       `db:"invested_at" json:"invested_at"`
	ReviewedBy      *uuid.UUID      `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time      `db:"reviewed_at" json:"reviewed_at,omitempty"`
	RejectionReason *string         `db:"rejection_reason" json:"rejection_reason,omitempty"`
}

// NewInvestment creates a pending investment of amount in project. The
// expected return is derived from the project's ROI now and is not updated
// if the ROI later changes.
func NewInvestment(investorID uuid.UUID, project *Project, amount decimal.Decimal) *Investment {
	return &Investment{
		ID:             uuid.New(),
		InvestorID:     investorID,
		ProjectID:      project.ID,
		Amount:         amount,
		ExpectedReturn: CalculateROI(amount, project.ExpectedROI),
		Currency:       project.CurrencyCode(),
		Status:         StatusPending,
		InvestedAt:     time.Now().UTC(),
	}
}

// Amounts are stored as NUMERIC(20, 4).
const amountScale = 4

var maxAmount = decimal.New(1, 20-amountScale)

// ParseAmount parses user-entered amount text. Non-numeric and non-positive
// values yield util.ErrInvalidAmount, as do values the store cannot hold:
// more than four decimal places or a magnitude of 1e16 or more.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, util.ErrInvalidAmount
	}
	if !amount.Truncate(amountScale).Equal(amount) || amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, util.ErrInvalidAmount
	}
	return amount, nil
}

// State returns the typed lifecycle state of the investment.
func (i *Investment) State() State {
	return stateFromRow(i.Status, i.ReviewedBy, i.ReviewedAt, i.RejectionReason)
}

// SubmittedAt is the queue ordering key.
func (i Investment) SubmittedAt() time.Time {
	return i.InvestedAt
}

// Withdrawable reports whether the investor may still pull the request.
func (i *Investment) Withdrawable() bool {
	return i.Status == StatusPending
}

// TotalReturn is principal plus expected return, the amount credited on
// approval.
func (i *Investment) TotalReturn() decimal.Decimal {
	return i.Amount.Add(i.ExpectedReturn)
}

// CurrencyCode returns the investment currency, defaulting to NGN.
func (i *Investment) CurrencyCode() string {
	if i.Currency == "" {
		return DefaultCurrency
	}
	return i.Currency
}

// InvestmentDetail is an investment joined with the investor's display
// identity and the project's title, as shown in queues and dashboards.
type InvestmentDetail struct {
	Investment
	InvestorEmail string `db:"investor_email" json:"investor_email"`
	InvestorName  string `db:"investor_name" json:"investor_name"`
	ProjectTitle  string `db:"project_title" json:"project_title"`
}
