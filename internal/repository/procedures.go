// internal/repository/procedures.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/util"
)

// Names of the stored procedures the service calls.
const (
	ProcApproveInvestment     = "approve_investment"
	ProcAdminDeleteInvestment = "admin_delete_investment"
	ProcWithdrawInvestment    = "withdraw_investment"
	ProcIsAdmin               = "is_admin"
)

// ProcedureResult is the {success, error, data} envelope the procedures
// answer with. A transport success can still carry success=false.
type ProcedureResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Err converts a logical failure into a *util.ProcedureError.
func (r *ProcedureResult) Err(procedure string) error {
	if r.Success {
		return nil
	}
	return &util.ProcedureError{Procedure: procedure, Message: r.Error}
}

// ProcedureGateway is the narrow capability interface over the procedures
// that mutate balances and lifecycle state. Every method returns an error
// both for transport failures and for success=false envelopes.
type ProcedureGateway interface {
	ApproveInvestment(ctx context.Context, investmentID, reviewerID uuid.UUID) (*domain.Credit, error)
	AdminDeleteInvestment(ctx context.Context, investmentID, adminID uuid.UUID) error
	WithdrawInvestment(ctx context.Context, investmentID, investorID uuid.UUID) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
