// internal/repository/postgres/procedures_pg.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// ProcedureGateway implements repository.ProcedureGateway by calling the
// plpgsql functions shipped in the migrations.
type ProcedureGateway struct {
	q repository.DBExecutor
}

// NewProcedureGateway creates a gateway that calls procedures on q.
func NewProcedureGateway(q repository.DBExecutor) repository.ProcedureGateway {
	return &ProcedureGateway{q: q}
}

// call runs SELECT proc($1, $2) and decodes the envelope. A success=false
// envelope is returned as a *util.ProcedureError.
func (g *ProcedureGateway) call(ctx context.Context, proc string, id, actor uuid.UUID) (*repository.ProcedureResult, error) {
	var raw []byte
	query := fmt.Sprintf("SELECT %s($1, $2)", proc)
	if err := g.q.QueryRowContext(ctx, query, id, actor).Scan(&raw); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", proc, err)
	}
	if len(raw) == 0 {
		return nil, &util.ProcedureError{Procedure: proc, Message: proc + " returned no result"}
	}
	var result repository.ProcedureResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", proc, err)
	}
	if err := result.Err(proc); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *ProcedureGateway) ApproveInvestment(ctx context.Context, investmentID, reviewerID uuid.UUID) (*domain.Credit, error) {
	result, err := g.call(ctx, repository.ProcApproveInvestment, investmentID, reviewerID)
	if err != nil {
		return nil, err
	}
	var credit domain.Credit
	if len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, &credit); err != nil {
			return nil, fmt.Errorf("failed to decode %s data: %w", repository.ProcApproveInvestment, err)
		}
	}
	if credit.InvestmentID == uuid.Nil {
		credit.InvestmentID = investmentID
	}
	return &credit, nil
}

func (g *ProcedureGateway) AdminDeleteInvestment(ctx context.Context, investmentID, adminID uuid.UUID) error {
	_, err := g.call(ctx, repository.ProcAdminDeleteInvestment, investmentID, adminID)
	return err
}

func (g *ProcedureGateway) WithdrawInvestment(ctx context.Context, investmentID, investorID uuid.UUID) error {
	_, err := g.call(ctx, repository.ProcWithdrawInvestment, investmentID, investorID)
	return err
}

func (g *ProcedureGateway) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var admin bool
	query := fmt.Sprintf("SELECT %s($1)", repository.ProcIsAdmin)
	if err := g.q.QueryRowContext(ctx, query, userID).Scan(&admin); err != nil {
		return false, fmt.Errorf("failed to call %s: %w", repository.ProcIsAdmin, err)
	}
	return admin, nil
}
