// internal/service/service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
	"farmvora/pkg/db"
)

// Store bundles the connection handles and transaction hooks shared by the
// services. The hooks are injected so tests can replace them.
type Store struct {
	Beginner   db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	Executor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	BeginTx    db.BeginTxFunc
	CommitTx   db.CommitTxFunc
	RollbackTx db.RollbackTxFunc
}

// inTx runs fn inside a transaction and commits when fn succeeds. op
// prefixes every error.
func (s Store) inTx(ctx context.Context, op string, fn func(q repository.DBExecutor) error) error {
	txController, err := s.BeginTx(ctx, s.Beginner)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer s.RollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("%s: transaction controller does not implement DBExecutor", op)
	}

	if err := fn(txExecutor); err != nil {
		return err
	}

	if err := s.CommitTx(txController); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	return nil
}

// Recorder receives the counters services report.
type Recorder interface {
	ProcedureCalled(procedure string, err error)
	NotificationDelivered(kind string, err error)
	InvestmentSubmitted(admission string)
}

type nopRecorder struct{}

func (nopRecorder) ProcedureCalled(string, error)       {}
func (nopRecorder) NotificationDelivered(string, error) {}
func (nopRecorder) InvestmentSubmitted(string)          {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func requireActor(actor domain.Actor) error {
	if !actor.Authenticated() {
		return util.ErrUnauthenticated
	}
	return nil
}

func requireAdmin(actor domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.Admin {
		return util.ErrForbidden
	}
	return nil
}

// newestFirst orders a review queue by submission time, most recent first.
func newestFirst[T interface{ SubmittedAt() time.Time }](items []T) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SubmittedAt().After(items[j].SubmittedAt())
	})
	return items
}
