// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrInvalidAmount       = errors.New("please enter a valid amount")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("not allowed")
	ErrProjectClosed       = errors.New("project is not accepting investments")
	ErrReasonRequired      = errors.New("a rejection reason is required")
	ErrReplyRequired       = errors.New("please enter a reply")
	ErrNotPending          = errors.New("you can only withdraw pending investments, please contact admin for approved investments")
	ErrAlreadyReviewed     = errors.New("record has already been reviewed")
	ErrConfirmation        = errors.New("deletion not confirmed")
	ErrMixedCurrencies     = errors.New("amounts in different currencies cannot be combined")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrProcedureFailed     = errors.New("procedure reported failure")
	ErrAccountSuspended    = errors.New("account suspended")
)

// ProcedureError is returned when a stored procedure answers with
// success=false. It matches ErrProcedureFailed under errors.Is.
type ProcedureError struct {
	Procedure string
	Message   string
}

func (e *ProcedureError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed", e.Procedure)
	}
	return e.Message
}

func (e *ProcedureError) Unwrap() error {
	return ErrProcedureFailed
}

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
