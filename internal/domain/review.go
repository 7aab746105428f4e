// internal/domain/review.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the lifecycle status shared by every record that passes
// through an admin approval queue (investments and questions).
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"

	// StatusWithdrawn is reported in lifecycle events only; withdrawn rows
	// are deleted rather than stored with this status.
	StatusWithdrawn ReviewStatus = "withdrawn"
)

// Valid reports whether s is one of the known statuses.
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// State is the typed lifecycle position of a reviewable record. The concrete
// types are Pending, Approved, Rejected and Withdrawn.
type State interface {
	Status() ReviewStatus
	isState()
}

type Pending struct{}

type Approved struct {
	Reviewer uuid.UUID
	At       time.Time
}

type Rejected struct {
	Reviewer uuid.UUID
	At       time.Time
	Reason   string
}

// Withdrawn is never persisted: withdrawn rows are deleted. It exists so
// lifecycle events can describe the transition.
type Withdrawn struct {
	At time.Time
}

func (Pending) Status() ReviewStatus   { return StatusPending }
func (Approved) Status() ReviewStatus  { return StatusApproved }
func (Rejected) Status() ReviewStatus  { return StatusRejected }
func (Withdrawn) Status() ReviewStatus { return StatusWithdrawn }

func (Pending) isState()   {}
func (Approved) isState()  {}
func (Rejected) isState()  {}
func (Withdrawn) isState() {}

// stateFromRow rebuilds the typed state from the persisted columns.
func stateFromRow(status ReviewStatus, reviewedBy *uuid.UUID, reviewedAt *time.Time, reason *string) State {
	var reviewer uuid.UUID
	if reviewedBy != nil {
		reviewer = *reviewedBy
	}
	var at time.Time
	if reviewedAt != nil {
		at = *reviewedAt
	}
	switch status {
	case StatusApproved:
		return Approved{Reviewer: reviewer, At: at}
	case StatusRejected:
		r := Rejected{Reviewer: reviewer, At: at}
		if reason != nil {
			r.Reason = *reason
		}
		return r
	default:
		return Pending{}
	}
}
