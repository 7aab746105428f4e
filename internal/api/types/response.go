// internal/api/types/response.go
package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmvora/internal/domain"
)

// ListResponse wraps a collection so clients always receive an object.
// T represents the type of data contained in the 'Data' slice.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// NewListResponse never encodes a nil slice as null.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Count: len(items)}
}

// MessageResponse carries a user-facing confirmation and an optional payload.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProjectResponse adds the derived funding figures to a project.
type ProjectResponse struct {
	domain.Project
	FundingPercentage decimal.Decimal `json:"funding_percentage"`
	FormattedCapital  string          `json:"formatted_capital"`
	FormattedFunding  string          `json:"formatted_funding"`
}

func NewProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		Project:           p,
		FundingPercentage: p.FundingPercentage().Round(2),
		FormattedCapital:  domain.FormatCurrency(p.RequiredCapital, p.CurrencyCode()),
		FormattedFunding:  domain.FormatCurrency(p.CurrentFunding, p.CurrencyCode()),
	}
}

func NewProjectResponses(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

// Lifecycle is the JSON form of a domain.State.
type Lifecycle struct {
	Status     domain.ReviewStatus `json:"status"`
	ReviewedBy *uuid.UUID          `json:"reviewed_by,omitempty"`
	At         *time.Time          `json:"at,omitempty"`
	Reason     string              `json:"reason,omitempty"`
}

func NewLifecycle(state domain.State) Lifecycle {
	l := Lifecycle{Status: state.Status()}
	switch s := state.(type) {
	case domain.Approved:
		l.ReviewedBy, l.At = &s.Reviewer, &s.At
	case domain.Rejected:
		l.ReviewedBy, l.At, l.Reason = &s.Reviewer, &s.At, s.Reason
	case domain.Withdrawn:
		l.At = &s.At
	}
	return l
}

// InvestmentResponse is an investment with its typed lifecycle state.
type InvestmentResponse struct {
	domain.InvestmentDetail
	Lifecycle Lifecycle `json:"lifecycle"`
}

func NewInvestmentResponses(list []domain.InvestmentDetail) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, InvestmentResponse{InvestmentDetail: d, Lifecycle: NewLifecycle(d.State())})
	}
	return out
}
