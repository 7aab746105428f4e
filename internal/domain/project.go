// internal/domain/project.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmvora/internal/util"
)

// DefaultEmergencyBufferPercentage is the share of raised funds held back
// when a project does not set its own.
var DefaultEmergencyBufferPercentage = decimal.NewFromInt(10)

// ProjectCategory classifies a project.
type ProjectCategory string

const (
	CategoryCrops        ProjectCategory = "crops"
	CategoryLivestock    ProjectCategory = "livestock"
	CategoryAquaculture  ProjectCategory = "aquaculture"
	CategoryPoultry      ProjectCategory = "poultry"
	CategoryHorticulture ProjectCategory = "horticulture"
)

func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryCrops, CategoryLivestock, CategoryAquaculture, CategoryPoultry, CategoryHorticulture:
		return true
	}
	return false
}

// RiskLevel is the admin-assessed risk of a project.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ProjectStatus drives whether a project accepts new commitments.
type ProjectStatus string

const (
	ProjectUpcoming  ProjectStatus = "upcoming"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectUpcoming, ProjectActive, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

// Project is one agricultural funding opportunity.
type Project struct {
	ID                        uuid.UUID       `db:"id" json:"id"`
	Title                     string          `db:"title" json:"title"`
	Description               string          `db:"description" json:"description"`
	Location                  string          `db:"location" json:"location"`
	Category                  ProjectCategory `db:"category" json:"category"`
	RequiredCapital           decimal.Decimal `db:"required_capital" json:"required_capital"`
	CurrentFunding            decimal.Decimal `db:"current_funding" json:"current_funding"` // maintained by approve_investment
	ExpectedROI               decimal.Decimal `db:"expected_roi" json:"expected_roi"`
	DurationMonths            int             `db:"duration_months" json:"duration_months"`
	StartDate                 time.Time       `db:"start_date" json:"start_date"`
	ExpectedHarvestDate       time.Time       `db:"expected_harvest_date" json:"expected_harvest_date"`
	RiskLevel                 RiskLevel       `db:"risk_level" json:"risk_level"`
	Status                    ProjectStatus   `db:"status" json:"status"`
	Currency                  string          `db:"currency" json:"currency"`
	EmergencyBufferPercentage decimal.Decimal `db:"emergency_buffer_percentage" json:"emergency_buffer_percentage"`
	EmergencyBufferAmount     decimal.Decimal `db:"emergency_buffer_amount" json:"emergency_buffer_amount"`
	OwnerName                 string          `db:"owner_name" json:"owner_name"`
	OwnerBio                  *string         `db:"owner_bio" json:"owner_bio,omitempty"`
	CreatedBy                 *uuid.UUID      `db:"created_by" json:"created_by,omitempty"`
	CreatedAt                 time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time       `db:"updated_at" json:"updated_at"`
}

// FundingPercentage returns current funding as a percentage of the required
// capital.
func (p *Project) FundingPercentage() decimal.Decimal {
	if !p.RequiredCapital.IsPositive() {
		return decimal.Zero
	}
	return p.CurrentFunding.Div(p.RequiredCapital).Mul(hundred)
}

// FullyFunded reports whether funding has reached the required capital.
func (p *Project) FullyFunded() bool {
	return p.CurrentFunding.GreaterThanOrEqual(p.RequiredCapital)
}

// Ended reports whether the expected harvest date has passed.
func (p *Project) Ended(now time.Time) bool {
	return !p.ExpectedHarvestDate.IsZero() && now.After(p.ExpectedHarvestDate)
}

// CurrencyCode returns the project currency, defaulting to NGN.
func (p *Project) CurrencyCode() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// Admission is how a project receives a new commitment.
type Admission string

const (
	// AdmissionInvestment is a binding commitment awaiting approval.
	AdmissionInvestment Admission = "investment"
	// AdmissionInterest is a non-binding expression of interest in an
	// upcoming project. It uses the same record shape and statuses.
	AdmissionInterest Admission = "interest"
)

// Admit decides whether the project accepts a commitment at now. This is an
// advisory check; the database policies enforce the final word.
func (p *Project) Admit(now time.Time) (Admission, error) {
	switch p.Status {
	case ProjectUpcoming:
		return AdmissionInterest, nil
	case ProjectActive:
		if p.FullyFunded() {
			return "", fmt.Errorf("%w: project is fully funded", util.ErrProjectClosed)
		}
		if p.Ended(now) {
			return "", fmt.Errorf("%w: project has ended", util.ErrProjectClosed)
		}
		return AdmissionInvestment, nil
	default:
		return "", fmt.Errorf("%w: project is %s", util.ErrProjectClosed, p.Status)
	}
}

// Normalize fills the defaults an admin may leave out.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.RiskLevel == "" {
		p.RiskLevel = RiskMedium
	}
	if p.Status == "" {
		p.Status = ProjectUpcoming
	}
	if p.EmergencyBufferPercentage.IsZero() {
		p.EmergencyBufferPercentage = DefaultEmergencyBufferPercentage
	}
}

// Validate checks the fields an admin controls.
func (p *Project) Validate() error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title is required", util.ErrInvalidInput)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", util.ErrInvalidInput, p.Category)
	case !p.RiskLevel.Valid():
		return fmt.Errorf("%w: unknown risk level %q", util.ErrInvalidInput, p.RiskLevel)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", util.ErrInvalidInput, p.Status)
	case !p.RequiredCapital.IsPositive():
		return fmt.Errorf("%w: required capital must be positive", util.ErrInvalidInput)
	case p.ExpectedROI.IsNegative():
		return fmt.Errorf("%w: expected ROI cannot be negative", util.ErrInvalidInput)
	case p.DurationMonths <= 0:
		return fmt.Errorf("%w: duration must be at least one month", util.ErrInvalidInput)
	case p.EmergencyBufferPercentage.IsNegative() || p.EmergencyBufferPercentage.GreaterThan(hundred):
		return fmt.Errorf("%w: emergency buffer must be between 0 and 100", util.ErrInvalidInput)
	case !p.StartDate.IsZero() && !p.ExpectedHarvestDate.IsZero() && p.ExpectedHarvestDate.Before(p.StartDate):
		return fmt.Errorf("%w: harvest date precedes start date", util.ErrInvalidInput)
	}
	if err := ValidateCurrency(p.Currency); err != nil {
		return fmt.Errorf("%w: %v", util.ErrInvalidInput, err)
	}
	return nil
}
