// internal/api/handler/project.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
	"farmvora/internal/util"
)

// dateLayout is the calendar date format project dates are exchanged in.
const dateLayout = "2006-01-02"

// ProjectHandler serves project browsing, administration and weekly updates.
type ProjectHandler struct {
	responder
	projects service.ProjectService
	updates  service.UpdateService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects service.ProjectService, updates service.UpdateService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{responder: responder{logger: logger}, projects: projects, updates: updates}
}

// Currencies lists the currencies a project may be priced in.
// GET /currencies
func (h *ProjectHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(domain.SupportedCurrencies()))
}

// ProjectRequest represents the editable fields of a project.
type ProjectRequest struct {
	Title                     string                 `json:"title"`
	Description               string                 `json:"description"`
	Location                  string                 `json:"location"`
	Category                  domain.ProjectCategory `json:"category"`
	RequiredCapital           decimal.Decimal        `json:"required_capital"`
	ExpectedROI               decimal.Decimal        `json:"expected_roi"`
	DurationMonths            int                    `json:"duration_months"`
	StartDate                 string                 `json:"start_date"`
	ExpectedHarvestDate       string                 `json:"expected_harvest_date"`
	RiskLevel                 domain.RiskLevel       `json:"risk_level"`
	Status                    domain.ProjectStatus   `json:"status"`
	Currency                  string                 `json:"currency"`
	EmergencyBufferPercentage decimal.Decimal        `json:"emergency_buffer_percentage"`
	OwnerName                 string                 `json:"owner_name"`
	OwnerBio                  *string                `json:"owner_bio"`
}

func (req ProjectRequest) toProject() (*domain.Project, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", util.ErrInvalidInput, err)
	}
	harvest, err := parseDate(req.ExpectedHarvestDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expected_harvest_date: %v", util.ErrInvalidInput, err)
	}
	return &domain.Project{
		Title:                     req.Title,
		Description:               req.Description,
		Location:                  req.Location,
		Category:                  req.Category,
		RequiredCapital:           req.RequiredCapital,
		ExpectedROI:               req.ExpectedROI,
		DurationMonths:            req.DurationMonths,
		StartDate:                 start,
		ExpectedHarvestDate:       harvest,
		RiskLevel:                 req.RiskLevel,
		Status:                    req.Status,
		Currency:                  strings.ToUpper(strings.TrimSpace(req.Currency)),
		EmergencyBufferPercentage: req.EmergencyBufferPercentage,
		OwnerName:                 req.OwnerName,
		OwnerBio:                  req.OwnerBio,
	}, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// List returns projects, optionally filtered by status.
// GET /projects?status=active
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ProjectStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.ProjectStatus(s)
		status = &st
	}
	projects, err := h.projects.List(r.Context(), status)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(types.NewProjectResponses(projects)))
}

// GET /projects/{projectID}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewProjectResponse(*project))
}

// POST /admin/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	input, err := req.toProject()
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	project, err := h.projects.Create(r.Context(), auth.ActorFrom(r.Context()), input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, types.MessageResponse{
		Message: "Project created successfully!",
		Data:    types.NewProjectResponse(*project),
	})
}

// PUT /admin/projects/{projectID}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req ProjectRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	changes, err := req.toProject()
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	project, err := h.projects.Update(r.Context(), auth.ActorFrom(r.Context()), id, changes)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{
		Message: "Project updated successfully!",
		Data:    types.NewProjectResponse(*project),
	})
}

// StatusRequest represents the request body for a status change.
type StatusRequest struct {
	Status domain.ProjectStatus `json:"status"`
}

// PATCH /admin/projects/{projectID}/status
func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req StatusRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.projects.UpdateStatus(r.Context(), auth.ActorFrom(r.Context()), id, req.Status); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Project status updated successfully"})
}

// DELETE /admin/projects/{projectID}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.projects.Delete(r.Context(), auth.ActorFrom(r.Context()), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Project deleted successfully"})
}

// ListUpdates returns a project's weekly updates in week order.
// GET /projects/{projectID}/updates
func (h *ProjectHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	updates, err := h.updates.ListForProject(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(updates))
}

// CreateUpdate posts a weekly update and notifies the project's investors.
// POST /admin/projects/{projectID}/updates
func (h *ProjectHandler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req service.UpdateInput
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	update, err := h.updates.Create(r.Context(), auth.ActorFrom(r.Context()), id, req)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, types.MessageResponse{Message: "Update added successfully!", Data: update})
}
