// internal/api/handler/investment.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
)

// InvestmentHandler handles the investor-facing investment requests.
type InvestmentHandler struct {
	responder
	service service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(svc service.InvestmentService, logger *slog.Logger) *InvestmentHandler {
	return &InvestmentHandler{responder: responder{logger: logger}, service: svc}
}

// SubmitRequest represents the request body for an investment. Amount may
// be a JSON number or a string.
type SubmitRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// SubmitResponse reports the pending record and how the project took it.
type SubmitResponse struct {
	Message    string             `json:"message"`
	Admission  domain.Admission   `json:"admission"`
	Investment *domain.Investment `json:"investment"`
}

// Submit handles a new investment or expression of interest.
// POST /projects/{projectID}/investments
func (h *InvestmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req SubmitRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	inv, admission, err := h.service.Submit(r.Context(), auth.ActorFrom(r.Context()), projectID, numberText(req.Amount))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	message := "Investment submitted for approval! You will be notified once reviewed."
	if admission == domain.AdmissionInterest {
		message = "Interest registered! You will be notified once it is reviewed."
	}
	h.respondWithJSON(w, http.StatusCreated, SubmitResponse{Message: message, Admission: admission, Investment: inv})
}

// Withdraw cancels one of the caller's pending investments.
// POST /investments/{investmentID}/withdraw
func (h *InvestmentHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "investmentID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	withdrawn, err := h.service.Withdraw(r.Context(), auth.ActorFrom(r.Context()), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{
		Message: "Investment withdrawn successfully",
		Data:    types.NewLifecycle(withdrawn),
	})
}

// ListMine returns every investment of the caller.
// GET /investments/mine
func (h *InvestmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListMine(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(types.NewInvestmentResponses(list)))
}

// ListMineForProject returns the caller's investments in one project.
// GET /projects/{projectID}/investments/mine
func (h *InvestmentHandler) ListMineForProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	list, err := h.service.ListMineForProject(r.Context(), auth.ActorFrom(r.Context()), projectID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(types.NewInvestmentResponses(list)))
}

// Portfolio returns the caller's per-currency totals and balances.
// GET /investments/portfolio
func (h *InvestmentHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.service.Portfolio(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, portfolio)
}
