// internal/api/handler/admin.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
)

// AdminHandler serves the investment approval queue.
type AdminHandler struct {
	responder
	service service.ApprovalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc service.ApprovalService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{responder: responder{logger: logger}, service: svc}
}

// GET /admin/investments/pending
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPending(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// GET /admin/investments
func (h *AdminHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// LedgerResponse is the platform-wide per-currency summary.
type LedgerResponse struct {
	Ledger        domain.CurrencyLedger `json:"ledger"`
	MultiCurrency bool                  `json:"multi_currency"`
}

// GET /admin/investments/ledger
func (h *AdminHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.service.PlatformLedger(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, LedgerResponse{Ledger: ledger, MultiCurrency: ledger.MultiCurrency()})
}

// ApproveResponse carries the credit and the refreshed queue.
type ApproveResponse struct {
	Message string                    `json:"message"`
	Credit  *domain.Credit            `json:"credit"`
	Pending []domain.InvestmentDetail `json:"pending"`
}

// Approve credits the investor and returns the remaining queue.
// POST /admin/investments/{investmentID}/approve
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "investmentID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	actor := auth.ActorFrom(r.Context())

	credit, err := h.service.Approve(r.Context(), actor, id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	pending, err := h.service.ListPending(r.Context(), actor)
	if err != nil {
		// Approval succeeded; the queue is sent empty.
		h.logger.Error("Failed to refresh pending investments", "error", err)
	}
	if pending == nil {
		pending = []domain.InvestmentDetail{}
	}

	h.respondWithJSON(w, http.StatusOK, ApproveResponse{
		Message: fmt.Sprintf("Investment approved! Balance credited: %s %s", credit.Currency, credit.TotalReturn.StringFixed(2)),
		Credit:  credit,
		Pending: pending,
	})
}

// RejectRequest represents the request body for a rejection.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// Reject removes a pending investment and tells the investor why.
// POST /admin/investments/{investmentID}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "investmentID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req RejectRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.service.Reject(r.Context(), auth.ActorFrom(r.Context()), id, req.Reason); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Investment request rejected and removed"})
}

// Delete removes any investment. The typed confirmation comes from the
// confirm query parameter.
// DELETE /admin/investments/{investmentID}?confirm=DELETE
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "investmentID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	confirmation := strings.TrimSpace(r.URL.Query().Get("confirm"))
	if err := h.service.EmergencyDelete(r.Context(), auth.ActorFrom(r.Context()), id, confirmation); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Investment deleted successfully"})
}
