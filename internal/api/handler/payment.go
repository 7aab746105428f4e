// internal/api/handler/payment.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/payment"
	"farmvora/internal/util"
)

// PaymentHandler hands out Paystack widget configurations.
type PaymentHandler struct {
	responder
	publicKey string
}

// NewPaymentHandler creates a new PaymentHandler. An empty key falls back
// to the test placeholder.
func NewPaymentHandler(publicKey string, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{responder: responder{logger: logger}, publicKey: publicKey}
}

// CheckoutRequest represents the request body for a checkout. Amount is in
// major units.
type CheckoutRequest struct {
	Amount   json.RawMessage `json:"amount"`
	Currency string          `json:"currency"`
	Metadata map[string]any  `json:"metadata"`
}

// Checkout builds the widget configuration for the caller.
// POST /payments/checkout
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())
	if !actor.Authenticated() {
		h.respondWithError(w, util.ErrUnauthenticated)
		return
	}
	var req CheckoutRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	amount, err := domain.ParseAmount(numberText(req.Amount))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	checkout, err := payment.NewCheckout(h.publicKey, actor.Email, amount, req.Currency, req.Metadata)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, checkout)
}
