// internal/api/handler/notification.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/service"
)

// NotificationHandler serves the caller's in-app inbox.
type NotificationHandler struct {
	responder
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{responder: responder{logger: logger}, service: svc}
}

// List returns the newest notifications first.
// GET /notifications?limit=20
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = service.DefaultNotificationLimit // Default limit
	}
	list, err := h.service.List(r.Context(), auth.ActorFrom(r.Context()), limit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// POST /notifications/{notificationID}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "notificationID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.service.MarkRead(r.Context(), auth.ActorFrom(r.Context()), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
