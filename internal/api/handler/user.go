// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
)

// UserHandler serves admin user management.
type UserHandler struct {
	responder
	service service.ProfileService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.ProfileService, logger *slog.Logger) *UserHandler {
	return &UserHandler{responder: responder{logger: logger}, service: svc}
}

// List returns user profiles, optionally only active or suspended ones.
// GET /admin/users?status=all|active|suspended
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	status, err := domain.ParseUserStatus(r.URL.Query().Get("status"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	list, err := h.service.ListUsers(r.Context(), auth.ActorFrom(r.Context()), status)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// PUT /admin/users/{userID}
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var edit domain.ProfileEdit
	if err := decode(r, &edit); err != nil {
		h.respondWithError(w, err)
		return
	}
	profile, err := h.service.EditUser(r.Context(), auth.ActorFrom(r.Context()), id, edit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "User updated successfully", Data: profile})
}

// SuspendRequest carries the reason shown to admins on the user list.
type SuspendRequest struct {
	Reason string `json:"reason"`
}

// POST /admin/users/{userID}/suspend
func (h *UserHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req SuspendRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.service.Suspend(r.Context(), auth.ActorFrom(r.Context()), id, req.Reason); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "User suspended successfully"})
}

// POST /admin/users/{userID}/unsuspend
func (h *UserHandler) Unsuspend(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.service.Unsuspend(r.Context(), auth.ActorFrom(r.Context()), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "User unsuspended successfully"})
}

// Delete removes an investor account and its data.
// DELETE /admin/users/{userID}?confirm=DELETE
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	confirmation := strings.TrimSpace(r.URL.Query().Get("confirm"))
	if err := h.service.DeleteUser(r.Context(), auth.ActorFrom(r.Context()), id, confirmation); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "User deleted successfully"})
}
