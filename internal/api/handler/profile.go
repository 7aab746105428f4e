// internal/api/handler/profile.go
package handler

import (
	"log/slog"
	"net/http"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/service"
)

// ProfileHandler serves the caller's own profile and favorite projects.
type ProfileHandler struct {
	responder
	profiles  service.ProfileService
	favorites service.FavoriteService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles service.ProfileService, favorites service.FavoriteService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{responder: responder{logger: logger}, profiles: profiles, favorites: favorites}
}

// GET /profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetMine(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, profile)
}

// Update changes the caller's name and country.
// PUT /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var edit domain.ProfileEdit
	if err := decode(r, &edit); err != nil {
		h.respondWithError(w, err)
		return
	}
	profile, err := h.profiles.UpdateMine(r.Context(), auth.ActorFrom(r.Context()), edit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Profile updated successfully!", Data: profile})
}

// FavoriteResponse reports whether a project is among the caller's favorites.
type FavoriteResponse struct {
	ProjectID string `json:"project_id"`
	Favorite  bool   `json:"favorite"`
}

// GET /favorites
func (h *ProfileHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.favorites.List(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(types.NewProjectResponses(list)))
}

// GET /projects/{projectID}/favorite
func (h *ProfileHandler) FavoriteStatus(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	favorite, err := h.favorites.IsFavorite(r.Context(), auth.ActorFrom(r.Context()), projectID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, FavoriteResponse{ProjectID: projectID.String(), Favorite: favorite})
}

// ToggleFavorite adds or removes a project from the caller's favorites.
// POST /projects/{projectID}/favorite
func (h *ProfileHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	favorite, err := h.favorites.Toggle(r.Context(), auth.ActorFrom(r.Context()), projectID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, FavoriteResponse{ProjectID: projectID.String(), Favorite: favorite})
}
