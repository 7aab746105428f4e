// internal/api/handler/question.go
package handler

import (
	"log/slog"
	"net/http"

	"farmvora/internal/api/types"
	"farmvora/internal/auth"
	"farmvora/internal/service"
)

// QuestionHandler serves project questions and their moderation.
type QuestionHandler struct {
	responder
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(svc service.QuestionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{responder: responder{logger: logger}, service: svc}
}

// AskRequest represents the request body for a new question.
type AskRequest struct {
	Question string `json:"question"`
}

// POST /projects/{projectID}/questions
func (h *QuestionHandler) Ask(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req AskRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	q, err := h.service.Ask(r.Context(), auth.ActorFrom(r.Context()), projectID, req.Question)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, types.MessageResponse{
		Message: "Question submitted for review. It will appear once approved by admin.",
		Data:    q,
	})
}

// ListApproved returns the public questions of a project.
// GET /projects/{projectID}/questions
func (h *QuestionHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	list, err := h.service.ListApproved(r.Context(), projectID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// GET /admin/questions/pending
func (h *QuestionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPending(r.Context(), auth.ActorFrom(r.Context()))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(list))
}

// ApproveQuestionRequest carries an optional admin reply.
type ApproveQuestionRequest struct {
	Reply *string `json:"reply"`
}

// POST /admin/questions/{questionID}/approve
func (h *QuestionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "questionID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req ApproveQuestionRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.respondWithError(w, err)
			return
		}
	}
	if err := h.service.Approve(r.Context(), auth.ActorFrom(r.Context()), id, req.Reply); err != nil {
		h.respondWithError(w, err)
		return
	}
	message := "Question approved!"
	if req.Reply != nil {
		message = "Question approved with reply!"
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: message})
}

// POST /admin/questions/{questionID}/reject
func (h *QuestionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "questionID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req RejectRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.respondWithError(w, err)
			return
		}
	}
	if err := h.service.Reject(r.Context(), auth.ActorFrom(r.Context()), id, req.Reason); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Question rejected"})
}

// AnswerRequest represents the request body for an admin answer.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// POST /admin/questions/{questionID}/answer
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "questionID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req AnswerRequest
	if err := decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	if err := h.service.Answer(r.Context(), auth.ActorFrom(r.Context()), id, req.Answer); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: "Answer submitted successfully!"})
}
