// internal/repository/question_repo.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// QuestionFilter narrows a question listing. Nil fields are ignored.
type QuestionFilter struct {
	Status    *domain.ReviewStatus
	ProjectID *uuid.UUID
}

// QuestionReview is the outcome an admin records on a question.
type QuestionReview struct {
	Status     domain.ReviewStatus
	ReviewerID uuid.UUID
	ReviewedAt time.Time
	Reply      *string
}

// QuestionRepository defines the interface for project question operations.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, q DBExecutor, question *domain.Question) error
	GetQuestionByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Question, error)
	// ListQuestions returns matching questions with author and project, newest first.
	ListQuestions(ctx context.Context, q DBExecutor, filter QuestionFilter) ([]domain.QuestionDetail, error)
	// ReviewQuestion records a review on a question that is still pending.
	// It returns util.ErrAlreadyReviewed when no pending row matched.
	ReviewQuestion(ctx context.Context, q DBExecutor, id uuid.UUID, review QuestionReview) error
	AnswerQuestion(ctx context.Context, q DBExecutor, id, answeredBy uuid.UUID, answer string, at time.Time) error
}
