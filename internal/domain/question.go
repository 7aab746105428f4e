// internal/domain/question.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/util"
)

// Question is a user's question about a project. It only becomes public
// after an admin approves it.
type Question struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	ProjectID      uuid.UUID    `db:"project_id" json:"project_id"`
	UserID         uuid.UUID    `db:"user_id" json:"user_id"`
	Question       string       `db:"question" json:"question"`
	Status         ReviewStatus `db:"status" json:"status"`
	ReviewedBy     *uuid.UUID   `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time   `db:"reviewed_at" json:"reviewed_at,omitempty"`
	AdminReply     *string      `db:"admin_reply" json:"admin_reply,omitempty"`
	AdminRepliedAt *time.Time   `db:"admin_replied_at" json:"admin_replied_at,omitempty"`
	Answer         *string      `db:"answer" json:"answer,omitempty"`
	AnsweredBy     *uuid.UUID   `db:"answered_by" json:"answered_by,omitempty"`
	AnsweredAt     *time.Time   `db:"answered_at" json:"answered_at,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

// NewQuestion creates a pending question. Blank text is rejected.
func NewQuestion(userID, projectID uuid.UUID, text string) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is required", util.ErrInvalidInput)
	}
	return &Question{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Question:  text,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (q *Question) State() State {
	return stateFromRow(q.Status, q.ReviewedBy, q.ReviewedAt, nil)
}

func (q Question) SubmittedAt() time.Time {
	return q.CreatedAt
}

// QuestionDetail joins a question with its author and project title.
type QuestionDetail struct {
	Question
	AuthorEmail  string `db:"author_email" json:"author_email"`
	AuthorName   string `db:"author_name" json:"author_name"`
	ProjectTitle string `db:"project_title" json:"project_title"`
}
