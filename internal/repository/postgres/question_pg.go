// internal/repository/postgres/question_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

const questionColumns = `q.id, q.project_id, q.user_id, q.question, q.status, q.reviewed_by, q.reviewed_at,
       q.admin_reply, q.admin_replied_at, q.answer, q.answered_by, q.answered_at, q.created_at`

// QuestionRepository implements repository.QuestionRepository for PostgreSQL.
type QuestionRepository struct{}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository() repository.QuestionRepository {
	return &QuestionRepository{}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, q repository.DBExecutor, question *domain.Question) error {
	query := `INSERT INTO project_questions (id, project_id, user_id, question, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query, question.ID, question.ProjectID, question.UserID, question.Question, question.Status, question.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) GetQuestionByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Question, error) {
	var question domain.Question
	query := `SELECT ` + questionColumns + ` FROM project_questions q WHERE q.id = $1`
	if err := q.GetContext(ctx, &question, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return &question, nil
}

func (r *QuestionRepository) ListQuestions(ctx context.Context, q repository.DBExecutor, filter repository.QuestionFilter) ([]domain.QuestionDetail, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("q.status = $%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conds = append(conds, fmt.Sprintf("q.project_id = $%d", len(args)))
	}
	query := `SELECT ` + questionColumns + `,
       COALESCE(pr.email, '') AS author_email, COALESCE(pr.full_name, '') AS author_name, p.title AS project_title
  FROM project_questions q
  JOIN projects p ON p.id = q.project_id
  LEFT JOIN profiles pr ON pr.id = q.user_id`
	if len(conds) > 0 {
		query += "\n WHERE " + strings.Join(conds, " AND ")
	}
	query += "\n ORDER BY q.created_at DESC"

	questions := []domain.QuestionDetail{}
	if err := q.SelectContext(ctx, &questions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) ReviewQuestion(ctx context.Context, q repository.DBExecutor, id uuid.UUID, review repository.QuestionReview) error {
	var repliedAt *time.Time
	if review.Reply != nil {
		repliedAt = &review.ReviewedAt
	}
	query := `UPDATE project_questions
                 SET status = $1, reviewed_by = $2, reviewed_at = $3, admin_reply = $4, admin_replied_at = $5
               WHERE id = $6 AND status = 'pending'`
	result, err := q.ExecContext(ctx, query, review.Status, review.ReviewerID, review.ReviewedAt, review.Reply, repliedAt, id)
	if err != nil {
		return fmt.Errorf("failed to review question %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after reviewing question %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrAlreadyReviewed
	}
	return nil
}

func (r *QuestionRepository) AnswerQuestion(ctx context.Context, q repository.DBExecutor, id, answeredBy uuid.UUID, answer string, at time.Time) error {
	query := `UPDATE project_questions SET answer = $1, answered_by = $2, answered_at = $3 WHERE id = $4`
	result, err := q.ExecContext(ctx, query, answer, answeredBy, at, id)
	if err != nil {
		return fmt.Errorf("failed to answer question %s: %w", id, err)
	}
	return expectOneRow(result, "question", id)
}
