// internal/service/question_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// QuestionService defines the project Q&A flow. Questions stay private
// until an admin approves them.
type QuestionService interface {
	Ask(ctx context.Context, actor domain.Actor, projectID uuid.UUID, text string) (*domain.Question, error)
	ListApproved(ctx context.Context, projectID uuid.UUID) ([]domain.QuestionDetail, error)
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.QuestionDetail, error)
	Approve(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reply *string) error
	Reject(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reason string) error
	Answer(ctx context.Context, actor domain.Actor, questionID uuid.UUID, answer string) error
}

type questionService struct {
	store        Store
	projectRepo  repository.ProjectRepository
	questionRepo repository.QuestionRepository
	notifier     *Notifier
	logger       *slog.Logger
	now          func() time.Time
}

// NewQuestionService creates a new instance of QuestionService.
func NewQuestionService(
	store Store,
	projectRepo repository.ProjectRepository,
	questionRepo repository.QuestionRepository,
	notifier *Notifier,
	logger *slog.Logger,
) QuestionService {
	return &questionService{
		store:        store,
		projectRepo:  projectRepo,
		questionRepo: questionRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *questionService) Ask(ctx context.Context, actor domain.Actor, projectID uuid.UUID, text string) (*domain.Question, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	question, err := domain.NewQuestion(actor.UserID, projectID, text)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetProjectByID(ctx, s.store.Executor, projectID); err != nil {
		return nil, fmt.Errorf("ask question: failed to get project %s: %w", projectID, err)
	}
	if err := s.questionRepo.CreateQuestion(ctx, s.store.Executor, question); err != nil {
		return nil, fmt.Errorf("ask question: %w", err)
	}
	return question, nil
}

// ListApproved returns the public questions of a project.
func (s *questionService) ListApproved(ctx context.Context, projectID uuid.UUID) ([]domain.QuestionDetail, error) {
	status := domain.StatusApproved
	list, err := s.questionRepo.ListQuestions(ctx, s.store.Executor, repository.QuestionFilter{Status: &status, ProjectID: &projectID})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return list, nil
}

func (s *questionService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.QuestionDetail, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	status := domain.StatusPending
	list, err := s.questionRepo.ListQuestions(ctx, s.store.Executor, repository.QuestionFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("list pending questions: %w", err)
	}
	return newestFirst(list), nil
}

// Approve publishes a question. A reply is optional, but when one is given
// it must not be blank.
func (s *questionService) Approve(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reply *string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if reply != nil {
		trimmed := strings.TrimSpace(*reply)
		if trimmed == "" {
			return util.ErrReplyRequired
		}
		reply = &trimmed
	}

	question, err := s.pendingQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("approve question: %w", err)
	}
	err = s.questionRepo.ReviewQuestion(ctx, s.store.Executor, questionID, repository.QuestionReview{
		Status:     domain.StatusApproved,
		ReviewerID: actor.UserID,
		ReviewedAt: s.now().UTC(),
		Reply:      reply,
	})
	if err != nil {
		return fmt.Errorf("approve question: %w", err)
	}

	s.notifier.Notify(ctx, domain.QuestionApprovedNotice(question, reply != nil))
	return nil
}

// Reject keeps the question as rejected. The author is only notified when
// a reason is given.
func (s *questionService) Reject(ctx context.Context, actor domain.Actor, questionID uuid.UUID, reason string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	question, err := s.pendingQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("reject question: %w", err)
	}
	err = s.questionRepo.ReviewQuestion(ctx, s.store.Executor, questionID, repository.QuestionReview{
		Status:     domain.StatusRejected,
		ReviewerID: actor.UserID,
		ReviewedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("reject question: %w", err)
	}

	if reason = strings.TrimSpace(reason); reason != "" {
		s.notifier.Notify(ctx, domain.QuestionRejectedNotice(question, reason))
	}
	return nil
}

func (s *questionService) Answer(ctx context.Context, actor domain.Actor, questionID uuid.UUID, answer string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return util.ErrReplyRequired
	}
	if err := s.questionRepo.AnswerQuestion(ctx, s.store.Executor, questionID, actor.UserID, answer, s.now().UTC()); err != nil {
		return fmt.Errorf("answer question: %w", err)
	}
	return nil
}

func (s *questionService) pendingQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, s.store.Executor, id)
	if err != nil {
		return nil, err
	}
	if question.Status != domain.StatusPending {
		return nil, util.ErrAlreadyReviewed
	}
	return question, nil
}
