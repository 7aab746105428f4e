// internal/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// DefaultNotificationLimit caps an inbox listing.
const DefaultNotificationLimit = 50

// NotificationService defines the user's notification inbox.
type NotificationService interface {
	List(ctx context.Context, actor domain.Actor, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type notificationService struct {
	store Store
	repo  repository.NotificationRepository
}

func NewNotificationService(store Store, repo repository.NotificationRepository) NotificationService {
	return &notificationService{store: store, repo: repo}
}

func (s *notificationService) List(ctx context.Context, actor domain.Actor, limit int) ([]domain.Notification, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}
	list, err := s.repo.ListNotificationsByUserID(ctx, s.store.Executor, actor.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (s *notificationService) MarkRead(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.repo.MarkNotificationRead(ctx, s.store.Executor, actor.UserID, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
