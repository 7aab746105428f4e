// internal/repository/notification_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// NotificationRepository is the in-app notification sink.
type NotificationRepository interface {
	// CreateNotifications inserts all notifications in one statement.
	CreateNotifications(ctx context.Context, q DBExecutor, notifications []domain.Notification) error
	ListNotificationsByUserID(ctx context.Context, q DBExecutor, userID uuid.UUID, limit int) ([]domain.Notification, error)
	// MarkNotificationRead flags a notification owned by userID as read.
	MarkNotificationRead(ctx context.Context, q DBExecutor, userID, id uuid.UUID) error
}
