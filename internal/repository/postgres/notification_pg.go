// internal/repository/postgres/notification_pg.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// NotificationRepository implements repository.NotificationRepository for PostgreSQL.
type NotificationRepository struct{}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository() repository.NotificationRepository {
	return &NotificationRepository{}
}

// notificationBatchSize bounds the rows per INSERT. Each row binds 8
// parameters and Postgres allows at most 65535 per statement.
var notificationBatchSize = 1000

// CreateNotifications bulk-inserts notifications, one statement per batch.
func (r *NotificationRepository) CreateNotifications(ctx context.Context, q repository.DBExecutor, notifications []domain.Notification) error {
	for start := 0; start < len(notifications); start += notificationBatchSize {
		end := min(start+notificationBatchSize, len(notifications))
		if err := insertNotifications(ctx, q, notifications[start:end]); err != nil {
			return fmt.Errorf("failed to create notifications %d-%d of %d: %w", start+1, end, len(notifications), err)
		}
	}
	return nil
}

func insertNotifications(ctx context.Context, q repository.DBExecutor, batch []domain.Notification) error {
	const cols = 8
	values := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*cols)
	for i, n := range batch {
		base := i * cols
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args, n.ID, n.UserID, n.Type, n.Title, n.Message, n.Link, n.Read, n.CreatedAt)
	}
	query := `INSERT INTO notifications (id, user_id, type, title, message, link, read, created_at) VALUES ` +
		strings.Join(values, ", ")
	_, err := q.ExecContext(ctx, query, args...)
	return err
}

// ListNotificationsByUserID retrieves a user's notifications, newest first.
func (r *NotificationRepository) ListNotificationsByUserID(ctx context.Context, q repository.DBExecutor, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `SELECT id, user_id, type, title, message, link, read, created_at
              FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	if err := q.SelectContext(ctx, &notifications, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

// MarkNotificationRead marks one of the user's notifications as read.
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return expectOneRow(result, "notification", id)
}
