// internal/domain/notification.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType labels what an in-app notice is about.
type NotificationType string

const (
	NotificationInvestmentRejected NotificationType = "investment_rejected"
	NotificationProjectUpdate      NotificationType = "project_update"
	NotificationQuestionApproved   NotificationType = "question_approved"
	NotificationQuestionRejected   NotificationType = "question_rejected"
)

// Notification is an in-app notice delivered to one user.
type Notification struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	UserID    uuid.UUID        `db:"user_id" json:"user_id"`
	Type      NotificationType `db:"type" json:"type"`
	Title     string           `db:"title" json:"title"`
	Message   string           `db:"message" json:"message"`
	Link      string           `db:"link" json:"link"`
	Read      bool             `db:"read" json:"read"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

func newNotification(userID uuid.UUID, t NotificationType, title, message, link string) Notification {
	return Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}
}

// InvestmentRejectedNotice tells an investor why their request was declined.
func InvestmentRejectedNotice(investorID uuid.UUID, reason string) Notification {
	return newNotification(investorID, NotificationInvestmentRejected,
		"Investment Request Declined",
		fmt.Sprintf("Your investment request was not approved. Reason: %s. You can submit a new investment request.", reason),
		"/dashboard")
}

// ProjectUpdateNotice announces a weekly update to one investor.
func ProjectUpdateNotice(investorID uuid.UUID, u *WeeklyUpdate) Notification {
	return newNotification(investorID, NotificationProjectUpdate,
		"New Project Update",
		fmt.Sprintf("Week %d: %s", u.WeekNumber, u.Title),
		"/project/"+u.ProjectID.String())
}

// QuestionApprovedNotice tells the author their question is public.
func QuestionApprovedNotice(q *Question, withReply bool) Notification {
	msg := "Your question has been approved and is now visible"
	if withReply {
		msg = "Your question has been approved and answered by admin"
	}
	return newNotification(q.UserID, NotificationQuestionApproved, "Question Approved", msg,
		"/project/"+q.ProjectID.String())
}

// QuestionRejectedNotice carries the admin's reason to the author.
func QuestionRejectedNotice(q *Question, reason string) Notification {
	return newNotification(q.UserID, NotificationQuestionRejected, "Question Not Approved",
		"Your question was not approved. Reason: "+reason, "/dashboard")
}
