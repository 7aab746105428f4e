// internal/domain/weekly_update.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/util"
)

// WeeklyUpdate is an admin progress report on a project.
type WeeklyUpdate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	WeekNumber  int       `db:"week_number" json:"week_number"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// NewWeeklyUpdate validates and builds an update for projectID.
func NewWeeklyUpdate(projectID uuid.UUID, week int, title, description string, imageURL *string) (*WeeklyUpdate, error) {
	title = strings.TrimSpace(title)
	switch {
	case week <= 0:
		return nil, fmt.Errorf("%w: week number must be positive", util.ErrInvalidInput)
	case title == "":
		return nil, fmt.Errorf("%w: title is required", util.ErrInvalidInput)
	}
	if imageURL != nil && strings.TrimSpace(*imageURL) == "" {
		imageURL = nil
	}
	return &WeeklyUpdate{
		ID:          uuid.New(),
		ProjectID:   projectID,
		WeekNumber:  week,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
