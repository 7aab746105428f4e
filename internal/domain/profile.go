// internal/domain/profile.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmvora/internal/util"
)

type Role string

const (
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleInvestor || r == RoleAdmin
}

// Profile is a user's account record. The id is the identity provider's
// user id.
type Profile struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	FullName        string    `db:"full_name" json:"full_name"`
	Role            Role      `db:"role" json:"role"`
	Country         *string   `db:"country" json:"country"`
	IsSuspended     bool      `db:"is_suspended" json:"is_suspended"`
	SuspendedReason *string   `db:"suspended_reason" json:"suspended_reason"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileEdit holds the fields a user may change on their own profile.
// Role is only honoured on admin edits.
type ProfileEdit struct {
	FullName string  `json:"full_name"`
	Country  *string `json:"country"`
	Role     Role    `json:"role,omitempty"`
}

// Normalize trims the edit and turns a blank country into none.
func (e *ProfileEdit) Normalize() {
	e.FullName = strings.TrimSpace(e.FullName)
	if e.Country != nil {
		c := strings.TrimSpace(*e.Country)
		if c == "" {
			e.Country = nil
		} else {
			e.Country = &c
		}
	}
}

// Validate requires a name. withRole also requires a known role.
func (e ProfileEdit) Validate(withRole bool) error {
	if e.FullName == "" {
		return fmt.Errorf("%w: full name is required", util.ErrInvalidInput)
	}
	if withRole && !e.Role.Valid() {
		return fmt.Errorf("%w: role must be investor or admin", util.ErrInvalidInput)
	}
	return nil
}

// UserStatus narrows the admin user listing.
type UserStatus string

const (
	UsersAll       UserStatus = "all"
	UsersActive    UserStatus = "active"
	UsersSuspended UserStatus = "suspended"
)

// ParseUserStatus maps the listing filter, defaulting to all.
func ParseUserStatus(raw string) (UserStatus, error) {
	switch s := UserStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case "", UsersAll:
		return UsersAll, nil
	case UsersActive, UsersSuspended:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown user status %q", util.ErrInvalidInput, raw)
	}
}

// Favorite marks a project the user is following.
type Favorite struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ProjectID uuid.UUID `db:"project_id" json:"project_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func NewFavorite(userID, projectID uuid.UUID) *Favorite {
	return &Favorite{ID: uuid.New(), UserID: userID, ProjectID: projectID, CreatedAt: time.Now().UTC()}
}
