// internal/domain/actor.go
package domain

import "github.com/google/uuid"

// Actor identifies who is performing an operation. It is resolved once per
// request and passed explicitly to every service call.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Admin  bool      `json:"admin"`
}

// Authenticated reports whether the actor carries a user id.
func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil
}
