// internal/repository/favorite_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"farmvora/internal/domain"
)

// FavoriteRepository defines the interface for followed projects.
type FavoriteRepository interface {
	// AddFavorite is a no-op when the project is already a favorite.
	AddFavorite(ctx context.Context, q DBExecutor, favorite *domain.Favorite) error
	// RemoveFavorite reports whether a favorite was removed.
	RemoveFavorite(ctx context.Context, q DBExecutor, userID, projectID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, q DBExecutor, userID, projectID uuid.UUID) (bool, error)
	// ListFavoriteProjects returns the user's favorite projects, most
	// recently added first.
	ListFavoriteProjects(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]domain.Project, error)
}
