// internal/repository/postgres/favorite_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// FavoriteRepository implements repository.FavoriteRepository for PostgreSQL.
type FavoriteRepository struct{}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository() repository.FavoriteRepository {
	return &FavoriteRepository{}
}

func (r *FavoriteRepository) AddFavorite(ctx context.Context, q repository.DBExecutor, f *domain.Favorite) error {
	query := `INSERT INTO project_favorites (id, user_id, project_id, created_at)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (user_id, project_id) DO NOTHING`
	if _, err := q.ExecContext(ctx, query, f.ID, f.UserID, f.ProjectID, f.CreatedAt); err != nil {
		return fmt.Errorf("failed to add favorite project %s: %w", f.ProjectID, err)
	}
	return nil
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, q repository.DBExecutor, userID, projectID uuid.UUID) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM project_favorites WHERE user_id = $1 AND project_id = $2`, userID, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite project %s: %w", projectID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after removing favorite %s: %w", projectID, err)
	}
	return rowsAffected > 0, nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, q repository.DBExecutor, userID, projectID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM project_favorites WHERE user_id = $1 AND project_id = $2)`
	if err := q.GetContext(ctx, &exists, query, userID, projectID); err != nil {
		return false, fmt.Errorf("failed to check favorite project %s: %w", projectID, err)
	}
	return exists, nil
}

func (r *FavoriteRepository) ListFavoriteProjects(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.Project, error) {
	projects := []domain.Project{}
	query := `SELECT ` + projectColumns + `
  FROM (SELECT p.*, f.created_at AS favorited_at
          FROM project_favorites f
          JOIN projects p ON p.id = f.project_id
         WHERE f.user_id = $1) fav
 ORDER BY favorited_at DESC`
	if err := q.SelectContext(ctx, &projects, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favorite projects for user %s: %w", userID, err)
	}
	return projects, nil
}
