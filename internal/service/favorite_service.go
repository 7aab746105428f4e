// internal/service/favorite_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// FavoriteService defines the user's followed projects.
type FavoriteService interface {
	// Toggle adds the project when it is not a favorite and removes it
	// otherwise. It reports whether the project is a favorite afterwards.
	Toggle(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Project, error)
}

type favoriteService struct {
	store        Store
	projectRepo  repository.ProjectRepository
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new instance of FavoriteService.
func NewFavoriteService(store Store, projectRepo repository.ProjectRepository, favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{store: store, projectRepo: projectRepo, favoriteRepo: favoriteRepo}
}

func (s *favoriteService) Toggle(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error) {
	if err := requireActor(actor); err != nil {
		return false, err
	}
	var favorite bool
	err := s.store.inTx(ctx, "toggle favorite", func(q repository.DBExecutor) error {
		removed, err := s.favoriteRepo.RemoveFavorite(ctx, q, actor.UserID, projectID)
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		if removed {
			return nil
		}
		if _, err := s.projectRepo.GetProjectByID(ctx, q, projectID); err != nil {
			return fmt.Errorf("toggle favorite: failed to get project %s: %w", projectID, err)
		}
		if err := s.favoriteRepo.AddFavorite(ctx, q, domain.NewFavorite(actor.UserID, projectID)); err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		favorite = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorite, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, actor domain.Actor, projectID uuid.UUID) (bool, error) {
	if err := requireActor(actor); err != nil {
		return false, err
	}
	favorite, err := s.favoriteRepo.IsFavorite(ctx, s.store.Executor, actor.UserID, projectID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return favorite, nil
}

func (s *favoriteService) List(ctx context.Context, actor domain.Actor) ([]domain.Project, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := s.favoriteRepo.ListFavoriteProjects(ctx, s.store.Executor, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}
