// internal/service/profile_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
	"farmvora/internal/util"
)

// ProfileService defines the user's own profile and the admin user
// management screen.
type ProfileService interface {
	GetMine(ctx context.Context, actor domain.Actor) (*domain.Profile, error)
	UpdateMine(ctx context.Context, actor domain.Actor, edit domain.ProfileEdit) (*domain.Profile, error)

	ListUsers(ctx context.Context, actor domain.Actor, status domain.UserStatus) ([]domain.Profile, error)
	EditUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, edit domain.ProfileEdit) (*domain.Profile, error)
	Suspend(ctx context.Context, actor domain.Actor, userID uuid.UUID, reason string) error
	Unsuspend(ctx context.Context, actor domain.Actor, userID uuid.UUID) error
	DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, confirmation string) error

	// IsSuspended is the authentication-time check; it takes no actor.
	IsSuspended(ctx context.Context, userID uuid.UUID) (bool, error)
}

type profileService struct {
	store       Store
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(store Store, profileRepo repository.ProfileRepository, logger *slog.Logger) ProfileService {
	return &profileService{store: store, profileRepo: profileRepo, logger: logger}
}

func (s *profileService) GetMine(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetProfileByID(ctx, s.store.Executor, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpdateMine changes the actor's name and country. A role in the edit is
// ignored.
func (s *profileService) UpdateMine(ctx context.Context, actor domain.Actor, edit domain.ProfileEdit) (*domain.Profile, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	edit.Role = ""
	edit.Normalize()
	if err := edit.Validate(false); err != nil {
		return nil, err
	}
	return s.saveProfile(ctx, "update profile", actor.UserID, edit)
}

func (s *profileService) ListUsers(ctx context.Context, actor domain.Actor, status domain.UserStatus) ([]domain.Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	var suspended *bool
	switch status {
	case domain.UsersActive:
		suspended = new(bool)
	case domain.UsersSuspended:
		suspended = new(bool)
		*suspended = true
	}
	list, err := s.profileRepo.ListProfiles(ctx, s.store.Executor, suspended)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// EditUser changes another user's name, country and role. An admin cannot
// drop their own admin role.
func (s *profileService) EditUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, edit domain.ProfileEdit) (*domain.Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	edit.Normalize()
	if err := edit.Validate(true); err != nil {
		return nil, err
	}
	if userID == actor.UserID && edit.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("edit user: cannot remove your own admin role: %w", util.ErrForbidden)
	}
	profile, err := s.saveProfile(ctx, "edit user", userID, edit)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User edited", "user_id", userID, "role", edit.Role, "admin_id", actor.UserID)
	return profile, nil
}

func (s *profileService) saveProfile(ctx context.Context, op string, userID uuid.UUID, edit domain.ProfileEdit) (*domain.Profile, error) {
	var profile *domain.Profile
	err := s.store.inTx(ctx, op, func(q repository.DBExecutor) error {
		if err := s.profileRepo.UpdateProfile(ctx, q, userID, edit); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		var err error
		profile, err = s.profileRepo.GetProfileByID(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("%s: failed to reload profile %s: %w", op, userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Suspend blocks a user from the API until unsuspended. A reason is
// required and admins cannot suspend themselves.
func (s *profileService) Suspend(ctx context.Context, actor domain.Actor, userID uuid.UUID, reason string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return util.ErrReasonRequired
	}
	if userID == actor.UserID {
		return fmt.Errorf("suspend user: cannot suspend yourself: %w", util.ErrForbidden)
	}
	if err := s.profileRepo.SetSuspension(ctx, s.store.Executor, userID, true, &reason); err != nil {
		return fmt.Errorf("suspend user: %w", err)
	}
	s.logger.Info("User suspended", "user_id", userID, "admin_id", actor.UserID)
	return nil
}

func (s *profileService) Unsuspend(ctx context.Context, actor domain.Actor, userID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.profileRepo.SetSuspension(ctx, s.store.Executor, userID, false, nil); err != nil {
		return fmt.Errorf("unsuspend user: %w", err)
	}
	s.logger.Info("User unsuspended", "user_id", userID, "admin_id", actor.UserID)
	return nil
}

// DeleteUser removes an investor and everything they own. Admin accounts
// cannot be deleted here, and the literal confirmation DELETE is required.
func (s *profileService) DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, confirmation string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if strings.TrimSpace(confirmation) != EmergencyDeleteConfirmation {
		return util.ErrConfirmation
	}
	err := s.store.inTx(ctx, "delete user", func(q repository.DBExecutor) error {
		profile, err := s.profileRepo.GetProfileByID(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if profile.Role == domain.RoleAdmin {
			return fmt.Errorf("delete user: admin accounts cannot be deleted: %w", util.ErrForbidden)
		}
		if err := s.profileRepo.DeleteProfile(ctx, q, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Warn("User deleted", "user_id", userID, "admin_id", actor.UserID)
	return nil
}

func (s *profileService) IsSuspended(ctx context.Context, userID uuid.UUID) (bool, error) {
	suspended, err := s.profileRepo.IsSuspended(ctx, s.store.Executor, userID)
	if err != nil {
		return false, fmt.Errorf("check suspension: %w", err)
	}
	return suspended, nil
}
