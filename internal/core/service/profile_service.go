package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

// ProfileService covers the authenticated user's own account. A voided
// account is invisible to FindByID, so a principal whose account was voided
// gets ErrUserNotFound here even though their token still verifies.
type ProfileService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update applies only the fields present in input.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.Name); v != "" {
		user.Name = v
	}
	if v := strings.ToLower(strings.TrimSpace(input.Email)); v != "" {
		user.Email = v
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Skills != nil {
		user.Skills = input.Skills
	}
	if input.GithubUsername != "" {
		user.GithubUsername = input.GithubUsername
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete voids the target account. Authorization is decided before the
// store write: the actor must be the target itself or an admin.
func (s *ProfileService) Delete(ctx context.Context, actorID, targetID, reason string) error {
	if reason == "" {
		return domain.ErrBadRequest
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	principal := domain.Principal{ID: actor.ID, Role: actor.Role}
	if err := domain.Authorize(principal, target.ID, domain.ActionVoid); err != nil {
		return err
	}

	if err := s.users.Void(ctx, target.ID, reason, actor.ID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", target.ID).Str("voided_by", actor.ID).Msg("user voided")
	return nil
}
