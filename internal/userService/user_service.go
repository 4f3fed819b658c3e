package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sealed-auction/internal/audit"
	"sealed-auction/internal/biddingerrors"
	"sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"
)

// UserService registers and looks up participants
type UserService struct {
	repo  repository.UserStore
	audit audit.Recorder
	now   utils.Clock
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.UserStore, recorder audit.Recorder) *UserService {
	return &UserService{repo: repo, audit: recorder, now: utils.UTCNow}
}

// Register creates a user, or returns the existing one if the email is already registered
func (s *UserService) Register(ctx context.Context, name, email string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return models.User{}, fmt.Errorf("service: %w", biddingerrors.ErrNameRequired)
	}
	if email == "" {
		return models.User{}, fmt.Errorf("service: %w", biddingerrors.ErrEmailRequired)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, biddingerrors.ErrUserNotFound):
		return models.User{}, fmt.Errorf("service: failed to look up user %s: %w", email, err)
	}

	created, err := s.repo.CreateUser(ctx, models.User{
		ID:        utils.GenerateID(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now(),
	})
	if err != nil {
		// a concurrent Register for the same email may have won the insert
		if stored, lookupErr := s.repo.GetUserByEmail(ctx, email); lookupErr == nil {
			return stored, nil
		}
		return models.User{}, fmt.Errorf("service: failed to register user %s: %w", email, err)
	}

	s.audit.Record(ctx, models.EntityUser, created.ID, audit.ActionRegister, map[string]any{"email": email})
	return created, nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, userID string) (models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return models.User{}, fmt.Errorf("service: %w", biddingerrors.ErrUserNotFound)
	}
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return u, nil
}

// List returns every registered user
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}
