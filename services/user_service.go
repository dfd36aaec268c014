package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"order-gateway/models"
)

// UserStore is the slice of the user repository the orchestrators depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type UserService struct {
	users  UserStore
	logger zerolog.Logger
}

func NewUserService(users UserStore, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser validates the input, rejects duplicate emails, and persists the
// user. The email lookup is a fast path only; the store's unique constraint
// is what actually guarantees uniqueness under concurrent creations.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &models.ValidationError{Field: "name"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, &models.ValidationError{Field: "email"}
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}
