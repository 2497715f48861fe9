package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type CreateUserParams struct {
	Username    string
	Password    string
	DisplayName string
	AvatarURL   *string
	Email       *string
	Role        *model.Role
}

// UserService creates and reads users. Users are immutable once created and
// never deleted, so there is no update or delete surface.
type UserService interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) Create(ctx context.Context, params CreateUserParams) (*model.User, error) {
	if strings.TrimSpace(params.Username) == "" {
		return nil, newValidationError("username", "must not be empty")
	}
	if params.Password == "" {
		return nil, newValidationError("password", "must not be empty")
	}

	if _, err := s.userStore.GetByUsername(ctx, params.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking username availability: %w", err)
	}

	role := model.RoleUser
	if params.Role != nil {
		if !params.Role.Valid() {
			return nil, newValidationError("role", "unknown value")
		}
		role = *params.Role
	}

	displayName := params.DisplayName
	if displayName == "" {
		displayName = params.Username
	}

	user := &model.User{
		Username:    params.Username,
		Password:    params.Password,
		DisplayName: displayName,
		AvatarURL:   params.AvatarURL,
		Email:       params.Email,
		Role:        role,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to create user", "error", err, "username", params.Username)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userStore.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userStore.List(ctx)
}
