package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/sirupsen/logrus"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, username, displayName string, isAdmin bool) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("lookup_id", id).Warn("User lookup failed")
		return nil, err
	}
	return u, nil
}

func (s *userService) CreateUser(ctx context.Context, username, displayName string, isAdmin bool) (*User, error) {
	log := config.WithContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("username", "is required")
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, apperr.Validation("username", "already taken")
	}

	u := &User{
		Username:    username,
		DisplayName: strings.TrimSpace(displayName),
		IsAdmin:     isAdmin,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"new_user_id": u.ID,
		"is_admin":    u.IsAdmin,
	}).Info("User created")
	return u, nil
}
