package service

import (
	"context"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login is a single-shot credential check. Unknown user and wrong password
// both come back as ErrInvalidCredentials so callers cannot tell them apart.
// Store failures keep their own classification; an outage is not a 401.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, classify(err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
