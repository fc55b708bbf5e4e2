package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
)

type AuthService struct {
	users         repository.UserRepository
	sessionSecret string
}

func NewAuthService(users repository.UserRepository, sessionSecret string) *AuthService {
	return &AuthService{users: users, sessionSecret: sessionSecret}
}

func (a *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || len(password) < 6 {
		return nil, errors.New("invalid input")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	// Self-registration always produces a plain user account.
	return a.users.Create(ctx, email, name, models.RoleUser, hash)
}

func (a *AuthService) Login(ctx context.Context, email, password string) (token string, user *models.User, err error) {
	u, hash, err := a.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", nil, ErrAccountDisabled
	}
	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.Role, 24*time.Hour)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (a *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return a.users.GetByID(ctx, userID)
}
