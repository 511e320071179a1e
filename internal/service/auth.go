package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"textvault/internal/apperr"
	"textvault/internal/config"
	"textvault/internal/model"
	"textvault/internal/repository"
)

// AuthService issues owner identities. Every other service trusts the owner
// id resolved by the middleware from a token issued here.
type AuthService interface {
	// Signup registers a new owner account.
	Signup(ctx context.Context, username, password string) (*model.User, error)

	// Login verifies credentials and returns a signed bearer token.
	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller: both yield ErrNotFound.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  config.AuthConfig
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := validation.Validate(username,
		validation.Required,
		validation.RuneLength(3, 64),
	); err != nil {
		return nil, fmt.Errorf("username: %v: %w", err, apperr.ErrInvalidInput)
	}
	if err := validation.Validate(password,
		validation.Required,
		validation.RuneLength(6, 72),
	); err != nil {
		return nil, fmt.Errorf("password: %v: %w", err, apperr.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", apperr.ErrNotFound)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"uid": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.TokenExpireMinutes) * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
