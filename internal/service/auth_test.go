package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"textvault/internal/apperr"
	"textvault/internal/config"
	"textvault/internal/model"
	repoMocks "textvault/internal/repository/mocks"
)

var testAuthCfg = config.AuthConfig{
	JWTSecret:          "test-secret",
	TokenExpireMinutes: 30,
	BcryptCost:         bcrypt.MinCost,
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			if u.Username != "alice" || u.PasswordHash == "secret123" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
		})).Return(&model.User{ID: 1, Username: "alice"}, nil)

		user, err := svc.Signup(ctx, " alice ", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mRepo.AssertExpectations(t)
	})

	t.Run("username too short", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		user, err := svc.Signup(ctx, "al", "secret123")

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, user)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("password too short", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		user, err := svc.Signup(ctx, "alice", "short")

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, user)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate username from repository", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, apperr.ErrDuplicateName)

		user, err := svc.Signup(ctx, "alice", "secret123")

		assert.ErrorIs(t, err, apperr.ErrDuplicateName)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: 42, Username: "alice", PasswordHash: string(hash)}

	t.Run("issues a verifiable token", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		mRepo.On("FindByUsername", ctx, "alice").Return(stored, nil)

		signed, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)

		token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
			return []byte(testAuthCfg.JWTSecret), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "alice", claims["sub"])
		assert.Equal(t, float64(42), claims["uid"])
		assert.Contains(t, claims, "exp")
		mRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		mRepo.On("FindByUsername", ctx, "alice").Return(stored, nil)

		signed, err := svc.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Empty(t, signed)
	})

	t.Run("unknown username", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testAuthCfg)

		mRepo.On("FindByUsername", ctx, "ghost").Return(nil, apperr.ErrNotFound)

		signed, err := svc.Login(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Empty(t, signed)
	})
}
