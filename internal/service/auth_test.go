package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PSINGLA1407/socialmedia/internal/config"
	"github.com/PSINGLA1407/socialmedia/internal/logger"
	"github.com/PSINGLA1407/socialmedia/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		SessionMaxAge: 86400,
	}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates credential and establishes session", func(t *testing.T) {
		var created *model.User
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return false, nil
			},
			CreateFunc: func(ctx context.Context, user *model.User) error {
				user.ID = 7
				created = user
				return nil
			},
		}
		svc := NewAuthService(userRepo, testConfig(), logger.NewNop())

		session, err := svc.SignUp(ctx, &model.SignUpRequest{Email: "Alice@Example.com", Password: "secret123"})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "alice@example.com", created.Email)
		assert.Equal(t, "alice", created.DisplayName)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHashed), []byte("secret123")))

		assert.NotEmpty(t, session.Token)
		assert.Equal(t, 86400, session.ExpiresIn)
		assert.Equal(t, int64(7), session.User.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
			CreateFunc: func(ctx context.Context, user *model.User) error {
				t.Fatal("Create must not be called for an existing email")
				return nil
			},
		}
		svc := NewAuthService(userRepo, testConfig(), logger.NewNop())

		_, err := svc.SignUp(ctx, &model.SignUpRequest{Email: "taken@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, model.ErrEmailExists)
	})

	t.Run("token carries user claims", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return false, nil
			},
			CreateFunc: func(ctx context.Context, user *model.User) error {
				user.ID = 42
				return nil
			},
		}
		cfg := testConfig()
		svc := NewAuthService(userRepo, cfg, logger.NewNop())

		session, err := svc.SignUp(ctx, &model.SignUpRequest{Email: "bob@example.com", Password: "secret123"})
		require.NoError(t, err)

		parsed, err := jwt.Parse(session.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(42), claims["user_id"])
		assert.Equal(t, "bob", claims["name"])
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &model.User{
		ID:             3,
		Email:          "carol@example.com",
		PasswordHashed: string(hash),
		DisplayName:    "carol",
	}

	tests := []struct {
		name     string
		email    string
		password string
		lookup   func(ctx context.Context, email string) (*model.User, error)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "carol@example.com",
			password: "correct-horse",
			lookup: func(ctx context.Context, email string) (*model.User, error) {
				return stored, nil
			},
		},
		{
			name:     "wrong password",
			email:    "carol@example.com",
			password: "battery-staple",
			lookup: func(ctx context.Context, email string) (*model.User, error) {
				return stored, nil
			},
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:     "unknown email maps to same error",
			email:    "nobody@example.com",
			password: "correct-horse",
			lookup: func(ctx context.Context, email string) (*model.User, error) {
				return nil, model.ErrUserNotFound
			},
			wantErr: model.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{GetByEmailFunc: tt.lookup}
			svc := NewAuthService(userRepo, testConfig(), logger.NewNop())

			session, err := svc.SignIn(ctx, &model.SignInRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, stored.ID, session.User.ID)
		})
	}
}
