package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/PSINGLA1407/socialmedia/internal/config"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/repository"
)

// AuthService owns credentials and session tokens. A session is a signed JWT
// carrying the user id, the email-derived display name, and the avatar seed;
// nothing is stored server-side, so sign-out is purely a cookie clear.
type AuthService struct {
	userRepo repository.UserRepository
	config   *config.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   cfg,
		log:      log,
	}
}

// SignUp provisions the credential, then establishes a session. The two
// steps are sequential and either failing fails the whole call. There is no
// compensating rollback: if session establishment fails after the credential
// was created, the credential stays and the user can sign in manually.
func (s *AuthService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		PasswordHashed: string(hashedPassword),
		DisplayName:    model.DisplayNameFromEmail(email),
	}

	// Step 1: provision the credential.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Step 2: establish the session. A failure here leaves the credential in
	// place (accepted inconsistency).
	token, err := s.generateSessionToken(user)
	if err != nil {
		s.log.Error("session establishment failed after credential creation",
			zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to sign in after registration: %w", err)
	}

	return &model.SessionResponse{
		User:      user,
		Token:     token,
		ExpiresIn: s.config.SessionMaxAge,
	}, nil
}

// SignIn verifies the credential and establishes a session. Every failure
// mode maps to the same ErrInvalidCredentials so the response never reveals
// whether the email exists.
func (s *AuthService) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.generateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &model.SessionResponse{
		User:      user,
		Token:     token,
		ExpiresIn: s.config.SessionMaxAge,
	}, nil
}

// GetUser resolves the current session's user.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) generateSessionToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.DisplayName,
		"exp":     now.Add(time.Duration(s.config.SessionMaxAge) * time.Second).Unix(),
		"iat":     now.Unix(),
	}
	if user.AvatarURL != nil {
		claims["avatar"] = *user.AvatarURL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
