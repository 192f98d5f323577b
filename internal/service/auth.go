package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mstrelkov/jewelstock/internal/hash"
	"github.com/mstrelkov/jewelstock/internal/logging"
	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/repo"
	"github.com/mstrelkov/jewelstock/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  Publisher
}

type AuthResult struct {
	AccessToken string
	User        *models.User
}

func (s *AuthService) Register(ctx context.Context, username, email, password string, role models.Role) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "username", username)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	token, err := tokens.SignAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("register_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	publish(ctx, s.Producer, "user_events", user.ID.String(), map[string]interface{}{
		"type":     "user_registered",
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
	})

	l.Info("register_successful", "role", user.Role)
	return &AuthResult{AccessToken: token, User: &user}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.VerifyLogin(ctx, username, password)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return nil, err
	}

	token, err := tokens.SignAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "role", user.Role)
	return &AuthResult{AccessToken: token, User: user}, nil
}

// Me re-fetches the live user record, unlike token verification which is
// stateless.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.Repo.GetUserByID(ctx, userID)
}
