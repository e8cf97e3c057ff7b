package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
	"pitchhub/internal/repository"
	"pitchhub/internal/token"
)

// AuthService registers accounts and issues bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, log *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register stores a new account: trimmed name, lowercased email, bcrypt
// password hash, normalized role. Duplicate emails (case-insensitive) are
// rejected with a conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return apperrors.New(apperrors.ErrValidation, "all fields (name, email, password, role) are required")
	}

	role, ok := models.ParseRole(in.Role)
	if !ok {
		return apperrors.Newf(apperrors.ErrValidation, "unknown role %q", in.Role)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.New(apperrors.ErrConflict, "email already registered, please log in instead")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "hash password", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return nil
}

// Login verifies credentials and returns a signed token plus the public user
// projection. An unknown email is not-found; a bad password is an auth
// failure. The password hash never leaves this layer.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	if email == "" || password == "" {
		return "", models.PublicUser{}, apperrors.New(apperrors.ErrValidation, "email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", models.PublicUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.PublicUser{}, apperrors.New(apperrors.ErrAuth, "incorrect password")
	}

	tok, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return "", models.PublicUser{}, apperrors.Wrap(apperrors.ErrInternal, "sign token", err)
	}

	s.log.Info("user logged in", zap.Uint("user_id", user.ID))
	return tok, user.Public(), nil
}
