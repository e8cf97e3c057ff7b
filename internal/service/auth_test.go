package service

import (
	"context"
	"errors"
	"testing"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
)

func TestRegisterNormalizesFields(t *testing.T) {
	svc := newTestServices(t)

	err := svc.Auth.Register(context.Background(), RegisterInput{
		Name:     "  Ava  ",
		Email:    "Ava@X.com",
		Password: testPassword,
		Role:     "Startup",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Login with a differently-cased email must find the same account.
	_, user, err := svc.Auth.Login(context.Background(), "AVA@x.COM", testPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Name != "Ava" {
		t.Errorf("Name not trimmed: %q", user.Name)
	}
	if user.Email != "ava@x.com" {
		t.Errorf("Email not lowercased: %q", user.Email)
	}
	if user.Role != models.RoleStartup {
		t.Errorf("Role not normalized: %q", user.Role)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestServices(t)

	err := svc.Auth.Register(context.Background(), RegisterInput{
		Name:  "Ava",
		Email: "ava@x.com",
		// no password, no role
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := newTestServices(t)

	err := svc.Auth.Register(context.Background(), RegisterInput{
		Name:     "Ava",
		Email:    "ava@x.com",
		Password: testPassword,
		Role:     "wizard",
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestServices(t)
	registerUser(t, svc, "Ava", "ava@x.com", models.RoleStartup)

	err := svc.Auth.Register(context.Background(), RegisterInput{
		Name:     "Imposter",
		Email:    "AVA@X.COM",
		Password: testPassword,
		Role:     "investor",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Expected conflict error, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestServices(t)

	_, _, err := svc.Auth.Login(context.Background(), "nobody@x.com", testPassword)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestServices(t)
	registerUser(t, svc, "Ava", "ava@x.com", models.RoleStartup)

	_, _, err := svc.Auth.Login(context.Background(), "ava@x.com", "wrong-password")
	if !errors.Is(err, apperrors.ErrAuth) {
		t.Errorf("Expected auth error, got %v", err)
	}
}

func TestLoginTokenCarriesRegisteredRole(t *testing.T) {
	svc := newTestServices(t)
	registerUser(t, svc, "Bo", "bo@x.com", models.RoleInvestor)

	tok, user, err := svc.Auth.Login(context.Background(), "bo@x.com", testPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.Auth.tokens.Parse(tok)
	if err != nil {
		t.Fatalf("Failed to parse issued token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Token user id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Role != models.RoleInvestor {
		t.Errorf("Token role = %q, want %q", claims.Role, models.RoleInvestor)
	}
}
