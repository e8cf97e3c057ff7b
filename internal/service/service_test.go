package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pitchhub/internal/models"
	"pitchhub/internal/policy"
	"pitchhub/internal/repository"
	"pitchhub/internal/storage"
	"pitchhub/internal/token"
	"pitchhub/internal/ws"
)

const testPassword = "Aa123456"

// newTestServices builds the service layer over a fresh in-memory database.
func newTestServices(t *testing.T) *Services {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	store := storage.NewDB(db)
	if err := store.AutoMigrate(&models.User{}, &models.Pitch{}, &models.Offer{}, &models.Deal{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	repos := repository.NewRepositories(store)
	tokens := token.NewManager("test-secret", time.Hour)
	return NewServices(repos, tokens, nil, ws.NewHub(), zap.NewNop())
}

// registerUser registers and logs in a user, returning its public projection.
func registerUser(t *testing.T, svc *Services, name, email string, role models.Role) models.PublicUser {
	t.Helper()

	err := svc.Auth.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    email,
		Password: testPassword,
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}

	_, user, err := svc.Auth.Login(context.Background(), email, testPassword)
	if err != nil {
		t.Fatalf("Failed to log in %s: %v", email, err)
	}
	return user
}

func ident(u models.PublicUser) policy.Identity {
	return policy.Identity{UserID: u.ID, Role: u.Role}
}

// approvedPitch creates a pitch for owner and approves it as admin.
func approvedPitch(t *testing.T, svc *Services, owner models.PublicUser, name string) *models.Pitch {
	t.Helper()

	pitch, err := svc.Pitch.Create(context.Background(), owner.ID, CreateInput{
		Name:           name,
		PitchText:      "a pitch",
		MoneyRequested: 100000,
	})
	if err != nil {
		t.Fatalf("Failed to create pitch: %v", err)
	}
	if _, err := svc.Pitch.Decide(context.Background(), pitch.ID, "approve"); err != nil {
		t.Fatalf("Failed to approve pitch: %v", err)
	}
	return pitch
}
