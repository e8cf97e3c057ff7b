package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
	"pitchhub/internal/storage"
)

func newTestRepos(t *testing.T) *Repositories {
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
	return NewRepositories(store)
}

// TestCreateUserDuplicateEmailConflict pins the unique-index violation to a
// conflict error. The service pre-checks the email, but two registrations
// racing past that check leave the index as the last line of defense, and
// the loser must not surface as an internal error.
func TestCreateUserDuplicateEmailConflict(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first := &models.User{Name: "Ava", Email: "ava@x.com", Password: "x", Role: models.RoleStartup}
	if err := repos.User.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dup := &models.User{Name: "Imposter", Email: "ava@x.com", Password: "x", Role: models.RoleInvestor}
	if err := repos.User.Create(ctx, dup); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Expected conflict error, got %v", err)
	}
}
