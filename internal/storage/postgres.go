package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB wraps the gorm handle so repositories depend on one storage type.
type DB struct {
	*gorm.DB
}

func NewPostgresDB(host, user, password, dbname string, port int) (*DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey instead of a raw driver error.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return &DB{DB: db}, nil
}

// NewDB wraps an already opened gorm handle. Tests use this with an
// in-memory driver.
func NewDB(db *gorm.DB) *DB {
	return &DB{DB: db}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// Ping checks connectivity; the health endpoint calls this.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
