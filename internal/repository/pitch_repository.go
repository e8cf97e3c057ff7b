package repository

import (
	"context"

	"gorm.io/gorm"

	"pitchhub/internal/models"
	"pitchhub/internal/storage"
)

type PitchRepository interface {
	Create(ctx context.Context, pitch *models.Pitch) error
	FindByID(ctx context.Context, id uint) (*models.Pitch, error)
	ListByStatus(ctx context.Context, status models.PitchStatus) ([]models.Pitch, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Pitch, error)
	UpdateStatus(ctx context.Context, id uint, status models.PitchStatus) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteWithOffers(ctx context.Context, id uint) error
}

type pitchRepository struct {
	db *storage.DB
}

func NewPitchRepository(db *storage.DB) PitchRepository {
	return &pitchRepository{db: db}
}

func (r *pitchRepository) Create(ctx context.Context, pitch *models.Pitch) error {
	return translate(r.db.WithContext(ctx).Create(pitch).Error, "pitch")
}

func (r *pitchRepository) FindByID(ctx context.Context, id uint) (*models.Pitch, error) {
	var pitch models.Pitch
	if err := r.db.WithContext(ctx).Preload("Owner").First(&pitch, id).Error; err != nil {
		return nil, translate(err, "pitch")
	}
	return &pitch, nil
}

// ListByStatus returns pitches newest first with their owner loaded for the
// public name/email projection.
func (r *pitchRepository) ListByStatus(ctx context.Context, status models.PitchStatus) ([]models.Pitch, error) {
	var pitches []models.Pitch
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", status).
		Order("id DESC").
		Find(&pitches).Error
	if err != nil {
		return nil, translate(err, "pitches")
	}
	return pitches, nil
}

func (r *pitchRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Pitch, error) {
	var pitches []models.Pitch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&pitches).Error
	if err != nil {
		return nil, translate(err, "pitches")
	}
	return pitches, nil
}

func (r *pitchRepository) UpdateStatus(ctx context.Context, id uint, status models.PitchStatus) error {
	return translate(r.db.WithContext(ctx).
		Model(&models.Pitch{}).
		Where("id = ?", id).
		Update("status", status).Error, "pitch")
}

// UpdateFields applies a partial update; absent fields keep their values.
func (r *pitchRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).
		Model(&models.Pitch{}).
		Where("id = ?", id).
		Updates(fields).Error, "pitch")
}

// DeleteWithOffers removes a pitch and every offer referencing it in one
// transaction, so no orphan offers survive the cascade.
func (r *pitchRepository) DeleteWithOffers(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pitch_id = ?", id).Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pitch{}, id).Error
	})
	return translate(err, "pitch")
}
