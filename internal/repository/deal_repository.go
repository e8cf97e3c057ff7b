package repository

import (
	"context"

	"pitchhub/internal/models"
	"pitchhub/internal/storage"
)

// DealRepository is read-only: deals are written solely inside the offer
// acceptance transaction.
type DealRepository interface {
	ListAll(ctx context.Context) ([]models.Deal, error)
	ListByPitch(ctx context.Context, pitchID uint) ([]models.Deal, error)
}

type dealRepository struct {
	db *storage.DB
}

func NewDealRepository(db *storage.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) ListAll(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&deals).Error; err != nil {
		return nil, translate(err, "deals")
	}
	return deals, nil
}

func (r *dealRepository) ListByPitch(ctx context.Context, pitchID uint) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.WithContext(ctx).
		Where("pitch_id = ?", pitchID).
		Order("id DESC").
		Find(&deals).Error
	if err != nil {
		return nil, translate(err, "deals")
	}
	return deals, nil
}
