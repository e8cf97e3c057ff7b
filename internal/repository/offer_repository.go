package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
	"pitchhub/internal/storage"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	FindByID(ctx context.Context, id uint) (*models.Offer, error)
	ListByPitch(ctx context.Context, pitchID uint) ([]models.Offer, error)
	ListByInvestor(ctx context.Context, investorID uint) ([]models.Offer, error)
	Accept(ctx context.Context, offerID uint) (*models.Deal, error)
	MarkRejected(ctx context.Context, offerID uint) error
	Delete(ctx context.Context, offerID uint) error
}

type offerRepository struct {
	db *storage.DB
}

func NewOfferRepository(db *storage.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *models.Offer) error {
	return translate(r.db.WithContext(ctx).Create(offer).Error, "offer")
}

func (r *offerRepository) FindByID(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.WithContext(ctx).First(&offer, id).Error; err != nil {
		return nil, translate(err, "offer")
	}
	return &offer, nil
}

// ListByPitch returns a pitch's offers newest first with the investor loaded
// for the display name.
func (r *offerRepository) ListByPitch(ctx context.Context, pitchID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Preload("Investor").
		Where("pitch_id = ?", pitchID).
		Order("id DESC").
		Find(&offers).Error
	if err != nil {
		return nil, translate(err, "offers")
	}
	return offers, nil
}

func (r *offerRepository) ListByInvestor(ctx context.Context, investorID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Preload("Pitch").
		Where("investor_id = ?", investorID).
		Order("id DESC").
		Find(&offers).Error
	if err != nil {
		return nil, translate(err, "offers")
	}
	return offers, nil
}

// Accept runs the acceptance workflow as one transaction:
//
//  1. flip the offer to accepted only if it is still pending (conditional
//     update, so two concurrent accepts cannot both win the row)
//  2. insert the deal record from the offer's terms
//  3. reject every other still-pending offer on the same pitch
//
// Any failure rolls back the lot; a lost race surfaces as a conflict.
func (r *offerRepository) Accept(ctx context.Context, offerID uint) (*models.Deal, error) {
	var deal *models.Deal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Offer{}).
			Where("id = ? AND status = ?", offerID, models.OfferStatusPending).
			Update("status", models.OfferStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.New(apperrors.ErrConflict, "offer is no longer pending")
		}

		var offer models.Offer
		if err := tx.First(&offer, offerID).Error; err != nil {
			return err
		}

		deal = &models.Deal{
			PitchID:     offer.PitchID,
			InvestorID:  offer.InvestorID,
			AmountFinal: offer.AmountOffered,
			EquityFinal: offer.EquityRequested,
		}
		if err := tx.Create(deal).Error; err != nil {
			return err
		}

		return tx.Model(&models.Offer{}).
			Where("pitch_id = ? AND id <> ? AND status = ?",
				offer.PitchID, offer.ID, models.OfferStatusPending).
			Update("status", models.OfferStatusRejected).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, translate(err, "offer")
	}
	return deal, nil
}

// MarkRejected flips an offer to rejected unless it has been accepted.
func (r *offerRepository) MarkRejected(ctx context.Context, offerID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ? AND status <> ?", offerID, models.OfferStatusAccepted).
		Update("status", models.OfferStatusRejected)
	if res.Error != nil {
		return translate(res.Error, "offer")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrConflict, "offer already accepted")
	}
	return nil
}

func (r *offerRepository) Delete(ctx context.Context, offerID uint) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Offer{}, offerID).Error, "offer")
}
