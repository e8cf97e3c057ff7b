package service

import (
	"context"

	"pitchhub/internal/models"
	"pitchhub/internal/policy"
	"pitchhub/internal/repository"
)

// DealService exposes read-only deal projections for dashboards. Deals are
// only ever created inside the offer acceptance transaction.
type DealService struct {
	deals   repository.DealRepository
	pitches repository.PitchRepository
}

func NewDealService(deals repository.DealRepository, pitches repository.PitchRepository) *DealService {
	return &DealService{deals: deals, pitches: pitches}
}

// ListAll is the admin dashboard view; the role gate sits in the route.
func (s *DealService) ListAll(ctx context.Context) ([]models.Deal, error) {
	return s.deals.ListAll(ctx)
}

// ListForPitch returns a pitch's deals to its owner or an admin.
func (s *DealService) ListForPitch(ctx context.Context, pitchID uint, caller policy.Identity) ([]models.Deal, error) {
	pitch, err := s.pitches.FindByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return nil, err
	}
	return s.deals.ListByPitch(ctx, pitchID)
}
