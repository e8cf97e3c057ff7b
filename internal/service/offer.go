package service

import (
	"context"

	"go.uber.org/zap"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
	"pitchhub/internal/policy"
	"pitchhub/internal/repository"
	"pitchhub/internal/ws"
)

// OfferService owns the offer state machine, including the acceptance
// workflow that mints a deal and rejects sibling offers.
type OfferService struct {
	offers  repository.OfferRepository
	pitches repository.PitchRepository
	hub     *ws.Hub
	log     *zap.Logger
}

func NewOfferService(offers repository.OfferRepository, pitches repository.PitchRepository, hub *ws.Hub, log *zap.Logger) *OfferService {
	return &OfferService{offers: offers, pitches: pitches, hub: hub, log: log}
}

// MakeInput carries the offer form.
type MakeInput struct {
	PitchID         uint
	AmountOffered   float64
	EquityRequested *float64
}

// Make records a pending offer from an investor. Offers against pitches that
// are not approved are refused.
func (s *OfferService) Make(ctx context.Context, investorID uint, in MakeInput) (*models.Offer, error) {
	if in.PitchID == 0 || in.AmountOffered == 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "pitch_id and amount_offered are required")
	}
	if in.AmountOffered < 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "amount_offered must be positive")
	}

	pitch, err := s.pitches.FindByID(ctx, in.PitchID)
	if err != nil {
		return nil, err
	}
	if pitch.Status != models.PitchStatusApproved {
		return nil, apperrors.New(apperrors.ErrConflict, "pitch is not open for offers")
	}

	offer := &models.Offer{
		InvestorID:      investorID,
		PitchID:         in.PitchID,
		AmountOffered:   in.AmountOffered,
		EquityRequested: in.EquityRequested,
		Status:          models.OfferStatusPending,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.hub.Broadcast(ws.OfferEvent{Type: "offer_created", PitchID: offer.PitchID, Offer: *offer})
	s.log.Info("offer created",
		zap.Uint("offer_id", offer.ID),
		zap.Uint("pitch_id", offer.PitchID),
		zap.Uint("investor_id", investorID))
	return offer, nil
}

// ListForPitch returns a pitch's offers to its owner or an admin.
func (s *OfferService) ListForPitch(ctx context.Context, pitchID uint, caller policy.Identity) ([]models.Offer, error) {
	pitch, err := s.pitches.FindByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return nil, err
	}
	return s.offers.ListByPitch(ctx, pitchID)
}

// ListForInvestor returns the caller's own offers with their pitches loaded.
func (s *OfferService) ListForInvestor(ctx context.Context, investorID uint) ([]models.Offer, error) {
	return s.offers.ListByInvestor(ctx, investorID)
}

// Accept consummates an offer: the offer becomes accepted, a deal is
// recorded, and every other pending offer on the pitch is rejected, all in
// one transaction. Only the pitch owner or an admin may accept.
func (s *OfferService) Accept(ctx context.Context, offerID uint, caller policy.Identity) (*models.Deal, error) {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status == models.OfferStatusAccepted {
		return nil, apperrors.New(apperrors.ErrConflict, "offer already accepted")
	}
	if offer.Status.Decided() {
		return nil, apperrors.New(apperrors.ErrConflict, "offer is no longer pending")
	}

	// Data-integrity guard: the referenced pitch must still exist.
	pitch, err := s.pitches.FindByID(ctx, offer.PitchID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return nil, err
	}

	deal, err := s.offers.Accept(ctx, offerID)
	if err != nil {
		return nil, err
	}

	offer.Status = models.OfferStatusAccepted
	s.hub.Broadcast(ws.OfferEvent{Type: "offer_accepted", PitchID: offer.PitchID, Offer: *offer})
	s.log.Info("offer accepted",
		zap.Uint("offer_id", offerID),
		zap.Uint("pitch_id", offer.PitchID),
		zap.Uint("deal_id", deal.ID))
	return deal, nil
}

// Reject turns down a pending offer. Accepted offers are terminal and cannot
// be rejected. Only the pitch owner or an admin may reject.
func (s *OfferService) Reject(ctx context.Context, offerID uint, caller policy.Identity) error {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.Status == models.OfferStatusAccepted {
		return apperrors.New(apperrors.ErrConflict, "offer already accepted")
	}

	pitch, err := s.pitches.FindByID(ctx, offer.PitchID)
	if err != nil {
		return err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return err
	}

	if err := s.offers.MarkRejected(ctx, offerID); err != nil {
		return err
	}

	offer.Status = models.OfferStatusRejected
	s.hub.Broadcast(ws.OfferEvent{Type: "offer_rejected", PitchID: offer.PitchID, Offer: *offer})
	s.log.Info("offer rejected", zap.Uint("offer_id", offerID), zap.Uint("pitch_id", offer.PitchID))
	return nil
}

// Delete withdraws a pending offer. Only the investor who made it or an
// admin may delete, and decided offers stay on the books.
func (s *OfferService) Delete(ctx context.Context, offerID uint, caller policy.Identity) error {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return err
	}
	if err := policy.RequireOwner(caller, offer.InvestorID); err != nil {
		return err
	}
	if offer.Status != models.OfferStatusPending {
		return apperrors.New(apperrors.ErrConflict, "cannot delete a decided offer")
	}
	return s.offers.Delete(ctx, offerID)
}
