package service

import (
	"context"

	"go.uber.org/zap"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/cache"
	"pitchhub/internal/models"
	"pitchhub/internal/policy"
	"pitchhub/internal/repository"
)

// PitchService owns the pitch lifecycle: creation, admin decisions, edits
// and the cascade delete.
type PitchService struct {
	pitches repository.PitchRepository
	listing *cache.Listing
	log     *zap.Logger
}

func NewPitchService(pitches repository.PitchRepository, listing *cache.Listing, log *zap.Logger) *PitchService {
	return &PitchService{pitches: pitches, listing: listing, log: log}
}

// CreateInput carries the pitch creation form.
type CreateInput struct {
	Name           string
	PitchText      string
	MoneyRequested float64
	EquityOffered  *float64
}

// Create stores a new pending pitch for the owner and returns it.
func (s *PitchService) Create(ctx context.Context, ownerID uint, in CreateInput) (*models.Pitch, error) {
	if in.Name == "" || in.PitchText == "" || in.MoneyRequested == 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "name, pitch_text and money_requested are required")
	}
	if in.MoneyRequested < 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "money_requested must be positive")
	}

	pitch := &models.Pitch{
		UserID:         ownerID,
		Name:           in.Name,
		PitchText:      in.PitchText,
		MoneyRequested: in.MoneyRequested,
		EquityOffered:  in.EquityOffered,
		Status:         models.PitchStatusPending,
	}
	if err := s.pitches.Create(ctx, pitch); err != nil {
		return nil, err
	}

	s.log.Info("pitch created", zap.Uint("pitch_id", pitch.ID), zap.Uint("owner_id", ownerID))
	return pitch, nil
}

// ListApproved returns the investor-visible listing, newest first, served
// from the cache when warm.
func (s *PitchService) ListApproved(ctx context.Context) ([]models.Pitch, error) {
	if pitches, ok := s.listing.GetApproved(ctx); ok {
		return pitches, nil
	}

	pitches, err := s.pitches.ListByStatus(ctx, models.PitchStatusApproved)
	if err != nil {
		return nil, err
	}
	s.listing.SetApproved(ctx, pitches)
	return pitches, nil
}

func (s *PitchService) GetByID(ctx context.Context, id uint) (*models.Pitch, error) {
	return s.pitches.FindByID(ctx, id)
}

func (s *PitchService) ListOwn(ctx context.Context, ownerID uint) ([]models.Pitch, error) {
	return s.pitches.ListByOwner(ctx, ownerID)
}

// ListPending is the admin review queue; the role gate sits in the route.
func (s *PitchService) ListPending(ctx context.Context) ([]models.Pitch, error) {
	return s.pitches.ListByStatus(ctx, models.PitchStatusPending)
}

// Decide applies an admin approve/reject. Re-deciding an already decided
// pitch is allowed and simply assigns the status again.
func (s *PitchService) Decide(ctx context.Context, id uint, action string) (models.PitchStatus, error) {
	var status models.PitchStatus
	switch action {
	case "approve":
		status = models.PitchStatusApproved
	case "reject":
		status = models.PitchStatusRejected
	default:
		return "", apperrors.Newf(apperrors.ErrValidation, "invalid action %q", action)
	}

	if _, err := s.pitches.FindByID(ctx, id); err != nil {
		return "", err
	}
	if err := s.pitches.UpdateStatus(ctx, id, status); err != nil {
		return "", err
	}

	s.listing.Invalidate(ctx)
	s.log.Info("pitch decided", zap.Uint("pitch_id", id), zap.String("status", string(status)))
	return status, nil
}

// UpdateInput carries a partial edit; nil fields keep their prior value.
type UpdateInput struct {
	Name           *string
	PitchText      *string
	MoneyRequested *float64
	EquityOffered  *float64
}

// Update applies a partial edit on behalf of the owner or an admin.
func (s *PitchService) Update(ctx context.Context, id uint, caller policy.Identity, in UpdateInput) (*models.Pitch, error) {
	pitch, err := s.pitches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.PitchText != nil {
		fields["pitch_text"] = *in.PitchText
	}
	if in.MoneyRequested != nil {
		if *in.MoneyRequested <= 0 {
			return nil, apperrors.New(apperrors.ErrValidation, "money_requested must be positive")
		}
		fields["money_requested"] = *in.MoneyRequested
	}
	if in.EquityOffered != nil {
		fields["equity_offered"] = *in.EquityOffered
	}

	if err := s.pitches.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	s.listing.Invalidate(ctx)
	return s.pitches.FindByID(ctx, id)
}

// Delete removes a pitch and cascades to its offers. Owner or admin only.
func (s *PitchService) Delete(ctx context.Context, id uint, caller policy.Identity) error {
	pitch, err := s.pitches.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.RequireOwner(caller, pitch.UserID); err != nil {
		return err
	}

	if err := s.pitches.DeleteWithOffers(ctx, id); err != nil {
		return err
	}

	s.listing.Invalidate(ctx)
	s.log.Info("pitch deleted", zap.Uint("pitch_id", id), zap.Uint("caller_id", caller.UserID))
	return nil
}
