package repository

import (
	"errors"

	"gorm.io/gorm"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/storage"
)

// Repositories bundles the per-model repositories handed to services.
type Repositories struct {
	User  UserRepository
	Pitch PitchRepository
	Offer OfferRepository
	Deal  DealRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Pitch: NewPitchRepository(db),
		Offer: NewOfferRepository(db),
		Deal:  NewDealRepository(db),
	}
}

// translate converts gorm errors into the shared taxonomy at the storage
// edge, so services never import gorm error values.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Newf(apperrors.ErrNotFound, "%s not found", what)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Newf(apperrors.ErrConflict, "%s already exists", what)
	}
	return apperrors.Wrap(apperrors.ErrInternal, what, err)
}
