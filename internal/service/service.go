package service

import (
	"go.uber.org/zap"

	"pitchhub/internal/cache"
	"pitchhub/internal/repository"
	"pitchhub/internal/token"
	"pitchhub/internal/ws"
)

// Services bundles the business-rule layer handed to the HTTP handlers.
type Services struct {
	Auth  *AuthService
	Pitch *PitchService
	Offer *OfferService
	Deal  *DealService
}

// NewServices wires repositories, the token manager, the optional listing
// cache (nil disables it) and the offer feed hub into services.
func NewServices(repos *repository.Repositories, tokens *token.Manager, listing *cache.Listing, hub *ws.Hub, log *zap.Logger) *Services {
	return &Services{
		Auth:  NewAuthService(repos.User, tokens, log),
		Pitch: NewPitchService(repos.Pitch, listing, log),
		Offer: NewOfferService(repos.Offer, repos.Pitch, hub, log),
		Deal:  NewDealService(repos.Deal, repos.Pitch),
	}
}
