package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/service"
)

// OfferHandler serves offer creation, listings and the accept/reject/delete
// lifecycle.
type OfferHandler struct {
	offerService *service.OfferService
}

func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

type MakeOfferInput struct {
	PitchID         uint     `json:"pitch_id"`
	AmountOffered   float64  `json:"amount_offered"`
	EquityRequested *float64 `json:"equity_requested"`
}

// Make handles POST /api/offers (investor role).
func (h *OfferHandler) Make(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var input MakeOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	offer, err := h.offerService.Make(c.Request.Context(), id.UserID, service.MakeInput{
		PitchID:         input.PitchID,
		AmountOffered:   input.AmountOffered,
		EquityRequested: input.EquityRequested,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "offer created",
		"offer":   offer,
	})
}

// ListForPitch handles GET /api/offers/pitch/:pitchId (pitch owner or admin).
func (h *OfferHandler) ListForPitch(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	pitchID, ok := pathID(c, "pitchId")
	if !ok {
		return
	}

	offers, err := h.offerService.ListForPitch(c.Request.Context(), pitchID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListMine handles GET /api/offers/mine (investor role).
func (h *OfferHandler) ListMine(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	offers, err := h.offerService.ListForInvestor(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Accept handles POST /api/offers/:id/accept (pitch owner or admin).
func (h *OfferHandler) Accept(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	deal, err := h.offerService.Accept(c.Request.Context(), offerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "offer accepted and deal created",
		"deal":    deal,
	})
}

// Reject handles POST /api/offers/:id/reject (pitch owner or admin).
func (h *OfferHandler) Reject(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.offerService.Reject(c.Request.Context(), offerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "offer rejected"})
}

// Delete handles DELETE /api/offers/:id (offer's investor or admin, pending
// offers only).
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.offerService.Delete(c.Request.Context(), offerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "offer deleted"})
}
