package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/service"
)

// PitchHandler serves pitch CRUD and the admin decision endpoint.
type PitchHandler struct {
	pitchService *service.PitchService
}

func NewPitchHandler(pitchService *service.PitchService) *PitchHandler {
	return &PitchHandler{pitchService: pitchService}
}

type CreatePitchInput struct {
	Name           string   `json:"name"`
	PitchText      string   `json:"pitch_text"`
	MoneyRequested float64  `json:"money_requested"`
	EquityOffered  *float64 `json:"equity_offered"`
}

// Create handles POST /api/pitches (startup role).
func (h *PitchHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var input CreatePitchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	pitch, err := h.pitchService.Create(c.Request.Context(), id.UserID, service.CreateInput{
		Name:           input.Name,
		PitchText:      input.PitchText,
		MoneyRequested: input.MoneyRequested,
		EquityOffered:  input.EquityOffered,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "pitch created and sent for admin review",
		"pitch":   pitch,
	})
}

// ListApproved handles GET /api/pitches (public, approved only).
func (h *PitchHandler) ListApproved(c *gin.Context) {
	pitches, err := h.pitchService.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pitches)
}

// GetByID handles GET /api/pitches/:id.
func (h *PitchHandler) GetByID(c *gin.Context) {
	pitchID, ok := pathID(c, "id")
	if !ok {
		return
	}

	pitch, err := h.pitchService.GetByID(c.Request.Context(), pitchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pitch)
}

// ListOwn handles GET /api/pitches/mine.
func (h *PitchHandler) ListOwn(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	pitches, err := h.pitchService.ListOwn(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pitches)
}

// ListPending handles GET /api/pitches/pending (admin role).
func (h *PitchHandler) ListPending(c *gin.Context) {
	pitches, err := h.pitchService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pitches)
}

type DecisionInput struct {
	Action string `json:"action"`
}

// Decide handles POST /api/pitches/:id/decision (admin role).
func (h *PitchHandler) Decide(c *gin.Context) {
	pitchID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	status, err := h.pitchService.Decide(c.Request.Context(), pitchID, input.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "pitch " + string(status),
		"status":  status,
	})
}

type UpdatePitchInput struct {
	Name           *string  `json:"name"`
	PitchText      *string  `json:"pitch_text"`
	MoneyRequested *float64 `json:"money_requested"`
	EquityOffered  *float64 `json:"equity_offered"`
}

// Update handles PUT /api/pitches/:id (owner or admin).
func (h *PitchHandler) Update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	pitchID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdatePitchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	pitch, err := h.pitchService.Update(c.Request.Context(), pitchID, id, service.UpdateInput{
		Name:           input.Name,
		PitchText:      input.PitchText,
		MoneyRequested: input.MoneyRequested,
		EquityOffered:  input.EquityOffered,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pitch": pitch})
}

// Delete handles DELETE /api/pitches/:id (owner or admin); offers cascade.
func (h *PitchHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	pitchID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.pitchService.Delete(c.Request.Context(), pitchID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "pitch deleted"})
}
