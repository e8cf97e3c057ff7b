package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/service"
)

// DealHandler serves read-only deal projections.
type DealHandler struct {
	dealService *service.DealService
}

func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// ListAll handles GET /api/deals (admin role).
func (h *DealHandler) ListAll(c *gin.Context) {
	deals, err := h.dealService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

// ListForPitch handles GET /api/deals/pitch/:pitchId (pitch owner or admin).
func (h *DealHandler) ListForPitch(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	pitchID, ok := pathID(c, "pitchId")
	if !ok {
		return
	}

	deals, err := h.dealService.ListForPitch(c.Request.Context(), pitchID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}
