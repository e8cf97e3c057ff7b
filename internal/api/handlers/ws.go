package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/policy"
	"pitchhub/internal/service"
	"pitchhub/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is checked by the deployment's proxy
	},
}

// WSHandler upgrades pitch owners onto the live offer feed.
type WSHandler struct {
	hub          *ws.Hub
	pitchService *service.PitchService
}

func NewWSHandler(hub *ws.Hub, pitchService *service.PitchService) *WSHandler {
	return &WSHandler{hub: hub, pitchService: pitchService}
}

// OfferFeed handles GET /api/ws/pitches/:id/offers. The connection stays
// open and receives offer events for the pitch until the client hangs up.
func (h *WSHandler) OfferFeed(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	pitchID, ok := pathID(c, "id")
	if !ok {
		return
	}

	pitch, err := h.pitchService.GetByID(c.Request.Context(), pitchID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := policy.RequireOwner(id, pitch.UserID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternal, "websocket upgrade", err))
		return
	}
	defer conn.Close()

	h.hub.Subscribe(pitchID, conn)
	defer h.hub.Unsubscribe(pitchID, conn)

	// Drain client frames until the connection drops; the feed is one-way.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
