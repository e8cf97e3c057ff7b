// Package api wires the HTTP route table onto the service layer.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/api/handlers"
	"pitchhub/internal/middleware"
	"pitchhub/internal/models"
	"pitchhub/internal/service"
	"pitchhub/internal/token"
	"pitchhub/internal/ws"
)

// SetupRoutes registers every endpoint on the router.
func SetupRoutes(r *gin.Engine, services *service.Services, tokens *token.Manager, hub *ws.Hub) {
	authHandler := handlers.NewAuthHandler(services.Auth)
	pitchHandler := handlers.NewPitchHandler(services.Pitch)
	offerHandler := handlers.NewOfferHandler(services.Offer)
	dealHandler := handlers.NewDealHandler(services.Deal)
	wsHandler := handlers.NewWSHandler(hub, services.Pitch)

	api := r.Group("/api")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})

	// Public routes.
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/pitches", pitchHandler.ListApproved)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	authed := api.Group("/")
	authed.Use(middleware.RequireAuth(tokens))
	{
		pitches := authed.Group("/pitches")
		{
			pitches.POST("", middleware.RequireRole(models.RoleStartup), pitchHandler.Create)
			pitches.GET("/mine", pitchHandler.ListOwn)
			pitches.GET("/pending", middleware.RequireRole(models.RoleAdmin), pitchHandler.ListPending)
			pitches.POST("/:id/decision", middleware.RequireRole(models.RoleAdmin), pitchHandler.Decide)
			pitches.PUT("/:id", pitchHandler.Update)    // ownership checked in service
			pitches.DELETE("/:id", pitchHandler.Delete) // ownership checked in service
		}

		offers := authed.Group("/offers")
		{
			offers.POST("", middleware.RequireRole(models.RoleInvestor), offerHandler.Make)
			offers.GET("/pitch/:pitchId", offerHandler.ListForPitch)
			offers.GET("/mine", middleware.RequireRole(models.RoleInvestor), offerHandler.ListMine)
			offers.POST("/:id/accept", offerHandler.Accept)
			offers.POST("/:id/reject", offerHandler.Reject)
			offers.DELETE("/:id", offerHandler.Delete)
		}

		deals := authed.Group("/deals")
		{
			deals.GET("", middleware.RequireRole(models.RoleAdmin), dealHandler.ListAll)
			deals.GET("/pitch/:pitchId", dealHandler.ListForPitch)
		}

		authed.GET("/ws/pitches/:id/offers", wsHandler.OfferFeed)
	}

	// Static siblings (/pitches/mine, /pitches/pending) take precedence
	// over the :id parameter.
	api.GET("/pitches/:id", pitchHandler.GetByID)
}
