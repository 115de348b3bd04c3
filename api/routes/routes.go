package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/giftflow/giftflow-backend/internal/config"
	"github.com/giftflow/giftflow-backend/internal/handlers"
	"github.com/giftflow/giftflow-backend/internal/middleware"
)

// HandlerDependencies holds the handlers the router wires up
type HandlerDependencies struct {
	EventHandler       *handlers.EventHandler
	ParticipantHandler *handlers.ParticipantHandler
	DrawHandler        *handlers.DrawHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "giftflow",
		})
	})

	// Schema listing for admin tools
	router.GET("/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"name": "event", "fields": []string{"name", "organizer_name", "organizer_email", "event_date", "budget_min", "budget_max", "currency", "rules", "code"}},
			{"name": "participant", "fields": []string{"event_id", "name", "email", "wishlist", "match_id", "gift_status"}},
			{"name": "wishlistitem", "fields": []string{"title", "url", "affiliate_url", "price", "notes"}},
			{"name": "match", "fields": []string{"event_id", "pairs"}},
		})
	})

	// Event routes
	events := router.Group("/events")
	{
		events.POST("", deps.EventHandler.CreateEvent)
		events.GET("", deps.EventHandler.ListEvents)
		events.GET("/:id", deps.EventHandler.GetEventByID)
		events.POST("/:id/participants", deps.ParticipantHandler.CreateParticipant)
		events.GET("/:id/participants", deps.ParticipantHandler.ListParticipants)
		events.POST("/:id/draw", deps.DrawHandler.RunDraw)
		events.GET("/:id/match", deps.DrawHandler.GetLatestMatch)
	}

	// Participant routes
	participants := router.Group("/participants")
	{
		participants.GET("/:id", deps.ParticipantHandler.GetParticipantByID)
		participants.POST("/:id/wishlist", deps.ParticipantHandler.SyncWishlist)
		participants.POST("/:id/gift-status", deps.ParticipantHandler.UpdateGiftStatus)
	}

	return router
}
