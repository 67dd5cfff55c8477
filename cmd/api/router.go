package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authDelivery "lawdesk-backend/internal/auth/delivery"
	authUsecase "lawdesk-backend/internal/auth/usecase"
	clientDelivery "lawdesk-backend/internal/client/delivery"
	clientUsecase "lawdesk-backend/internal/client/usecase"
	docDelivery "lawdesk-backend/internal/document/delivery"
	docUsecase "lawdesk-backend/internal/document/usecase"
	eventDelivery "lawdesk-backend/internal/event/delivery"
	eventUsecase "lawdesk-backend/internal/event/usecase"
	"lawdesk-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, docUc docUsecase.DocumentUsecase, clientUc clientUsecase.ClientUsecase, eventUc eventUsecase.EventUsecase, cfg *config.Config, logger *zap.SugaredLogger) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg, logger)
	docHandler := docDelivery.NewDocumentHandler(docUc, logger)
	clientHandler := clientDelivery.NewClientHandler(clientUc, logger)
	eventHandler := eventDelivery.NewEventHandler(eventUc, logger)

	requireAuth := authDelivery.AuthMiddleware(authUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", requireAuth, authHandler.Me)

	auth := r.Group("/auth")
	{
		auth.GET("/google", authHandler.GoogleRedirect)
		auth.GET("/google/callback", authHandler.GoogleCallback)
	}

	// Document routes (protected)
	docs := r.Group("/documents")
	docs.Use(requireAuth)
	{
		docs.GET("", docHandler.List)
		docs.POST("/folders", docHandler.CreateFolder)
		docs.PATCH("/folders/:id", docHandler.RenameFolder)
		docs.DELETE("/folders/:id", docHandler.DeleteFolder)
		docs.POST("/upload", docHandler.Upload)
		docs.PATCH("/file/:id", docHandler.RenameFile)
		docs.DELETE("/file/:id", docHandler.DeleteFile)
		docs.GET("/file/:id/download", docHandler.Download)
	}

	// Client routes (protected)
	clients := r.Group("/clients")
	clients.Use(requireAuth)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.GET("/:id/billing", clientHandler.GetBilling)
		clients.POST("/:id/billing", clientHandler.CreateBilling)
		clients.PATCH("/:id/billing", clientHandler.UpdateBilling)
		clients.DELETE("/:id/billing", clientHandler.DeleteBilling)
		clients.GET("/:id/case-details", clientHandler.GetCaseDetails)
		clients.POST("/:id/case-details", clientHandler.UpsertCaseDetails)
		clients.PATCH("/:id/case-details", clientHandler.UpdateCaseDetails)
	}

	// Event routes (protected)
	events := r.Group("/events")
	events.Use(requireAuth)
	{
		events.GET("", eventHandler.ListEvents)
		events.POST("", eventHandler.CreateEvent)
		events.GET("/:id", eventHandler.GetEvent)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
	}

	// Dashboard stats (protected)
	r.GET("/stats", requireAuth, clientHandler.Stats)
}
