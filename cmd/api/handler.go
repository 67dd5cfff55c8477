package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authUsecase "lawdesk-backend/internal/auth/usecase"
	clientUsecase "lawdesk-backend/internal/client/usecase"
	docUsecase "lawdesk-backend/internal/document/usecase"
	eventUsecase "lawdesk-backend/internal/event/usecase"
	"lawdesk-backend/pkg/config"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	docUsecase    docUsecase.DocumentUsecase
	clientUsecase clientUsecase.ClientUsecase
	eventUsecase  eventUsecase.EventUsecase
	config        *config.Config
	logger        *zap.SugaredLogger
}

func NewHandler(authUc authUsecase.AuthUsecase, docUc docUsecase.DocumentUsecase, clientUc clientUsecase.ClientUsecase, eventUc eventUsecase.EventUsecase, cfg *config.Config, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		authUsecase:   authUc,
		docUsecase:    docUc,
		clientUsecase: clientUc,
		eventUsecase:  eventUc,
		config:        cfg,
		logger:        logger,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.docUsecase, h.clientUsecase, h.eventUsecase, h.config, h.logger)

	return r.Run(addr)
}
