package main

import (
	api "lawdesk-backend/cmd/api"
	authdomain "lawdesk-backend/internal/auth/domain"
	authRepo "lawdesk-backend/internal/auth/repository"
	authUsecase "lawdesk-backend/internal/auth/usecase"
	clientdomain "lawdesk-backend/internal/client/domain"
	clientRepo "lawdesk-backend/internal/client/repository"
	clientUsecase "lawdesk-backend/internal/client/usecase"
	docdomain "lawdesk-backend/internal/document/domain"
	docRepo "lawdesk-backend/internal/document/repository"
	docUsecase "lawdesk-backend/internal/document/usecase"
	eventdomain "lawdesk-backend/internal/event/domain"
	eventRepo "lawdesk-backend/internal/event/repository"
	eventUsecase "lawdesk-backend/internal/event/usecase"
	"lawdesk-backend/pkg/blob"
	"lawdesk-backend/pkg/config"
	"lawdesk-backend/pkg/database"
	"lawdesk-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&docdomain.Document{},
		&clientdomain.Client{},
		&clientdomain.CaseDetails{},
		&clientdomain.Billing{},
		&eventdomain.Event{},
	); err != nil {
		log.Fatalw("Failed to migrate database", "error", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	documentRepository := docRepo.NewDocumentRepository(db)
	clientRepository := clientRepo.NewClientRepository(db)
	billingRepository := clientRepo.NewBillingRepository(db)
	caseDetailsRepository := clientRepo.NewCaseDetailsRepository(db)
	eventRepository := eventRepo.NewEventRepository(db)

	// Blob store for uploaded file content
	blobStore := blob.NewDiskStore(cfg.UploadDir)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg, log)
	docUc := docUsecase.NewDocumentUsecase(documentRepository, blobStore, log)
	clientUc := clientUsecase.NewClientUsecase(clientRepository, billingRepository, caseDetailsRepository)
	eventUc := eventUsecase.NewEventUsecase(eventRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, docUc, clientUc, eventUc, cfg, log)

	// Start server
	log.Infow("Server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatalw("Failed to start server", "error", err)
	}
}
