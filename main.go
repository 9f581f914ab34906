package main

import (
	"log"

	api "summarizer-backend/cmd/api"
	"summarizer-backend/internal/meeting/domain"
	"summarizer-backend/internal/meeting/repository"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.MeetingTranscript{}, &domain.EmailShare{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	meetingRepo := repository.NewMeetingRepository(db)
	shareRepo := repository.NewEmailShareRepository(db)

	// Initialize HTTP handler
	handler := api.NewHandler(cfg, meetingRepo, shareRepo)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
