package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"summarizer-backend/internal/meeting/repository"
	"summarizer-backend/internal/meeting/usecase"
	"summarizer-backend/pkg/ai"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/groq"
	"summarizer-backend/pkg/openai"
)

type Handler struct {
	meetingUsecase usecase.MeetingUsecase
	config         *config.Config
}

func NewHandler(cfg *config.Config, meetings repository.MeetingRepository, shares repository.EmailShareRepository) *Handler {
	// Build the summary chain: Groq first, OpenAI second, rule-based
	// fallback terminal. Unconfigured adapters short-circuit on their own,
	// so both tiers are always registered.
	chain := ai.NewChain(
		groq.NewService(cfg.GroqAPIKey, cfg.GroqModel),
		openai.NewService(cfg.OpenAIKey, cfg.OpenAIModel),
	)
	log.Printf("[AI] summary chain initialized (groq configured: %t, openai configured: %t)",
		cfg.GroqAPIKey != "", cfg.OpenAIKey != "")

	meetingUsecase := usecase.NewMeetingUsecase(meetings, shares, chain)

	return &Handler{
		meetingUsecase: meetingUsecase,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.meetingUsecase)

	return r.Run(addr)
}
