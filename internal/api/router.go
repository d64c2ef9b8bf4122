package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/priyanshupaikra/Inter-AI/internal/api/handler"
	customMiddleware "github.com/priyanshupaikra/Inter-AI/internal/api/middleware"
	"github.com/priyanshupaikra/Inter-AI/internal/config"
	"github.com/priyanshupaikra/Inter-AI/internal/llm"
	"github.com/priyanshupaikra/Inter-AI/internal/llm/gemini"
	"github.com/priyanshupaikra/Inter-AI/internal/llm/openai"
	"github.com/priyanshupaikra/Inter-AI/internal/llm/scripted"
	"github.com/priyanshupaikra/Inter-AI/internal/repository/postgres"
	"github.com/priyanshupaikra/Inter-AI/internal/repository/redis"
	"github.com/priyanshupaikra/Inter-AI/internal/security"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
	"github.com/priyanshupaikra/Inter-AI/internal/speech"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories
	interviewerRepo := postgres.NewInterviewerRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	transcriptRepo := postgres.NewTranscriptRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	// Rate limiter
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)

	// LLM Router with providers. The scripted provider is always registered
	// and doubles as the fallback.
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)
	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.LLM.DefaultProvider)

	fallback := scripted.NewProvider()
	llmRouter.RegisterProvider(fallback)

	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini))
	} else {
		log.Warn().Msg("Gemini API Key is empty, skipping registration")
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}

	// Speech-to-text
	transcriber := speech.NewGoogleTranscriber(cfg.Speech)

	// Services
	authService := service.NewAuthService(interviewerRepo, jwtManager)
	interviewerService := service.NewInterviewerService(interviewerRepo)
	studentService := service.NewStudentService(studentRepo)
	sessionService := service.NewSessionService(sessionRepo, interviewerRepo, studentRepo)
	questionService := service.NewQuestionService(questionRepo, sessionRepo)
	transcriptService := service.NewTranscriptService(transcriptRepo, sessionRepo, transcriber, cfg.Storage.AudioDir)
	reportService := service.NewReportService(
		reportRepo,
		sessionRepo,
		interviewerRepo,
		studentRepo,
		questionRepo,
		transcriptRepo,
		cfg.Storage.ReportDir,
	)
	conductor := service.NewConductor(
		sessionRepo,
		questionRepo,
		transcriptRepo,
		studentRepo,
		llmRouter,
		fallback,
		cfg.LLM.Timeout,
		cfg.LLM.HistoryWindow,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	interviewerHandler := handler.NewInterviewerHandler(interviewerService)
	studentHandler := handler.NewStudentHandler(studentService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	questionHandler := handler.NewQuestionHandler(questionService)
	transcriptHandler := handler.NewTranscriptHandler(transcriptService)
	interviewHandler := handler.NewInterviewHandler(conductor)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Student-facing routes (public): the candidate side of the interview
		// authenticates by knowing the opaque session token
		r.Get("/sessions/token/{token}", sessionHandler.GetByToken)
		r.Post("/interview", interviewHandler.Conduct)
		r.Post("/transcripts", transcriptHandler.Create)
		r.Post("/transcripts/voice-to-text", transcriptHandler.VoiceToText)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Get("/me", authHandler.Me(interviewerService))
			r.Get("/llm-providers", handler.ListLLMProviders(llmRouter))

			r.Route("/interviewers", func(r chi.Router) {
				r.Get("/", interviewerHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", interviewerHandler.Get)
					r.Patch("/", interviewerHandler.Update)
					r.Delete("/", interviewerHandler.Delete)
				})
			})

			r.Route("/students", func(r chi.Router) {
				r.Get("/", studentHandler.List)
				r.Post("/", studentHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", studentHandler.Get)
					r.Patch("/", studentHandler.Update)
					r.Delete("/", studentHandler.Delete)
				})
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", sessionHandler.List)
				r.Post("/", sessionHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", sessionHandler.Get)
					r.Patch("/", sessionHandler.Update)
					r.Delete("/", sessionHandler.Delete)
					r.Post("/start", sessionHandler.Start)
					r.Post("/end", sessionHandler.End)
					r.Post("/cancel", sessionHandler.Cancel)
				})
			})

			r.Route("/questions", func(r chi.Router) {
				r.Get("/", questionHandler.List)
				r.Post("/", questionHandler.Create)
				r.Post("/bulk", questionHandler.CreateBulk)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", questionHandler.Get)
					r.Patch("/", questionHandler.Update)
					r.Delete("/", questionHandler.Delete)
				})
			})

			r.Get("/transcripts", transcriptHandler.List)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Post("/generate", reportHandler.Generate)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", reportHandler.Get)
					r.Get("/download", reportHandler.Download)
					r.Delete("/", reportHandler.Delete)
				})
			})
		})
	})

	return r
}
