package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/config"
	"github.com/stemsi/studyplanner-backend/internal/database"
	"github.com/stemsi/studyplanner-backend/internal/handler"
	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/logger"
	"github.com/stemsi/studyplanner-backend/internal/middleware"
	"github.com/stemsi/studyplanner-backend/internal/observability"
	"github.com/stemsi/studyplanner-backend/internal/repository"
	"github.com/stemsi/studyplanner-backend/internal/router"
	"github.com/stemsi/studyplanner-backend/internal/service"
	"github.com/stemsi/studyplanner-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("Starting Study Planner API")

	if cfg.APIKey == "" {
		log.Warn().Msg("API_KEY is not set, every gated request will be rejected with 500")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Tracing ───────────────────────────────────────────────────────
	shutdownTracing, err := observability.Setup(ctx, cfg.Tracing, logger.ServiceName, handler.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	// ─── Completion Provider ───────────────────────────────────────────
	provider, err := llm.New(cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure completion provider")
	}
	info := provider.Info()
	log.Info().Str("vendor", info.Vendor).Str("model", info.Model).Str("endpoint", info.Endpoint).Msg("Completion provider ready")

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Rate Limiter ──────────────────────────────────────────────────
	var limiter middleware.Limiter
	if cfg.RateLimitPerMinute > 0 {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		if rdb != nil {
			defer rdb.Close()
			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		} else {
			limiter = middleware.NewMemoryLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
		}
	} else {
		log.Info().Msg("Rate limiting disabled")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	courseRepo := repository.NewCourseRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	schoolRepo := repository.NewSchoolRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	plannerService := service.NewPlannerService(courseRepo, subjectRepo, provider, log)
	courseService := service.NewCourseService(courseRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, log)
	schoolService := service.NewSchoolService(schoolRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		AI:      handler.NewAIHandler(plannerService, log),
		Course:  handler.NewCourseHandler(courseService, log),
		Subject: handler.NewSubjectHandler(subjectService, log),
		School:  handler.NewSchoolHandler(schoolService, log),
		System:  handler.NewSystemHandler(pool, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, limiter, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	// WriteTimeout leaves room for the slowest provider call.
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.LLM.Timeout + 10*time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// In-flight generations get the same budget as a provider call.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Tracer shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
