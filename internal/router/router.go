package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"github.com/stemsi/studyplanner-backend/internal/config"
	"github.com/stemsi/studyplanner-backend/internal/handler"
	"github.com/stemsi/studyplanner-backend/internal/logger"
	"github.com/stemsi/studyplanner-backend/internal/middleware"
	"github.com/stemsi/studyplanner-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	AI      *handler.AIHandler
	Course  *handler.CourseHandler
	Subject *handler.SubjectHandler
	School  *handler.SchoolHandler
	System  *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// A nil limiter disables rate limiting of the generation routes.
func SetupRouter(
	handlers *Handlers,
	cfg *config.Config,
	limiter middleware.Limiter,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.HeaderAPIKey, "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(logger.ServiceName))
	}
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli(1024))

	// ─── Access Gate ───────────────────────────────────────────────────
	// Everything below requires X-API-Key except documentation and static assets.
	router.Use(middleware.APIKeyAuth(cfg.APIKey, log))

	// ─── 0. Service info ───────────────────────────────────────────────
	router.GET("/", handlers.System.Index)
	router.GET("/health", handlers.System.Health)

	// ─── 1. Generation (rate limited, never cached) ────────────────────
	ai := router.Group("")
	if limiter != nil {
		ai.Use(middleware.RateLimit(limiter, log))
	}
	ai.Use(middleware.NoStore())
	{
		ai.POST("/GenerateCourseDescription", handlers.AI.GenerateCourseDescription)
		ai.POST("/AnalyzeCourse/:id", handlers.AI.AnalyzeCourse)
		ai.POST("/PoeticCourse/:id", handlers.AI.PoeticCourse)
		ai.POST("/SuggestStudyPlan", handlers.AI.SuggestStudyPlan)
		ai.POST("/GenerateTimePlanner", handlers.AI.GenerateTimePlanner)
		ai.POST("/Chat", handlers.AI.Chat)
		ai.GET("/Status", handlers.AI.Status)
	}

	// ─── 2. Catalog ────────────────────────────────────────────────────
	api := router.Group("/api")
	{
		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.List)
			courses.GET("/:id", handlers.Course.Get)
			courses.POST("", handlers.Course.Create)
			courses.PUT("/:id", handlers.Course.Update)
			courses.DELETE("/:id", handlers.Course.Delete)
		}

		subjects := api.Group("/subjects")
		{
			subjects.GET("", handlers.Subject.GetAll)
			subjects.GET("/:id", handlers.Subject.Get)
			subjects.POST("", handlers.Subject.Create)
			subjects.PUT("/:id", handlers.Subject.Update)
			subjects.DELETE("/:id", handlers.Subject.Delete)
		}

		schools := api.Group("/schools")
		{
			schools.GET("", handlers.School.List)
			schools.GET("/:id", handlers.School.Get)
			schools.POST("", handlers.School.Create)
			schools.PUT("/:id", handlers.School.Update)
			schools.DELETE("/:id", handlers.School.Delete)
		}
	}

	return router
}
