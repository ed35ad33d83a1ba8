package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"interview-availability/internal/handler/api"
	"interview-availability/internal/handler/middleware"
	"interview-availability/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, availabilityHandler *api.AvailabilityHandler, scheduleHandler *api.ScheduleHandler, healthHandler *api.HealthHandler) error {
	if err := setupMiddleware(engine, cfg, logger); err != nil {
		return err
	}
	setupRoutes(engine, availabilityHandler, scheduleHandler, healthHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) error {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		engine.Use(limiter.Middleware())
	}
	return nil
}

func setupRoutes(engine *gin.Engine, availabilityHandler *api.AvailabilityHandler, scheduleHandler *api.ScheduleHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
		})

		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetResourceAvailability},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: scheduleHandler.GetWeeklySchedule},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
