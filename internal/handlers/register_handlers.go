package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_app/cmd/docs"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", getHome)
	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to set up rate limiting: %w", err)
	}

	// Apply rate limiting and AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterWorkplaceRoutes(v1, service.Workplace)

	workplaceScoped := v1.Group("/workplaces/:workplace_id")
	RegisterGoalRoutes(workplaceScoped, service.Goal)
	RegisterLedgerRoutes(workplaceScoped, service.Ledger)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
