package v1

import (
	"net/http"
	"time"

	"go-recruitment-ops/config"
	"go-recruitment-ops/internal/delivery/http/middleware"
	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DashboardUC domain.DashboardUsecase
	SearchUC    domain.SearchUsecase
	ClientUC    domain.ClientUsecase
	ProjectUC   domain.ProjectUsecase
	CandidateUC domain.CandidateUsecase
	ShortlistUC domain.ShortlistUsecase
	HealthUC    usecase.HealthUsecase
	Redis       *goredis.Client // nil selects in-memory rate limiting
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware([]string{deps.Config.FrontendURL}, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != usecase.HealthOK {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	exportLimit := middleware.RateLimitMiddleware(deps.Redis, middleware.ExportRateLimitConfig())

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.DefaultRateLimitConfig(deps.Config.RateLimitThreshold, window)))
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))
	{
		NewDashboardHandler(protected, deps.DashboardUC)
		NewSearchHandler(protected, deps.SearchUC, exportLimit)
		NewClientHandler(protected, deps.ClientUC)
		NewProjectHandler(protected, deps.ProjectUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewShortlistHandler(protected, deps.ShortlistUC, exportLimit)
	}

	return r
}
