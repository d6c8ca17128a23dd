package api

import (
	"net/http"
	"time"

	"go-jetlab-backend/config"
	"go-jetlab-backend/internal/delivery/http/middleware"
	"go-jetlab-backend/internal/delivery/http/response"
	"go-jetlab-backend/internal/domain"
	"go-jetlab-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	LimitStore   middleware.CounterStore
	LimitFall    middleware.CounterStore // optional fallback when LimitStore errors
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config.AllowedOrigins, deps.Config.IsProduction())) // CORS must be first
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Log.Error("panic recovered", "error", err, "request_id", c.GetString("RequestID"))
		response.Error(c, http.StatusInternalServerError, "Internal server error", "")
		c.Abort()
	}))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(deps.Config.IsProduction()))

	// Health Check
	r.GET("/health", HealthHandler(deps.Config))

	// Form submission endpoints share one per-IP rate limit window
	form := r.Group("/api")
	form.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitMaxRequests,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:form:",
		Store:     deps.LimitStore,
		Fallback:  deps.LimitFall,
	}))

	NewContactHandler(form, deps.SubmissionUC, deps.Config.FallbackContactEmail)
	NewQuizHandler(form, deps.SubmissionUC, deps.Config.FallbackContactEmail)
	NewNewsletterHandler(form, deps.SubmissionUC, deps.Config.FallbackContactEmail)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Endpoint not found", "")
	})

	return r
}
