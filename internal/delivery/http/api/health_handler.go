package api

import (
	"net/http"
	"time"

	"go-jetlab-backend/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and the configured delivery target.
func HealthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"message":     "JetLab email service is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"emailTarget": cfg.ContactEmailTo,
		})
	}
}
