// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/typackaging/backend/internal/config"
)

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.Frontend.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"X-Total-Count", "X-Total-Pages"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Environment == "development" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}

	return cors.New(corsConfig)
}
