package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akio-byte/aki-eduro/internal/badge"
	"github.com/akio-byte/aki-eduro/internal/certificate"
	"github.com/akio-byte/aki-eduro/internal/gemini"
	"github.com/akio-byte/aki-eduro/internal/kiosk"
	"github.com/akio-byte/aki-eduro/internal/shared/config"
	"github.com/akio-byte/aki-eduro/internal/shared/metrics"
	"github.com/akio-byte/aki-eduro/internal/shared/server/middleware"
	"github.com/akio-byte/aki-eduro/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)),
	)

	// Dependencies
	geminiClient := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiTextModel,
		cfg.GeminiImageModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)
	badgeClient := badge.NewClient(badge.Config{
		ClientID:     cfg.OBFClientID,
		ClientSecret: cfg.OBFClientSecret,
		BadgeID:      cfg.OBFBadgeID,
		APIBase:      cfg.OBFAPIBase,
		BadgeName:    cfg.OBFBadgeName,
		IconURL:      cfg.BadgeIconURL,
	})
	svc := &kiosk.Service{
		Text:     geminiClient,
		Image:    geminiClient,
		Badge:    badgeClient,
		Composer: certificate.NewComposer(),
	}
	handler := kiosk.NewHandler(svc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "message": "backend is running"})
	})
	handler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
