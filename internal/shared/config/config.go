package config

import (
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration, built once at startup and
// passed into the clients that need it.
type Config struct {
	Port            string   `env:"PORT" envDefault:"8080"`
	Env             string   `env:"ENV" envDefault:"dev"`
	CORSAllowOrigin []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	GeminiAPIKey         string `env:"GEMINI_API_KEY"`
	GeminiTextModel      string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiImageModel     string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-3-pro-image-preview"`
	GeminiTimeoutSeconds int    `env:"GEMINI_TIMEOUT_SECONDS" envDefault:"120"`

	OBFClientID     string `env:"OBF_CLIENT_ID"`
	OBFClientSecret string `env:"OBF_CLIENT_SECRET"`
	OBFBadgeID      string `env:"OBF_BADGE_ID"`
	OBFAPIBase      string `env:"OBF_API_BASE" envDefault:"https://openbadgefactory.com"`
	OBFBadgeName    string `env:"OBF_BADGE_NAME" envDefault:"Joulun osaaja"`

	BadgeIconURL string `env:"BADGE_ICON_URL" envDefault:"https://cdn-icons-png.flaticon.com/512/6192/6192737.png"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"0"`
}

// Load reads configuration from environment variables with sensible defaults.
// Missing credentials are not fatal here; endpoints that need them respond
// with an explicit 500 body instead of silently no-opping.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Printf("config parse: %v", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	return cfg
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
