package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig is read from the environment when serving the web API.
type ServerConfig struct {
	Addr         string        `env:"FOLIO_ADDR" envDefault:":8080"`
	Mode         string        `env:"GIN_MODE" envDefault:"release"`
	ContentFile  string        `env:"FOLIO_CONTENT"`
	APIKey       string        `env:"GEMINI_API_KEY"`
	Model        string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	GeminiURL    string        `env:"GEMINI_BASE_URL"`
	ContactDelay time.Duration `env:"FOLIO_CONTACT_DELAY" envDefault:"1500ms"`
	KeepAlive    time.Duration `env:"FOLIO_SSE_KEEPALIVE" envDefault:"15s"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
