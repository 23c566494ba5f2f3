package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/adilcr01/adil-dev/internal/content"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`

	// Links shown on the page and by the assistant
	ResumeURL            string `env:"RESUME_URL"`
	GitHubProfileURL     string `env:"GITHUB_PROFILE_URL"`
	ThyroidPredictionURL string `env:"THYROID_PREDICTION_URL"`
	FlightPredictionURL  string `env:"FLIGHT_PREDICTION_URL"`
	RAGEngineURL         string `env:"RAG_ENGINE_URL"`

	// Chat widget and contact form
	ChatReplyDelay     time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"1s"`
	ChatSessionTTL     time.Duration `env:"CHAT_SESSION_TTL" envDefault:"30m"`
	ContactSubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1500ms"`

	// Admin
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Privacy
	TrackVisitors       bool          `env:"TRACK_VISITORS" envDefault:"true"`
	VisitorRetention    time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	MaintenanceSchedule string        `env:"MAINTENANCE_SCHEDULE" envDefault:"@hourly"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ChatReplyDelay < 0 || c.ContactSubmitDelay < 0 {
		return errors.New("delays must not be negative")
	}
	if c.ChatSessionTTL <= 0 {
		return errors.New("CHAT_SESSION_TTL must be positive")
	}
	if c.VisitorRetention <= 0 {
		return errors.New("VISITOR_RETENTION must be positive")
	}
	if _, err := cron.ParseStandard(c.MaintenanceSchedule); err != nil {
		return fmt.Errorf("invalid MAINTENANCE_SCHEDULE %q: %w", c.MaintenanceSchedule, err)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Links returns the deployment URLs used by the page content.
func (c *Config) Links() content.Links {
	return content.Links{
		Resume:            c.ResumeURL,
		GitHubProfile:     c.GitHubProfileURL,
		ThyroidPrediction: c.ThyroidPredictionURL,
		FlightPrediction:  c.FlightPredictionURL,
		RAGEngine:         c.RAGEngineURL,
	}
}

// AdminCredentials returns the configured admin login, falling back to the
// development defaults. usingDefaults reports whether any default was used.
func (c *Config) AdminCredentials() (username, password string, usingDefaults bool) {
	username, password = c.AdminUsername, c.AdminPassword
	if username == "" {
		username = defaultAdminUsername
		usingDefaults = true
	}
	if password == "" {
		password = defaultAdminPassword
		usingDefaults = true
	}
	return username, password, usingDefaults
}
