// Package config centralizes application configuration: the tunables from
// the streaming protocol's configuration surface, HTTP server settings, and
// the LLM planner's remote-call settings. Defaults mirror the recommended
// values. The HTTP port, the planner connection settings, the planner cache
// TTL and the planner's max attempts can be overridden via environment
// variables, with an optional repo-root .env file loaded for local
// development; the other limits always keep their defaults.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Limits holds the streaming protocol's configured bounds and delays.
type Limits struct {
	MaxComponentsPerResponse int
	MaxTablesPerResponse     int
	MaxChartsPerResponse     int
	MaxTableRows             int
	MaxChartPoints           int

	WordDelay  time.Duration
	CharDelay  time.Duration
	FrameDelay time.Duration

	TableRowDelay   time.Duration
	ChartPointDelay time.Duration

	SingleDelayedCardWait time.Duration
	MultiDelayedCardWait  time.Duration

	LLMCacheTTL             time.Duration
	LLMMaxAttempts          int
	LLMMaxComponentsPerPlan int
	LLMRequestTimeout       time.Duration
}

// DefaultLimits returns the streaming protocol's recommended defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxComponentsPerResponse: 5,
		MaxTablesPerResponse:     3,
		MaxChartsPerResponse:     3,
		MaxTableRows:             20,
		MaxChartPoints:           50,

		WordDelay:  100 * time.Millisecond,
		CharDelay:  15 * time.Millisecond,
		FrameDelay: 100 * time.Millisecond,

		TableRowDelay:   200 * time.Millisecond,
		ChartPointDelay: 200 * time.Millisecond,

		SingleDelayedCardWait: 5 * time.Second,
		MultiDelayedCardWait:  3 * time.Second,

		LLMCacheTTL:             time.Hour,
		LLMMaxAttempts:          3,
		LLMMaxComponentsPerPlan: 5,
		LLMRequestTimeout:       30 * time.Second,
	}
}

// HTTPServerConfig holds the HTTP listener's tunables.
type HTTPServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PlannerConfig holds the LLM collaborator's connection details. This
// just carries whatever the deployment needs to reach the remote service.
type PlannerConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// AppConfig is the top-level configuration for the service.
type AppConfig struct {
	Limits  Limits
	HTTPCfg HTTPServerConfig
	Planner PlannerConfig
}

// LoadAppConfig loads a repo-root .env (if present) and overlays environment
// variables on top of sane defaults.
func LoadAppConfig() *AppConfig {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Limits: DefaultLimits(),
		HTTPCfg: HTTPServerConfig{
			Port:         envInt("PORT", 8080),
			ReadTimeout:  0,
			WriteTimeout: 0,
			IdleTimeout:  120 * time.Second,
		},
		Planner: PlannerConfig{
			BaseURL: envStr("LLM_BASE_URL", ""),
			APIKey:  envStr("LLM_API_KEY", ""),
			Model:   envStr("LLM_MODEL", "gpt-4o-mini"),
		},
	}

	if v := os.Getenv("LLM_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.LLMCacheTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Limits.LLMMaxAttempts = n
		}
	}

	return cfg
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
