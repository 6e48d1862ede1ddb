package config

import (
	"os"
	"testing"
)

func TestDefaultLimitsSane(t *testing.T) {
	lim := DefaultLimits()
	if lim.MaxComponentsPerResponse <= 0 {
		t.Fatalf("expected positive MaxComponentsPerResponse")
	}
	if lim.LLMMaxAttempts <= 0 {
		t.Fatalf("expected positive LLMMaxAttempts")
	}
	if lim.SingleDelayedCardWait <= lim.MultiDelayedCardWait {
		t.Fatalf("expected single-delayed wait (%v) to exceed multi-delayed wait (%v)",
			lim.SingleDelayedCardWait, lim.MultiDelayedCardWait)
	}
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	os.Setenv("PORT", "9191")
	os.Setenv("LLM_MAX_ATTEMPTS", "5")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("LLM_MAX_ATTEMPTS")

	cfg := LoadAppConfig()
	if cfg.HTTPCfg.Port != 9191 {
		t.Fatalf("expected port 9191, got %d", cfg.HTTPCfg.Port)
	}
	if cfg.Limits.LLMMaxAttempts != 5 {
		t.Fatalf("expected 5 max attempts, got %d", cfg.Limits.LLMMaxAttempts)
	}
}

func TestLoadAppConfigDefaultsWithoutEnv(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("LLM_MAX_ATTEMPTS")

	cfg := LoadAppConfig()
	if cfg.HTTPCfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.HTTPCfg.Port)
	}
}
