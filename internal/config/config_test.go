package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HF_TOKEN", "MODEL_NAME", "MODEL_BASE_URL", "MODEL_TEMPERATURE",
		"MODEL_TIMEOUT", "TRANSLATE_TIMEOUT", "TRANSLATE_BASE_URL", "DISPATCH_MODE", "DISPATCH_CONCURRENCY", "PERSONA_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Model.Model != DefaultModelName || cfg.Model.BaseURL != DefaultModelBaseURL {
		t.Fatalf("unexpected model config %+v", cfg.Model)
	}
	if cfg.Model.Temperature != DefaultTemperature {
		t.Fatalf("unexpected temperature %v", cfg.Model.Temperature)
	}
	if cfg.Model.Enabled() {
		t.Fatal("model must be disabled without HF_TOKEN")
	}
	if cfg.Model.Timeout != 60*time.Second || cfg.Translate.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeouts %v %v", cfg.Model.Timeout, cfg.Translate.Timeout)
	}
	if cfg.Dispatch.Mode != ModeIndividual || cfg.Dispatch.Concurrency != 4 {
		t.Fatalf("unexpected dispatch config %+v", cfg.Dispatch)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("HF_TOKEN", " hf_secret ")
	t.Setenv("MODEL_TIMEOUT", "5")
	t.Setenv("TRANSLATE_TIMEOUT", "1500ms")
	t.Setenv("DISPATCH_MODE", "Combined")
	t.Setenv("DISPATCH_CONCURRENCY", "0")
	t.Setenv("PERSONA_FILE", "/etc/personas.toml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Model.APIKey != "hf_secret" || !cfg.Model.Enabled() {
		t.Fatalf("unexpected api key handling %+v", cfg.Model)
	}
	if cfg.Model.Timeout != 5*time.Second {
		t.Fatalf("unexpected model timeout %v", cfg.Model.Timeout)
	}
	if cfg.Translate.Timeout != 1500*time.Millisecond {
		t.Fatalf("unexpected translate timeout %v", cfg.Translate.Timeout)
	}
	if cfg.Dispatch.Mode != ModeCombined || cfg.Dispatch.Concurrency != 1 {
		t.Fatalf("unexpected dispatch config %+v", cfg.Dispatch)
	}
	if cfg.PersonaFile != "/etc/personas.toml" {
		t.Fatalf("unexpected persona file %q", cfg.PersonaFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":              "80 80",
		"MODEL_TEMPERATURE": "warm",
		"MODEL_TIMEOUT":     "-3",
		"DISPATCH_MODE":     "batch",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
