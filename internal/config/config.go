package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

const (
	DefaultModelName    = "meta-llama/Llama-3.1-8B-Instruct:cerebras"
	DefaultModelBaseURL = "https://router.huggingface.co/v1"
	DefaultTemperature  = 0.7

	DefaultTranslateBaseURL = "https://translate.googleapis.com"
)

// DispatchMode selects how persona answers are requested from the model.
type DispatchMode string

const (
	ModeIndividual DispatchMode = "individual"
	ModeCombined   DispatchMode = "combined"
)

// ParseDispatchMode accepts "individual" or "combined"; empty means individual.
func ParseDispatchMode(raw string) (DispatchMode, error) {
	switch DispatchMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeIndividual:
		return ModeIndividual, nil
	case ModeCombined:
		return ModeCombined, nil
	default:
		return "", fmt.Errorf("invalid dispatch mode %q", raw)
	}
}

// Config aggregates the service configuration.
type Config struct {
	Server    ServerConfig
	Model     ModelConfig
	Translate TranslateConfig
	Dispatch  DispatchConfig
	// PersonaFile optionally replaces the built-in persona registry.
	PersonaFile string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	modelCfg, err := loadModelConfig()
	if err != nil {
		return nil, err
	}

	translate, err := loadTranslateConfig()
	if err != nil {
		return nil, err
	}

	dispatch, err := loadDispatchConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:      server,
		Model:       modelCfg,
		Translate:   translate,
		Dispatch:    dispatch,
		PersonaFile: strings.TrimSpace(os.Getenv("PERSONA_FILE")),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// ":8080" or "127.0.0.1:8080" are taken as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ModelConfig describes the hosted chat-completion endpoint.
type ModelConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
}

// Enabled reports whether the endpoint credential is present.
func (c ModelConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel creates the chat model for the OpenAI-compatible endpoint.
func (c ModelConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("HF_TOKEN is not set")
	}

	temperature := float32(c.Temperature)
	// A failed call must surface as a sentinel answer, never be re-sent.
	noRetry := 0
	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: &temperature,
		RetryTimes:  &noRetry,
	}
	if c.Timeout > 0 {
		timeout := c.Timeout
		cfg.Timeout = &timeout
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadModelConfig() (ModelConfig, error) {
	temperature, err := parseOptionalFloatEnv("MODEL_TEMPERATURE")
	if err != nil {
		return ModelConfig{}, err
	}
	temp := DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}

	timeout, err := parseDurationEnv("MODEL_TIMEOUT", 60*time.Second)
	if err != nil {
		return ModelConfig{}, err
	}

	return ModelConfig{
		APIKey:      strings.TrimSpace(os.Getenv("HF_TOKEN")),
		Model:       getEnvOrDefault("MODEL_NAME", DefaultModelName),
		BaseURL:     getEnvOrDefault("MODEL_BASE_URL", DefaultModelBaseURL),
		Temperature: temp,
		Timeout:     timeout,
	}, nil
}

// TranslateConfig describes the translation endpoint.
type TranslateConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadTranslateConfig() (TranslateConfig, error) {
	timeout, err := parseDurationEnv("TRANSLATE_TIMEOUT", 30*time.Second)
	if err != nil {
		return TranslateConfig{}, err
	}
	return TranslateConfig{
		BaseURL: getEnvOrDefault("TRANSLATE_BASE_URL", DefaultTranslateBaseURL),
		Timeout: timeout,
	}, nil
}

// DispatchConfig controls how a submission fans out.
type DispatchConfig struct {
	Mode        DispatchMode
	Concurrency int
}

func loadDispatchConfig() (DispatchConfig, error) {
	mode, err := ParseDispatchMode(os.Getenv("DISPATCH_MODE"))
	if err != nil {
		return DispatchConfig{}, err
	}

	concurrency := 4
	if override, err := parseOptionalIntEnv("DISPATCH_CONCURRENCY"); err != nil {
		return DispatchConfig{}, err
	} else if override != nil {
		if *override < 1 {
			concurrency = 1
		} else {
			concurrency = *override
		}
	}

	return DispatchConfig{Mode: mode, Concurrency: concurrency}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	// bare numbers are seconds
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
