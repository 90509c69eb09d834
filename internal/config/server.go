package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// ServerConfig holds the API settings, read from the environment.
type ServerConfig struct {
	Port         string
	Env          string
	PresetDir    string
	LogLevel     string
	RateLimitRPS float64
	RateBurst    int
}

// ServerFromEnv reads API_PORT, API_ENV, PRESET_DIR, LOG_LEVEL, RATE_LIMIT_RPS and RATE_LIMIT_BURST.
func ServerFromEnv() ServerConfig {
	cfg := ServerConfig{
		Port:         "8080",
		Env:          os.Getenv("API_ENV"),
		PresetDir:    os.Getenv("PRESET_DIR"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		RateLimitRPS: 20,
		RateBurst:    40,
	}
	if p := os.Getenv("API_PORT"); p != "" {
		cfg.Port = p
	}
	if cfg.PresetDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.PresetDir = filepath.Join(wd, "presets")
		} else {
			cfg.PresetDir = "./presets"
		}
	}
	if abs, err := filepath.Abs(cfg.PresetDir); err == nil {
		cfg.PresetDir = abs
	}
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil {
		cfg.RateLimitRPS = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil {
		cfg.RateBurst = v
	}
	return cfg
}

// Production reports whether API_ENV=production.
func (c ServerConfig) Production() bool {
	return c.Env == "production"
}
