package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/saavnsource/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port             string
	Enabled          bool
	APIBaseURL       string
	MaxSearchResults int
	Quality          string
	HTTPTimeout      time.Duration
	RequestInterval  time.Duration
	LogLevel         string
	LogFormat        string

	// parseErrors collects values that could not be parsed during Load so
	// Validate can report them together with the semantic checks.
	parseErrors []string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	c := &Config{
		Port:       getEnv("PORT", constants.DefaultPort),
		APIBaseURL: strings.TrimRight(getEnv("JIOSAAVN_API_BASE_URL", constants.DefaultAPIBaseURL), "/"),
		Quality:    strings.ToLower(getEnv("AUDIO_QUALITY", constants.DefaultQuality)),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}

	c.Enabled = c.getEnvBool("JIOSAAVN_ENABLED", true)
	c.MaxSearchResults = c.getEnvInt("MAX_SEARCH_RESULTS", constants.DefaultMaxSearchResults)
	c.HTTPTimeout = c.getEnvDuration("HTTP_TIMEOUT", constants.DefaultHTTPTimeout)
	c.RequestInterval = c.getEnvDuration("REQUEST_INTERVAL", constants.DefaultRequestInterval)

	return c
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	errors := append([]string(nil), c.parseErrors...)

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate APIBaseURL
	if c.APIBaseURL == "" {
		errors = append(errors, "JIOSAAVN_API_BASE_URL cannot be empty")
	} else if u, err := url.Parse(c.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("JIOSAAVN_API_BASE_URL is not a valid URL: %s", c.APIBaseURL))
	}

	if c.MaxSearchResults < 1 {
		errors = append(errors, fmt.Sprintf("MAX_SEARCH_RESULTS must be positive, got: %d", c.MaxSearchResults))
	}

	// Unknown qualities fall back to high at stream time, only empty is rejected.
	if c.Quality == "" {
		errors = append(errors, "AUDIO_QUALITY cannot be empty")
	}

	if c.HTTPTimeout < 0 {
		errors = append(errors, fmt.Sprintf("HTTP_TIMEOUT cannot be negative, got: %s", c.HTTPTimeout))
	}
	if c.RequestInterval < 0 {
		errors = append(errors, fmt.Sprintf("REQUEST_INTERVAL cannot be negative, got: %s", c.RequestInterval))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func (c *Config) getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be an integer, got: %s", key, raw))
		return fallback
	}
	return v
}

func (c *Config) getEnvBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a boolean, got: %s", key, raw))
		return fallback
	}
	return v
}

func (c *Config) getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a duration, got: %s", key, raw))
		return fallback
	}
	return v
}
