package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// StoreBackend selects the persistence implementation
type StoreBackend string

const (
	BackendJSON   StoreBackend = "json"
	BackendSQLite StoreBackend = "sqlite"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Store       StoreConfig
	Scoring     ScoringConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StoreConfig holds persistence-related configuration
type StoreConfig struct {
	Dir            string        `env:"TK_STORE_DIR"`
	Filename       string        `env:"TK_STORE_FILENAME"`
	Backend        StoreBackend  `env:"TK_STORE_BACKEND"`
	WriteTimeout   time.Duration `env:"TK_STORE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TK_STORE_DIR_PERMISSIONS"`
}

// ScoringConfig holds importance-scoring configuration
type ScoringConfig struct {
	BoostTags []string `env:"TK_SCORING_BOOST_TAGS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TK_DISPLAY_TIME_FORMAT"`
	DateFormat string `env:"TK_DISPLAY_DATE_FORMAT"`
	IDWidth    int    `env:"TK_DISPLAY_ID_WIDTH"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TK_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"TK_VALIDATION_TITLE_MAX"`
	TagMaxLength   int `env:"TK_VALIDATION_TAG_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TK_APP_TIMEOUT"`
	Verbose bool          `env:"TK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStoreDir := filepath.Join(homeDir, ".tk")

	return &Config{
		Store: StoreConfig{
			Dir:            defaultStoreDir,
			Filename:       "tasks.json",
			Backend:        BackendJSON,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Scoring: ScoringConfig{
			BoostTags: []string{"urgent", "critical", "important"},
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
			DateFormat: "2006-01-02",
			IDWidth:    8,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
			TagMaxLength:   64,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path to the store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.Store.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if dir := os.Getenv("TK_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if filename := os.Getenv("TK_STORE_FILENAME"); filename != "" {
		c.Store.Filename = filename
	}
	if backend := os.Getenv("TK_STORE_BACKEND"); backend != "" {
		c.Store.Backend = StoreBackend(backend)
	}
	if timeout := os.Getenv("TK_STORE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Store.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TK_STORE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Store.DirPermissions = uint32(p)
		}
	}

	// Scoring configuration
	if tags := os.Getenv("TK_SCORING_BOOST_TAGS"); tags != "" {
		c.Scoring.BoostTags = splitAndTrim(tags)
	}

	// Display configuration
	if format := os.Getenv("TK_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("TK_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if width := os.Getenv("TK_DISPLAY_ID_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil {
			c.Display.IDWidth = n
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TK_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_TAG_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TagMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate checks the configuration for invalid combinations
func (c *Config) Validate() error {
	if c.Store.Dir == "" {
		return fmt.Errorf("store directory must not be empty")
	}
	if c.Store.Filename == "" {
		return fmt.Errorf("store filename must not be empty")
	}
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (valid: json, sqlite)", c.Store.Backend)
	}
	if c.Validation.TitleMinLength < 1 {
		return fmt.Errorf("minimum title length must be at least 1")
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return fmt.Errorf("maximum title length must not be below the minimum")
	}
	if c.Display.IDWidth < 4 {
		return fmt.Errorf("id display width must be at least 4")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}

// splitAndTrim splits a comma-separated list and trims each element
func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
