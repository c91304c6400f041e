package config

import (
	"fmt"
	"strings"
)

// Validate checks that a loaded Config is usable before the server starts.
func Validate(cfg *Config) error {
	var missing []string

	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if cfg.MongoDBName == "" {
		missing = append(missing, "MONGO_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if len(cfg.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if cfg.PublishCheckHour < 0 || cfg.PublishCheckHour > 23 {
		return fmt.Errorf("PUBLISH_CHECK_HOUR must be between 0 and 23, got %d", cfg.PublishCheckHour)
	}
	return nil
}
