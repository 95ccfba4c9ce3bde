package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidatePoolSize validates connection pool limits
func ValidatePoolSize(maxOpen, maxIdle int) error {
	if maxOpen <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
	}
	if maxOpen > 100 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS too high (max 100)")
	}
	if maxIdle < 0 || maxIdle > maxOpen {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	return nil
}

// ValidateDriver validates the database driver name
func ValidateDriver(driver string) error {
	switch driver {
	case "postgres", "sqlite3":
		return nil
	}
	return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite3, got %q", driver)
}

// ValidateAPIKey validates an OpenAI API key
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if !strings.HasPrefix(apiKey, "sk-") {
		return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(apiKey) < 20 {
		return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%s port invalid: %q", name, port)
	}
	return nil
}
