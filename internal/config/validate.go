package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Loan.validate(); err != nil {
		return fmt.Errorf("loan: %w", err)
	}

	if err := c.Assistant.validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.AssistantPerMinute <= 0 {
			return fmt.Errorf("rate_limit: limits must be > 0 when enabled")
		}
	}

	if c.Kafka.Enabled() && strings.TrimSpace(c.Kafka.Topic) == "" {
		return fmt.Errorf("kafka.topic is required when brokers are configured")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l *LoanConfig) validate() error {
	if l.MaxDays <= 0 || l.MaxDays > domain.MaxLoanDays {
		return fmt.Errorf("max_days must be in 1..%d (got %d)", domain.MaxLoanDays, l.MaxDays)
	}
	if l.DefaultDays <= 0 || l.DefaultDays > l.MaxDays {
		return fmt.Errorf("default_days must be in 1..%d (got %d)", l.MaxDays, l.DefaultDays)
	}
	return nil
}

func (a *AssistantConfig) validate() error {
	if !a.Enabled {
		return nil
	}
	if a.APIKey == "" {
		return fmt.Errorf("api_key is required when the assistant is enabled")
	}
	if a.Model == "" {
		return fmt.Errorf("model is required")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	if a.ContextBooks <= 0 {
		return fmt.Errorf("context_books must be > 0 (got %d)", a.ContextBooks)
	}
	return nil
}
