package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// It normalizes driver and provider names and fills the provider's default
// model when none is configured.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.validateStorage(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.History.DefaultLimit <= 0 {
		return fmt.Errorf("history.default_limit must be > 0 (got %d)", c.History.DefaultLimit)
	}
	if c.History.MaxLimit < c.History.DefaultLimit {
		return fmt.Errorf("history.max_limit must be >= default_limit (got %d < %d)",
			c.History.MaxLimit, c.History.DefaultLimit)
	}

	if c.User.PasswordHashCost < 4 || c.User.PasswordHashCost > 31 {
		return fmt.Errorf("user.password_hash_cost must be in 4..31 (got %d)", c.User.PasswordHashCost)
	}

	return nil
}

func (c *Config) validateStorage() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Storage.AnalyticsDriver = strings.ToLower(strings.TrimSpace(c.Storage.AnalyticsDriver))

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
		if c.Database.MaxConns <= 0 {
			return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns must be in 0..max_conns (got %d)", c.Database.MinConns)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for driver %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory, postgres or sqlite)", c.Storage.Driver)
	}

	switch c.Storage.AnalyticsDriver {
	case "", AnalyticsDriverStore:
		c.Storage.AnalyticsDriver = AnalyticsDriverStore
	case AnalyticsDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for analytics driver %q", AnalyticsDriverRedis)
		}
	default:
		return fmt.Errorf("unknown analytics driver %q (want store or redis)", c.Storage.AnalyticsDriver)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))

	switch l.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.Provider)
		}
	case ProviderFake:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}

	if l.Model == "" {
		l.Model = DefaultModel(l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in 0..2 (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}

	return nil
}
