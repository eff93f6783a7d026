package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Services.ConfigDir) == "" {
		return fmt.Errorf("services.config_dir is required")
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if strings.TrimSpace(c.Deposit.DefaultEmailDomain) == "" {
		return fmt.Errorf("deposit.default_email_domain is required")
	}
	if strings.Contains(c.Deposit.DefaultEmailDomain, "@") {
		return fmt.Errorf("deposit.default_email_domain must not contain '@' (got %q)", c.Deposit.DefaultEmailDomain)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", s.PageSize)
	}
	if s.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", s.DefaultLimit)
	}
	if s.MaxLimit < s.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", s.MaxLimit, s.DefaultLimit)
	}
	return nil
}
