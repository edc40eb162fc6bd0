package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Cycle.validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if c.Sharing.TokenBytes < 32 {
		return fmt.Errorf("sharing.token_bytes must be at least 32 (got %d)", c.Sharing.TokenBytes)
	}

	if c.Redis.SharedLinksPerMinute <= 0 {
		return fmt.Errorf("redis.shared_links_per_minute must be > 0 (got %d)", c.Redis.SharedLinksPerMinute)
	}
	if c.Redis.AuthPerMinute <= 0 {
		return fmt.Errorf("redis.auth_per_minute must be > 0 (got %d)", c.Redis.AuthPerMinute)
	}

	return nil
}

func (c *CycleConfig) validate() error {
	if c.MinOverride <= 0 || c.MinOverride > c.MaxOverride {
		return fmt.Errorf("override bounds [%d, %d] are invalid", c.MinOverride, c.MaxOverride)
	}
	if c.DefaultLength < c.MinOverride || c.DefaultLength > c.MaxOverride {
		return fmt.Errorf("default_length %d outside [%d, %d]", c.DefaultLength, c.MinOverride, c.MaxOverride)
	}
	if c.HistoryLimit < 2 || c.HistoryLimit > 6 {
		return fmt.Errorf("history_limit must be within [2, 6] (got %d)", c.HistoryLimit)
	}
	if c.PeriodPageSize <= 0 {
		return fmt.Errorf("period_page_size must be > 0 (got %d)", c.PeriodPageSize)
	}
	return nil
}

func (r *ReminderConfig) validate() error {
	if _, _, err := ParseClock(r.Time); err != nil {
		return fmt.Errorf("time: %w", err)
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc

	if r.LeadDays < 0 {
		return fmt.Errorf("lead_days must be >= 0 (got %d)", r.LeadDays)
	}
	if r.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", r.RetentionDays)
	}
	return nil
}

// ParseClock parses an "HH:MM" wall-clock time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid HH:MM value %q", s)
	}
	return t.Hour(), t.Minute(), nil
}
