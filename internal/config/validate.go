package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	if err := c.Mood.validate(); err != nil {
		return fmt.Errorf("mood: %w", err)
	}

	return nil
}

func (m *MoodConfig) validate() error {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", m.Timezone, err)
	}
	m.Location = loc

	if m.DefaultStatsWindow < 1 || m.DefaultStatsWindow > 366 {
		return fmt.Errorf("default_stats_window must be in 1..366 (got %d)", m.DefaultStatsWindow)
	}
	if m.HistoryPageSize < 1 || m.HistoryPageSize > 200 {
		return fmt.Errorf("history_page_size must be in 1..200 (got %d)", m.HistoryPageSize)
	}
	if m.ExportMaxRecords <= 0 {
		return fmt.Errorf("export_max_records must be > 0 (got %d)", m.ExportMaxRecords)
	}
	return nil
}
