package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks the config for values that would make a run meaningless.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(strings.TrimSpace(c.API.BaseURL)); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url: invalid url %q", c.API.BaseURL))
	}
	if c.API.MaxRetries < 0 {
		errs = append(errs, errors.New("api.max_retries must be >= 0"))
	}
	if c.Scan.MaxDaysAhead < 0 {
		errs = append(errs, errors.New("scan.max_days_ahead must be >= 0"))
	}
	if tz := strings.TrimSpace(c.Scan.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, fmt.Errorf("scan.timezone: %w", err))
		}
	}

	for path, raw := range map[string]string{
		"api.timeout":            c.API.Timeout,
		"api.retry_delay":        c.API.RetryDelay,
		"scan.date_delay":        c.Scan.DateDelay,
		"scan.facility_delay":    c.Scan.FacilityDelay,
		"telegram.timeout":       c.Telegram.Timeout,
		"telegram.message_delay": c.Telegram.MessageDelay,
	} {
		if _, err := ParseDurationField(path, raw); err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.Facilities) == 0 {
		errs = append(errs, errors.New("facilities: at least one facility is required"))
	}
	seen := make(map[string]struct{}, len(c.Facilities))
	for i, f := range c.Facilities {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("facilities[%d].id is required", i))
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("facilities[%d]: duplicate id %q", i, id))
		}
		seen[id] = struct{}{}
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "", "file":
		if strings.TrimSpace(c.Storage.Path) == "" {
			errs = append(errs, errors.New("storage.path is required for file driver"))
		}
	case "none":
	default:
		errs = append(errs, fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver))
	}

	return errors.Join(errs...)
}
