package app

import (
	"fmt"
	"strings"
	"time"

	"onepaslots/internal/booking"
	"onepaslots/internal/config"
	"onepaslots/internal/notifier"
	"onepaslots/internal/slots"
	"onepaslots/internal/storage"
)

type clientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func mapClientConfig(cfg *config.Config) (clientConfig, error) {
	timeout, err := config.ParseDurationOrDefault("api.timeout", cfg.API.Timeout, booking.DefaultTimeout)
	if err != nil {
		return clientConfig{}, err
	}
	return clientConfig{
		BaseURL:   strings.TrimSpace(cfg.API.BaseURL),
		UserAgent: strings.TrimSpace(cfg.API.UserAgent),
		Timeout:   timeout,
	}, nil
}

func mapPollerConfig(cfg *config.Config) (booking.PollerConfig, error) {
	delay, err := config.ParseDurationField("api.retry_delay", cfg.API.RetryDelay)
	if err != nil {
		return booking.PollerConfig{}, err
	}
	return booking.PollerConfig{MaxRetries: cfg.API.MaxRetries, RetryDelay: delay}, nil
}

func mapScanConfig(cfg *config.Config) (slots.ScanConfig, error) {
	dateDelay, err := config.ParseDurationField("scan.date_delay", cfg.Scan.DateDelay)
	if err != nil {
		return slots.ScanConfig{}, err
	}
	facilityDelay, err := config.ParseDurationField("scan.facility_delay", cfg.Scan.FacilityDelay)
	if err != nil {
		return slots.ScanConfig{}, err
	}
	loc := time.Local
	if tz := strings.TrimSpace(cfg.Scan.Timezone); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return slots.ScanConfig{}, fmt.Errorf("scan.timezone: invalid %q: %w", tz, err)
		}
	}
	return slots.ScanConfig{
		MaxDaysAhead:  cfg.Scan.MaxDaysAhead,
		DateDelay:     dateDelay,
		FacilityDelay: facilityDelay,
		Location:      loc,
	}, nil
}

func mapNotifierConfig(cfg *config.Config) (notifier.Config, error) {
	timeout, err := config.ParseDurationOrDefault("telegram.timeout", cfg.Telegram.Timeout, 10*time.Second)
	if err != nil {
		return notifier.Config{}, err
	}
	delay, err := config.ParseDurationField("telegram.message_delay", cfg.Telegram.MessageDelay)
	if err != nil {
		return notifier.Config{}, err
	}
	return notifier.Config{
		Token:        cfg.Telegram.Token,
		ChatID:       cfg.Telegram.ChatID,
		APIURL:       cfg.Telegram.APIURL,
		Timeout:      timeout,
		MessageDelay: delay,
	}, nil
}

func mapStorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Driver: strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)),
		Path:   strings.TrimSpace(cfg.Storage.Path),
	}
}
