package config

// Config is the single configuration value object for a run.
//
// Every field has a default (see Default) matching the checker's historical
// constants, so an empty or missing config file is valid. The Telegram
// credential pair normally comes from the environment.
//
// All durations are Go duration strings (e.g. "500ms", "10s", "1m") or
// quoted bare numbers of seconds ("20").
type Config struct {
	API        APIConfig        `json:"api"`
	Scan       ScanConfig       `json:"scan"`
	Facilities []FacilityConfig `json:"facilities"`
	Telegram   TelegramConfig   `json:"telegram"`
	Storage    StorageConfig    `json:"storage"`
	Logging    LoggingConfig    `json:"logging"`
}

// APIConfig controls requests to the booking API.
type APIConfig struct {
	BaseURL   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
	Timeout   string `json:"timeout"`

	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int    `json:"max_retries"`
	RetryDelay string `json:"retry_delay"`
}

// ScanConfig controls the per-facility date walk.
type ScanConfig struct {
	// MaxDaysAhead is the safety limit: a facility is checked for today plus
	// at most this many following days.
	MaxDaysAhead  int    `json:"max_days_ahead"`
	DateDelay     string `json:"date_delay"`
	FacilityDelay string `json:"facility_delay"`

	// Timezone used to determine "today". Empty means process local time.
	Timezone string `json:"timezone,omitempty"`
}

// FacilityConfig maps a booking API facility id to its display name.
type FacilityConfig struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// TelegramConfig controls the summary notification.
//
// Token and ChatID are usually left empty here and supplied through
// TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID. If either is missing the
// notification is skipped.
type TelegramConfig struct {
	Token        string `json:"token,omitempty"`
	ChatID       string `json:"chat_id,omitempty"`
	APIURL       string `json:"api_url,omitempty"`
	Timeout      string `json:"timeout"`
	MessageDelay string `json:"message_delay"`
}

// StorageConfig controls where the run's results are written.
//
// Example:
//
//	"storage": { "driver": "file", "path": "./available_slots.json" }
type StorageConfig struct {
	Driver string `json:"driver"`
	Path   string `json:"path"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// Enabled reports whether both halves of the credential pair are present.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ChatID != ""
}

// FacilityNames returns the id -> display name lookup table.
func (c *Config) FacilityNames() map[string]string {
	out := make(map[string]string, len(c.Facilities))
	for _, f := range c.Facilities {
		if f.Name != "" {
			out[f.ID] = f.Name
		}
	}
	return out
}
