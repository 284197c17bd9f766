package config

const (
	DefaultBaseURL   = "https://www.onepa.gov.sg/pacesapi/facilityavailability/GetFacilitySlots"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultOutput    = "available_slots.json"
)

// DefaultFacilities is the fixed scan list, in scan order.
var DefaultFacilities = []FacilityConfig{
	{ID: "teckgheecc_BADMINTONCOURTS", Name: "Teck Ghee CC"},
	{ID: "BidadariCC_BADMINTONCOURTS", Name: "Bidadari CC"},
	{ID: "kallangcc_BADMINTONCOURTS", Name: "Kallang CC"},
	{ID: "braddellheightscc_BADMINTONCOURTS", Name: "Braddell Heights CC"},
	{ID: "canberracc_BADMINTONCOURTS", Name: "Canberra CC"},
	{ID: "potongpasircc_BADMINTONCOURTS", Name: "Potong Pasir CC"},
}

// Default returns a fully populated config.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    DefaultBaseURL,
			UserAgent:  DefaultUserAgent,
			Timeout:    "10s",
			MaxRetries: 3,
			RetryDelay: "20s",
		},
		Scan: ScanConfig{
			MaxDaysAhead:  5,
			DateDelay:     "3s",
			FacilityDelay: "6s",
		},
		Facilities: append([]FacilityConfig(nil), DefaultFacilities...),
		Telegram: TelegramConfig{
			APIURL:       "https://api.telegram.org",
			Timeout:      "10s",
			MessageDelay: "1s",
		},
		Storage: StorageConfig{Driver: "file", Path: DefaultOutput},
		Logging: LoggingConfig{Level: "info", Console: true},
	}
}
