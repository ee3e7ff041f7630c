package config

import "time"

// Config is the root configuration for the dispatcher.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Sources  SourcesConfig  `yaml:"sources"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Indices  []Index        `yaml:"indices"`
}

// TelegramConfig holds bot delivery credentials.
//
// Both fields may be left empty: a run that produces no artifacts never
// contacts Telegram, and credentials are only enforced at send time.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// SourcesConfig holds the upstream file endpoints.
type SourcesConfig struct {
	NFOURL         string        `yaml:"nfo_url"`          // NFO symbol master (ZIP of CSV)
	BFOURL         string        `yaml:"bfo_url"`          // BFO symbol master (ZIP of CSV)
	ScripMasterURL string        `yaml:"scrip_master_url"` // broker scrip master (JSON)
	Timeout        time.Duration `yaml:"timeout"`
}

// ScheduleConfig holds daily job times, interpreted in Timezone.
type ScheduleConfig struct {
	Timezone      string `yaml:"timezone"`
	DispatchAt    string `yaml:"dispatch_at"`     // HH:MM
	ScripMasterAt string `yaml:"scrip_master_at"` // HH:MM
}

// DispatchConfig holds dispatch policy switches.
type DispatchConfig struct {
	// ForceExpiryToday bypasses same-day filtering: every index that resolves
	// to any future expiry is exported. Diagnostic use only.
	ForceExpiryToday bool `yaml:"force_expiry_today"`

	// KeepLocal writes generated artifacts to the working directory in
	// addition to sending them.
	KeepLocal bool `yaml:"keep_local"`
}

// Index selects the rows of one index from a symbol master.
type Index struct {
	Name       string `yaml:"name"`       // display label, lowercased in export filenames
	Symbol     string `yaml:"symbol"`     // match key against the Symbol column
	Instrument string `yaml:"instrument"` // match key against the Instrument column
	Exchange   string `yaml:"exchange"`   // NFO or BFO, selects the source table
	Cadence    string `yaml:"cadence"`    // WEEKLY or MONTHLY
}

// Exchange segments.
const (
	ExchangeNFO = "NFO"
	ExchangeBFO = "BFO"
)

// Expiry cadences. Both currently select the nearest future expiry; the
// distinction is kept in configuration for when monthly indices need
// month-end handling.
const (
	CadenceWeekly  = "WEEKLY"
	CadenceMonthly = "MONTHLY"
)

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Schedule.Timezone)
}
