package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultNFOURL         = "https://api.shoonya.com/NFO_symbols.txt.zip"
	DefaultBFOURL         = "https://api.shoonya.com/BFO_symbols.txt.zip"
	DefaultScripMasterURL = "https://margincalculator.angelbroking.com/OpenAPI_File/files/OpenAPIScripMaster.json"
	DefaultTimeout        = 60 * time.Second
	DefaultTimezone       = "Asia/Kolkata"
	DefaultDispatchAt     = "08:30"
	DefaultScripMasterAt  = "08:00"
)

// DefaultIndices is the index list used when the config file names none.
func DefaultIndices() []Index {
	return []Index{
		{Name: "NIFTY", Symbol: "NIFTY", Instrument: "OPTIDX", Exchange: ExchangeNFO, Cadence: CadenceWeekly},
		{Name: "BANKNIFTY", Symbol: "BANKNIFTY", Instrument: "OPTIDX", Exchange: ExchangeNFO, Cadence: CadenceMonthly},
		{Name: "FINNIFTY", Symbol: "FINNIFTY", Instrument: "OPTIDX", Exchange: ExchangeNFO, Cadence: CadenceMonthly},
		{Name: "MIDCPNIFTY", Symbol: "MIDCPNIFTY", Instrument: "OPTIDX", Exchange: ExchangeNFO, Cadence: CadenceMonthly},
		{Name: "SENSEX", Symbol: "BSXOPT", Instrument: "OPTIDX", Exchange: ExchangeBFO, Cadence: CadenceWeekly},
	}
}

func (c *Config) applyDefaults() {
	if c.Sources.NFOURL == "" {
		c.Sources.NFOURL = DefaultNFOURL
	}
	if c.Sources.BFOURL == "" {
		c.Sources.BFOURL = DefaultBFOURL
	}
	if c.Sources.ScripMasterURL == "" {
		c.Sources.ScripMasterURL = DefaultScripMasterURL
	}
	if c.Sources.Timeout == 0 {
		c.Sources.Timeout = DefaultTimeout
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = DefaultTimezone
	}
	if c.Schedule.DispatchAt == "" {
		c.Schedule.DispatchAt = DefaultDispatchAt
	}
	if c.Schedule.ScripMasterAt == "" {
		c.Schedule.ScripMasterAt = DefaultScripMasterAt
	}

	if len(c.Indices) == 0 {
		c.Indices = DefaultIndices()
	}
}
