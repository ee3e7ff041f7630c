package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Sources.NFOURL == "" {
		return errors.New("sources.nfo_url is required")
	}
	if c.Sources.BFOURL == "" {
		return errors.New("sources.bfo_url is required")
	}
	if c.Sources.ScripMasterURL == "" {
		return errors.New("sources.scrip_master_url is required")
	}
	if c.Sources.Timeout <= 0 {
		return errors.New("sources.timeout must be > 0")
	}

	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone %q is not a valid zone: %w", c.Schedule.Timezone, err)
	}
	if err := validateClock("schedule.dispatch_at", c.Schedule.DispatchAt); err != nil {
		return err
	}
	if err := validateClock("schedule.scrip_master_at", c.Schedule.ScripMasterAt); err != nil {
		return err
	}

	if len(c.Indices) == 0 {
		return errors.New("at least one index is required")
	}
	for i, idx := range c.Indices {
		if err := idx.validate(fmt.Sprintf("indices[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (idx *Index) validate(prefix string) error {
	if idx.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if idx.Symbol == "" {
		return fmt.Errorf("%s.symbol is required", prefix)
	}
	if idx.Instrument == "" {
		return fmt.Errorf("%s.instrument is required", prefix)
	}
	switch idx.Exchange {
	case ExchangeNFO, ExchangeBFO:
	default:
		return fmt.Errorf("%s.exchange must be %s or %s, got %q", prefix, ExchangeNFO, ExchangeBFO, idx.Exchange)
	}
	switch idx.Cadence {
	case CadenceWeekly, CadenceMonthly:
	default:
		return fmt.Errorf("%s.cadence must be %s or %s, got %q", prefix, CadenceWeekly, CadenceMonthly, idx.Cadence)
	}
	return nil
}

func validateClock(field, value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("%s must be HH:MM, got %q", field, value)
	}
	return nil
}
