package model

// Scrip is one record of the broker scrip-master JSON. Every field arrives as
// a string, including strike and lot size; the export package parses strike
// numerically only for sorting.
type Scrip struct {
	Token          string `json:"token"`
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	Expiry         string `json:"expiry"`
	Strike         string `json:"strike"`
	LotSize        string `json:"lotsize"`
	InstrumentType string `json:"instrumenttype"`
	ExchSeg        string `json:"exch_seg"`
	TickSize       string `json:"tick_size"`
}

// ScripColumns is the header row used when scrips are written to a sheet,
// in source JSON order.
var ScripColumns = []string{
	"token", "symbol", "name", "expiry", "strike",
	"lotsize", "instrumenttype", "exch_seg", "tick_size",
}

// Values returns the record's fields in ScripColumns order.
func (s *Scrip) Values() []string {
	return []string{
		s.Token, s.Symbol, s.Name, s.Expiry, s.Strike,
		s.LotSize, s.InstrumentType, s.ExchSeg, s.TickSize,
	}
}
