package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/model"
)

// Workbook builds the daily scrip-master workbook: one sheet per exchange
// segment (NFO then BFO), each sorted by numeric strike ascending, then
// expiry ascending. Records with a non-numeric strike or unparsable expiry
// sort after valid ones, mirroring how the feed publishes placeholder values
// like "-1.000000".
func Workbook(scrips []model.Scrip, date time.Time) (File, error) {
	var nfo, bfo []model.Scrip
	for _, s := range scrips {
		switch s.ExchSeg {
		case config.ExchangeNFO:
			nfo = append(nfo, s)
		case config.ExchangeBFO:
			bfo = append(bfo, s)
		}
	}
	sortScrips(nfo)
	sortScrips(bfo)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", config.ExchangeNFO); err != nil {
		return File{}, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(config.ExchangeBFO); err != nil {
		return File{}, fmt.Errorf("add sheet: %w", err)
	}

	if err := writeSheet(f, config.ExchangeNFO, nfo); err != nil {
		return File{}, err
	}
	if err := writeSheet(f, config.ExchangeBFO, bfo); err != nil {
		return File{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return File{}, fmt.Errorf("serialize workbook: %w", err)
	}

	name := "symbol_token_" + date.Format("2006-01-02") + ".xlsx"
	return File{Name: name, Content: buf.Bytes()}, nil
}

func writeSheet(f *excelize.File, sheet string, scrips []model.Scrip) error {
	header := make([]interface{}, len(model.ScripColumns))
	for i, c := range model.ScripColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	for i, s := range scrips {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		values := s.Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// scripKey caches the parsed sort fields for one record.
type scripKey struct {
	strike   decimal.Decimal
	strikeOK bool
	expiry   time.Time
	expiryOK bool
}

func sortScrips(scrips []model.Scrip) {
	keys := make([]scripKey, len(scrips))
	for i, s := range scrips {
		if d, err := decimal.NewFromString(strings.TrimSpace(s.Strike)); err == nil {
			keys[i].strike = d
			keys[i].strikeOK = true
		}
		if t, ok := parseScripExpiry(s.Expiry); ok {
			keys[i].expiry = t
			keys[i].expiryOK = true
		}
	}

	// Sort an index permutation so the cached keys stay aligned with the
	// records they were computed from.
	order := make([]int, len(scrips))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if ka.strikeOK != kb.strikeOK {
			return ka.strikeOK
		}
		if ka.strikeOK && !ka.strike.Equal(kb.strike) {
			return ka.strike.LessThan(kb.strike)
		}
		if ka.expiryOK != kb.expiryOK {
			return ka.expiryOK
		}
		if ka.expiryOK {
			return ka.expiry.Before(kb.expiry)
		}
		return false
	})

	sorted := make([]model.Scrip, len(scrips))
	for i, j := range order {
		sorted[i] = scrips[j]
	}
	copy(scrips, sorted)
}

// parseScripExpiry parses the scrip-master expiry form 25JUN2025
// (or 25-JUN-2025), case-insensitively. Empty values are common for
// non-derivative segments.
func parseScripExpiry(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Title-case the month letters so Go's layout matches.
	var b strings.Builder
	inAlpha := false
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isAlpha && !inAlpha:
			b.WriteRune(toUpper(r))
		case isAlpha:
			b.WriteRune(toLower(r))
		default:
			b.WriteRune(r)
		}
		inAlpha = isAlpha
	}

	norm := b.String()
	for _, layout := range []string{"2Jan2006", "2-Jan-2006"} {
		if t, err := time.Parse(layout, norm); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
