package expiry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/model"
)

// ErrNoExpiry is returned when an index has no row matching its symbol and
// instrument, or no parsed expiry on or after the reference date. Either way
// the index is simply skipped for the day.
var ErrNoExpiry = errors.New("no applicable expiry")

// Selection is the resolved result for one index: the nearest future expiry
// and the rows that trade on it.
type Selection struct {
	// Expiry is the selected date, normalized to midnight in the reference
	// date's zone.
	Expiry time.Time

	// Rows holds every matching row whose expiry equals Expiry, with
	// unnamed artifact columns removed. Source ordering is preserved.
	Rows model.Table

	// Dropped counts matching rows discarded because their expiry string
	// failed to parse. Unparsable expiries are an accepted data-quality
	// condition, not an error, but the count is surfaced for logging.
	Dropped int
}

// Resolve selects the nearest expiry on or after today for one index.
//
// today must be a midnight instant in the zone expiries should be localized
// to. Rows are filtered on exact Symbol and Instrument equality; expiry
// strings that fail to parse are dropped from consideration. Cadence does not
// currently alter selection: weekly and monthly indices both take the
// minimum future expiry.
func Resolve(tab *model.Table, idx config.Index, today time.Time) (*Selection, error) {
	symCol := tab.ColumnIndex("Symbol")
	insCol := tab.ColumnIndex("Instrument")
	expCol := tab.ColumnIndex("Expiry")
	if symCol < 0 || insCol < 0 || expCol < 0 {
		return nil, fmt.Errorf("table is missing a required column (Symbol/Instrument/Expiry)")
	}

	loc := today.Location()

	type candidate struct {
		row    int
		expiry time.Time
	}

	var cands []candidate
	matched := 0
	dropped := 0
	for i := range tab.Rows {
		if tab.Get(i, symCol) != idx.Symbol || tab.Get(i, insCol) != idx.Instrument {
			continue
		}
		matched++

		d, err := ParseDate(tab.Get(i, expCol), loc)
		if err != nil {
			dropped++
			continue
		}
		cands = append(cands, candidate{row: i, expiry: d})
	}
	if matched == 0 {
		return nil, ErrNoExpiry
	}

	var best time.Time
	found := false
	for _, c := range cands {
		if c.expiry.Before(today) {
			continue
		}
		if !found || c.expiry.Before(best) {
			best = c.expiry
			found = true
		}
	}
	if !found {
		return nil, ErrNoExpiry
	}

	keep := keepColumns(tab.Columns)
	sel := &Selection{
		Expiry:  best,
		Dropped: dropped,
		Rows: model.Table{
			Columns: project(tab.Columns, keep),
		},
	}
	for _, c := range cands {
		if !c.expiry.Equal(best) {
			continue
		}
		row := make([]string, 0, len(keep))
		for _, col := range keep {
			row = append(row, tab.Get(c.row, col))
		}
		sel.Rows.Rows = append(sel.Rows.Rows, row)
	}

	return sel, nil
}

// keepColumns returns the indexes of columns worth exporting, skipping
// headers that are empty or pandas-style "Unnamed" index artifacts.
func keepColumns(columns []string) []int {
	keep := make([]int, 0, len(columns))
	for i, name := range columns {
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "Unnamed") {
			continue
		}
		keep = append(keep, i)
	}
	return keep
}

func project(columns []string, keep []int) []string {
	out := make([]string, 0, len(keep))
	for _, i := range keep {
		out = append(out, columns[i])
	}
	return out
}
