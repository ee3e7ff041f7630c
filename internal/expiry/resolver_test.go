package expiry

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/model"
)

var nifty = config.Index{
	Name:       "NIFTY",
	Symbol:     "NIFTY",
	Instrument: "OPTIDX",
	Exchange:   config.ExchangeNFO,
	Cadence:    config.CadenceWeekly,
}

// master builds a minimal symbol master table.
func master(rows ...[]string) *model.Table {
	return &model.Table{
		Columns: []string{"Token", "Symbol", "Instrument", "Expiry", "TradingSymbol"},
		Rows:    rows,
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s, ist(t))
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestResolveNoMatchingRows(t *testing.T) {
	today := date(t, "10-JUL-2025")

	tests := []struct {
		name string
		tab  *model.Table
	}{
		{
			name: "empty table",
			tab:  master(),
		},
		{
			name: "wrong symbol",
			tab:  master([]string{"1", "BANKNIFTY", "OPTIDX", "10-JUL-2025", "BANKNIFTY10JUL25C50000"}),
		},
		{
			name: "wrong instrument",
			tab:  master([]string{"1", "NIFTY", "FUTIDX", "10-JUL-2025", "NIFTY10JUL25F"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.tab, nifty, today)
			if !errors.Is(err, ErrNoExpiry) {
				t.Errorf("Resolve() error = %v, want ErrNoExpiry", err)
			}
		})
	}
}

func TestResolvePicksNearestFuture(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "05-JUL-2025", "past"},
		[]string{"2", "NIFTY", "OPTIDX", "24-JUL-2025", "far"},
		[]string{"3", "NIFTY", "OPTIDX", "20-JUL-2025", "near"},
		[]string{"4", "NIFTY", "OPTIDX", "20-JUL-2025", "near2"},
	)
	today := date(t, "12-JUL-2025")

	sel, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !sel.Expiry.Equal(date(t, "20-JUL-2025")) {
		t.Errorf("Expiry = %v, want 20-JUL-2025", sel.Expiry)
	}
	if sel.Rows.Len() != 2 {
		t.Fatalf("Rows.Len() = %d, want 2", sel.Rows.Len())
	}
	// Past and far expiries never leak into the selection.
	for i := 0; i < sel.Rows.Len(); i++ {
		if got := sel.Rows.Rows[i][3]; got != "20-JUL-2025" {
			t.Errorf("row %d expiry = %q, want 20-JUL-2025", i, got)
		}
	}
	// Source ordering is preserved.
	if sel.Rows.Rows[0][4] != "near" || sel.Rows.Rows[1][4] != "near2" {
		t.Errorf("rows out of source order: %v", sel.Rows.Rows)
	}
}

func TestResolveSameDayExpiry(t *testing.T) {
	tab := master([]string{"1", "NIFTY", "OPTIDX", "10-JUL-2025", "x"})
	today := date(t, "10-JUL-2025")

	sel, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !sel.Expiry.Equal(today) {
		t.Errorf("Expiry = %v, want today", sel.Expiry)
	}
}

func TestResolveAllExpiriesPast(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "01-JUL-2025", "a"},
		[]string{"2", "NIFTY", "OPTIDX", "09-JUL-2025", "b"},
	)
	today := date(t, "10-JUL-2025")

	_, err := Resolve(tab, nifty, today)
	if !errors.Is(err, ErrNoExpiry) {
		t.Errorf("Resolve() error = %v, want ErrNoExpiry", err)
	}
}

func TestResolveDropsUnparsableExpiries(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "N/A", "bad"},
		[]string{"2", "NIFTY", "OPTIDX", "20-JUL-2025", "good"},
	)
	today := date(t, "12-JUL-2025")

	sel, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if sel.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", sel.Dropped)
	}
	if !sel.Expiry.Equal(date(t, "20-JUL-2025")) {
		t.Errorf("Expiry = %v, want 20-JUL-2025", sel.Expiry)
	}
	if sel.Rows.Len() != 1 {
		t.Fatalf("Rows.Len() = %d, want 1", sel.Rows.Len())
	}
	if sel.Rows.Rows[0][4] != "good" {
		t.Errorf("selected row = %v, want the parsable one", sel.Rows.Rows[0])
	}
}

func TestResolveAllExpiriesUnparsable(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "N/A", "a"},
		[]string{"2", "NIFTY", "OPTIDX", "", "b"},
	)
	today := date(t, "12-JUL-2025")

	_, err := Resolve(tab, nifty, today)
	if !errors.Is(err, ErrNoExpiry) {
		t.Errorf("Resolve() error = %v, want ErrNoExpiry", err)
	}
}

func TestResolveOtherSymbolSameExpiryExcluded(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "20-JUL-2025", "mine"},
		[]string{"2", "BANKNIFTY", "OPTIDX", "20-JUL-2025", "theirs"},
	)
	today := date(t, "12-JUL-2025")

	sel, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Rows.Len() != 1 || sel.Rows.Rows[0][4] != "mine" {
		t.Errorf("Rows = %v, want only the NIFTY row", sel.Rows.Rows)
	}
}

func TestResolveStripsArtifactColumns(t *testing.T) {
	tab := &model.Table{
		Columns: []string{"Symbol", "Instrument", "Expiry", "Unnamed: 3", ""},
		Rows: [][]string{
			{"NIFTY", "OPTIDX", "20-JUL-2025", "junk", "more junk"},
		},
	}
	today := date(t, "12-JUL-2025")

	sel, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	wantCols := []string{"Symbol", "Instrument", "Expiry"}
	if !reflect.DeepEqual(sel.Rows.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", sel.Rows.Columns, wantCols)
	}
	wantRow := []string{"NIFTY", "OPTIDX", "20-JUL-2025"}
	if !reflect.DeepEqual(sel.Rows.Rows[0], wantRow) {
		t.Errorf("Row = %v, want %v", sel.Rows.Rows[0], wantRow)
	}
}

func TestResolveCadenceDoesNotChangeSelection(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "17-JUL-2025", "weekly-style"},
		[]string{"2", "NIFTY", "OPTIDX", "31-JUL-2025", "month-end"},
	)
	today := date(t, "12-JUL-2025")

	weekly := nifty
	weekly.Cadence = config.CadenceWeekly
	monthly := nifty
	monthly.Cadence = config.CadenceMonthly

	selW, err := Resolve(tab, weekly, today)
	if err != nil {
		t.Fatalf("Resolve(weekly) failed: %v", err)
	}
	selM, err := Resolve(tab, monthly, today)
	if err != nil {
		t.Fatalf("Resolve(monthly) failed: %v", err)
	}

	if !selW.Expiry.Equal(selM.Expiry) {
		t.Errorf("weekly expiry %v != monthly expiry %v", selW.Expiry, selM.Expiry)
	}
	if !reflect.DeepEqual(selW.Rows, selM.Rows) {
		t.Error("weekly and monthly selections differ")
	}
}

func TestResolveDeterministic(t *testing.T) {
	tab := master(
		[]string{"1", "NIFTY", "OPTIDX", "20-JUL-2025", "a"},
		[]string{"2", "NIFTY", "OPTIDX", "N/A", "b"},
		[]string{"3", "NIFTY", "OPTIDX", "24-JUL-2025", "c"},
	)
	today := date(t, "12-JUL-2025")

	first, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := Resolve(tab, nifty, today)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated resolution produced different output")
	}
}

func TestResolveMissingRequiredColumn(t *testing.T) {
	tab := &model.Table{
		Columns: []string{"Symbol", "Instrument"}, // no Expiry
		Rows:    [][]string{{"NIFTY", "OPTIDX"}},
	}
	today := date(t, "12-JUL-2025")

	_, err := Resolve(tab, nifty, today)
	if err == nil {
		t.Fatal("Resolve() expected error for missing column, got nil")
	}
	if errors.Is(err, ErrNoExpiry) {
		t.Error("missing column must not be reported as ErrNoExpiry")
	}
}
