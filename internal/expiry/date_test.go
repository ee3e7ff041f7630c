package expiry

import (
	"testing"
	"time"
)

func ist(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load Asia/Kolkata: %v", err)
	}
	return loc
}

func TestParseDate(t *testing.T) {
	loc := ist(t)

	tests := []struct {
		in      string
		want    string // RFC3339 date portion, "" = expect error
		wantErr bool
	}{
		{in: "10-JUL-2025", want: "2025-07-10"},
		{in: "10-Jul-2025", want: "2025-07-10"},
		{in: "10-jul-2025", want: "2025-07-10"},
		{in: "5-JAN-2026", want: "2026-01-05"},
		{in: "05-JAN-2026", want: "2026-01-05"},
		{in: " 25-JUN-2025 ", want: "2025-06-25"},
		{in: "N/A", wantErr: true},
		{in: "", wantErr: true},
		{in: "2025-07-10", wantErr: true},
		{in: "32-JUL-2025", wantErr: true},
		{in: "10-JULY-2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, loc)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.in, err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
			if got.Location() != loc {
				t.Errorf("ParseDate(%q) location = %v, want %v", tt.in, got.Location(), loc)
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("ParseDate(%q) = %v, want midnight", tt.in, got)
			}
		})
	}
}

func TestMidnight(t *testing.T) {
	loc := ist(t)

	t.Run("drops time of day", func(t *testing.T) {
		in := time.Date(2025, 7, 10, 15, 45, 30, 0, loc)
		got := Midnight(in, loc)
		want := time.Date(2025, 7, 10, 0, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("Midnight() = %v, want %v", got, want)
		}
	})

	t.Run("converts zone before truncating", func(t *testing.T) {
		// 20:00 UTC on the 9th is already the 10th in Kolkata (+05:30).
		in := time.Date(2025, 7, 9, 20, 0, 0, 0, time.UTC)
		got := Midnight(in, loc)
		want := time.Date(2025, 7, 10, 0, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("Midnight() = %v, want %v", got, want)
		}
	})
}

func TestFormatDate(t *testing.T) {
	loc := ist(t)
	d := time.Date(2025, 7, 10, 0, 0, 0, 0, loc)
	if got := FormatDate(d); got != "10-JUL-2025" {
		t.Errorf("FormatDate() = %q, want %q", got, "10-JUL-2025")
	}
}
