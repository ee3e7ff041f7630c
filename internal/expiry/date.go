package expiry

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout matches the DD-MMM-YYYY form the symbol masters use,
// e.g. "10-JUL-2025". Day may be unpadded.
const dateLayout = "2-Jan-2006"

// ParseDate parses a DD-MMM-YYYY expiry string into midnight in loc.
// The month abbreviation is matched case-insensitively, as the masters
// publish it uppercased.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("expiry date %q is not DD-MMM-YYYY", s)
	}

	month := parts[1]
	if len(month) >= 1 {
		month = strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
	}

	t, err := time.ParseInLocation(dateLayout, parts[0]+"-"+month+"-"+parts[2], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("expiry date %q is not DD-MMM-YYYY: %w", s, err)
	}
	return t, nil
}

// Midnight normalizes t to midnight of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// FormatDate renders a date as uppercased DD-MMM-YYYY, the form used in
// export filenames and bundle names.
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format("02-Jan-2006"))
}
