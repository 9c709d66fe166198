package normalizer

import (
	"fmt"
	"time"
)

// Layouts of the date columns in the ICTRP export. Each column uses
// exactly one layout, so callers declare the layout for the column
// they are reading instead of sniffing the content.
const (
	LayoutCompact   = "20060102"             // Date registration3
	LayoutRefreshed = "2 January 2006"       // Last Refreshed on
	LayoutExport    = "1/2/2006 15:04:05 PM" // Export date
	LayoutISO       = "2006-01-02"
)

// FormatDate converts a date string from the given layout to ISO
// YYYY-MM-DD. A layout mismatch is an error for the caller to surface
// as a per-row diagnostic.
func FormatDate(value, layout string) (string, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return "", fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	return t.Format(LayoutISO), nil
}
