package helpers

import "time"

const (
	fullDatetimeLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumDatetimeLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDatetime renders show times for display. Anything other than "full"
// uses the medium layout.
func FormatDatetime(t time.Time, format string) string {
	if format == "full" {
		return t.Format(fullDatetimeLayout)
	}
	return t.Format(mediumDatetimeLayout)
}
