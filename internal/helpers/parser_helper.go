package helpers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const formDateTimeLayout = "2006-01-02 15:04:05"

var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive record id from a path or form value. Ids are
// Postgres INTEGER columns, so anything above 2147483647 is rejected.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return uint(id), nil
}

// ParseStartTime accepts the show form's date picker format or RFC 3339.
// The result is always in UTC since start_time is stored without a zone.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(formDateTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q", s)
	}
	return t.UTC(), nil
}
