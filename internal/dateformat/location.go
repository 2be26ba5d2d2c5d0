package dateformat

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

// ErrUnknownTimezone is returned when a time zone name cannot be resolved
var ErrUnknownTimezone = errors.New("unknown timezone")

// LoadLocation resolves an IANA zone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}
