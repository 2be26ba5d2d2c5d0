// Package dateformat renders points in time as strings using a
// configurable token dialect.
package dateformat

import (
	"time"

	"github.com/mcoot/dategetter/internal/dependencies/clock"
)

// Config holds configuration for a Formatter
type Config struct {
	Dialect  Dialect
	Location *time.Location
}

// DefaultConfig returns the token dialect rendering in UTC
func DefaultConfig() Config {
	return Config{
		Dialect:  DialectToken,
		Location: time.UTC,
	}
}

// Result describes a single formatting call
type Result struct {
	Formatted string
	Pattern   string
	Dialect   Dialect
	Timezone  string
	At        int64
}

// Formatter renders epoch-second timestamps. It is immutable and safe for
// concurrent use.
type Formatter struct {
	clock    clock.Clock
	dialect  Dialect
	location *time.Location
}

// New creates a Formatter reading "now" from the given clock
func New(clock clock.Clock, cfg Config) *Formatter {
	if !cfg.Dialect.IsValid() {
		cfg.Dialect = DefaultConfig().Dialect
	}
	if cfg.Location == nil {
		cfg.Location = DefaultConfig().Location
	}

	return &Formatter{
		clock:    clock,
		dialect:  cfg.Dialect,
		location: cfg.Location,
	}
}

// At returns a pointer to epoch, for passing an explicit instant to Format
func At(epoch int64) *int64 {
	return &epoch
}

// Dialect returns the dialect patterns are interpreted in
func (f *Formatter) Dialect() Dialect {
	return f.dialect
}

// Location returns the zone instants are rendered in
func (f *Formatter) Location() *time.Location {
	return f.location
}

// WithDialect returns a copy of the formatter using dialect d
func (f *Formatter) WithDialect(d Dialect) *Formatter {
	return New(f.clock, Config{Dialect: d, Location: f.location})
}

// WithLocation returns a copy of the formatter rendering in loc
func (f *Formatter) WithLocation(loc *time.Location) *Formatter {
	return New(f.clock, Config{Dialect: f.dialect, Location: loc})
}

// Instant resolves at to a time in the formatter's location. A nil at
// reads the clock.
func (f *Formatter) Instant(at *int64) time.Time {
	if at == nil {
		return f.clock.Now().In(f.location)
	}
	return time.Unix(*at, 0).In(f.location)
}

// Format renders at (or now, when at is nil) using pattern. Unknown tokens
// are copied through unchanged and an empty pattern yields "".
func (f *Formatter) Format(pattern string, at *int64) string {
	return f.Render(pattern, at).Formatted
}

// FormatDefault renders at using the dialect's default pattern
func (f *Formatter) FormatDefault(at *int64) string {
	return f.Format(f.dialect.DefaultPattern(), at)
}

// Render is Format, also reporting the instant and settings used
func (f *Formatter) Render(pattern string, at *int64) Result {
	t := f.Instant(at)

	return Result{
		Formatted: f.dialect.renderer()(pattern, t),
		Pattern:   pattern,
		Dialect:   f.dialect,
		Timezone:  f.location.String(),
		At:        t.Unix(),
	}
}
