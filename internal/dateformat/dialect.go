package dateformat

import (
	"errors"
	"strings"
	"time"
)

// Dialect names the token language a format pattern is written in
type Dialect string

// Supported dialects
const (
	DialectToken    Dialect = "token"
	DialectPHP      Dialect = "php"
	DialectStrftime Dialect = "strftime"
	DialectGo       Dialect = "go"
)

// ErrUnknownDialect is returned when a dialect name is not recognised
var ErrUnknownDialect = errors.New("unknown dialect")

type renderFunc func(pattern string, t time.Time) string

type dialectSpec struct {
	defaultPattern string
	render         renderFunc
}

var dialects = map[Dialect]dialectSpec{
	DialectToken:    {defaultPattern: "YYYY-MM-DD hh:mm:ss", render: renderToken},
	DialectPHP:      {defaultPattern: "Y-m-d H:i:s", render: renderPHP},
	DialectStrftime: {defaultPattern: "%Y-%m-%d %H:%M:%S", render: renderStrftime},
	DialectGo:       {defaultPattern: time.DateTime, render: renderGo},
}

// Dialects returns all supported dialects in a stable order, default first
func Dialects() []Dialect {
	return []Dialect{DialectToken, DialectPHP, DialectStrftime, DialectGo}
}

// ParseDialect resolves a dialect name, ignoring case and surrounding space
func ParseDialect(name string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := dialects[d]; !ok {
		return "", ErrUnknownDialect
	}
	return d, nil
}

// IsValid reports whether d is a supported dialect
func (d Dialect) IsValid() bool {
	_, ok := dialects[d]
	return ok
}

// DefaultPattern returns the pattern used when the caller supplies none.
// Every dialect's default renders as "2006-01-02 15:04:05".
func (d Dialect) DefaultPattern() string {
	return dialects[d].defaultPattern
}

func (d Dialect) String() string {
	return string(d)
}

func (d Dialect) renderer() renderFunc {
	if ds, ok := dialects[d]; ok {
		return ds.render
	}
	return renderToken
}

func renderGo(pattern string, t time.Time) string {
	return t.Format(pattern)
}
