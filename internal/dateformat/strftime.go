package dateformat

import (
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// strftimeSpecs is the POSIX C-locale conversion set plus the GNU
// extensions the library does not ship with.
var strftimeSpecs = newStrftimeSpecs()

func newStrftimeSpecs() strftime.SpecificationSet {
	ss := strftime.NewSpecificationSet()

	extensions := map[byte]strftime.Appender{
		'h': strftime.StdlibFormat("Jan"),
		'P': strftime.StdlibFormat("pm"),
		'G': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			isoYear, _ := t.ISOWeek()
			return strconv.AppendInt(b, int64(isoYear), 10)
		}),
		'g': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			isoYear, _ := t.ISOWeek()
			return append(b, pad2(isoYear%100)...)
		}),
		's': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return strconv.AppendInt(b, t.Unix(), 10)
		}),
	}
	for c, a := range extensions {
		if err := ss.Set(c, a); err != nil {
			panic(err)
		}
	}

	return ss
}

// renderStrftime renders strftime(3) conversions. The E and O modifiers
// are accepted and ignored. Unknown conversions, and a trailing '%', are
// copied through verbatim.
func renderStrftime(pattern string, t time.Time) string {
	f, err := strftime.New(escapeStrftime(pattern), strftime.WithSpecificationSet(strftimeSpecs))
	if err != nil {
		return pattern
	}
	return f.FormatString(t)
}

// escapeStrftime rewrites pattern so every conversion the library would
// reject becomes literal text.
func escapeStrftime(pattern string) string {
	var b strings.Builder

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			b.WriteString("%%")
			continue
		}

		j := i + 1
		if (pattern[j] == 'E' || pattern[j] == 'O') && j+1 < len(pattern) {
			j++
		}

		if _, err := strftimeSpecs.Lookup(pattern[j]); err == nil {
			b.WriteByte('%')
			b.WriteByte(pattern[j])
		} else {
			b.WriteString("%%")
			b.WriteString(pattern[i+1 : j+1])
		}
		i = j
	}

	return b.String()
}
