package dateformat

import (
	"strconv"
	"strings"
	"time"
)

type tokenRule struct {
	token  string
	render func(t time.Time) string
}

// Longer tokens must precede their prefixes.
var tokenRules = []tokenRule{
	{"YYYY", func(t time.Time) string { return year(t) }},
	{"YY", func(t time.Time) string { return pad2(t.Year() % 100) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Format("Jan") }},
	{"MM", func(t time.Time) string { return pad2(int(t.Month())) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"DDD", func(t time.Time) string { return pad3(t.YearDay()) }},
	{"DD", func(t time.Time) string { return pad2(t.Day()) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"dddd", func(t time.Time) string { return t.Weekday().String() }},
	{"ddd", func(t time.Time) string { return t.Format("Mon") }},
	{"hh", func(t time.Time) string { return pad2(t.Hour()) }},
	{"h", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	{"II", func(t time.Time) string { return pad2(hour12(t)) }},
	{"I", func(t time.Time) string { return strconv.Itoa(hour12(t)) }},
	{"mm", func(t time.Time) string { return pad2(t.Minute()) }},
	{"m", func(t time.Time) string { return strconv.Itoa(t.Minute()) }},
	{"SSS", func(t time.Time) string { return pad3(t.Nanosecond() / int(time.Millisecond)) }},
	{"ss", func(t time.Time) string { return pad2(t.Second()) }},
	{"s", func(t time.Time) string { return strconv.Itoa(t.Second()) }},
	{"A", func(t time.Time) string { return t.Format("PM") }},
	{"a", func(t time.Time) string { return t.Format("pm") }},
	{"ZZ", func(t time.Time) string { return t.Format("-0700") }},
	{"Z", func(t time.Time) string { return t.Format("-07:00") }},
	{"z", func(t time.Time) string { return t.Format("MST") }},
	{"X", func(t time.Time) string { return strconv.FormatInt(t.Unix(), 10) }},
}

// renderToken expands YYYY/MM/DD style tokens. Text inside [brackets] is
// emitted literally, without the brackets.
func renderToken(pattern string, t time.Time) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		if rule, ok := matchToken(pattern[i:]); ok {
			b.WriteString(rule.render(t))
			i += len(rule.token)
			continue
		}

		b.WriteByte(pattern[i])
		i++
	}

	return b.String()
}

func matchToken(s string) (tokenRule, bool) {
	for _, rule := range tokenRules {
		if strings.HasPrefix(s, rule.token) {
			return rule, true
		}
	}
	return tokenRule{}, false
}

func year(t time.Time) string {
	y := t.Year()
	if y < 0 {
		return "-" + padN(-y, 4)
	}
	return padN(y, 4)
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func pad2(n int) string {
	return padN(n, 2)
}

func pad3(n int) string {
	return padN(n, 3)
}

func padN(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
