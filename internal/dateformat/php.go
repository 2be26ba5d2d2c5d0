package dateformat

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// renderPHP implements the letters understood by PHP's date(). A backslash
// escapes the following character; unknown letters are copied as-is.
func renderPHP(pattern string, t time.Time) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		i += size

		if r == '\\' {
			if i < len(pattern) {
				next, nextSize := utf8.DecodeRuneInString(pattern[i:])
				b.WriteRune(next)
				i += nextSize
			}
			continue
		}

		if s, ok := phpLetter(r, t); ok {
			b.WriteString(s)
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

func phpLetter(r rune, t time.Time) (string, bool) {
	switch r {
	// Day
	case 'd':
		return pad2(t.Day()), true
	case 'D':
		return t.Format("Mon"), true
	case 'j':
		return strconv.Itoa(t.Day()), true
	case 'l':
		return t.Weekday().String(), true
	case 'N':
		return strconv.Itoa(isoWeekday(t)), true
	case 'S':
		return ordinalSuffix(t.Day()), true
	case 'w':
		return strconv.Itoa(int(t.Weekday())), true
	case 'z':
		return strconv.Itoa(t.YearDay() - 1), true

	// Week
	case 'W':
		_, week := t.ISOWeek()
		return pad2(week), true

	// Month
	case 'F':
		return t.Month().String(), true
	case 'm':
		return pad2(int(t.Month())), true
	case 'M':
		return t.Format("Jan"), true
	case 'n':
		return strconv.Itoa(int(t.Month())), true
	case 't':
		return strconv.Itoa(daysInMonth(t)), true

	// Year
	case 'L':
		return boolDigit(isLeap(t.Year())), true
	case 'o':
		isoYear, _ := t.ISOWeek()
		return strconv.Itoa(isoYear), true
	case 'Y':
		return year(t), true
	case 'y':
		return pad2(t.Year() % 100), true

	// Time
	case 'a':
		return t.Format("pm"), true
	case 'A':
		return t.Format("PM"), true
	case 'g':
		return strconv.Itoa(hour12(t)), true
	case 'G':
		return strconv.Itoa(t.Hour()), true
	case 'h':
		return pad2(hour12(t)), true
	case 'H':
		return pad2(t.Hour()), true
	case 'i':
		return pad2(t.Minute()), true
	case 's':
		return pad2(t.Second()), true
	case 'u':
		return padN(t.Nanosecond()/int(time.Microsecond), 6), true
	case 'v':
		return pad3(t.Nanosecond() / int(time.Millisecond)), true

	// Timezone
	case 'e':
		return t.Location().String(), true
	case 'I':
		return boolDigit(t.IsDST()), true
	case 'O':
		return t.Format("-0700"), true
	case 'P':
		return t.Format("-07:00"), true
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			return "Z", true
		}
		return t.Format("-07:00"), true
	case 'T':
		return t.Format("MST"), true
	case 'Z':
		_, offset := t.Zone()
		return strconv.Itoa(offset), true

	// Full date/time
	case 'c':
		return t.Format("2006-01-02T15:04:05-07:00"), true
	case 'r':
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700"), true
	case 'U':
		return strconv.FormatInt(t.Unix(), 10), true
	}

	return "", false
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
