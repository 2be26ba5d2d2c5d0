package request

import (
	"errors"
	"net/url"
	"strconv"
)

// ErrInvalidTimestamp is returned when "at" is not an integer
var ErrInvalidTimestamp = errors.New("at must be an integer number of epoch seconds")

// DateQuery holds the query parameters of GET /api/v1/date
type DateQuery struct {
	// Pattern is only meaningful when HasPattern is set; an explicit empty
	// pattern renders to an empty string
	Pattern    string
	HasPattern bool
	At         *int64
	Dialect    string
	Timezone   string
}

// ParseDateQuery reads a DateQuery from URL query values
func ParseDateQuery(values url.Values) (DateQuery, error) {
	q := DateQuery{
		Dialect:  values.Get("dialect"),
		Timezone: values.Get("tz"),
	}

	if _, ok := values["pattern"]; ok {
		q.Pattern = values.Get("pattern")
		q.HasPattern = true
	}

	if raw := values.Get("at"); raw != "" {
		at, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return DateQuery{}, ErrInvalidTimestamp
		}
		q.At = &at
	}

	return q, nil
}
