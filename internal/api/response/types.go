package response

import (
	"github.com/mcoot/dategetter/internal/dateformat"
)

// DateResponse is the response for GET /api/v1/date
type DateResponse struct {
	Formatted string `json:"formatted"`
	Pattern   string `json:"pattern"`
	Dialect   string `json:"dialect"`
	Timezone  string `json:"timezone"`
	At        int64  `json:"at"`
}

// DateResponseFromResult converts a dateformat.Result
func DateResponseFromResult(r dateformat.Result) DateResponse {
	return DateResponse{
		Formatted: r.Formatted,
		Pattern:   r.Pattern,
		Dialect:   r.Dialect.String(),
		Timezone:  r.Timezone,
		At:        r.At,
	}
}

// Dialect describes a supported pattern dialect
type Dialect struct {
	Name           string `json:"name"`
	DefaultPattern string `json:"default_pattern"`
}

// DialectsFromModel lists the given dialects
func DialectsFromModel(dialects []dateformat.Dialect) []Dialect {
	result := make([]Dialect, len(dialects))
	for i, d := range dialects {
		result[i] = Dialect{
			Name:           d.String(),
			DefaultPattern: d.DefaultPattern(),
		}
	}
	return result
}

// HealthResponse is the response for GET /api/v1/health
type HealthResponse struct {
	Status string `json:"status"`
}
