package handler

import (
	"net/http"

	"github.com/mcoot/dategetter/internal/api/request"
	"github.com/mcoot/dategetter/internal/api/response"
	"github.com/mcoot/dategetter/internal/dateformat"
)

// DateHandler handles date formatting endpoints
type DateHandler struct {
	formatter *dateformat.Formatter
}

// NewDateHandler creates a new date handler
func NewDateHandler(formatter *dateformat.Formatter) *DateHandler {
	return &DateHandler{
		formatter: formatter,
	}
}

// Get handles GET /api/v1/date
func (h *DateHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := request.ParseDateQuery(r.URL.Query())
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	f := h.formatter
	if q.Dialect != "" {
		d, err := dateformat.ParseDialect(q.Dialect)
		if err != nil {
			WriteError(w, err)
			return
		}
		f = f.WithDialect(d)
	}
	if q.Timezone != "" {
		loc, err := dateformat.LoadLocation(q.Timezone)
		if err != nil {
			WriteError(w, err)
			return
		}
		f = f.WithLocation(loc)
	}

	pattern := f.Dialect().DefaultPattern()
	if q.HasPattern {
		pattern = q.Pattern
	}

	response.JSON(w, http.StatusOK, response.DateResponseFromResult(f.Render(pattern, q.At)))
}

// Dialects handles GET /api/v1/dialects
func (h *DateHandler) Dialects(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.DialectsFromModel(dateformat.Dialects()))
}
