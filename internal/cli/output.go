package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case DateResult:
		fmt.Fprintln(o.w, v.Formatted)
	case []Dialect:
		o.printDialects(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// DateResult response type (matches API)
type DateResult struct {
	Formatted string `json:"formatted"`
	Pattern   string `json:"pattern"`
	Dialect   string `json:"dialect"`
	Timezone  string `json:"timezone"`
	At        int64  `json:"at"`
}

// Dialect response type (matches API)
type Dialect struct {
	Name           string `json:"name"`
	DefaultPattern string `json:"default_pattern"`
}

func (o *Output) printDialects(dialects []Dialect) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIALECT\tDEFAULT PATTERN")
	for _, d := range dialects {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.DefaultPattern)
	}
	_ = tw.Flush()
}
