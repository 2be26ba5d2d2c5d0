package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/dategetter/internal/dateformat"
)

func newFormatCmd(st *state) *cobra.Command {
	var (
		pattern string
		at      int64
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format now, or the instant given by --at",
		Example: `  dategetter format
  dategetter format --at 1420070400
  dategetter format -d php -p 'l jS \of F Y' -z Europe/London`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := st.cfg.EffectivePattern()
			if cmd.Flags().Changed("pattern") {
				p = pattern
			}

			var instant *int64
			if cmd.Flags().Changed("at") {
				instant = dateformat.At(at)
			}

			result := st.formatter.Render(p, instant)
			st.logger.Debug("format: rendered",
				slog.String("pattern", result.Pattern),
				slog.Int64("at", result.At),
			)

			NewOutput(st.cfg.Output, cmd.OutOrStdout()).Print(dateResultFromModel(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Format pattern (default: the dialect's default, env: DATEGETTER_PATTERN)")
	cmd.Flags().Int64VarP(&at, "at", "a", 0, "Epoch seconds to format instead of now")

	return cmd
}

func newDialectsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported pattern dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dialects []Dialect
			for _, d := range dateformat.Dialects() {
				dialects = append(dialects, Dialect{Name: d.String(), DefaultPattern: d.DefaultPattern()})
			}

			NewOutput(st.cfg.Output, cmd.OutOrStdout()).Print(dialects)
			return nil
		},
	}
}

func dateResultFromModel(r dateformat.Result) DateResult {
	return DateResult{
		Formatted: r.Formatted,
		Pattern:   r.Pattern,
		Dialect:   r.Dialect.String(),
		Timezone:  r.Timezone,
		At:        r.At,
	}
}
