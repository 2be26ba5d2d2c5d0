package cli

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/dategetter/internal/config"
)

func newRemoteCmd(st *state) *cobra.Command {
	var (
		pattern string
		at      int64
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Format a date using a running dategetter server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if cmd.Flags().Changed("pattern") {
				query.Set("pattern", pattern)
			} else if st.cfg.Pattern != "" {
				query.Set("pattern", st.cfg.Pattern)
			}
			if cmd.Flags().Changed("at") {
				query.Set("at", strconv.FormatInt(at, 10))
			}
			if cmd.Flags().Changed("dialect") {
				query.Set("dialect", st.cfg.Dialect)
			}
			if cmd.Flags().Changed("timezone") {
				query.Set("tz", st.cfg.Timezone)
			}

			st.logger.Debug("remote: requesting date",
				slog.String("server", st.cfg.ServerURL),
				slog.String("query", query.Encode()),
			)

			var result DateResult
			if err := NewClient(st.cfg.ServerURL).Get(cmd.Context(), "/api/v1/date", query, &result); err != nil {
				return err
			}

			NewOutput(st.cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().String("server-url", config.DefaultConfig().ServerURL, "Server URL (env: DATEGETTER_SERVER_URL)")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Format pattern (default: the server dialect's default)")
	cmd.Flags().Int64VarP(&at, "at", "a", 0, "Epoch seconds to format instead of the server's now")

	return cmd
}
