package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/dategetter/internal/api"
	"github.com/mcoot/dategetter/internal/config"
)

func newServeCmd(st *state) *cobra.Command {
	defaults := config.DefaultConfig().Server

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the date formatting JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Server logs are JSON on stdout
			level := slog.LevelInfo
			if st.cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), &slog.HandlerOptions{
				Level: level,
			}))

			router := api.NewRouter(api.RouterConfig{
				Logger:    logger,
				Formatter: st.formatter,
			})

			server := api.NewServer(router, api.ServerConfig{
				Host:            st.cfg.Server.Host,
				Port:            st.cfg.Server.Port,
				ReadTimeout:     st.cfg.Server.ReadTimeout,
				WriteTimeout:    st.cfg.Server.WriteTimeout,
				ShutdownTimeout: st.cfg.Server.ShutdownTimeout,
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx); err != nil {
				logger.Error("server error", slog.String("error", err.Error()))
				return err
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().String("host", defaults.Host, "Listen host (env: DATEGETTER_SERVER_HOST)")
	cmd.Flags().Int("port", defaults.Port, "Listen port (env: DATEGETTER_SERVER_PORT)")
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "Graceful shutdown timeout")

	return cmd
}
