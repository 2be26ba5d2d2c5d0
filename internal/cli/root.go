package cli

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/dategetter/internal/config"
	"github.com/mcoot/dategetter/internal/dateformat"
	"github.com/mcoot/dategetter/internal/dependencies/clock"
	"github.com/mcoot/dategetter/internal/factory"
)

// state is shared by every command and filled in before a command runs
type state struct {
	clock     clock.Clock
	viper     *viper.Viper
	cfg       *config.Config
	logger    *slog.Logger
	formatter *dateformat.Formatter
}

// NewRootCmd creates the root command. The clock supplies "now" for every
// command that formats without an explicit instant.
func NewRootCmd(c clock.Clock) *cobra.Command {
	st := &state{
		clock: c,
		viper: config.NewViper(),
	}
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "dategetter",
		Short: "Format the current or a given timestamp",
		Long: `dategetter renders a point in time as text using a format pattern.

Patterns are written in one of several dialects: token (YYYY-MM-DD hh:mm:ss,
the default), php (Y-m-d H:i:s), strftime (%Y-%m-%d %H:%M:%S) or go
(2006-01-02 15:04:05). Every setting can also be supplied through a
DATEGETTER_* environment variable.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("dialect", "d", defaults.Dialect, "Pattern dialect: token, php, strftime, go (env: DATEGETTER_DIALECT)")
	rootCmd.PersistentFlags().StringP("timezone", "z", defaults.Timezone, "IANA time zone to render in (env: DATEGETTER_TIMEZONE)")
	rootCmd.PersistentFlags().StringP("output", "o", defaults.Output, "Output format: text, json (env: DATEGETTER_OUTPUT)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", defaults.Verbose, "Verbose logging")

	rootCmd.AddCommand(newFormatCmd(st))
	rootCmd.AddCommand(newDialectsCmd(st))
	rootCmd.AddCommand(newServeCmd(st))
	rootCmd.AddCommand(newRemoteCmd(st))

	return rootCmd
}

func (st *state) load(cmd *cobra.Command) error {
	err := config.BindFlags(st.viper, cmd.Flags(),
		config.KeyDialect,
		config.KeyTimezone,
		config.KeyOutput,
		config.KeyVerbose,
		config.KeyServerURL,
		config.KeyServerHost,
		config.KeyServerPort,
		config.KeyServerReadTimeout,
		config.KeyServerWriteTimeout,
		config.KeyServerShutdownTimeout,
	)
	if err != nil {
		return err
	}

	cfg, err := config.Load(st.viper)
	if err != nil {
		return err
	}
	st.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	st.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{Level: level}))

	fc, err := cfg.FormatterConfig()
	if err != nil {
		return err
	}
	st.logger.Debug("cli: configuration loaded", slog.String("output", cfg.Output))

	app := factory.New(factory.Config{
		Formatter: fc,
		Clock:     st.clock,
		Logger:    st.logger,
	})
	st.formatter = app.Formatter

	return nil
}

// Execute runs the root command against the system clock
func Execute() {
	if err := NewRootCmd(clock.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
