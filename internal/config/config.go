package config

import (
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/dategetter/internal/dateformat"
)

// EnvPrefix is prepended to every environment variable, e.g. DATEGETTER_TIMEZONE
const EnvPrefix = "DATEGETTER"

// ErrDomainConfig tags configuration errors
const ErrDomainConfig = "config"

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Keys
const (
	KeyDialect               = "dialect"
	KeyPattern               = "pattern"
	KeyTimezone              = "timezone"
	KeyOutput                = "output"
	KeyVerbose               = "verbose"
	KeyServerURL             = "server_url"
	KeyServerHost            = "server.host"
	KeyServerPort            = "server.port"
	KeyServerReadTimeout     = "server.read_timeout"
	KeyServerWriteTimeout    = "server.write_timeout"
	KeyServerShutdownTimeout = "server.shutdown_timeout"
)

// Config holds application configuration
type Config struct {
	Dialect   string       `mapstructure:"dialect"`
	Pattern   string       `mapstructure:"pattern"`
	Timezone  string       `mapstructure:"timezone"`
	Output    string       `mapstructure:"output"`
	Verbose   bool         `mapstructure:"verbose"`
	ServerURL string       `mapstructure:"server_url"`
	Server    ServerConfig `mapstructure:"server"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Dialect:   string(dateformat.DialectToken),
		Pattern:   "",
		Timezone:  "UTC",
		Output:    OutputText,
		Verbose:   false,
		ServerURL: "http://localhost:8080",
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
	}
}

// NewViper returns a viper instance seeded with defaults and reading
// DATEGETTER_* environment variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault(KeyDialect, d.Dialect)
	v.SetDefault(KeyPattern, d.Pattern)
	v.SetDefault(KeyTimezone, d.Timezone)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyServerURL, d.ServerURL)
	v.SetDefault(KeyServerHost, d.Server.Host)
	v.SetDefault(KeyServerPort, d.Server.Port)
	v.SetDefault(KeyServerReadTimeout, d.Server.ReadTimeout)
	v.SetDefault(KeyServerWriteTimeout, d.Server.WriteTimeout)
	v.SetDefault(KeyServerShutdownTimeout, d.Server.ShutdownTimeout)

	return v
}

// BindFlags binds each named key to the flag of the same name, if the
// flag set defines it. Keys with a dot bind to the part after the dot.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		name := key
		if i := strings.LastIndexByte(key, '.'); i >= 0 {
			name = key[i+1:]
		}
		name = strings.ReplaceAll(name, "_", "-")

		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return oops.In(ErrDomainConfig).
				With("key", key).
				Wrapf(err, "binding flag %q", name)
		}
	}
	return nil
}

// Load reads and validates configuration from v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, oops.In(ErrDomainConfig).Wrapf(err, "decoding configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if _, err := dateformat.ParseDialect(c.Dialect); err != nil {
		return oops.In(ErrDomainConfig).
			With("dialect", c.Dialect).
			Wrapf(err, "invalid dialect %q", c.Dialect)
	}

	if _, err := dateformat.LoadLocation(c.Timezone); err != nil {
		return oops.In(ErrDomainConfig).
			With("timezone", c.Timezone).
			Wrapf(err, "invalid timezone")
	}

	if c.Output != OutputText && c.Output != OutputJSON {
		return oops.In(ErrDomainConfig).
			With("output", c.Output).
			Errorf("invalid output format %q: want %s or %s", c.Output, OutputText, OutputJSON)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return oops.In(ErrDomainConfig).
			With("port", c.Server.Port).
			Errorf("invalid port %d", c.Server.Port)
	}

	return nil
}

// FormatterConfig resolves the dialect and time zone for a dateformat.Formatter
func (c *Config) FormatterConfig() (dateformat.Config, error) {
	dialect, err := dateformat.ParseDialect(c.Dialect)
	if err != nil {
		return dateformat.Config{}, oops.In(ErrDomainConfig).Wrapf(err, "invalid dialect %q", c.Dialect)
	}

	loc, err := dateformat.LoadLocation(c.Timezone)
	if err != nil {
		return dateformat.Config{}, oops.In(ErrDomainConfig).Wrapf(err, "invalid timezone")
	}

	return dateformat.Config{Dialect: dialect, Location: loc}, nil
}

// EffectivePattern returns the configured pattern, falling back to the
// dialect default when none is set
func (c *Config) EffectivePattern() string {
	if c.Pattern != "" {
		return c.Pattern
	}
	d, err := dateformat.ParseDialect(c.Dialect)
	if err != nil {
		return dateformat.DialectToken.DefaultPattern()
	}
	return d.DefaultPattern()
}
