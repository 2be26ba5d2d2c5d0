package config

import (
	"testing"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dategetter/internal/dateformat"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATEGETTER_DIALECT", "strftime")
	t.Setenv("DATEGETTER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("DATEGETTER_OUTPUT", "json")
	t.Setenv("DATEGETTER_SERVER_PORT", "9090")
	t.Setenv("DATEGETTER_SERVER_READ_TIMEOUT", "3s")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "strftime", cfg.Dialect)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DATEGETTER_DIALECT", "strftime")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "token", "")
	flags.Int("port", 8080, "")
	require.NoError(t, flags.Parse([]string{"--dialect", "php", "--port", "7000"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, flags, KeyDialect, KeyServerPort, KeyTimezone))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "php", cfg.Dialect)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoadRejectsUnknownDialect(t *testing.T) {
	t.Setenv("DATEGETTER_DIALECT", "moment")

	_, err := Load(NewViper())
	require.Error(t, err)
	assert.ErrorIs(t, err, dateformat.ErrUnknownDialect)

	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, ErrDomainConfig, oopsErr.Domain())
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("DATEGETTER_TIMEZONE", "Nowhere/Special")

	_, err := Load(NewViper())
	assert.ErrorIs(t, err, dateformat.ErrUnknownTimezone)
}

func TestValidateRejectsBadOutputAndPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "yaml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestFormatterConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dialect = "PHP"
	cfg.Timezone = "Europe/Berlin"

	fc, err := cfg.FormatterConfig()
	require.NoError(t, err)

	assert.Equal(t, dateformat.DialectPHP, fc.Dialect)
	assert.Equal(t, "Europe/Berlin", fc.Location.String())
}

func TestEffectivePattern(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "YYYY-MM-DD hh:mm:ss", cfg.EffectivePattern())

	cfg.Dialect = "php"
	assert.Equal(t, "Y-m-d H:i:s", cfg.EffectivePattern())

	cfg.Pattern = "D, d M Y"
	assert.Equal(t, "D, d M Y", cfg.EffectivePattern())
}
