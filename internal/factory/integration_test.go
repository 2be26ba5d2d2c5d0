package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dategetter/internal/dateformat"
	"github.com/mcoot/dategetter/internal/dependencies/clock"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
}

// Test: the wired formatter reads the mocked clock
func (s *IntegrationSuite) TestFormatterUsesMockClock() {
	s.Equal("2015-01-01 00:00:00", s.app.Formatter.FormatDefault(nil))

	s.app.MockClock.Advance(time.Hour)
	s.Equal("2015-01-01 01:00:00", s.app.Formatter.FormatDefault(nil))
}

// Test: every dialect agrees on the instant, only the text differs
func (s *IntegrationSuite) TestDialectsAgreeOnInstant() {
	for _, d := range dateformat.Dialects() {
		f := s.app.Formatter.WithDialect(d)
		result := f.Render(d.DefaultPattern(), nil)

		s.Equal(TestEpoch, result.At, "dialect %s", d)
		s.Equal("2015-01-01 00:00:00", result.Formatted, "dialect %s", d)
	}
}

func (s *IntegrationSuite) TestConfiguredLocation() {
	loc, err := dateformat.LoadLocation("Australia/Sydney")
	s.Require().NoError(err)

	app := NewTestAppWithConfig(dateformat.Config{Dialect: dateformat.DialectPHP, Location: loc})

	s.Equal("2015-01-01 11:00:00 AEDT", app.Formatter.Format("Y-m-d H:i:s T", nil))
}

func TestNewDefaults(t *testing.T) {
	app := New(Config{})

	assert.IsType(t, &clock.RealClock{}, app.Clock)
	assert.Equal(t, dateformat.DialectToken, app.Formatter.Dialect())
	assert.Equal(t, time.UTC, app.Formatter.Location())
	assert.NotNil(t, app.Logger)
	assert.WithinDuration(t, time.Now(), app.Formatter.Instant(nil), 2*time.Second)
}
