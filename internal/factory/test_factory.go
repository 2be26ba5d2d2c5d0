package factory

import (
	"github.com/mcoot/dategetter/internal/dateformat"
	"github.com/mcoot/dategetter/internal/dependencies/mocks"
	"github.com/mcoot/dategetter/internal/testutil"
)

// TestEpoch is the instant test apps start at: 2015-01-01 00:00:00 UTC
const TestEpoch int64 = 1420070400

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(dateformat.DefaultConfig())
}

// NewTestAppWithConfig creates a test App using the given formatter settings
func NewTestAppWithConfig(cfg dateformat.Config) *TestApp {
	mockClock := mocks.NewMockClockAt(TestEpoch)

	app := newWithDependencies(mockClock, cfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
