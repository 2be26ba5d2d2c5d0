package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dategetter/internal/api"
	"github.com/mcoot/dategetter/internal/api/apierr"
	"github.com/mcoot/dategetter/internal/api/response"
	"github.com/mcoot/dategetter/internal/dependencies/mocks"
	"github.com/mcoot/dategetter/internal/factory"
	"github.com/mcoot/dategetter/internal/testutil"
)

const newYear2015 = factory.TestEpoch

type testServer struct {
	handler http.Handler
	clock   *mocks.MockClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:    app.Logger,
		Formatter: app.Formatter,
	})

	return &testServer{handler: router, clock: app.MockClock}
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeDate(t *testing.T, rr *httptest.ResponseRecorder) response.DateResponse {
	t.Helper()
	var resp response.DateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.ErrorResponse {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestDateDefaultsToNowAndDefaultPattern(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/date")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeDate(t, rr)
	assert.Equal(t, response.DateResponse{
		Formatted: "2015-01-01 00:00:00",
		Pattern:   "YYYY-MM-DD hh:mm:ss",
		Dialect:   "token",
		Timezone:  "UTC",
		At:        newYear2015,
	}, resp)
}

func TestDateWithExplicitInstant(t *testing.T) {
	ts := newTestServer(t)
	ts.clock.Advance(24 * time.Hour)

	resp := decodeDate(t, ts.get("/api/v1/date?at=1420070400&pattern=dddd"))
	assert.Equal(t, "Thursday", resp.Formatted)
	assert.Equal(t, newYear2015, resp.At)
}

func TestDateWithEmptyPattern(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/date?pattern=&at=1420070400")
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeDate(t, rr)
	assert.Equal(t, "", resp.Formatted)
	assert.Equal(t, "", resp.Pattern)
}

func TestDateWithDialectAndTimezone(t *testing.T) {
	ts := newTestServer(t)

	resp := decodeDate(t, ts.get("/api/v1/date?at=1420070400&dialect=strftime&tz=Asia/Tokyo"))
	assert.Equal(t, "2015-01-01 09:00:00", resp.Formatted)
	assert.Equal(t, "%Y-%m-%d %H:%M:%S", resp.Pattern)
	assert.Equal(t, "strftime", resp.Dialect)
	assert.Equal(t, "Asia/Tokyo", resp.Timezone)
}

func TestDateRejectsBadTimestamp(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/date?at=yesterday")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Error.Code)
}

func TestDateRejectsUnknownDialect(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/date?dialect=moment")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Error.Code)
}

func TestDateRejectsUnknownTimezone(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/date?tz=Atlantis/Capital")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error.Message, "Atlantis/Capital")
}

func TestDialects(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/dialects")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []response.Dialect
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	assert.Equal(t, response.Dialect{Name: "token", DefaultPattern: "YYYY-MM-DD hh:mm:ss"}, resp[0])
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get("/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, decodeError(t, rr).Error.Code)
}

func TestWrongMethodGetsJSONError(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/date", nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
	assert.Equal(t, apierr.CodeMethodNotAllowed, decodeError(t, rr).Error.Code)
}

func TestServerRunStopsOnCancel(t *testing.T) {
	ts := newTestServer(t)
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	server := api.NewServer(ts.handler, cfg, testutil.NopLogger())
	require.NoError(t, server.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	resp, err := http.Get("http://" + server.Addr() + "/api/v1/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
