package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lockboost/pipeline"
	"github.com/cwbudde/algo-lockboost/resample"
	"github.com/cwbudde/algo-lockboost/stats"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := pipeline.DefaultConfig()
	cfg.SkipFiles = true

	res, err := pipeline.Run(cfg)
	require.NoError(t, err)

	s, err := New(res, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	return s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestNewNilResult(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestCurve(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/curve")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[curveResponse](t, rec)
	assert.Equal(t, 3, resp.Degree)
	require.Len(t, resp.Coefficients, 4)
	assert.InEpsilon(t, 1.5414385619795052e-09, resp.Coefficients[0], 1e-6)
	assert.InEpsilon(t, 0.9002656462008141, resp.Coefficients[3], 1e-9)
	assert.Len(t, resp.Anchors, 4)
	assert.True(t, resp.Monotonic)
	assert.Contains(t, resp.Polynomial, "x^3")
}

func TestMultiplier(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		path    string
		days    int
		want    string
		clamped bool
	}{
		{"/multiplier/90", 90, "1.000", false},
		{"/multiplier/91", 91, "1.001", false},
		{"/multiplier/365", 365, "1.300", false},
		{"/multiplier/1095", 1095, "3.300", false},
		{"/multiplier/30", 30, "1.000", true},
		{"/multiplier/5000", 5000, "3.300", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, h, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[multiplierResponse](t, rec)
			assert.Equal(t, tt.days, resp.Days)
			assert.True(t, resp.Multiplier.Equal(decimal.RequireFromString(tt.want)),
				"multiplier = %s, want %s", resp.Multiplier, tt.want)
			assert.Equal(t, tt.clamped, resp.Clamped)
		})
	}
}

func TestMultiplierRejectsNonInteger(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, path := range []string{"/multiplier/abc", "/multiplier/90.5"} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
	}
}

func TestBoost(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"proportional", "balance=10&supply=100&share=0.5", "1.3"},
		{"capped", "balance=90&supply=100&share=0.1", "2.5"},
		{"no share", "balance=10&supply=100&share=0", "1"},
		{"no supply", "balance=10&supply=0&share=0.5", "1"},
		{"no balance", "balance=0&supply=100&share=0.5", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, "/boost?"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[boostResponse](t, rec)
			assert.True(t, resp.Factor.Equal(decimal.RequireFromString(tt.want)),
				"factor = %s, want %s", resp.Factor, tt.want)
			assert.Nil(t, resp.Reward)
		})
	}
}

func TestBoostReward(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := get(t, h, "/boost?balance=10&supply=100&share=0.5&amount=200")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[boostResponse](t, rec)
	require.NotNil(t, resp.Reward)
	assert.True(t, resp.Reward.Equal(decimal.NewFromInt(260)), "reward = %s", resp.Reward)
}

func TestBoostBadRequest(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, q := range []string{
		"",
		"balance=10&supply=100",
		"balance=ten&supply=100&share=0.5",
		"balance=10&supply=100&share=0.5&amount=lots",
	} {
		rec := get(t, h, "/boost?"+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestSeries(t *testing.T) {
	h := newTestServer(t).Handler()

	daily := decode[resample.Series](t, get(t, h, "/series/daily"))
	require.Equal(t, 1006, daily.Len())
	assert.Equal(t, 90.0, daily.X[0])
	assert.Equal(t, 1095.0, daily.X[daily.Len()-1])

	weekly := decode[resample.Series](t, get(t, h, "/series/weekly"))
	require.Equal(t, 144, weekly.Len())
	assert.Equal(t, 97.0, weekly.X[1])

	cps := decode[resample.Series](t, get(t, h, "/checkpoints"))
	assert.Equal(t, resample.DefaultCheckpoints, cps.X)
	assert.InDelta(t, 3.3, cps.Y[len(cps.Y)-1], 1e-9)
}

func TestDailySummary(t *testing.T) {
	h := newTestServer(t).Handler()

	sum := decode[stats.Summary](t, get(t, h, "/series/daily/summary"))
	assert.Equal(t, 1006, sum.Length)
	assert.True(t, sum.Nondecreasing)
	assert.Equal(t, 0, sum.MinPos)
	assert.Equal(t, 1005, sum.MaxPos)
	assert.InDelta(t, 1.0, sum.Min, 1e-9)
	assert.InDelta(t, 3.3, sum.Max, 1e-9)
}

func TestChart(t *testing.T) {
	h := newTestServer(t).Handler()

	for range 2 {
		rec := get(t, h, "/chart.png")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/curve", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t).Handler()
	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.ListenAndServe(ctx, "127.0.0.1:0"))
}
