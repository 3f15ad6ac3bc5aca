package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/boost"
	"github.com/cwbudde/algo-lockboost/render"
)

type curveResponse struct {
	Coefficients []float64  `json:"coefficients"`
	Degree       int        `json:"degree"`
	Polynomial   string     `json:"polynomial"`
	Anchors      anchor.Set `json:"anchors"`
	Monotonic    bool       `json:"monotonic"`
}

type multiplierResponse struct {
	Days       int             `json:"days"`
	Multiplier decimal.Decimal `json:"multiplier"`
	// Clamped is set when days falls outside the table range.
	Clamped bool `json:"clamped"`
}

type boostResponse struct {
	Balance decimal.Decimal  `json:"balance"`
	Supply  decimal.Decimal  `json:"supply"`
	Share   decimal.Decimal  `json:"share"`
	Factor  decimal.Decimal  `json:"factor"`
	Reward  *decimal.Decimal `json:"reward,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCurve(w http.ResponseWriter, _ *http.Request) {
	m := s.result.Model
	respondJSON(w, http.StatusOK, curveResponse{
		Coefficients: m.Coeffs(),
		Degree:       m.Degree(),
		Polynomial:   m.String(),
		Anchors:      s.result.Anchors,
		Monotonic:    s.result.Monotonic,
	})
}

func (s *Server) handleCheckpoints(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.result.Checkpoints)
}

func (s *Server) handleDaily(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.result.Daily)
}

func (s *Server) handleWeekly(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.result.Weekly)
}

func (s *Server) handleDailySummary(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.result.DailyStats)
}

func (s *Server) handleMultiplier(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(chi.URLParam(r, "days"))
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("days must be an integer"))
		return
	}

	first, last := s.table.Range()
	respondJSON(w, http.StatusOK, multiplierResponse{
		Days:       days,
		Multiplier: s.table.At(days),
		Clamped:    days < first || days > last,
	})
}

func (s *Server) handleBoost(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var vals [3]decimal.Decimal
	for i, key := range []string{"balance", "supply", "share"} {
		d, err := decimal.NewFromString(q.Get(key))
		if err != nil {
			respondError(w, http.StatusBadRequest, errors.New("invalid or missing "+key))
			return
		}

		vals[i] = d
	}

	resp := boostResponse{
		Balance: vals[0],
		Supply:  vals[1],
		Share:   vals[2],
		Factor:  boost.Factor(vals[0], vals[1], vals[2]),
	}

	if a := q.Get("amount"); a != "" {
		amount, err := decimal.NewFromString(a)
		if err != nil {
			respondError(w, http.StatusBadRequest, errors.New("invalid amount"))
			return
		}

		reward := boost.Apply(amount, resp.Factor)
		resp.Reward = &reward
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleChart renders the chart on first request and serves the cached
// image after.
func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	s.chartOnce.Do(func() {
		var buf bytes.Buffer
		c := render.NewChart(s.result.Anchors, s.result.Smooth)
		s.chartErr = render.WriteTo(&buf, c, "png", 0, 0)
		s.chart = buf.Bytes()
	})

	if s.chartErr != nil {
		s.logger.Printf("[WARN] chart: %v", s.chartErr)
		respondError(w, http.StatusInternalServerError, s.chartErr)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(s.chart)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.chart)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
