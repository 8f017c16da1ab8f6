package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, New(Config{}, nil).Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}

func TestCorrelationID(t *testing.T) {
	h := New(Config{}, nil).Handler()

	t.Run("generated when absent", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/healthz", "")
		assert.Len(t, w.Header().Get(CorrelationIDHeader), 36)
	})

	t.Run("preserved when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(CorrelationIDHeader))
	})

	t.Run("set on error responses", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/compare", `{"salary": -1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, w.Header().Get(CorrelationIDHeader))
	})
}

func TestCorrelationIDReachesRequestContext(t *testing.T) {
	r := gin.New()
	r.Use(correlationID(New(Config{}, nil).log))
	r.GET("/ctx", func(c *gin.Context) {
		c.String(http.StatusOK, CorrelationIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
	req.Header.Set(CorrelationIDHeader, "ctx-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "ctx-id", w.Body.String())
}

func TestCompare(t *testing.T) {
	s := New(Config{}, nil)
	body := `{
		"salary": 500000,
		"other_income": 100000,
		"special": {"stcg": 10000},
		"deductions": {"section_80c": 60000, "hra": 40000}
	}`

	w := do(t, s.Handler(), http.MethodPost, "/v1/compare", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Old struct {
			TaxableIncome float64 `json:"taxable_income"`
			SlabTax       float64 `json:"slab_tax"`
			SpecialTax    float64 `json:"special_tax"`
			Surcharge     float64 `json:"surcharge"`
			Total         float64 `json:"total"`
		} `json:"old"`
		New struct {
			Total float64 `json:"total"`
		} `json:"new"`
		Savings float64 `json:"savings"`
		Better  string  `json:"better_regime"`
		Verdict string  `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.InDelta(t, 450_000, resp.Old.TaxableIncome, 1e-6)
	assert.InDelta(t, 10_000, resp.Old.SlabTax, 1e-6)
	assert.InDelta(t, 1_500, resp.Old.SpecialTax, 1e-6)
	assert.InDelta(t, 460, resp.Old.Surcharge, 1e-6)
	assert.InDelta(t, 11_960, resp.Old.Total, 1e-6)
	assert.InDelta(t, 14_560, resp.New.Total, 1e-6)
	assert.InDelta(t, -2_600, resp.Savings, 1e-6)
	assert.Equal(t, "old", resp.Better)
	assert.Equal(t, "Old Regime is Better", resp.Verdict)

	st := s.snapshotStatus()
	assert.EqualValues(t, 1, st.Comparisons)
	assert.EqualValues(t, 1, st.OldWins)
}

func TestCompareNewRegimeWins(t *testing.T) {
	s := New(Config{}, nil)
	w := do(t, s.Handler(), http.MethodPost, "/v1/compare", `{"salary": 1200000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, tax.RegimeNew, resp.Better)
	assert.Greater(t, resp.Savings, 0.0)
	assert.Equal(t, "New Regime is Better", resp.Verdict)
}

func TestCompareRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative salary", `{"salary": -1}`},
		{"negative other income", `{"other_income": -5}`},
		{"negative special", `{"special": {"crypto": -100}}`},
		{"negative deduction", `{"deductions": {"hra": -1}}`},
		{"oversized salary", `{"salary": 1e20}`},
		{"malformed json", `{"salary": `},
		{"wrong type", `{"salary": "lots"}`},
	}

	s := New(Config{}, nil)
	h := s.Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/v1/compare", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.Details)
		})
	}
	assert.EqualValues(t, len(tests), s.snapshotStatus().Rejected)
	assert.Zero(t, s.snapshotStatus().Comparisons)
}

func TestCompareErrorCodes(t *testing.T) {
	h := New(Config{}, nil).Handler()
	tests := []struct {
		body string
		code string
	}{
		{`{"salary": 1e20}`, "AMOUNT_TOO_LARGE"},
		{`{"salary": 600000000000000, "other_income": 600000000000000}`, "AMOUNT_TOO_LARGE"},
		{`{"salary": "lots"}`, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		w := do(t, h, http.MethodPost, "/v1/compare", tt.body)
		require.Equal(t, http.StatusBadRequest, w.Code, tt.body)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tt.code, resp.Code, tt.body)
	}
}

func TestSchedules(t *testing.T) {
	w := do(t, New(Config{}, nil).Handler(), http.MethodGet, "/v1/schedules", "")
	require.Equal(t, http.StatusOK, w.Code)

	type bracket struct {
		Label string   `json:"label"`
		Lower float64  `json:"lower"`
		Upper *float64 `json:"upper"`
		Rate  float64  `json:"rate"`
	}
	var resp struct {
		Schedules map[string]struct {
			Name     string    `json:"name"`
			Brackets []bracket `json:"brackets"`
		} `json:"schedules"`
		StandardDeduction float64 `json:"standard_deduction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Schedules, 2)

	old, ok := resp.Schedules["old"]
	require.True(t, ok)
	assert.Equal(t, "Old Regime", old.Name)
	require.Len(t, old.Brackets, 4)
	assert.Equal(t, "250000-500000", old.Brackets[1].Label)
	last := old.Brackets[len(old.Brackets)-1]
	assert.Nil(t, last.Upper)
	assert.Equal(t, "1000000-∞", last.Label)

	assert.Equal(t, "New Regime", resp.Schedules["new"].Name)
	assert.Len(t, resp.Schedules["new"].Brackets, 6)
	assert.InDelta(t, 50_000, resp.StandardDeduction, 1e-9)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(Config{Addr: addr}, nil).Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
