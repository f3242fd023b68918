package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsWithB = `{
  "name": "ends-with-b",
  "states": ["q0", "q1"],
  "symbols": ["a", "b"],
  "start": {"input": "aab", "head": 1},
  "transitions": [
    {"from": "q0", "read": "a", "to": "q0", "write": "a", "action": "R"},
    {"from": "q0", "read": "b", "to": "q1", "write": "b", "action": "R"},
    {"from": "q0", "read": "#", "to": "q0", "write": "#", "action": "N"},
    {"from": "q1", "read": "a", "to": "q0", "write": "a", "action": "R"},
    {"from": "q1", "read": "b", "to": "q1", "write": "b", "action": "R"},
    {"from": "q1", "read": "#", "to": "q1", "write": "#", "action": "Y"}
  ]
}`

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRun_Inline(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/run", `{"machine": `+endsWithB+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeAccepted, resp.Outcome)
	assert.Equal(t, 4, resp.Steps)
	assert.Equal(t, "q0  <(a)ab", resp.Trace[0])
	assert.Equal(t, "<aab(#)", resp.FinalTape)
	assert.NotEmpty(t, resp.RunID)
}

func TestRun_OverrideInput(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/run", `{"machine": `+endsWithB+`, "input": "ba", "head": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeRejected, resp.Outcome)
}

func TestRun_Fault(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/run", `{"machine": `+endsWithB+`, "input": "ac"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeFault, resp.Outcome)
	assert.Contains(t, resp.Error, "supported alphabet")
	assert.Len(t, resp.Trace, 2)
}

func TestRun_StepLimit(t *testing.T) {
	loop := `{"states": ["q0"], "symbols": ["a"], "transitions": [
		{"from": "q0", "read": "a", "to": "q0", "write": "a", "action": "R"},
		{"from": "q0", "read": "#", "to": "q0", "write": "#", "action": "L"}]}`
	h := NewHandler(turing.New(turing.WithMaxSteps(50)))

	w := post(t, h, "/run", `{"machine": `+loop+`, "input": "a"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.OutcomeFault, resp.Outcome)
	assert.Contains(t, resp.Error, "Step limit reached")
}

func TestRun_InvalidMachine(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/run", `{"machine": {"states": ["q0"], "symbols": ["a"], "transitions": [
		{"from": "q0", "read": "a", "to": "q0", "write": "a", "action": "R"}]}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid machine", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Contains(t, resp.Details[0], "transition table is incomplete")
}

func TestRun_BadRequests(t *testing.T) {
	h := NewHandler(turing.New())

	assert.Equal(t, http.StatusBadRequest, post(t, h, "/run", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, "/run", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, "/run", `{"machine": `+endsWithB+`, "head": 0}`).Code)
}

func TestEncodeAndDecode(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/encode", `{"machine": `+endsWithB+`}`)
	require.Equal(t, http.StatusOK, w.Code)

	var enc EncodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enc))
	assert.True(t, strings.HasPrefix(enc.Encoded, "10101010100"))
	assert.Equal(t, "11", enc.Codes.States[1].Code)
	assert.Equal(t, "#", enc.Codes.Symbols[2].Label)

	w = post(t, h, "/decode", `{"machine": `+endsWithB+`, "bits": "`+enc.Encoded+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"from":"q1","read":"#","to":"q1","write":"#","action":"Y"`)

	w = post(t, h, "/decode", `{"machine": `+endsWithB+`, "bits": "10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDescribe(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/describe", `{"machine": `+endsWithB+`}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp DescribeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ends-with-b", resp.Document.Name)
	assert.Equal(t, 1, resp.Document.Start.Head)
	assert.Contains(t, resp.Transitions, "(q0, b)|---(q1, b, R)")
}

func TestGraph(t *testing.T) {
	h := NewHandler(turing.New())

	w := post(t, h, "/graph", `{"machine": `+endsWithB+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph LR"))
	assert.NotContains(t, w.Body.String(), "classDef")

	w = post(t, h, "/graph", `{"machine": `+endsWithB+`, "input": "ab"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "class ACCEPT accepted;")
}

func TestCatalog(t *testing.T) {
	def, err := machinefile.Parse([]byte(endsWithB))
	require.NoError(t, err)
	catalog := machinefile.NewCatalog()
	catalog.Add("ends-with-b", def)

	h := NewHandler(turing.New(), WithCatalog(catalog))

	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.JSONEq(t, `{"machines": ["ends-with-b"]}`, w.Body.String())

	w = post(t, h, "/run", `{"name": "ends-with-b"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"accepted"`)

	w = post(t, h, "/run", `{"name": "missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthInfoMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	eng := turing.New(turing.WithLifecycleHooks(metrics.Hooks()))
	h := NewHandler(eng, WithMetrics(metrics.Handler()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/info", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), turing.Version)

	post(t, h, "/run", `{"machine": `+endsWithB+`}`)

	srv := httptest.NewServer(h)
	defer srv.Close()
	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `turing_runs_total{outcome="accepted"} 1`)
}

func TestCORS(t *testing.T) {
	h := NewHandler(turing.New())
	req := httptest.NewRequest(http.MethodOptions, "/run", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
