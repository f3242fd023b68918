package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxBodySize bounds request bodies (1MB).
const MaxBodySize = 1 << 20

// Server serves the machine operations over JSON.
type Server struct {
	Engine  ports.Engine
	Catalog *machinefile.Catalog
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCatalog exposes named machines (GET /machines, "name" in requests).
func WithCatalog(c *machinefile.Catalog) Option {
	return func(s *Server) {
		s.Catalog = c
	}
}

// WithMetrics mounts a metrics handler on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Engine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/machines", s.ListMachines)
	r.Post("/encode", s.Encode)
	r.Post("/decode", s.Decode)
	r.Post("/describe", s.Describe)
	r.Post("/graph", s.Graph)
	r.Post("/run", s.Run)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MachineRequest selects a machine, inline or by catalog name.
type MachineRequest struct {
	Name    string         `json:"name,omitempty"`
	Machine map[string]any `json:"machine,omitempty"`
}

// RunRequest is the body of POST /run. Input and Head default to the
// machine's start section; Head is 1-based.
type RunRequest struct {
	MachineRequest
	Input *string `json:"input,omitempty"`
	Head  *int    `json:"head,omitempty"`
}

// DecodeRequest is the body of POST /decode.
type DecodeRequest struct {
	MachineRequest
	Bits string `json:"bits"`
}

// ErrorResponse is returned with every 4xx/5xx status.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// EncodeResponse is the body returned by POST /encode.
type EncodeResponse struct {
	Codes   encoding.Codes `json:"codes"`
	Encoded string         `json:"encoded"`
}

// DescribeResponse is the body returned by POST /describe.
type DescribeResponse struct {
	Document    *schema.Document `json:"document"`
	Transitions []string         `json:"transitions"`
}

// RunResponse is the body returned by POST /run. A fault is a result, not
// a transport error: it is reported with outcome "fault" and status 200.
type RunResponse struct {
	RunID     string         `json:"run_id"`
	Outcome   domain.Outcome `json:"outcome"`
	Steps     int            `json:"steps"`
	Trace     []string       `json:"trace"`
	FinalTape string         `json:"final_tape,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"name": "turing", "version": turing.Version})
}

// ListMachines handles GET /machines.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	if s.Catalog != nil {
		names = s.Catalog.List()
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"machines": names})
}

// Encode handles POST /encode.
func (s *Server) Encode(w http.ResponseWriter, r *http.Request) {
	var body MachineRequest
	def, ok := s.decodeMachine(w, r, &body, &body)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, EncodeResponse{
		Codes:   s.Engine.Codes(def.Machine),
		Encoded: s.Engine.Encode(def.Machine),
	})
}

// Decode handles POST /decode.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	var body DecodeRequest
	def, ok := s.decodeMachine(w, r, &body, &body.MachineRequest)
	if !ok {
		return
	}
	cells, err := encoding.Decode(body.Bits, def.Machine)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]schema.Rule{"transitions": machinefile.Rules(def.Machine, cells)})
}

// Describe handles POST /describe.
func (s *Server) Describe(w http.ResponseWriter, r *http.Request) {
	var body MachineRequest
	def, ok := s.decodeMachine(w, r, &body, &body)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, DescribeResponse{
		Document:    machinefile.ToDocument(def.Machine, def.Start()),
		Transitions: runner.TransitionLines(def.Machine),
	})
}

// Graph handles POST /graph. When the request carries input, the run is
// drawn as an overlay.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	def, ok := s.decodeMachine(w, r, &body, &body.MachineRequest)
	if !ok {
		return
	}

	var overlay *graph.GraphOverlay
	if body.Input != nil {
		input, head, err := runParams(def, &body)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		res, err := s.Engine.Run(r.Context(), def.Machine, input, head)
		if res == nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		overlay = graph.OverlayFromResult(res)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(def.Machine, overlay))
}

// Run handles POST /run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	def, ok := s.decodeMachine(w, r, &body, &body.MachineRequest)
	if !ok {
		return
	}
	input, head, err := runParams(def, &body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.Engine.Run(r.Context(), def.Machine, input, head)
	if res == nil {
		s.Logger.Error("Run failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := RunResponse{
		RunID:     res.RunID,
		Outcome:   res.Outcome(),
		Steps:     res.Steps,
		Trace:     make([]string, 0, len(res.Trace)),
		FinalTape: res.FinalTape,
	}
	for _, c := range res.Trace {
		resp.Trace = append(resp.Trace, c.String())
	}
	if err != nil {
		resp.Error = runner.Diagnostic(err)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// decodeMachine reads the JSON body into dst and resolves the machine
// named by req. It writes the error response itself and reports ok=false
// on failure.
func (s *Server) decodeMachine(w http.ResponseWriter, r *http.Request, dst any, req *MachineRequest) (*machinefile.Definition, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}

	switch {
	case req.Machine != nil:
		def, err := machinefile.FromMap(req.Machine)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return nil, false
		}
		return def, true
	case req.Name != "" && s.Catalog != nil:
		def, err := s.Catalog.Get(req.Name)
		if err != nil {
			s.writeError(w, http.StatusNotFound, err)
			return nil, false
		}
		return def, true
	}
	s.writeError(w, http.StatusBadRequest, errors.New("request must carry a machine or a machine name"))
	return nil, false
}

func runParams(def *machinefile.Definition, body *RunRequest) (string, int, error) {
	input, head := def.Input, def.Head
	if body.Input != nil {
		clean, err := runner.SanitizeInput(*body.Input)
		if err != nil {
			return "", 0, fmt.Errorf("invalid input: %w", err)
		}
		input, head = clean, 0
	}
	if body.Head != nil {
		if *body.Head < 1 {
			return "", 0, fmt.Errorf("head must be at least 1, got %d", *body.Head)
		}
		head = *body.Head - 1
	}
	return input, head, nil
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	if details := schema.ValidationErrors(err); details != nil {
		resp.Error = "invalid machine"
		for _, d := range details {
			resp.Details = append(resp.Details, d.Error())
		}
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
