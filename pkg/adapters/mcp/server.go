package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// EncodeResponse is the structured result of encode_machine.
type EncodeResponse struct {
	Codes   encoding.Codes `json:"codes" jsonschema_description:"Unary codes of states, symbols and actions"`
	Encoded string         `json:"encoded" jsonschema_description:"The encoded transition table"`
}

// RunResponse is the structured result of run_machine.
type RunResponse struct {
	RunID     string         `json:"run_id" jsonschema_description:"Unique ID of the run"`
	Outcome   domain.Outcome `json:"outcome" jsonschema_description:"accepted, rejected or fault"`
	Steps     int            `json:"steps" jsonschema_description:"Number of transitions applied"`
	Trace     []string       `json:"trace" jsonschema_description:"One configuration line per step"`
	FinalTape string         `json:"final_tape,omitempty" jsonschema_description:"Tape when the run ended, head cell in parentheses"`
	Error     string         `json:"error,omitempty" jsonschema_description:"Fault diagnostic"`
}

// DescribeResponse is the structured result of describe_machine.
type DescribeResponse struct {
	Document    *schema.Document `json:"document" jsonschema_description:"Normalized machine document"`
	Transitions []string         `json:"transitions" jsonschema_description:"One line per table cell"`
	Mermaid     string           `json:"mermaid" jsonschema_description:"Mermaid state diagram"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	catalog   *machinefile.Catalog
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. catalog may be nil.
func NewServer(engine ports.Engine, catalog *machinefile.Catalog) *Server {
	if catalog == nil {
		catalog = machinefile.NewCatalog()
	}
	s := &Server{
		engine:    engine,
		catalog:   catalog,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	machineArgs := []mcp.ToolOption{
		mcp.WithString("machine", mcp.Description("Machine document as YAML or JSON (fields: name, states, symbols, start, transitions)")),
		mcp.WithString("name", mcp.Description("Name of a preloaded machine, used when 'machine' is omitted")),
	}

	// TOOL: encode_machine
	s.mcpServer.AddTool(mcp.NewTool("encode_machine", append(machineArgs,
		mcp.WithDescription("Encode a machine's transition table as a unary bitstring."),
		mcp.WithOutputSchema[EncodeResponse](),
	)...), mcp.NewStructuredToolHandler(s.handleEncode))

	// TOOL: run_machine
	s.mcpServer.AddTool(mcp.NewTool("run_machine", append(machineArgs,
		mcp.WithDescription("Run a machine on an input tape and return the execution trace and verdict."),
		mcp.WithString("input", mcp.Description("Input string (defaults to the machine's start input)")),
		mcp.WithNumber("head", mcp.Description("1-based head index (defaults to the machine's start head, or 1)")),
		mcp.WithOutputSchema[RunResponse](),
	)...), mcp.NewStructuredToolHandler(s.handleRun))

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine", append(machineArgs,
		mcp.WithDescription("Validate a machine and return its normalized document, transition lines and diagram."),
		mcp.WithOutputSchema[DescribeResponse](),
	)...), mcp.NewStructuredToolHandler(s.handleDescribe))

	// TOOL: list_machines
	s.mcpServer.AddTool(mcp.NewTool("list_machines",
		mcp.WithDescription("List the names of preloaded machines."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.catalog.List())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleEncode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EncodeResponse, error) {
	def, err := s.resolve(args)
	if err != nil {
		return EncodeResponse{}, err
	}
	return EncodeResponse{
		Codes:   s.engine.Codes(def.Machine),
		Encoded: s.engine.Encode(def.Machine),
	}, nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	def, err := s.resolve(args)
	if err != nil {
		return RunResponse{}, err
	}

	input, head := def.Input, def.Head
	if raw, ok := args["input"].(string); ok {
		clean, err := runner.SanitizeInput(raw)
		if err != nil {
			slog.Warn("MCP Run: Input rejected", "error", err, "size", len(raw))
			return RunResponse{}, fmt.Errorf("input rejected: %w", err)
		}
		input, head = clean, 0
	}
	if raw, ok := args["head"].(float64); ok {
		if raw < 1 || raw != float64(int(raw)) {
			return RunResponse{}, fmt.Errorf("head must be a positive integer, got %v", raw)
		}
		head = int(raw) - 1
	}

	res, err := s.engine.Run(ctx, def.Machine, input, head)
	if res == nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
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
	return resp, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DescribeResponse, error) {
	def, err := s.resolve(args)
	if err != nil {
		return DescribeResponse{}, err
	}
	return DescribeResponse{
		Document:    machinefile.ToDocument(def.Machine, def.Start()),
		Transitions: runner.TransitionLines(def.Machine),
		Mermaid:     graph.GenerateMermaid(def.Machine, nil),
	}, nil
}

func (s *Server) resolve(args map[string]interface{}) (*machinefile.Definition, error) {
	if doc, ok := args["machine"].(string); ok && strings.TrimSpace(doc) != "" {
		def, err := machinefile.Parse([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("invalid machine: %w", err)
		}
		return def, nil
	}
	if name, ok := args["name"].(string); ok && name != "" {
		return s.catalog.Get(name)
	}
	return nil, errors.New("either 'machine' or 'name' is required")
}

func (s *Server) registerResources() {
	// EXPOSE: turing://machines
	s.mcpServer.AddResource(mcp.NewResource("turing://machines", "Preloaded Machines",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		docs := make(map[string]*schema.Document)
		for _, name := range s.catalog.List() {
			def, err := s.catalog.Get(name)
			if err != nil {
				return nil, err
			}
			docs[name] = machinefile.ToDocument(def.Machine, def.Start())
		}
		jsonBytes, _ := json.Marshal(docs)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "turing://machines",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
