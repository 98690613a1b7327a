package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/hexcomb"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/honeycomb"
)

// SolveResponse aligns with the HTTP adapter schema and provides a unified
// structure across adapters.
type SolveResponse struct {
	Words []string `json:"words" jsonschema_description:"Every dictionary word found, sorted and deduplicated"`
	Count int      `json:"count" jsonschema_description:"Number of distinct words found"`
}

// InspectResponse describes the shape a puzzle unrolls into.
type InspectResponse struct {
	Layers  int      `json:"layers" jsonschema_description:"Number of concentric layers, center included"`
	Cells   int      `json:"cells" jsonschema_description:"Total cell count of the honeycomb"`
	Columns []string `json:"columns" jsonschema_description:"Column strings, bottom cell first, left to right"`
}

// Server wraps a hexcomb Solver and exposes it as an MCP Server.
type Server struct {
	solver    *hexcomb.Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver *hexcomb.Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("hexcomb-mcp", strings.TrimSpace(hexcomb.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Baggage, Sentry-Trace")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve_puzzle
	solveTool := mcp.NewTool("solve_puzzle",
		mcp.WithDescription("Solve a honeycomb word-search puzzle against the loaded dictionary."),
		mcp.WithNumber("layers", mcp.Required(), mcp.Description("Number of concentric layers, center included")),
		mcp.WithString("symbols", mcp.Required(), mcp.Description("Symbol stream in ring order: center, then per ring upper, right half, lower, left half")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolvePuzzle))

	// TOOL: inspect_puzzle
	inspectTool := mcp.NewTool("inspect_puzzle",
		mcp.WithDescription("Unroll a honeycomb into its column strings without solving it."),
		mcp.WithNumber("layers", mcp.Required(), mcp.Description("Number of concentric layers, center included")),
		mcp.WithString("symbols", mcp.Required(), mcp.Description("Symbol stream in ring order")),
		mcp.WithOutputSchema[InspectResponse](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspectPuzzle))
}

// Handler methods for structured tools

func (s *Server) handleSolvePuzzle(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	p, err := puzzleFromArgs(args)
	if err != nil {
		return SolveResponse{}, err
	}

	res, err := s.solver.Solve(ctx, p)
	if err != nil {
		slog.Warn("MCP Solve: request rejected", "error", err)
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	words := res.Sorted()
	return SolveResponse{
		Words: words,
		Count: len(words),
	}, nil
}

func (s *Server) handleInspectPuzzle(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (InspectResponse, error) {
	p, err := puzzleFromArgs(args)
	if err != nil {
		return InspectResponse{}, err
	}

	grid, err := honeycomb.New(p.Layers, p.Symbols)
	if err != nil {
		return InspectResponse{}, fmt.Errorf("inspect failed: %w", err)
	}

	return InspectResponse{
		Layers:  grid.Layers(),
		Cells:   domain.CellCount(grid.Layers()),
		Columns: grid.Columns(),
	}, nil
}

func puzzleFromArgs(args map[string]interface{}) (domain.Puzzle, error) {
	layers, ok := args["layers"].(float64)
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("layers must be a number")
	}
	symbols, ok := args["symbols"].(string)
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("symbols must be a string")
	}
	return domain.Puzzle{Layers: int(layers), Symbols: symbols}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: hexcomb://dictionary
	s.mcpServer.AddResource(mcp.NewResource("hexcomb://dictionary", "Loaded Dictionary Stats",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "hexcomb://dictionary",
				MIMEType: "application/json",
				Text:     fmt.Sprintf(`{"words":%d}`, s.solver.WordCount()),
			},
		}, nil
	})
}
