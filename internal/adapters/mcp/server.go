package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/dto"
	"github.com/aretw0/switchback/internal/presentation/graph"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const puzzlesURI = "switchback://puzzles"

// Solver defines the search entry point used by the tools.
type Solver interface {
	Run(initial toggle.State) (switchback.Solution, search.Result[toggle.State])
}

// Server wraps the Solver and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
	mu        sync.Mutex
}

// NewServer creates a new MCP Server instance.
func NewServer(solver Solver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		solver:    solver,
		logger:    logger,
		mcpServer: server.NewMCPServer("switchback-mcp", strings.TrimSpace(switchback.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
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
	// TOOL: list_puzzles
	s.mcpServer.AddTool(mcp.NewTool("list_puzzles",
		mcp.WithDescription("List the built-in puzzles with their size, polarity and trigger count."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		puzzles, err := dto.Catalog()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jsonBytes, _ := json.Marshal(puzzles)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: solve_puzzle
	solveTool := mcp.NewTool("solve_puzzle",
		mcp.WithDescription("Find the shortest move sequence that solves a built-in puzzle."),
		mcp.WithString("puzzle", mcp.Required(), mcp.Description("Puzzle name, see list_puzzles")),
		mcp.WithString("order", mcp.Description("Comma separated move order used to break ties, e.g. down,right,up,left (optional)")),
		mcp.WithOutputSchema[dto.Solution](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: puzzle_graph
	s.mcpServer.AddTool(mcp.NewTool("puzzle_graph",
		mcp.WithDescription("Render the solution path of a puzzle as a Mermaid flowchart."),
		mcp.WithString("puzzle", mcp.Required(), mcp.Description("Puzzle name, see list_puzzles")),
		mcp.WithString("order", mcp.Description("Comma separated move order (optional)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.graph(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dto.Solution, error) {
	name, _ := args["puzzle"].(string)
	initial, err := load(args)
	if err != nil {
		return dto.Solution{}, fmt.Errorf("solve failed: %w", err)
	}

	sol, res := s.run(initial)
	s.logger.Debug("MCP Solve", "puzzle", name, "found", res.Found, "moves", len(sol.Moves))
	return dto.SolutionFrom(name, sol, res.Truncated), nil
}

func (s *Server) graph(args map[string]any) (string, error) {
	name, _ := args["puzzle"].(string)
	initial, err := load(args)
	if err != nil {
		return "", err
	}
	sol, _ := s.run(initial)
	if !sol.Stats.Found {
		return "", fmt.Errorf("puzzle %s has no solution", name)
	}
	return graph.GenerateMermaid(initial, sol.Moves)
}

func (s *Server) run(initial toggle.State) (switchback.Solution, search.Result[toggle.State]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver.Run(initial)
}

func load(args map[string]any) (toggle.State, error) {
	name, _ := args["puzzle"].(string)
	if name == "" {
		return toggle.State{}, errors.New("puzzle is required")
	}
	var names []string
	if raw, _ := args["order"].(string); raw != "" {
		names = strings.Split(raw, ",")
	}
	order, err := domain.ParseOrder(names)
	if err != nil {
		return toggle.State{}, err
	}
	return catalog.Load(name, order)
}

func (s *Server) registerResources() {
	// EXPOSE: switchback://puzzles
	s.mcpServer.AddResource(mcp.NewResource(puzzlesURI, "Built-in Puzzles",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		puzzles, err := dto.Catalog()
		if err != nil {
			return nil, fmt.Errorf("failed to list puzzles: %w", err)
		}
		jsonBytes, _ := json.Marshal(puzzles)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      puzzlesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
