package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/adapters/mcp"
	"github.com/aretw0/switchback/internal/logging"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the puzzle catalog and the solver as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Logs go to Stderr so they never corrupt JSON-RPC on Stdout
		logger := logging.New(slog.LevelInfo)
		if cfg.Debug {
			logger = logging.New(slog.LevelDebug)
		}
		log.SetOutput(os.Stderr)

		solver := switchback.New(
			switchback.WithLogger(logger),
			switchback.WithMaxStates(cfg.MaxStates),
		)
		srv := mcp.NewServer(solver, logger)

		switch transport {
		case "stdio":
			logger.Info("Starting Switchback MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting Switchback MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().Int("max-states", 0, "Stop each search after this many states (0 = unlimited)")
}
