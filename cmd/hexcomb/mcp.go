package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hexcomb/internal/cli"
	"github.com/aretw0/hexcomb/internal/logging"
	mcpAdapter "github.com/aretw0/hexcomb/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the hexcomb solver as an MCP Server.
This allows AI agents (like Claude Desktop) to solve honeycomb puzzles as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		dictPath, _ := cmd.Flags().GetString("dict")
		if !cmd.Flags().Changed("dict") && len(args) > 0 {
			dictPath = args[0]
		}

		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Configure logger
		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)

		solver, cleanup, err := cli.BuildSolver(context.Background(), cli.SolverConfig{
			DictPath: dictPath,
		}, logger)
		if err != nil {
			log.Fatalf("Error initializing solver: %v", err)
		}
		defer cleanup()

		srv := mcpAdapter.NewServer(solver)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting hexcomb MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting hexcomb MCP Server (SSE)", "port", port)

			sc := cli.NewSignalContext(context.Background())
			defer sc.Cancel()

			if err := srv.ServeSSE(sc, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					slog.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("dict", "dictionary.txt", "Path to the dictionary file")
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
