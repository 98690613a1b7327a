package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/hexcomb/internal/adapters/http"
	"github.com/aretw0/hexcomb/internal/cli"
	"github.com/aretw0/hexcomb/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solve server",
	Long:  `Starts the hexcomb solver in server mode, exposing a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		dictPath, _ := cmd.Flags().GetString("dict")
		cache, _ := cmd.Flags().GetString("cache")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		cacheKey, _ := cmd.Flags().GetString("cache-key")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)
		slog.SetDefault(logger)

		sc := cli.NewSignalContext(context.Background())
		defer sc.Cancel()

		solver, cleanup, err := cli.BuildSolver(sc, cli.SolverConfig{
			DictPath: dictPath,
			Cache:    cache,
			CacheTTL: cacheTTL,
			CacheKey: cacheKey,
		}, logger)
		if err != nil {
			fmt.Printf("Error initializing solver: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		srv := &http.Server{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(solver),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting hexcomb Server on %s\n", srv.Addr)
			fmt.Printf("Dictionary: %s (%d words)\n", dictPath, solver.WordCount())
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case <-sc.Done():
			fmt.Printf("\nStart shutdown... Signal: %v\n", sc.Signal())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("hexcomb Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("dict", "dictionary.txt", "Path to the dictionary file")
	serveCmd.Flags().String("cache", "memory", "Result cache: '', 'memory' or a Redis URL")
	serveCmd.Flags().Duration("cache-ttl", 0, "Expiration for cached results (0 keeps them forever)")
	serveCmd.Flags().String("cache-key", "", "Hex-encoded AES-256 key sealing cached results")
}
