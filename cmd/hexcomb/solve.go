package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hexcomb/internal/cli"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <honeycomb-file> <dictionary-file>",
	Short: "Find every dictionary word hidden in a honeycomb",
	Long: `Reads a honeycomb file and a dictionary file, then prints every
dictionary word that can be traced across adjacent honeycomb cells,
sorted and deduplicated, one per line.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		pretty, _ := cmd.Flags().GetBool("pretty")
		debug, _ := cmd.Flags().GetBool("debug")
		cache, _ := cmd.Flags().GetString("cache")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		cacheKey, _ := cmd.Flags().GetString("cache-key")

		if jsonMode && pretty {
			fmt.Println("Error: --json and --pretty cannot be used together.")
			os.Exit(1)
		}

		if err := cli.RunSolve(cli.SolveOptions{
			PuzzlePath: args[0],
			DictPath:   args[1],
			JSON:       jsonMode,
			Pretty:     pretty,
			Debug:      debug,
			Cache:      cache,
			CacheTTL:   cacheTTL,
			CacheKey:   cacheKey,
		}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("json", false, "Emit the result as JSON")
	solveCmd.Flags().BoolP("pretty", "p", false, "Render a formatted report")
	solveCmd.Flags().String("cache", "", "Result cache: 'memory' or a Redis URL")
	solveCmd.Flags().Duration("cache-ttl", 0, "Expiration for cached results (0 keeps them forever)")
	solveCmd.Flags().String("cache-key", "", "Hex-encoded AES-256 key sealing cached results")
}
