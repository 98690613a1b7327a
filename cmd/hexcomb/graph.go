package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hexcomb/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph <honeycomb-file>",
	Short: "Render a honeycomb as a Mermaid diagram",
	Long: `Prints the honeycomb's cells and adjacency as a Mermaid graph,
ready to paste into any Mermaid renderer. With --trace WORD the cells
spelling that word are highlighted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		trace, _ := cmd.Flags().GetString("trace")

		out, err := cli.RunGraph(cmd.Context(), cli.GraphOptions{
			PuzzlePath: args[0],
			Trace:      trace,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("trace", "", "Highlight the path of this word")
}
