package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hexcomb/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <honeycomb-file>",
	Short: "Check a honeycomb file for consistency",
	Long: `Decodes the honeycomb file, checks the symbol stream against the
declared layer count and prints the shape it unrolls into.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summary, err := cli.RunValidate(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(summary)
		fmt.Println("Honeycomb is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
