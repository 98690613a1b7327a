package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hexcomb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hexcomb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hexcomb version %s\n", strings.TrimSpace(hexcomb.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
