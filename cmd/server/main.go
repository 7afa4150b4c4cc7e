// Package main is the entry point for the catan-odds server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/catan-odds/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "catan-odds",
	Short: "Catan settlement odds",
	Long: `catan-odds scores the 54 settlement spots of a Settlers of Catan board by how
often they produce and how many cards per turn they are worth once ports are counted.
It runs as a gRPC server or evaluates layout files locally.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
