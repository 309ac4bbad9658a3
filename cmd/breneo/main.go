// Package main provides the breneo command line: offline scoring of YAML
// fixtures and database maintenance.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "breneo",
	Short:         "Breneo matching and maintenance tools",
	Long:          "Scores candidates against jobs from YAML fixtures and runs database migrations and seeders.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
