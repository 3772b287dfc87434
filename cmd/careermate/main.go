// Package main provides the entry point for the CareerMate HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careermate",
	Short: "CareerMate career advisor HTTP API server",
	Long:  "CareerMate answers career questions — skill gap analysis, job search, and course recommendations — over a REST API, classifying queries with an LLM when configured and deterministic rules otherwise.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
