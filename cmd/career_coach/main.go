// Package main provides the entry point for the Career Coach HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_coach",
	Short: "Career Coach HTTP API Server",
	Long:  "Career Coach generates personalized career roadmaps for candidates, tracks milestone progress, and scores candidate compatibility against recruiter job requirements via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
