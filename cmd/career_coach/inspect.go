package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daniel/career-coach/internal/db"
	"github.com/daniel/career-coach/internal/observability"
	"github.com/daniel/career-coach/internal/roadmap"
	"github.com/daniel/career-coach/internal/types"
)

var inspectCandidate string

var inspectCmd = &cobra.Command{
	Use:   "inspect <roadmap-id>",
	Short: "Print a roadmap and its progress report",
	Long:  `Load a roadmap from the database and print a formatted summary with its current progress scores. Pass --candidate to look up by candidate ID instead.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectCandidate, "candidate", "", "Look up the roadmap by candidate ID")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	result, err := loadRoadmap(ctx, database, args)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRoadmap(result)
	printer.PrintProgress(roadmap.ScoreProgress(result, time.Now().UTC()))
	return nil
}

func loadRoadmap(ctx context.Context, database *db.DB, args []string) (*types.Roadmap, error) {
	if inspectCandidate != "" {
		candidateID, err := uuid.Parse(inspectCandidate)
		if err != nil {
			return nil, fmt.Errorf("invalid candidate ID: %w", err)
		}
		r, err := database.GetRoadmapByCandidate(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, fmt.Errorf("candidate has no roadmap: %s", candidateID)
		}
		return r, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a roadmap ID or --candidate is required")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid roadmap ID: %w", err)
	}
	r, err := database.GetRoadmap(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("roadmap not found: %s", id)
	}
	return r, nil
}
