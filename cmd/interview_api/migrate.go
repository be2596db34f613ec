package main

import (
	"context"
	"fmt"

	"github.com/jonathan/interview-prep/internal/store"
	"github.com/jonathan/interview-prep/internal/types"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the document store schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := context.Background()
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}

	n, err := s.Count(ctx, types.InterviewsCollection)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration complete (%d interviews stored)\n", n)
	return nil
}
