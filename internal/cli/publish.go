package cli

import (
	"fmt"

	"textbook-parser/internal/graph"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func publishDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish-db [lessons.json]",
		Short: "Store parsed lessons in PostgreSQL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := loadConfig(cmd)
			if len(args) == 1 {
				cfg.OutputPath = args[0]
			}

			records, err := lesson.ReadFile(cfg.OutputPath)
			if err != nil {
				return err
			}

			pool, err := store.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			s := store.New(pool)
			if err := s.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := s.SaveLessons(ctx, records, cfg.BatchSize); err != nil {
				return err
			}

			log.Info().Int("lessons", len(records)).Msg("Published lessons to PostgreSQL")
			return nil
		},
	}

	cmd.Flags().Int("batch-size", 50, "Lessons written per transaction")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

func publishGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish-graph [lessons.json]",
		Short: "Export parsed lessons into the Neo4j vocabulary graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := loadConfig(cmd)
			if len(args) == 1 {
				cfg.OutputPath = args[0]
			}

			records, err := lesson.ReadFile(cfg.OutputPath)
			if err != nil {
				return err
			}

			driver, err := connectGraph(ctx, cfg)
			if err != nil {
				return err
			}
			defer driver.Close(ctx)

			gb := graph.NewGraphBuilder(driver)
			if err := gb.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("ensure graph schema: %w", err)
			}
			return gb.UpsertLessons(ctx, records)
		},
	}

	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}
