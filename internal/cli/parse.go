package cli

import (
	"context"
	"errors"
	"fmt"

	"textbook-parser/internal/cache"
	"textbook-parser/internal/config"
	"textbook-parser/internal/filewalker"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/parser"
	"textbook-parser/internal/store"
	"textbook-parser/internal/translation"
	"textbook-parser/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [textbook-dir]",
		Short: "Parse textbooks into lesson JSON",
		Long: `Discovers textbook .txt files (from a directory or a YAML manifest),
extracts every lesson, attaches English glosses from the glossary and writes
one JSON array of lesson records.

Directory discovery parses every .txt file it finds. When several volumes
of the same level share lesson numbers, list the volumes to parse in a
manifest instead; otherwise only the first source of each lesson is kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := loadConfig(cmd)
			if len(args) == 1 {
				cfg.TextbookDir = args[0]
			}
			fromDB, _ := cmd.Flags().GetBool("glossary-db")

			return runParse(ctx, cfg, fromDB)
		},
	}

	cmd.Flags().String("manifest", "", "YAML manifest listing textbook sources (overrides directory discovery)")
	cmd.Flags().String("glossary", "", "Glossary JSON path")
	cmd.Flags().Bool("glossary-db", false, "Load the glossary from PostgreSQL instead of a file")
	cmd.Flags().String("output", "", "Output JSON path")
	cmd.Flags().String("missing", "", "Write unglossed vocabulary to this TSV path")
	cmd.Flags().Int("workers", 1, "Number of textbooks parsed concurrently")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

// runParse handles the `parse` command.
func runParse(ctx context.Context, cfg *config.Config, glossaryFromDB bool) error {
	table, err := loadGlossary(ctx, cfg, glossaryFromDB)
	if err != nil {
		return err
	}

	sources, err := discoverSources(cfg)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		log.Warn().Str("dir", cfg.TextbookDir).Msg("No textbooks found")
	}

	records, err := parseSources(ctx, cfg.WorkerCount, sources)
	if err != nil {
		return err
	}

	memo := cache.New()
	resolver := translation.NewResolver(table, memo)
	if missing := resolver.Attach(records); missing > 0 {
		log.Info().Int("unglossed", missing).Msg("Vocabulary without English gloss")
	}

	if cfg.MissingGlossPath != "" {
		if err := translation.ExportMissingTSV(cfg.MissingGlossPath, records); err != nil {
			return err
		}
	}

	if err := lesson.WriteFile(cfg.OutputPath, records); err != nil {
		return err
	}

	lesson.Summarize(records).Log()
	memo.LogStats()
	return nil
}

func loadGlossary(ctx context.Context, cfg *config.Config, fromDB bool) (*translation.Table, error) {
	if !fromDB {
		return translation.LoadFile(cfg.GlossaryPath)
	}

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return store.New(pool).LoadGlossary(ctx)
}

func discoverSources(cfg *config.Config) ([]filewalker.Source, error) {
	w := filewalker.NewWalker()

	if cfg.SourceManifest != "" {
		m, err := config.LoadManifest(cfg.SourceManifest)
		if err != nil {
			return nil, err
		}
		return w.FromManifest(m)
	}

	sources, err := w.Walk(cfg.TextbookDir)
	if err != nil {
		return nil, fmt.Errorf("walk textbook directory: %w", err)
	}
	return sources, nil
}

// parseSources parses every source and concatenates the records in source
// order. A source without lesson markers is skipped with a warning; any
// other failure aborts the run. Lesson identity (level, lesson, sub) is
// unique in the result: a repeated identity keeps the record from the
// earlier source and the later one is dropped with a warning.
func parseSources(ctx context.Context, workers int, sources []filewalker.Source) ([]*lesson.Record, error) {
	w := filewalker.NewWalker()
	pool := worker.NewPool("parse", workers,
		func(ctx context.Context, s filewalker.Source) (*parser.ParseResult, error) {
			return w.ParseSource(s)
		},
	)

	var records []*lesson.Record
	seen := make(map[string]string) // record ID → source path
	for _, task := range pool.Execute(ctx, sources) {
		switch {
		case errors.Is(task.Err, parser.ErrNoLessons):
			log.Warn().Str("file", task.Input.Path).Msg("No lesson markers, skipping textbook")
		case task.Err != nil:
			return nil, fmt.Errorf("parse %s: %w", task.Input.Path, task.Err)
		default:
			for _, rec := range task.Result.Records {
				id := rec.ID()
				if first, dup := seen[id]; dup {
					log.Warn().
						Str("lesson", id).
						Str("file", task.Input.Path).
						Str("kept", first).
						Msg("Duplicate lesson, skipping")
					continue
				}
				seen[id] = task.Input.Path
				records = append(records, rec)
			}
		}
	}

	return records, nil
}
