package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"textbook-parser/internal/config"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "textbook-parser",
		Short:        "Structured lesson extraction from OCR'd Tibetan textbooks",
		Long:         "Parses OCR-extracted Tibetan textbook text into lesson records with vocabulary, grammar, exercises, phrases, dialogue and proverbs.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(correctCmd())
	rootCmd.AddCommand(publishDBCmd())
	rootCmd.AddCommand(publishGraphCmd())
	rootCmd.AddCommand(lookupCmd())

	return rootCmd
}

// loadConfig reads the environment, applies flag overrides present on cmd
// and sets the global log level.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	applyFlags(cmd, cfg)
	setLogLevel(cfg.LogLevel)
	return cfg
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("manifest", &cfg.SourceManifest)
	override("glossary", &cfg.GlossaryPath)
	override("output", &cfg.OutputPath)
	override("missing", &cfg.MissingGlossPath)
	override("log-level", &cfg.LogLevel)

	if flags.Changed("workers") {
		cfg.WorkerCount, _ = flags.GetInt("workers")
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// connectGraph opens a Neo4j driver and verifies connectivity.
func connectGraph(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")

	return driver, nil
}
