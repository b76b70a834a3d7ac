package cli

import (
	"fmt"
	"io"
	"os"

	"textbook-parser/internal/graph"
	"textbook-parser/internal/ocr"
	"textbook-parser/internal/translation"

	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a headword's gloss and the lessons that teach it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := loadConfig(cmd)
			word := args[0]
			out := cmd.OutOrStdout()

			table, err := translation.LoadFile(cfg.GlossaryPath)
			if err != nil {
				return err
			}
			printGloss(out, word, translation.NewResolver(table, nil).Vocab(word))

			useGraph, _ := cmd.Flags().GetBool("graph")
			if !useGraph {
				return nil
			}

			driver, err := connectGraph(ctx, cfg)
			if err != nil {
				return err
			}
			defer driver.Close(ctx)

			result, err := graph.NewGraphQuerier(driver).LessonsForWord(ctx, word)
			if err != nil {
				return err
			}
			printLessons(out, result)
			return nil
		},
	}

	cmd.Flags().String("glossary", "", "Glossary JSON path")
	cmd.Flags().Bool("graph", false, "Also list the lessons teaching the word from Neo4j")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

func printGloss(w io.Writer, word, gloss string) {
	if gloss == "" {
		gloss = "(no gloss)"
	}
	fmt.Fprintf(w, "%s\t%s\n", word, gloss)
}

func printLessons(w io.Writer, result *graph.WordResult) {
	if len(result.Lessons) == 0 {
		fmt.Fprintf(w, "%s is not taught in any lesson\n", result.Bo)
		return
	}
	for _, l := range result.Lessons {
		topic := l.TopicBo
		if l.TopicEn != "" {
			topic = fmt.Sprintf("%s (%s)", l.TopicBo, l.TopicEn)
		}
		fmt.Fprintf(w, "%s/%d.%d\t#%d\t%s\n", l.Level, l.Lesson, l.Sub, l.Position+1, topic)
	}
}

func correctCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct <file>",
		Short: "Print a textbook's text after OCR correction",
		Args: func(cmd *cobra.Command, args []string) error {
			if listRules, _ := cmd.Flags().GetBool("rules"); listRules {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfig(cmd)

			if listRules, _ := cmd.Flags().GetBool("rules"); listRules {
				printRules(cmd.OutOrStdout(), ocr.Rules())
				return nil
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read textbook: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			return writeCorrected(cmd.OutOrStdout(), output, string(data))
		},
	}

	cmd.Flags().String("output", "", "Write the corrected text to this path instead of stdout")
	cmd.Flags().Bool("rules", false, "List the correction rules instead of correcting a file")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

func printRules(w io.Writer, rules []ocr.Rule) {
	for i, r := range rules {
		fmt.Fprintf(w, "%2d\t%s\t%s\t%s\n", i+1, r.Wrong, r.Right, r.Note)
	}
}

func writeCorrected(stdout io.Writer, path, text string) error {
	corrected := ocr.Correct(text)
	if path == "" {
		_, err := io.WriteString(stdout, corrected)
		return err
	}
	if err := os.WriteFile(path, []byte(corrected), 0644); err != nil {
		return fmt.Errorf("write corrected text: %w", err)
	}
	return nil
}
