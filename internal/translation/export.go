package translation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"textbook-parser/internal/lesson"

	"github.com/rs/zerolog/log"
)

// WriteMissingTSV writes one row per headword without an English gloss so
// glossary maintainers can fill them in. It returns the number of rows.
func WriteMissingTSV(w io.Writer, records []*lesson.Record) (int, error) {
	if _, err := fmt.Fprintln(w, "level\tlesson\tsub\theadword\tdefinition"); err != nil {
		return 0, fmt.Errorf("write TSV header: %w", err)
	}

	rows := 0
	for _, rec := range records {
		for _, v := range rec.Vocab {
			if v.En != "" {
				continue
			}
			_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
				escapeTSV(rec.Level),
				rec.Lesson,
				rec.Sub,
				escapeTSV(v.Bo),
				escapeTSV(v.DefBo),
			)
			if err != nil {
				return rows, fmt.Errorf("write TSV row: %w", err)
			}
			rows++
		}
	}
	return rows, nil
}

// ExportMissingTSV writes the unglossed headwords to a TSV file.
func ExportMissingTSV(path string, records []*lesson.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create TSV file: %w", err)
	}
	defer f.Close()

	rows, err := WriteMissingTSV(f, records)
	if err != nil {
		return err
	}

	log.Info().Str("path", path).Int("entries", rows).Msg("Exported unglossed vocabulary to TSV")
	return nil
}

func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
