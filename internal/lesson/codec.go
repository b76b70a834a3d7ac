package lesson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Encode writes records as an indented JSON array. Native script is written
// as-is; HTML escaping is off so the consumer gets byte-identical text.
func Encode(w io.Writer, records []*Record) error {
	if records == nil {
		records = []*Record{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode lessons: %w", err)
	}
	return nil
}

// Decode reads a JSON array of records.
func Decode(r io.Reader) ([]*Record, error) {
	var records []*Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}
	return records, nil
}

// WriteFile writes records to a JSON file at path.
func WriteFile(path string, records []*Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create lesson file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, records); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("lessons", len(records)).Msg("Exported lessons to JSON")
	return nil
}

// ReadFile loads records from a JSON file written by WriteFile.
func ReadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lesson file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
