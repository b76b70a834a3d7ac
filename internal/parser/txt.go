package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// TextbookParser parses plain-text textbook extractions.
type TextbookParser struct{}

func NewTextbookParser() *TextbookParser { return &TextbookParser{} }

func (p *TextbookParser) CanParse(ext string) bool {
	return ext == ".txt"
}

// Parse reads filePath and assembles its lessons at the given level. A read
// failure is returned as an error; a source without lesson markers yields
// ErrNoLessons.
func (p *TextbookParser) Parse(filePath, level string) (*ParseResult, error) {
	text, err := readText(filePath)
	if err != nil {
		return nil, err
	}

	records := ParseBook(text, level)
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", filePath, ErrNoLessons)
	}

	log.Info().Str("file", filePath).Str("level", level).Int("lessons", len(records)).Msg("Parsed textbook")

	return &ParseResult{
		FilePath: filePath,
		Level:    level,
		Records:  records,
	}, nil
}

func readText(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open textbook: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4*1024*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan textbook: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
