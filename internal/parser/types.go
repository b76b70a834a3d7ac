package parser

import (
	"errors"

	"textbook-parser/internal/lesson"
)

// ErrNoLessons is returned when a source holds no lesson boundary marker.
// Callers treat it as a skipped source, not a failed run.
var ErrNoLessons = errors.New("no lesson markers found")

// ParseResult holds parsing output for a single textbook source.
type ParseResult struct {
	// FilePath is the path of the parsed source.
	FilePath string
	// Level is the proficiency level the source was parsed as.
	Level string
	// Records are the lessons in ascending (lesson, sub) order.
	Records []*lesson.Record
}

// Parser is the interface for textbook source parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse reads one source and assembles its lessons.
	Parse(filePath, level string) (*ParseResult, error)
}
