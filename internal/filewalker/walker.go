package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textbook-parser/internal/config"
	"textbook-parser/internal/parser"

	"github.com/rs/zerolog/log"
)

// SupportedExtensions lists file types handled by the tool.
var SupportedExtensions = map[string]bool{
	".txt": true,
}

// Walker discovers textbook sources and dispatches them to a parser.
type Walker struct {
	parsers []parser.Parser
}

// NewWalker creates a Walker with default parsers.
func NewWalker() *Walker {
	return &Walker{
		parsers: []parser.Parser{
			parser.NewTextbookParser(),
		},
	}
}

// Source is a discovered textbook ready for parsing.
type Source struct {
	Path   string
	Level  string
	Parser parser.Parser
}

// LevelFromName derives the level from a file name: the part before the
// first "-" ("A1-Book-1.txt" → "A1"), or the whole base name.
func LevelFromName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	level, _, _ := strings.Cut(base, "-")
	return level
}

func (w *Walker) parserFor(path string) parser.Parser {
	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExtensions[ext] {
		return nil
	}
	for _, p := range w.parsers {
		if p.CanParse(ext) {
			return p
		}
	}
	return nil
}

// Walk discovers all supported files under root in lexical path order. Each
// source's level comes from its file name.
func (w *Walker) Walk(root string) ([]Source, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var sources []Source

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if p := w.parserFor(path); p != nil {
			sources = append(sources, Source{
				Path:   path,
				Level:  LevelFromName(path),
				Parser: p,
			})
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(sources)).Str("root", root).Msg("Discovered textbooks")
	return sources, nil
}

// FromManifest turns manifest entries into sources, keeping manifest order.
// Every listed file must exist and have a supported extension.
func (w *Walker) FromManifest(m *config.Manifest) ([]Source, error) {
	sources := make([]Source, 0, len(m.Sources))
	for _, ms := range m.Sources {
		if _, err := os.Stat(ms.Path); err != nil {
			return nil, fmt.Errorf("stat source: %w", err)
		}

		p := w.parserFor(ms.Path)
		if p == nil {
			return nil, fmt.Errorf("unsupported source type: %s", ms.Path)
		}

		level := ms.Level
		if level == "" {
			level = LevelFromName(ms.Path)
		}
		sources = append(sources, Source{Path: ms.Path, Level: level, Parser: p})
	}

	log.Info().Int("count", len(sources)).Msg("Loaded textbooks from manifest")
	return sources, nil
}

// ParseSource parses a single source using its parser.
func (w *Walker) ParseSource(s Source) (*parser.ParseResult, error) {
	return s.Parser.Parse(s.Path, s.Level)
}
