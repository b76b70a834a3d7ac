package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textbook-parser/internal/config"
	"textbook-parser/internal/filewalker"
	"textbook-parser/internal/graph"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/parser"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var book = strings.Join([]string{
	"གནས་ཚད་དང་པོ། ༡།༡",
	"བརོད་གཞི།",
	"ཁྱིམ་ཚང་།",
	"ཚིག་གསར་ངོ་སྤྲོད།",
	"བུ།",
	"ཕྲུ་གུ་ཕོ།",
	"",
	"གནས་ཚད་དང་པོ། ༡།༢",
	"སོབ་ཕྲུག་དགའ་པོ།",
}, "\n")

const glossary = `{"topics": {"ཁྱིམ་ཚང": "Family"}, "vocab": {"བུ": "boy"}}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunParse(t *testing.T) {
	dir := t.TempDir()
	books := filepath.Join(dir, "books")
	require.NoError(t, os.Mkdir(books, 0755))
	writeFile(t, filepath.Join(books, "A1-Book-1.txt"), book)
	writeFile(t, filepath.Join(books, "A0-Intro.txt"), "ཀ་ཁ་ག་ང།\n")
	writeFile(t, filepath.Join(dir, "translations.json"), glossary)

	cfg := &config.Config{
		TextbookDir:      books,
		GlossaryPath:     filepath.Join(dir, "translations.json"),
		OutputPath:       filepath.Join(dir, "lessons.json"),
		MissingGlossPath: filepath.Join(dir, "missing.tsv"),
		WorkerCount:      2,
	}
	require.NoError(t, runParse(context.Background(), cfg, false))

	records, err := lesson.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "A1/1.1", first.ID())
	assert.Equal(t, "Family", first.TopicEn)
	require.Len(t, first.Vocab, 1)
	assert.Equal(t, "boy", first.Vocab[0].En)
	assert.Equal(t, "A1/1.2", records[1].ID())

	tsv, err := os.ReadFile(cfg.MissingGlossPath)
	require.NoError(t, err)
	assert.Equal(t, "level\tlesson\tsub\theadword\tdefinition\n", string(tsv))
}

func TestRunParse_MissingGlossary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A2-Book.txt"), book)

	cfg := &config.Config{
		TextbookDir:  dir,
		GlossaryPath: filepath.Join(dir, "absent.json"),
		OutputPath:   filepath.Join(t.TempDir(), "lessons.json"),
		WorkerCount:  1,
	}
	require.NoError(t, runParse(context.Background(), cfg, false))

	records, err := lesson.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A2", records[0].Level)
	assert.Empty(t, records[0].Vocab[0].En)
}

func TestRunParse_MalformedGlossary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "g.json"), "{")

	cfg := &config.Config{
		TextbookDir:  dir,
		GlossaryPath: filepath.Join(dir, "g.json"),
		OutputPath:   filepath.Join(dir, "lessons.json"),
	}
	require.Error(t, runParse(context.Background(), cfg, false))
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRunParse_Manifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "book.txt"), book)
	writeFile(t, filepath.Join(dir, "sources.yaml"), "sources:\n  - path: book.txt\n    level: B1\n")

	cfg := &config.Config{
		SourceManifest: filepath.Join(dir, "sources.yaml"),
		GlossaryPath:   filepath.Join(dir, "absent.json"),
		OutputPath:     filepath.Join(dir, "lessons.json"),
	}
	require.NoError(t, runParse(context.Background(), cfg, false))

	records, err := lesson.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "B1", records[0].Level)
}

func TestRunParse_DuplicateLessons(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A1-Book-1.txt"), book)
	writeFile(t, filepath.Join(dir, "A1-Jongdeb.txt"), book)

	cfg := &config.Config{
		TextbookDir:  dir,
		GlossaryPath: filepath.Join(dir, "absent.json"),
		OutputPath:   filepath.Join(t.TempDir(), "lessons.json"),
		WorkerCount:  2,
	}
	require.NoError(t, runParse(context.Background(), cfg, false))

	records, err := lesson.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"A1/1.1", "A1/1.2"}, ids)
}

func TestParseSources_DuplicateKeepsFirstSource(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "A1-Book-1.txt")
	second := filepath.Join(dir, "A1-Jongdeb.txt")
	writeFile(t, first, book)
	writeFile(t, second, strings.Join([]string{
		"གནས་ཚད་དང་པོ། ༡།༡",
		"བརོད་གཞི།",
		"ཁ་ལག",
		"གནས་ཚད་དང་པོ། ༣།༡",
		"བརོད་གཞི།",
		"གྲོགས་པོ།",
	}, "\n"))

	p := parser.NewTextbookParser()
	sources := []filewalker.Source{
		{Path: first, Level: "A1", Parser: p},
		{Path: second, Level: "A1", Parser: p},
		{Path: second, Level: "A2", Parser: p},
	}

	records, err := parseSources(context.Background(), 1, sources)
	require.NoError(t, err)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"A1/1.1", "A1/1.2", "A1/3.1", "A2/1.1", "A2/3.1"}, ids)
	assert.Equal(t, "ཁྱིམ་ཚང་།", records[0].TopicBo)
}

func TestParseSources_ReadFailureAborts(t *testing.T) {
	sources := []filewalker.Source{
		{Path: filepath.Join(t.TempDir(), "missing.txt"), Level: "A1", Parser: parser.NewTextbookParser()},
	}

	records, err := parseSources(context.Background(), 1, sources)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestApplyFlags(t *testing.T) {
	cmd := parseCmd()
	require.NoError(t, cmd.Flags().Set("output", "out.json"))
	require.NoError(t, cmd.Flags().Set("workers", "3"))

	cfg := &config.Config{OutputPath: "lessons.json", GlossaryPath: "translations.json", WorkerCount: 1}
	applyFlags(cmd, cfg)

	assert.Equal(t, "out.json", cfg.OutputPath)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, "translations.json", cfg.GlossaryPath)
}

func TestSetLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	setLogLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setLogLevel("loud")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestCorrectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	writeFile(t, path, "སོབ་ཕྲུག་དགའ་པོ།")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"correct", path})

	require.NoError(t, root.Execute())
	assert.Equal(t, "སློབ་ཕྲུག་དགའ་པོ།", out.String())
}

func TestCorrectCommand_Rules(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"correct", "--rules"})

	require.NoError(t, root.Execute())
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 19)
	assert.Equal(t, " 1\tསོབ་ཕྲུག\tསློབ་ཕྲུག\tstudent", lines[0])
	assert.Equal(t, "19\tསར་མ\tསྐར་མ\tminute", lines[18])
}

func TestCorrectCommand_RequiresFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"correct"})

	assert.Error(t, root.Execute())
}

func TestPrintOutput(t *testing.T) {
	var buf bytes.Buffer
	printGloss(&buf, "བུ", "")
	printGloss(&buf, "བུ", "boy")
	assert.Equal(t, "བུ\t(no gloss)\nབུ\tboy\n", buf.String())

	buf.Reset()
	printLessons(&buf, &graph.WordResult{Bo: "བུ"})
	assert.Equal(t, "བུ is not taught in any lesson\n", buf.String())

	buf.Reset()
	printLessons(&buf, &graph.WordResult{Bo: "བུ", Lessons: []graph.LessonRef{
		{Level: "A1", Lesson: 1, Sub: 1, TopicBo: "ཁྱིམ་ཚང་།", TopicEn: "Family"},
		{Level: "A2", Lesson: 3, Sub: 2, TopicBo: "ཁ་ལག", Position: 4},
	}})
	assert.Equal(t, "A1/1.1\t#1\tཁྱིམ་ཚང་། (Family)\nA2/3.2\t#5\tཁ་ལག\n", buf.String())
}
