// Package translation attaches English glosses to extracted native terms.
//
// The glossary is loaded once into an immutable Table and handed to a
// Resolver; nothing in the package holds global state.
package translation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"textbook-parser/internal/textutil"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

// Entry is one glossary pair.
type Entry struct {
	Bo string
	En string
}

// glossary keeps entries in source order plus lookup indexes. Keys are NFC
// normalized so that visually identical stacks encoded differently match.
type glossary struct {
	entries []Entry
	exact   map[string]int
	clean   map[string]int // first entry per cleaned key
}

func newGlossary(entries []Entry, clean func(string) string) glossary {
	g := glossary{
		exact: make(map[string]int, len(entries)),
		clean: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		bo := norm.NFC.String(e.Bo)
		// A repeated key keeps its first position and takes the later gloss.
		if i, ok := g.exact[bo]; ok {
			g.entries[i].En = e.En
			continue
		}
		g.exact[bo] = len(g.entries)
		g.entries = append(g.entries, Entry{Bo: bo, En: e.En})
	}
	for i, e := range g.entries {
		c := clean(e.Bo)
		if _, ok := g.clean[c]; !ok {
			g.clean[c] = i
		}
	}
	return g
}

func (g glossary) get(bo string) (string, bool) {
	i, ok := g.exact[bo]
	if !ok {
		return "", false
	}
	return g.entries[i].En, true
}

// Table is the immutable bilingual glossary: topic headings and vocabulary.
type Table struct {
	topics glossary
	vocab  glossary
}

// NewTable builds a table from topic and vocabulary entries. Entry order
// decides which key wins in the fuzzy passes.
func NewTable(topics, vocab []Entry) *Table {
	return &Table{
		topics: newGlossary(topics, cleanTopic),
		vocab:  newGlossary(vocab, cleanVocab),
	}
}

// Len returns the number of topic and vocabulary entries.
func (t *Table) Len() (topics, vocab int) {
	return len(t.topics.entries), len(t.vocab.entries)
}

// cleanVocab drops trailing shads, then trailing tshegs, then whitespace.
func cleanVocab(s string) string {
	s = strings.TrimRight(s, textutil.Shad)
	s = strings.TrimRight(s, textutil.Tsheg)
	return strings.TrimSpace(s)
}

func cleanTopic(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, textutil.Shad))
}

// lookupVocab tries, in order: the word as given, the word without trailing
// punctuation, that form with a shad or a tsheg appended, and finally any
// key whose own punctuation-free form matches.
func (t *Table) lookupVocab(word string) (string, bool) {
	word = norm.NFC.String(word)
	if en, ok := t.vocab.get(word); ok {
		return en, true
	}

	c := cleanVocab(word)
	for _, candidate := range []string{c, c + textutil.Shad, c + textutil.Tsheg} {
		if en, ok := t.vocab.get(candidate); ok {
			return en, true
		}
	}

	if i, ok := t.vocab.clean[c]; ok {
		return t.vocab.entries[i].En, true
	}
	return "", false
}

// lookupTopic tries the topic as given, then without trailing shads, then
// the first key that contains or is contained in the topic.
func (t *Table) lookupTopic(topic string) (string, bool) {
	if topic == "" {
		return "", false
	}
	topic = norm.NFC.String(topic)
	if en, ok := t.topics.get(topic); ok {
		return en, true
	}
	if en, ok := t.topics.get(cleanTopic(topic)); ok {
		return en, true
	}

	for _, e := range t.topics.entries {
		key := strings.TrimRight(e.Bo, textutil.Shad)
		if key == "" {
			continue
		}
		if strings.Contains(topic, key) || strings.Contains(e.Bo, topic) {
			return e.En, true
		}
	}
	return "", false
}

// Decode reads a glossary document of the form
// {"topics": {native: gloss}, "vocab": {native: gloss}}, keeping key order.
// Unknown top-level fields are ignored.
func Decode(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("decode glossary: %w", err)
	}

	var topics, vocab []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode glossary: %w", err)
		}
		field, _ := tok.(string)

		switch field {
		case "topics":
			topics, err = decodeOrdered(dec)
		case "vocab":
			vocab, err = decodeOrdered(dec)
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return nil, fmt.Errorf("decode glossary %q: %w", field, err)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("decode glossary: %w", err)
	}
	return NewTable(topics, vocab), nil
}

// decodeOrdered reads one {string: string} object as an ordered entry list.
// A null object yields no entries.
func decodeOrdered(dec *json.Decoder) ([]Entry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		bo, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		var en string
		if err := dec.Decode(&en); err != nil {
			return nil, fmt.Errorf("gloss for %q: %w", bo, err)
		}
		entries = append(entries, Entry{Bo: bo, En: en})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// LoadFile reads a glossary file. A missing file is not an error: parsing
// continues with an empty table and English glosses stay empty.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("Glossary not found, no English translations")
		return NewTable(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open glossary: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, err
	}

	topics, vocab := t.Len()
	log.Info().Str("path", path).Int("topics", topics).Int("vocab", vocab).Msg("Loaded glossary")
	return t, nil
}
