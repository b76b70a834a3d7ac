package parser

import (
	"slices"

	"textbook-parser/internal/extract"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/ocr"
	"textbook-parser/internal/particle"
	"textbook-parser/internal/segment"

	"github.com/rs/zerolog/log"
)

// ParseBook corrects OCR damage in text, splits it into lessons and runs every
// extractor over each lesson. Records come back in ascending (lesson, sub)
// order with English glosses still empty.
func ParseBook(text, level string) []*lesson.Record {
	groups := segment.Split(ocr.Correct(text))
	keys := segment.Keys(groups)

	records := make([]*lesson.Record, 0, len(keys))
	for _, key := range keys {
		log.Debug().Str("level", level).Str("lesson", key.String()).Int("lines", len(groups[key])).Msg("Assembling lesson")
		records = append(records, assemble(level, key, groups[key]))
	}
	return records
}

// assemble builds one record. Each extractor gets its own copy of the lines.
func assemble(level string, key segment.Key, lines []string) *lesson.Record {
	rec := &lesson.Record{
		Level:      level,
		Lesson:     key.Lesson,
		Sub:        key.Sub,
		TopicBo:    extract.Topic(slices.Clone(lines)),
		Vocab:      extract.Vocabulary(slices.Clone(lines)),
		Grammar:    extract.Grammar(slices.Clone(lines)),
		FillBlanks: extract.FillBlanks(slices.Clone(lines)),
		Phrases:    extract.Phrases(slices.Clone(lines)),
		Dialogue:   extract.Dialogue(slices.Clone(lines)),
		Proverb:    extract.Proverb(slices.Clone(lines)),
	}

	if n := particle.Generate(rec.FillBlanks); n > 0 {
		log.Debug().Str("lesson", rec.ID()).Int("answers", n).Msg("Generated particle answers")
	}

	if rec.Vocab == nil {
		rec.Vocab = []lesson.VocabEntry{}
	}
	if rec.Phrases == nil {
		rec.Phrases = []string{}
	}
	if rec.Dialogue == nil {
		rec.Dialogue = []lesson.DialogueTurn{}
	}
	if rec.FillBlanks == nil {
		rec.FillBlanks = []*lesson.FillBlank{}
	}
	return rec
}
