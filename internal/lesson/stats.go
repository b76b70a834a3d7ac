package lesson

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Stats summarizes a parsed corpus.
type Stats struct {
	Lessons          int
	PerLevel         map[string]int
	Vocab            int
	VocabGlossed     int
	TopicsTranslated int
	Phrases          int
	DialogueTurns    int
	Proverbs         int
	FillBlanks       int
	AnsweredBlanks   int
}

// Summarize counts the fields extracted across records.
func Summarize(records []*Record) Stats {
	s := Stats{PerLevel: make(map[string]int)}
	for _, r := range records {
		s.Lessons++
		s.PerLevel[r.Level]++
		s.Vocab += len(r.Vocab)
		for _, v := range r.Vocab {
			if v.En != "" {
				s.VocabGlossed++
			}
		}
		s.Phrases += len(r.Phrases)
		s.DialogueTurns += len(r.Dialogue)
		if r.Proverb != "" {
			s.Proverbs++
		}
		if r.TopicEn != "" {
			s.TopicsTranslated++
		}
		s.FillBlanks += len(r.FillBlanks)
		for _, fb := range r.FillBlanks {
			if fb.Answer != "" {
				s.AnsweredBlanks++
			}
		}
	}
	return s
}

// Log writes the summary through the global logger.
func (s Stats) Log() {
	levels := make([]string, 0, len(s.PerLevel))
	for lvl := range s.PerLevel {
		levels = append(levels, lvl)
	}
	sort.Strings(levels)
	for _, lvl := range levels {
		log.Info().Str("level", lvl).Int("lessons", s.PerLevel[lvl]).Msg("Level parsed")
	}

	log.Info().
		Int("lessons", s.Lessons).
		Int("vocab", s.Vocab).
		Int("vocab_glossed", s.VocabGlossed).
		Int("vocab_unglossed", s.Vocab-s.VocabGlossed).
		Int("topics_translated", s.TopicsTranslated).
		Int("phrases", s.Phrases).
		Int("dialogue_turns", s.DialogueTurns).
		Int("proverbs", s.Proverbs).
		Int("fill_blanks", s.FillBlanks).
		Int("answered_blanks", s.AnsweredBlanks).
		Msg("Parsing results")
}
