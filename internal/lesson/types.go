package lesson

import (
	"encoding/json"
	"fmt"
)

// Record is one parsed (sub-)lesson. Identity is (Level, Lesson, Sub).
type Record struct {
	Level      string         `json:"level"`
	Lesson     int            `json:"lesson"`
	Sub        int            `json:"sub"`
	TopicBo    string         `json:"topicBo"`
	TopicEn    string         `json:"topicEn"`
	Vocab      []VocabEntry   `json:"vocab"`
	Grammar    *Grammar       `json:"grammar"`
	Phrases    []string       `json:"phrases"`
	Dialogue   []DialogueTurn `json:"dialogue"`
	Proverb    string         `json:"proverb,omitempty"`
	FillBlanks []*FillBlank   `json:"fillBlanks"`
}

// ID renders the record identity, e.g. "A1/4.2".
func (r *Record) ID() string {
	return fmt.Sprintf("%s/%d.%d", r.Level, r.Lesson, r.Sub)
}

// VocabEntry pairs a headword with a native definition and/or English gloss.
type VocabEntry struct {
	Bo    string `json:"bo"`
	DefBo string `json:"defBo,omitempty"`
	En    string `json:"en"`
}

// Grammar is the grammar pattern taught by a lesson.
type Grammar struct {
	Pattern   string `json:"pattern"`
	ExampleBo string `json:"example_bo,omitempty"`
	ExampleEn string `json:"example_en,omitempty"`
}

// DialogueTurn is one speaker's contribution to a dialogue.
type DialogueTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// ParticleType names the case particle a fill-in-the-blank exercise drills.
type ParticleType string

const (
	Genitive ParticleType = "genitive"
	Agentive ParticleType = "agentive"
	Locative ParticleType = "locative"
	Dative   ParticleType = "dative"
)

// FillBlank is a sentence with a blank marker and the word bank it draws from.
//
// WordBank is shared: every blank extracted under the same banner holds the
// same pointer. Answer and ParticleType start empty and are filled in by the
// particle generator; ParticleType is only ever set together with Answer.
type FillBlank struct {
	Sentence     string       `json:"sentence"`
	WordBank     *WordBank    `json:"word_bank"`
	Answer       string       `json:"answer,omitempty"`
	ParticleType ParticleType `json:"particle_type,omitempty"`
}

// WordBank is an immutable, ordered list of candidate words.
type WordBank struct {
	words []string
}

// NewWordBank copies words into a new bank.
func NewWordBank(words []string) *WordBank {
	w := make([]string, len(words))
	copy(w, words)
	return &WordBank{words: w}
}

// Words returns a copy of the bank's words.
func (b *WordBank) Words() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

func (b *WordBank) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	words := b.words
	if words == nil {
		words = []string{}
	}
	return json.Marshal(words)
}

func (b *WordBank) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return fmt.Errorf("decode word bank: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	b.words = words
	return nil
}
