package translation

import (
	"strings"

	"textbook-parser/internal/cache"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"

	"github.com/rs/zerolog/log"
)

const (
	kindVocab = "vocab"
	kindTopic = "topic"
)

// Resolver looks glosses up in a Table, remembering results in a Memo.
type Resolver struct {
	table *Table
	memo  *cache.Memo
}

// NewResolver creates a resolver over table. A nil memo gets a fresh one.
func NewResolver(table *Table, memo *cache.Memo) *Resolver {
	if table == nil {
		table = NewTable(nil, nil)
	}
	if memo == nil {
		memo = cache.New()
	}
	return &Resolver{table: table, memo: memo}
}

// Vocab returns the English gloss for a headword, or "". Compound headwords
// written "A/ B" fall back to the first alternative.
func (r *Resolver) Vocab(word string) string {
	if en, ok := r.memo.Get(kindVocab, word); ok {
		return en
	}

	en, _ := r.table.lookupVocab(word)
	if en == "" && strings.Contains(word, "/") {
		first, _, _ := strings.Cut(word, "/")
		en, _ = r.table.lookupVocab(strings.TrimSpace(first))
	}

	r.memo.Set(kindVocab, word, en)
	return en
}

// Topic returns the English gloss for a topic heading, or "".
func (r *Resolver) Topic(topic string) string {
	if en, ok := r.memo.Get(kindTopic, topic); ok {
		return en
	}

	en, _ := r.table.lookupTopic(topic)
	r.memo.Set(kindTopic, topic, en)
	return en
}

// Attach fills TopicEn and every vocabulary gloss in place. It returns the
// number of headwords left without a gloss.
func (r *Resolver) Attach(records []*lesson.Record) int {
	missing := 0
	for _, rec := range records {
		rec.TopicEn = r.Topic(rec.TopicBo)
		for i := range rec.Vocab {
			rec.Vocab[i].En = r.Vocab(rec.Vocab[i].Bo)
			if rec.Vocab[i].En == "" {
				log.Debug().Str("lesson", rec.ID()).Str("word", textutil.Truncate(rec.Vocab[i].Bo, 30)).Msg("No gloss for headword")
				missing++
			}
		}
	}
	return missing
}
