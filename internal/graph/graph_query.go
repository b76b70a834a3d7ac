package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// LessonRef identifies a lesson that teaches a word.
type LessonRef struct {
	Level    string
	Lesson   int
	Sub      int
	TopicBo  string
	TopicEn  string
	Position int
}

// WordResult is a headword with its glosses and the lessons teaching it.
type WordResult struct {
	Bo      string
	En      string
	DefBo   string
	Lessons []LessonRef
}

const lessonsForWord = `
	MATCH (l:Lesson)-[t:TEACHES]->(w:Word {bo: $bo})
	RETURN w.en AS en, w.defBo AS def_bo,
	       l.level AS level, l.lesson AS lesson, l.sub AS sub,
	       l.topicBo AS topic_bo, l.topicEn AS topic_en, t.position AS position
	ORDER BY l.level, l.lesson, l.sub`

// GraphQuerier reads the vocabulary graph.
type GraphQuerier struct {
	driver neo4j.DriverWithContext
}

// NewGraphQuerier creates a new graph querier.
func NewGraphQuerier(driver neo4j.DriverWithContext) *GraphQuerier {
	return &GraphQuerier{driver: driver}
}

// LessonsForWord finds the lessons teaching word. Trailing punctuation on
// word is ignored. A word the graph does not know yields an empty result.
func (gq *GraphQuerier) LessonsForWord(ctx context.Context, word string) (*WordResult, error) {
	session := gq.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	key := WordKey(word)
	result, err := session.Run(ctx, lessonsForWord, map[string]any{"bo": key})
	if err != nil {
		return nil, fmt.Errorf("query lessons for word: %w", err)
	}

	out := &WordResult{Bo: key}
	for result.Next(ctx) {
		record := result.Record()
		out.En = stringValue(record, "en")
		out.DefBo = stringValue(record, "def_bo")
		out.Lessons = append(out.Lessons, lessonRef(record))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read lessons for word: %w", err)
	}

	log.Debug().Str("word", key).Int("lessons", len(out.Lessons)).Msg("Graph query complete")
	return out, nil
}

func lessonRef(record *neo4j.Record) LessonRef {
	return LessonRef{
		Level:    stringValue(record, "level"),
		Lesson:   intValue(record, "lesson"),
		Sub:      intValue(record, "sub"),
		TopicBo:  stringValue(record, "topic_bo"),
		TopicEn:  stringValue(record, "topic_en"),
		Position: intValue(record, "position"),
	}
}

func stringValue(record *neo4j.Record, key string) string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func intValue(record *neo4j.Record, key string) int {
	v, _ := record.Get(key)
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}
