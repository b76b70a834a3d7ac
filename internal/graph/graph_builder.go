// Package graph exports parsed lessons into a Neo4j vocabulary graph:
// (:Lesson)-[:PART_OF]->(:Level), (:Lesson)-[:TEACHES]->(:Word) and
// (:Lesson)-[:DRILLS]->(:Particle).
package graph

import (
	"context"
	"fmt"
	"strings"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// Statement is one parameterised Cypher statement.
type Statement struct {
	Cypher string
	Params map[string]any
}

var constraints = []string{
	"CREATE CONSTRAINT IF NOT EXISTS FOR (l:Level) REQUIRE l.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (l:Lesson) REQUIRE l.id IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (w:Word) REQUIRE w.bo IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Particle) REQUIRE p.type IS UNIQUE",
}

const (
	mergeLesson = `
		MERGE (lv:Level {name: $level})
		MERGE (l:Lesson {id: $id})
		SET l.level = $level,
		    l.lesson = $lesson,
		    l.sub = $sub,
		    l.topicBo = $topicBo,
		    l.topicEn = $topicEn,
		    l.grammar = $grammar
		MERGE (l)-[:PART_OF]->(lv)`

	clearTeaches = `
		MATCH (l:Lesson {id: $id})-[t:TEACHES]->(:Word)
		DELETE t`

	mergeWords = `
		MATCH (l:Lesson {id: $id})
		UNWIND $words AS word
		MERGE (w:Word {bo: word.bo})
		SET w.headword = word.headword,
		    w.en = CASE WHEN word.en <> '' THEN word.en ELSE coalesce(w.en, '') END,
		    w.defBo = CASE WHEN word.defBo <> '' THEN word.defBo ELSE coalesce(w.defBo, '') END
		MERGE (l)-[t:TEACHES]->(w)
		SET t.position = word.position`

	mergeParticles = `
		MATCH (l:Lesson {id: $id})
		UNWIND $types AS type
		MERGE (p:Particle {type: type})
		MERGE (l)-[:DRILLS]->(p)`
)

// WordKey is the graph identity of a headword: surrounding space and
// trailing shad or tsheg removed, so "བུ།" and "བུ" are one word.
func WordKey(headword string) string {
	return textutil.TrimPunct(strings.TrimSpace(headword))
}

// LessonStatements returns the statements that upsert one record.
func LessonStatements(rec *lesson.Record) []Statement {
	grammar := ""
	if rec.Grammar != nil {
		grammar = rec.Grammar.Pattern
	}

	stmts := []Statement{
		{Cypher: mergeLesson, Params: map[string]any{
			"id":      rec.ID(),
			"level":   rec.Level,
			"lesson":  rec.Lesson,
			"sub":     rec.Sub,
			"topicBo": rec.TopicBo,
			"topicEn": rec.TopicEn,
			"grammar": grammar,
		}},
		{Cypher: clearTeaches, Params: map[string]any{"id": rec.ID()}},
	}

	// One TEACHES edge per word key; the first occurrence sets the position.
	var words []any
	taught := make(map[string]bool)
	for i, v := range rec.Vocab {
		key := WordKey(v.Bo)
		if key == "" || taught[key] {
			continue
		}
		taught[key] = true
		words = append(words, map[string]any{
			"bo":       key,
			"headword": v.Bo,
			"en":       v.En,
			"defBo":    v.DefBo,
			"position": i,
		})
	}
	if len(words) > 0 {
		stmts = append(stmts, Statement{Cypher: mergeWords, Params: map[string]any{"id": rec.ID(), "words": words}})
	}

	var types []any
	seen := make(map[lesson.ParticleType]bool)
	for _, fb := range rec.FillBlanks {
		if fb.ParticleType == "" || seen[fb.ParticleType] {
			continue
		}
		seen[fb.ParticleType] = true
		types = append(types, string(fb.ParticleType))
	}
	if len(types) > 0 {
		stmts = append(stmts, Statement{Cypher: mergeParticles, Params: map[string]any{"id": rec.ID(), "types": types}})
	}

	return stmts
}

// GraphBuilder writes lessons into the Neo4j graph.
type GraphBuilder struct {
	driver neo4j.DriverWithContext
}

// NewGraphBuilder creates a new graph builder.
func NewGraphBuilder(driver neo4j.DriverWithContext) *GraphBuilder {
	return &GraphBuilder{driver: driver}
}

// EnsureSchema creates constraints on the Neo4j database.
func (gb *GraphBuilder) EnsureSchema(ctx context.Context) error {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph schema ensured")
	return nil
}

// UpsertLessons writes every record. Each lesson is written in its own
// transaction so a failure leaves earlier lessons in place.
func (gb *GraphBuilder) UpsertLessons(ctx context.Context, records []*lesson.Record) error {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	words := 0
	for _, rec := range records {
		stmts := LessonStatements(rec)
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			for _, st := range stmts {
				if _, err := tx.Run(ctx, st.Cypher, st.Params); err != nil {
					return nil, err
				}
			}
			return nil, nil
		})
		if err != nil {
			return fmt.Errorf("upsert lesson %s: %w", rec.ID(), err)
		}
		words += len(rec.Vocab)
	}

	log.Info().Int("lessons", len(records)).Int("words", words).Msg("Exported lessons to graph")
	return nil
}
