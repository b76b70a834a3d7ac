// Package store persists parsed lessons in PostgreSQL and reads the glossary
// maintained there.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/translation"
	"textbook-parser/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DB is the part of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS lessons (
		level           TEXT        NOT NULL,
		lesson          INT         NOT NULL,
		sub             INT         NOT NULL,
		topic_bo        TEXT        NOT NULL DEFAULT '',
		topic_en        TEXT        NOT NULL DEFAULT '',
		grammar_pattern TEXT,
		proverb         TEXT,
		record          JSONB       NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (level, lesson, sub)
	)`,
	`CREATE TABLE IF NOT EXISTS lesson_vocab (
		level    TEXT NOT NULL,
		lesson   INT  NOT NULL,
		sub      INT  NOT NULL,
		position INT  NOT NULL,
		bo       TEXT NOT NULL,
		def_bo   TEXT NOT NULL DEFAULT '',
		en       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (level, lesson, sub, position),
		FOREIGN KEY (level, lesson, sub) REFERENCES lessons ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS lesson_vocab_bo_idx ON lesson_vocab (bo)`,
	`CREATE TABLE IF NOT EXISTS glossary (
		id   BIGSERIAL PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('topic', 'vocab')),
		bo   TEXT NOT NULL,
		en   TEXT NOT NULL DEFAULT '',
		UNIQUE (kind, bo)
	)`,
}

const (
	upsertLesson = `INSERT INTO lessons (level, lesson, sub, topic_bo, topic_en, grammar_pattern, proverb, record, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (level, lesson, sub) DO UPDATE SET
			topic_bo = EXCLUDED.topic_bo,
			topic_en = EXCLUDED.topic_en,
			grammar_pattern = EXCLUDED.grammar_pattern,
			proverb = EXCLUDED.proverb,
			record = EXCLUDED.record,
			updated_at = now()`

	deleteVocab = `DELETE FROM lesson_vocab WHERE level = $1 AND lesson = $2 AND sub = $3`

	insertVocab = `INSERT INTO lesson_vocab (level, lesson, sub, position, bo, def_bo, en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectGlossary = `SELECT kind, bo, en FROM glossary ORDER BY id`
)

// Store handles persistence of lessons and glossary reads.
type Store struct {
	db DB
}

// New creates a store over db.
func New(db DB) *Store {
	return &Store{db: db}
}

// Connect opens and pings a PostgreSQL pool.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

// EnsureSchema creates the tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SaveLessons upserts records and replaces their vocabulary rows. Each batch
// of batchSize records is written in one transaction.
func (s *Store) SaveLessons(ctx context.Context, records []*lesson.Record, batchSize int) error {
	for _, batch := range worker.Batch(records, batchSize) {
		if err := s.saveBatch(ctx, batch); err != nil {
			return err
		}
	}

	log.Info().Int("lessons", len(records)).Msg("Saved lessons to PostgreSQL")
	return nil
}

func (s *Store) saveBatch(ctx context.Context, batch []*lesson.Record) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, rec := range batch {
		if err := saveLesson(ctx, tx, rec); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Msg("Rollback failed")
			}
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit lessons: %w", err)
	}
	return nil
}

func saveLesson(ctx context.Context, tx pgx.Tx, rec *lesson.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode lesson %s: %w", rec.ID(), err)
	}

	var pattern, proverb *string
	if rec.Grammar != nil {
		pattern = &rec.Grammar.Pattern
	}
	if rec.Proverb != "" {
		proverb = &rec.Proverb
	}

	if _, err := tx.Exec(ctx, upsertLesson,
		rec.Level, rec.Lesson, rec.Sub, rec.TopicBo, rec.TopicEn, pattern, proverb, body,
	); err != nil {
		return fmt.Errorf("upsert lesson %s: %w", rec.ID(), err)
	}

	if _, err := tx.Exec(ctx, deleteVocab, rec.Level, rec.Lesson, rec.Sub); err != nil {
		return fmt.Errorf("clear vocabulary %s: %w", rec.ID(), err)
	}

	for i, v := range rec.Vocab {
		if _, err := tx.Exec(ctx, insertVocab,
			rec.Level, rec.Lesson, rec.Sub, i, v.Bo, v.DefBo, v.En,
		); err != nil {
			return fmt.Errorf("insert vocabulary %s #%d: %w", rec.ID(), i, err)
		}
	}
	return nil
}

// LoadGlossary reads the glossary table in insertion order.
func (s *Store) LoadGlossary(ctx context.Context) (*translation.Table, error) {
	rows, err := s.db.Query(ctx, selectGlossary)
	if err != nil {
		return nil, fmt.Errorf("query glossary: %w", err)
	}
	defer rows.Close()

	var topics, vocab []translation.Entry
	for rows.Next() {
		var kind string
		var e translation.Entry
		if err := rows.Scan(&kind, &e.Bo, &e.En); err != nil {
			return nil, fmt.Errorf("scan glossary row: %w", err)
		}
		switch kind {
		case "topic":
			topics = append(topics, e)
		case "vocab":
			vocab = append(vocab, e)
		default:
			log.Warn().Str("kind", kind).Str("bo", e.Bo).Msg("Skipping glossary row of unknown kind")
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read glossary: %w", err)
	}

	log.Info().Int("topics", len(topics)).Int("vocab", len(vocab)).Msg("Loaded glossary from PostgreSQL")
	return translation.NewTable(topics, vocab), nil
}
