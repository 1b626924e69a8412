package store

import (
	"database/sql"
	"fmt"
)

// Timestamps are stored as integer unix nanoseconds throughout, which
// round-trips exactly regardless of driver text formatting.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id              TEXT PRIMARY KEY,
		subject         TEXT NOT NULL,
		tier            INTEGER NOT NULL,
		status          TEXT NOT NULL,
		time_spent_ns   INTEGER NOT NULL DEFAULT 0,
		ai_interactions INTEGER NOT NULL DEFAULT 0,
		created_at      INTEGER NOT NULL,
		updated_at      INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_subject
		ON assessments (subject, status, updated_at)`,
	`CREATE TABLE IF NOT EXISTS responses (
		assessment_id TEXT NOT NULL REFERENCES assessments (id) ON DELETE CASCADE,
		question_id   TEXT NOT NULL,
		position      INTEGER NOT NULL,
		value         TEXT NOT NULL DEFAULT '',
		selected      TEXT NOT NULL DEFAULT '[]',
		comment       TEXT NOT NULL DEFAULT '',
		inferred      INTEGER NOT NULL DEFAULT 0,
		confidence    REAL NOT NULL DEFAULT 0,
		recorded_at   INTEGER NOT NULL,
		PRIMARY KEY (assessment_id, question_id)
	)`,
	`CREATE TABLE IF NOT EXISTS llm_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
