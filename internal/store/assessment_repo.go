package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// AssessmentRepo persists assessments and their responses.
type AssessmentRepo interface {
	// Save upserts an assessment and rewrites its responses.
	Save(ctx context.Context, a *assessment.Assessment) error

	// Get loads an assessment by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*assessment.Assessment, error)

	// Latest returns the subject's most recently updated assessment.
	// Returns ErrNotFound when the subject has none.
	Latest(ctx context.Context, subject string) (*assessment.Assessment, error)

	// LatestCompleted returns the subject's most recently updated
	// completed assessment. Returns ErrNotFound when none exists.
	LatestCompleted(ctx context.Context, subject string) (*assessment.Assessment, error)
}

type assessmentRepo struct {
	db *sql.DB
}

func (r *assessmentRepo) Save(ctx context.Context, a *assessment.Assessment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO assessments
			(id, subject, tier, status, time_spent_ns, ai_interactions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			subject = excluded.subject,
			tier = excluded.tier,
			status = excluded.status,
			time_spent_ns = excluded.time_spent_ns,
			ai_interactions = excluded.ai_interactions,
			updated_at = excluded.updated_at`,
		a.ID, a.Subject, int(a.Tier), string(a.Status),
		int64(a.TimeSpent), a.AIInteractions,
		a.CreatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("upsert assessment: %w", err)
	}

	// Responses are rewritten wholesale; the arrival order is encoded
	// in the position column.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM responses WHERE assessment_id = ?`, a.ID); err != nil {
		return fmt.Errorf("clear responses: %w", err)
	}
	for i, resp := range a.Responses {
		selected, err := json.Marshal(resp.Selected)
		if err != nil {
			return fmt.Errorf("encode selected options: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO responses
				(assessment_id, question_id, position, value, selected,
				 comment, inferred, confidence, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, resp.QuestionID, i, resp.Value, string(selected),
			resp.Comment, resp.Inferred, resp.Confidence,
			resp.RecordedAt.UnixNano())
		if err != nil {
			return fmt.Errorf("insert response %s: %w", resp.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*assessment.Assessment, error) {
	return r.getOne(ctx, `SELECT id, subject, tier, status, time_spent_ns,
		ai_interactions, created_at, updated_at
		FROM assessments WHERE id = ?`, id)
}

func (r *assessmentRepo) Latest(ctx context.Context, subject string) (*assessment.Assessment, error) {
	return r.getOne(ctx, `SELECT id, subject, tier, status, time_spent_ns,
		ai_interactions, created_at, updated_at
		FROM assessments WHERE subject = ?
		ORDER BY updated_at DESC LIMIT 1`, subject)
}

func (r *assessmentRepo) LatestCompleted(ctx context.Context, subject string) (*assessment.Assessment, error) {
	return r.getOne(ctx, `SELECT id, subject, tier, status, time_spent_ns,
		ai_interactions, created_at, updated_at
		FROM assessments WHERE subject = ? AND status = ?
		ORDER BY updated_at DESC LIMIT 1`, subject, string(assessment.StatusCompleted))
}

func (r *assessmentRepo) getOne(ctx context.Context, query string, args ...any) (*assessment.Assessment, error) {
	var (
		a                    assessment.Assessment
		tier                 int
		status               string
		timeSpent            int64
		createdAt, updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Subject, &tier, &status, &timeSpent,
		&a.AIInteractions, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}

	a.Tier = catalog.Tier(tier)
	a.Status = assessment.Status(status)
	a.TimeSpent = time.Duration(timeSpent)
	a.CreatedAt = time.Unix(0, createdAt)
	a.UpdatedAt = time.Unix(0, updatedAt)

	if err := r.loadResponses(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) loadResponses(ctx context.Context, a *assessment.Assessment) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT question_id, value, selected, comment, inferred, confidence, recorded_at
		FROM responses WHERE assessment_id = ?
		ORDER BY position`, a.ID)
	if err != nil {
		return fmt.Errorf("load responses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       assessment.Response
			selected   string
			recordedAt int64
		)
		if err := rows.Scan(&resp.QuestionID, &resp.Value, &selected,
			&resp.Comment, &resp.Inferred, &resp.Confidence, &recordedAt); err != nil {
			return fmt.Errorf("scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(selected), &resp.Selected); err != nil {
			return fmt.Errorf("decode selected options: %w", err)
		}
		resp.RecordedAt = time.Unix(0, recordedAt)
		a.Responses = append(a.Responses, resp)
	}
	return rows.Err()
}
