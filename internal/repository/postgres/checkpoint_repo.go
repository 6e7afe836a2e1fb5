package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lumen-scripture-index/internal/errs"
	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/repository"
)

// Ensure CheckpointRepository implements repository.CheckpointRepository
var _ repository.CheckpointRepository = (*CheckpointRepository)(nil)

// CheckpointRepository implements repository.CheckpointRepository with one
// row per translation. Save is a single keyed upsert, so each checkpoint
// write is atomic on its own.
type CheckpointRepository struct {
	db *sqlx.DB
}

// NewCheckpointRepository creates a new PostgreSQL checkpoint repository.
func NewCheckpointRepository(db *sqlx.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// CreateSchema creates the checkpoint table.
func (r *CheckpointRepository) CreateSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS indexing_checkpoints (
			translation TEXT PRIMARY KEY,
			completed_books JSONB NOT NULL DEFAULT '[]',
			last_completed_book TEXT NOT NULL DEFAULT '',
			total_verses_processed BIGINT NOT NULL DEFAULT 0,
			start_time TIMESTAMPTZ NOT NULL,
			last_update_time TIMESTAMPTZ NOT NULL,
			errors JSONB NOT NULL DEFAULT '[]'
		)`)
	if err != nil {
		return errs.NewPersistenceError("create checkpoint schema", err)
	}
	return nil
}

// Load reads the checkpoint for a translation; nil when none exists.
func (r *CheckpointRepository) Load(ctx context.Context, translation string) (*models.Checkpoint, error) {
	row := r.db.QueryRowxContext(ctx, `
		SELECT translation, completed_books, last_completed_book,
		       total_verses_processed, start_time, last_update_time, errors
		FROM indexing_checkpoints
		WHERE translation = $1
	`, translation)

	var cp models.Checkpoint
	var completedBooks, errorList []byte
	err := row.Scan(&cp.Translation, &completedBooks, &cp.LastCompletedBook,
		&cp.TotalVersesProcessed, &cp.StartTime, &cp.LastUpdateTime, &errorList)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewPersistenceError("load checkpoint "+translation, err)
	}

	if err := json.Unmarshal(completedBooks, &cp.CompletedBooks); err != nil {
		return nil, errs.NewPersistenceError("decode completed_books", err)
	}
	if err := json.Unmarshal(errorList, &cp.Errors); err != nil {
		return nil, errs.NewPersistenceError("decode checkpoint errors", err)
	}
	return &cp, nil
}

// Save writes the checkpoint, inserting on first save and overwriting after.
func (r *CheckpointRepository) Save(ctx context.Context, cp *models.Checkpoint) error {
	completedBooks, err := json.Marshal(cp.CompletedBooks)
	if err != nil {
		return errs.NewPersistenceError("encode completed_books", err)
	}
	errorList, err := json.Marshal(cp.Errors)
	if err != nil {
		return errs.NewPersistenceError("encode checkpoint errors", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO indexing_checkpoints (
			translation, completed_books, last_completed_book,
			total_verses_processed, start_time, last_update_time, errors
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (translation) DO UPDATE SET
			completed_books = EXCLUDED.completed_books,
			last_completed_book = EXCLUDED.last_completed_book,
			total_verses_processed = EXCLUDED.total_verses_processed,
			last_update_time = EXCLUDED.last_update_time,
			errors = EXCLUDED.errors
	`, cp.Translation, completedBooks, cp.LastCompletedBook,
		cp.TotalVersesProcessed, cp.StartTime, cp.LastUpdateTime, errorList)
	if err != nil {
		return errs.NewPersistenceError(fmt.Sprintf("save checkpoint %s", cp.Translation), err)
	}
	return nil
}
