package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/lumen-scripture-index/internal/errs"
	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/repository"
)

// Ensure VerseRepository implements repository.VerseRepository
var _ repository.VerseRepository = (*VerseRepository)(nil)

// VerseRepository implements repository.VerseRepository for PostgreSQL with
// pgvector. The ANN stage is the `<=>` cosine operator; the lexical stage is
// Postgres full-text search over searchable_text.
type VerseRepository struct {
	db         *sqlx.DB
	dimensions int
}

// NewVerseRepository creates a new PostgreSQL verse repository.
func NewVerseRepository(db *sqlx.DB, dimensions int) *VerseRepository {
	return &VerseRepository{db: db, dimensions: dimensions}
}

// CreateSchema creates the pgvector extension and the verse table.
func (r *VerseRepository) CreateSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS verse_embeddings (
				id BIGSERIAL PRIMARY KEY,
				reference TEXT NOT NULL,
				translation TEXT NOT NULL,
				book TEXT NOT NULL,
				book_name TEXT NOT NULL,
				chapter INT NOT NULL,
				verse INT NOT NULL,
				text TEXT NOT NULL,
				chapter_context TEXT NOT NULL DEFAULT '',
				verse_context TEXT NOT NULL DEFAULT '',
				embedding vector(%d),
				embedding_model TEXT NOT NULL,
				embedding_date TIMESTAMPTZ NOT NULL,
				testament TEXT NOT NULL,
				genre TEXT NOT NULL,
				themes TEXT[] NOT NULL DEFAULT '{}',
				searchable_text TEXT NOT NULL DEFAULT ''
			)`, r.dimensions),
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return errs.NewPersistenceError("create schema", err)
		}
	}
	return nil
}

// CreateIndexes establishes the (reference, translation) uniqueness
// constraint, the secondary lookup indexes, and the GIN full-text index
// backing the lexical fallback.
func (r *VerseRepository) CreateIndexes(ctx context.Context) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_verse_embeddings_ref_translation
			ON verse_embeddings (reference, translation)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_book ON verse_embeddings (book)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_chapter ON verse_embeddings (chapter)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_translation ON verse_embeddings (translation)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_testament ON verse_embeddings (testament)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_genre ON verse_embeddings (genre)`,
		`CREATE INDEX IF NOT EXISTS ix_verse_embeddings_searchable
			ON verse_embeddings USING GIN (to_tsvector('simple', searchable_text))`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return errs.NewPersistenceError("create indexes", err)
		}
	}
	return nil
}

// UpsertOne inserts or updates the record keyed by (reference, translation).
// Repeated calls with the same key converge to one row holding the latest
// values, including the embedding and its date.
func (r *VerseRepository) UpsertOne(ctx context.Context, rec *models.VerseEmbedding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verse_embeddings (
			reference, translation, book, book_name, chapter, verse, text,
			chapter_context, verse_context, embedding, embedding_model,
			embedding_date, testament, genre, themes, searchable_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (reference, translation) DO UPDATE SET
			book = EXCLUDED.book,
			book_name = EXCLUDED.book_name,
			chapter = EXCLUDED.chapter,
			verse = EXCLUDED.verse,
			text = EXCLUDED.text,
			chapter_context = EXCLUDED.chapter_context,
			verse_context = EXCLUDED.verse_context,
			embedding = EXCLUDED.embedding,
			embedding_model = EXCLUDED.embedding_model,
			embedding_date = EXCLUDED.embedding_date,
			testament = EXCLUDED.testament,
			genre = EXCLUDED.genre,
			themes = EXCLUDED.themes,
			searchable_text = EXCLUDED.searchable_text
	`,
		rec.Reference, rec.Translation, rec.Book, rec.BookName, rec.Chapter,
		rec.Verse, rec.Text, rec.ChapterContext, rec.VerseContext,
		pgvector.NewVector(float32Slice(rec.Embedding)), rec.EmbeddingModel,
		rec.EmbeddingDate, rec.Testament, rec.Genre, pq.Array(rec.Themes),
		rec.SearchableText,
	)
	if err != nil {
		return errs.NewPersistenceError(fmt.Sprintf("upsert %s/%s", rec.Reference, rec.Translation), err)
	}
	return nil
}

// UpsertBatch applies the per-record upsert to each record; a batch is not
// atomic as a whole, only each keyed upsert is.
func (r *VerseRepository) UpsertBatch(ctx context.Context, recs []*models.VerseEmbedding) (int, error) {
	stored := 0
	var firstErr error
	failed := 0
	for _, rec := range recs {
		if err := r.UpsertOne(ctx, rec); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		stored++
	}
	if firstErr != nil {
		return stored, errs.NewPersistenceError(
			fmt.Sprintf("upsert batch: %d of %d records failed", failed, len(recs)), firstErr)
	}
	return stored, nil
}

// GetByKey fetches one record with its embedding, or nil when absent.
func (r *VerseRepository) GetByKey(ctx context.Context, reference, translation string) (*models.VerseEmbedding, error) {
	row := r.db.QueryRowxContext(ctx, `
		SELECT reference, translation, book, book_name, chapter, verse, text,
		       chapter_context, verse_context, embedding, embedding_model,
		       embedding_date, testament, genre, themes
		FROM verse_embeddings
		WHERE reference = $1 AND translation = $2
	`, reference, translation)

	var rec models.VerseEmbedding
	var embedding pgvector.Vector
	var themes pq.StringArray
	err := row.Scan(
		&rec.Reference, &rec.Translation, &rec.Book, &rec.BookName,
		&rec.Chapter, &rec.Verse, &rec.Text, &rec.ChapterContext,
		&rec.VerseContext, &embedding, &rec.EmbeddingModel,
		&rec.EmbeddingDate, &rec.Testament, &rec.Genre, &themes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewPersistenceError(fmt.Sprintf("get %s/%s", reference, translation), err)
	}

	rec.Embedding = float64Slice(embedding.Slice())
	rec.Themes = []string(themes)
	return &rec, nil
}

// SearchByEmbedding performs the nearest-neighbor stage using pgvector
// cosine distance; score = 1 - distance, results in descending-similarity
// order.
func (r *VerseRepository) SearchByEmbedding(ctx context.Context, embedding []float64, topK int) ([]models.ScoredVerse, error) {
	vec := pgvector.NewVector(float32Slice(embedding))

	rows, err := r.db.QueryxContext(ctx, `
		SELECT reference, translation, book, book_name, chapter, verse, text,
		       chapter_context, verse_context, embedding_model, embedding_date,
		       testament, genre, themes,
		       1 - (embedding <=> $1::vector) AS score
		FROM verse_embeddings
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1::vector
		LIMIT $2
	`, vec, topK)
	if err != nil {
		return nil, errs.NewPersistenceError("vector search", err)
	}
	defer rows.Close()

	return scanScoredVerses(rows)
}

// SearchLexical performs the fallback full-text stage. Scores are raw
// ts_rank values; callers rescale them onto the similarity range.
func (r *VerseRepository) SearchLexical(ctx context.Context, query string, topK int) ([]models.ScoredVerse, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT reference, translation, book, book_name, chapter, verse, text,
		       chapter_context, verse_context, embedding_model, embedding_date,
		       testament, genre, themes,
		       ts_rank(to_tsvector('simple', searchable_text),
		               plainto_tsquery('simple', $1)) AS score
		FROM verse_embeddings
		WHERE to_tsvector('simple', searchable_text) @@ plainto_tsquery('simple', $1)
		ORDER BY score DESC
		LIMIT $2
	`, query, topK)
	if err != nil {
		return nil, errs.NewPersistenceError("lexical search", err)
	}
	defer rows.Close()

	return scanScoredVerses(rows)
}

// GetStatistics returns the total record count plus counts grouped by
// translation and by book name.
func (r *VerseRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{
		ByTranslation: make(map[string]int64),
		ByBook:        make(map[string]int64),
	}

	if err := r.db.GetContext(ctx, &stats.TotalVerses,
		`SELECT COUNT(*) FROM verse_embeddings`); err != nil {
		return nil, errs.NewPersistenceError("count verses", err)
	}

	if err := r.countGrouped(ctx, `translation`, stats.ByTranslation); err != nil {
		return nil, err
	}
	if err := r.countGrouped(ctx, `book_name`, stats.ByBook); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *VerseRepository) countGrouped(ctx context.Context, column string, out map[string]int64) error {
	rows, err := r.db.QueryxContext(ctx, fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM verse_embeddings GROUP BY %s`, column, column))
	if err != nil {
		return errs.NewPersistenceError("count by "+column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return errs.NewPersistenceError("scan count by "+column, err)
		}
		out[key] = count
	}
	if err := rows.Err(); err != nil {
		return errs.NewPersistenceError("iterate counts by "+column, err)
	}
	return nil
}

func scanScoredVerses(rows *sqlx.Rows) ([]models.ScoredVerse, error) {
	results := []models.ScoredVerse{}
	for rows.Next() {
		var v models.ScoredVerse
		var themes pq.StringArray
		if err := rows.Scan(
			&v.Reference, &v.Translation, &v.Book, &v.BookName, &v.Chapter,
			&v.Verse, &v.Text, &v.ChapterContext, &v.VerseContext,
			&v.EmbeddingModel, &v.EmbeddingDate, &v.Testament, &v.Genre,
			&themes, &v.Score,
		); err != nil {
			return nil, errs.NewPersistenceError("scan search result", err)
		}
		v.Themes = []string(themes)
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("iterate search results", err)
	}
	return results, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

func float64Slice(f32 []float32) []float64 {
	f64 := make([]float64, len(f32))
	for i, v := range f32 {
		f64[i] = float64(v)
	}
	return f64
}
