package repository

import (
	"context"

	"github.com/lumen-scripture-index/internal/models"
)

// VerseRepository defines the vector store operations: idempotent keyed
// upserts, the two search stages, index management, and corpus statistics.
type VerseRepository interface {
	// UpsertOne inserts or updates the record keyed by (reference, translation).
	UpsertOne(ctx context.Context, rec *models.VerseEmbedding) error

	// UpsertBatch applies per-record upsert semantics; records succeed or
	// fail independently. Returns the number of records stored.
	UpsertBatch(ctx context.Context, recs []*models.VerseEmbedding) (int, error)

	// GetByKey fetches a stored record including its embedding, or nil when
	// no record exists for the pair.
	GetByKey(ctx context.Context, reference, translation string) (*models.VerseEmbedding, error)

	// SearchByEmbedding is the nearest-neighbor stage: topK candidates in
	// descending-similarity order, each carrying a similarity score.
	SearchByEmbedding(ctx context.Context, embedding []float64, topK int) ([]models.ScoredVerse, error)

	// SearchLexical is the fallback stage: full-text relevance search over
	// searchable_text. Scores are raw ranks; the retrieval engine normalizes
	// them onto the similarity range.
	SearchLexical(ctx context.Context, query string, topK int) ([]models.ScoredVerse, error)

	// CreateIndexes establishes the uniqueness constraint, the secondary
	// lookup indexes, and the lexical index.
	CreateIndexes(ctx context.Context) error

	// GetStatistics returns total and grouped record counts.
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

// CheckpointRepository persists batch-job progress. Load returns nil (no
// error) when no checkpoint exists for the translation.
type CheckpointRepository interface {
	Load(ctx context.Context, translation string) (*models.Checkpoint, error)
	Save(ctx context.Context, cp *models.Checkpoint) error
}
