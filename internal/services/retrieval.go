package services

import (
	"context"
	"log"
	"strings"

	"github.com/lumen-scripture-index/internal/errs"
	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/repository"
)

const (
	// defaultLimit bounds a search when the caller gives no limit.
	defaultLimit = 10

	// oversampleFactor sizes the candidate set requested from the
	// nearest-neighbor stage so post-filtering does not starve the final
	// result count.
	oversampleFactor = 10

	// lexicalScoreDivisor rescales ts_rank relevance onto the cosine
	// similarity range used for MinScore. Calibration parameter, pinned by
	// tests; typical ts_rank values sit an order of magnitude below cosine
	// similarities.
	lexicalScoreDivisor = 0.1
)

// QueryEmbedder embeds free-text queries for the retrieval path.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float64, error)
}

// RetrievalService serves nearest-neighbor verse search with a transparent
// lexical fallback. It is read-mostly and safe for concurrent callers.
type RetrievalService struct {
	repo     repository.VerseRepository
	embedder QueryEmbedder
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(repo repository.VerseRepository, embedder QueryEmbedder) *RetrievalService {
	return &RetrievalService{repo: repo, embedder: embedder}
}

// Search embeds the query, runs the nearest-neighbor stage over an
// oversampled candidate set, applies the equality filters and MinScore, and
// returns at most Limit results in the ANN's own descending-similarity
// order. If embedding or the ANN stage fails, it degrades transparently to
// lexical search; it only errors for an empty query or an unreachable store.
func (s *RetrievalService) Search(ctx context.Context, query string, opts models.SearchOptions) ([]models.ScoredVerse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.NewValidationError("search query must not be empty")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	candidates, err := s.vectorCandidates(ctx, query, limit*oversampleFactor)
	if err != nil {
		if errs.IsPersistence(err) {
			return nil, err
		}
		log.Printf("Vector search unavailable, falling back to lexical search: %v", err)
		candidates, err = s.lexicalCandidates(ctx, query, limit*oversampleFactor)
		if err != nil {
			return nil, err
		}
	}

	return applyFilters(candidates, opts, limit), nil
}

// FindSimilar reuses a stored record's own embedding as the query vector,
// excluding the source record from results. There is no free-text query to
// fall back on, so an unavailable ANN stage yields an empty list.
func (s *RetrievalService) FindSimilar(ctx context.Context, reference, translation string, limit int) ([]models.ScoredVerse, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rec, err := s.repo.GetByKey(ctx, reference, translation)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewValidationError("no indexed verse for %s (%s)", reference, translation)
	}
	if len(rec.Embedding) == 0 {
		return []models.ScoredVerse{}, nil
	}

	candidates, err := s.repo.SearchByEmbedding(ctx, rec.Embedding, limit+1)
	if err != nil {
		if errs.IsPersistence(err) {
			return nil, err
		}
		log.Printf("Vector search unavailable for findSimilar %s: %v", reference, err)
		return []models.ScoredVerse{}, nil
	}

	results := make([]models.ScoredVerse, 0, limit)
	for _, c := range candidates {
		if c.Reference == reference && c.Translation == translation {
			continue
		}
		results = append(results, c)
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// Statistics reports corpus counts from the store.
func (s *RetrievalService) Statistics(ctx context.Context) (*models.Statistics, error) {
	return s.repo.GetStatistics(ctx)
}

func (s *RetrievalService) vectorCandidates(ctx context.Context, query string, topK int) ([]models.ScoredVerse, error) {
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, &errs.SearchUnavailableError{Err: err}
	}
	candidates, err := s.repo.SearchByEmbedding(ctx, vec, topK)
	if err != nil {
		if errs.IsPersistence(err) {
			return nil, err
		}
		return nil, &errs.SearchUnavailableError{Err: err}
	}
	return candidates, nil
}

func (s *RetrievalService) lexicalCandidates(ctx context.Context, query string, topK int) ([]models.ScoredVerse, error) {
	candidates, err := s.repo.SearchLexical(ctx, query, topK)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i].Score = normalizeLexicalScore(candidates[i].Score)
	}
	return candidates, nil
}

// normalizeLexicalScore maps a raw full-text rank onto the similarity range
// MinScore is expressed in.
func normalizeLexicalScore(rank float64) float64 {
	return rank / lexicalScoreDivisor
}

// applyFilters keeps the candidate order (descending similarity) while
// applying the equality filters and MinScore, and strips the stored context
// strings unless the caller asked for them.
func applyFilters(candidates []models.ScoredVerse, opts models.SearchOptions, limit int) []models.ScoredVerse {
	results := make([]models.ScoredVerse, 0, limit)
	for _, c := range candidates {
		if opts.Book != "" && c.Book != opts.Book {
			continue
		}
		if opts.Chapter != 0 && c.Chapter != opts.Chapter {
			continue
		}
		if opts.Translation != "" && c.Translation != opts.Translation {
			continue
		}
		if c.Score < opts.MinScore {
			continue
		}
		if !opts.IncludeContext {
			c.ChapterContext = ""
			c.VerseContext = ""
		}
		results = append(results, c)
		if len(results) == limit {
			break
		}
	}
	return results
}
