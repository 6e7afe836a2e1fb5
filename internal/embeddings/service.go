package embeddings

import (
	"context"
	"fmt"

	"github.com/lumen-scripture-index/internal/config"
	"github.com/lumen-scripture-index/internal/errs"
)

// Service handles text embedding operations using a pluggable backend. It
// holds no state beyond the backend and its model identifier; retry and
// pacing policy belong to the caller. All failures are ProviderErrors.
type Service struct {
	embedder Embedder
	model    string
}

// NewService constructs the embeddings service for the configured provider.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	var embedder Embedder
	var model string

	switch cfg.EmbeddingProvider {
	case "vertex":
		v, err := NewVertexEmbedder(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Vertex AI embedder: %w", err)
		}
		embedder = v
		model = cfg.VertexModel
	default:
		embedder = NewCustomEmbedder(cfg)
		model = "custom:" + cfg.EmbeddingServiceURL
	}

	return &Service{embedder: embedder, model: model}, nil
}

// NewServiceWith wraps an existing backend, mainly for tests.
func NewServiceWith(embedder Embedder, model string) *Service {
	return &Service{embedder: embedder, model: model}
}

// Model returns the identifier of the embedding model in use. It is stored
// with every vector so a later migration can tell model versions apart.
func (s *Service) Model() string {
	return s.model
}

// EmbedQuery embeds a query for retrieval
func (s *Service) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	vec, err := s.embedder.Embed(ctx, query, TaskTypeQuery)
	if err != nil {
		return nil, errs.NewProviderError("embedding", err)
	}
	return vec, nil
}

// EmbedVerse embeds a verse's contextual text as a document for retrieval
func (s *Service) EmbedVerse(ctx context.Context, text string) ([]float64, error) {
	vec, err := s.embedder.Embed(ctx, text, TaskTypeDocument)
	if err != nil {
		return nil, errs.NewProviderError("embedding", err)
	}
	return vec, nil
}

// Close releases the backend client if it holds one.
func (s *Service) Close() error {
	if c, ok := s.embedder.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
