package embeddings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-scripture-index/internal/config"
	"github.com/lumen-scripture-index/internal/errs"
)

type recordingEmbedder struct {
	lastText string
	lastTask TaskType
	err      error
	closed   bool
}

func (r *recordingEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	r.lastText = text
	r.lastTask = taskType
	if r.err != nil {
		return nil, r.err
	}
	return []float64{1, 2, 3}, nil
}

func (r *recordingEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	return nil, errors.New("not used")
}

func (r *recordingEmbedder) Close() error {
	r.closed = true
	return nil
}

func TestEmbedQueryUsesQueryTask(t *testing.T) {
	backend := &recordingEmbedder{}
	svc := NewServiceWith(backend, "test-model")

	vec, err := svc.EmbedQuery(context.Background(), "what is love")

	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, vec)
	assert.Equal(t, TaskTypeQuery, backend.lastTask)
	assert.Equal(t, "what is love", backend.lastText)
}

func TestEmbedVerseUsesDocumentTask(t *testing.T) {
	backend := &recordingEmbedder{}
	svc := NewServiceWith(backend, "test-model")

	_, err := svc.EmbedVerse(context.Background(), "contextual verse text")

	require.NoError(t, err)
	assert.Equal(t, TaskTypeDocument, backend.lastTask)
}

func TestBackendFailureIsProviderError(t *testing.T) {
	backend := &recordingEmbedder{err: errors.New("quota exceeded")}
	svc := NewServiceWith(backend, "test-model")

	_, err := svc.EmbedQuery(context.Background(), "query")

	require.Error(t, err)
	assert.True(t, errs.IsProvider(err))
}

func TestCloseReachesBackend(t *testing.T) {
	backend := &recordingEmbedder{}
	svc := NewServiceWith(backend, "test-model")

	require.NoError(t, svc.Close())
	assert.True(t, backend.closed)
}

func TestModel(t *testing.T) {
	svc := NewServiceWith(&recordingEmbedder{}, "gemini-embedding-001")
	assert.Equal(t, "gemini-embedding-001", svc.Model())
}

func TestCustomEmbedderSingle(t *testing.T) {
	var gotPath string
	var gotBody customEmbeddingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"embedding":[0.5,0.25]}`))
	}))
	defer srv.Close()

	e := NewCustomEmbedder(&config.Config{EmbeddingServiceURL: srv.URL})
	vec, err := e.Embed(context.Background(), "the verse text", TaskTypeDocument)

	require.NoError(t, err)
	assert.Equal(t, "/embed", gotPath)
	assert.Equal(t, "the verse text", gotBody.Text)
	assert.Equal(t, taskTypeToInstruction[TaskTypeDocument], gotBody.Instruction)
	assert.Equal(t, []float64{0.5, 0.25}, vec)
}

func TestCustomEmbedderBatch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"embeddings":[[1],[2]]}`))
	}))
	defer srv.Close()

	e := NewCustomEmbedder(&config.Config{EmbeddingServiceURL: srv.URL})
	vecs, err := e.EmbedBatch(context.Background(), []string{"a", "b"}, TaskTypeQuery)

	require.NoError(t, err)
	assert.Equal(t, "/embed/batch", gotPath)
	require.Len(t, vecs, 2)
}

func TestCustomEmbedderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	e := NewCustomEmbedder(&config.Config{EmbeddingServiceURL: srv.URL})
	_, err := e.Embed(context.Background(), "text", TaskTypeQuery)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding service error")
}
