package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/services"
)

type fixedEmbedder struct{}

func (fixedEmbedder) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return []float64{0.1, 0.2}, nil
}

type fixedRepo struct {
	results []models.ScoredVerse
}

func (f *fixedRepo) UpsertOne(ctx context.Context, rec *models.VerseEmbedding) error { return nil }

func (f *fixedRepo) UpsertBatch(ctx context.Context, recs []*models.VerseEmbedding) (int, error) {
	return len(recs), nil
}

func (f *fixedRepo) GetByKey(ctx context.Context, reference, translation string) (*models.VerseEmbedding, error) {
	return nil, nil
}

func (f *fixedRepo) SearchByEmbedding(ctx context.Context, embedding []float64, topK int) ([]models.ScoredVerse, error) {
	return f.results, nil
}

func (f *fixedRepo) SearchLexical(ctx context.Context, query string, topK int) ([]models.ScoredVerse, error) {
	return nil, nil
}

func (f *fixedRepo) CreateIndexes(ctx context.Context) error { return nil }

func (f *fixedRepo) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	return &models.Statistics{TotalVerses: 7}, nil
}

func newTestHandler(repo *fixedRepo) *SearchHandler {
	return NewSearchHandler(services.NewRetrievalService(repo, fixedEmbedder{}))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestSearchEndpoint(t *testing.T) {
	repo := &fixedRepo{results: []models.ScoredVerse{{
		VerseEmbedding: models.VerseEmbedding{Reference: "JHN.3.16", Translation: "WEB", Book: "JHN"},
		Score:          0.91,
	}}}
	h := newTestHandler(repo)

	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/search", `{"query":"god so loved","limit":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "god so loved", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "JHN.3.16", resp.Results[0].Reference)
}

func TestSearchEndpointEmptyQueryIsBadRequest(t *testing.T) {
	h := newTestHandler(&fixedRepo{})

	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/search", `{"query":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimilarEndpointRequiresKey(t *testing.T) {
	h := newTestHandler(&fixedRepo{})

	rec := doJSON(t, h.Similar, http.MethodPost, "/api/v1/search/similar", `{"reference":"JHN.3.16"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimilarEndpointUnknownVerseIsNotFound(t *testing.T) {
	h := newTestHandler(&fixedRepo{})

	rec := doJSON(t, h.Similar, http.MethodPost, "/api/v1/search/similar",
		`{"reference":"GEN.99.1","translation":"WEB","limit":5}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	h := newTestHandler(&fixedRepo{})

	rec := doJSON(t, h.Stats, http.MethodGet, "/api/v1/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(7), stats.TotalVerses)
}
