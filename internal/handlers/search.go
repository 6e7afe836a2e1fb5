package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-scripture-index/internal/errs"
	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/services"
)

// SearchHandler handles search endpoints
type SearchHandler struct {
	retrieval *services.RetrievalService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(retrieval *services.RetrievalService) *SearchHandler {
	return &SearchHandler{retrieval: retrieval}
}

// SearchRequest is the request for POST /search
type SearchRequest struct {
	Query          string  `json:"query"`
	Limit          int     `json:"limit"`
	Book           string  `json:"book,omitempty"`
	Chapter        int     `json:"chapter,omitempty"`
	Translation    string  `json:"translation,omitempty"`
	MinScore       float64 `json:"min_score,omitempty"`
	IncludeContext bool    `json:"include_context,omitempty"`
}

// SearchResponse is the response for POST /search
type SearchResponse struct {
	Query   string               `json:"query"`
	Results []models.ScoredVerse `json:"results"`
}

// SimilarRequest is the request for POST /search/similar
type SimilarRequest struct {
	Reference   string `json:"reference"`
	Translation string `json:"translation"`
	Limit       int    `json:"limit"`
}

// Search handles POST /search - semantic verse search with lexical fallback
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	results, err := h.retrieval.Search(ctx, req.Query, models.SearchOptions{
		Limit:          limit,
		Book:           req.Book,
		Chapter:        req.Chapter,
		Translation:    req.Translation,
		MinScore:       req.MinScore,
		IncludeContext: req.IncludeContext,
	})
	if err != nil {
		if errs.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Query:   req.Query,
		Results: results,
	})
}

// Similar handles POST /search/similar - verses near an already-indexed verse
func (h *SearchHandler) Similar(c echo.Context) error {
	ctx := c.Request().Context()

	var req SimilarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Reference == "" || req.Translation == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Reference and translation are required")
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	results, err := h.retrieval.FindSimilar(ctx, req.Reference, req.Translation, limit)
	if err != nil {
		if errs.IsValidation(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Similar search failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Query:   req.Reference,
		Results: results,
	})
}

// Stats handles GET /stats - corpus statistics
func (h *SearchHandler) Stats(c echo.Context) error {
	stats, err := h.retrieval.Statistics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Statistics failed: "+err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.POST("/search/similar", h.Similar)
	g.GET("/stats", h.Stats)
}
