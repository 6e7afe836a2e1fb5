// Package scripture is the client for the external source-text provider.
// The indexer depends only on GetBooks and GetChapter.
package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lumen-scripture-index/internal/errs"
)

// BookSummary is one entry of an edition's book list.
type BookSummary struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// Chapter is the raw text of one chapter.
type Chapter struct {
	ID      string `json:"id"`
	BookID  string `json:"bookId"`
	Number  string `json:"number"`
	Content string `json:"content"`
}

// ChapterOptions selects the content rendering for GetChapter.
type ChapterOptions struct {
	ContentType         string // "text" or "html"
	IncludeVerseNumbers bool
}

// Provider is the source-text collaborator the indexer depends on.
type Provider interface {
	GetBooks(ctx context.Context, editionID string) ([]BookSummary, error)
	GetChapter(ctx context.Context, editionID, chapterID string, opts ChapterOptions) (*Chapter, error)
}

// Client implements Provider against an API.Bible-compatible HTTP service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a scripture text client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type booksResponse struct {
	Data []BookSummary `json:"data"`
}

type chapterResponse struct {
	Data Chapter `json:"data"`
}

// GetBooks lists the books of an edition.
func (c *Client) GetBooks(ctx context.Context, editionID string) ([]BookSummary, error) {
	u := fmt.Sprintf("%s/bibles/%s/books", c.baseURL, editionID)

	var resp booksResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetChapter fetches the raw text of one chapter, e.g. chapterID "GEN.1".
func (c *Client) GetChapter(ctx context.Context, editionID, chapterID string, opts ChapterOptions) (*Chapter, error) {
	contentType := opts.ContentType
	if contentType == "" {
		contentType = "text"
	}

	q := url.Values{}
	q.Set("content-type", contentType)
	if opts.IncludeVerseNumbers {
		q.Set("include-verse-numbers", "true")
	}
	u := fmt.Sprintf("%s/bibles/%s/chapters/%s?%s", c.baseURL, editionID, chapterID, q.Encode())

	var resp chapterResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errs.NewProviderError("scripture", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewProviderError("scripture", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errs.NewProviderError("scripture",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewProviderError("scripture", fmt.Errorf("decode response: %w", err))
	}
	return nil
}
