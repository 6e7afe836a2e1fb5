package scripture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-scripture-index/internal/errs"
)

func TestGetBooks(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"GEN","abbreviation":"Gen","name":"Genesis"},{"id":"EXO","abbreviation":"Exo","name":"Exodus"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key")
	books, err := client.GetBooks(context.Background(), "web-edition")

	require.NoError(t, err)
	assert.Equal(t, "/bibles/web-edition/books", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	require.Len(t, books, 2)
	assert.Equal(t, "GEN", books[0].ID)
	assert.Equal(t, "Genesis", books[0].Name)
}

func TestGetChapter(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"GEN.1","bookId":"GEN","number":"1","content":"[1] In the beginning"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key")
	ch, err := client.GetChapter(context.Background(), "web-edition", "GEN.1", ChapterOptions{
		IncludeVerseNumbers: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "/bibles/web-edition/chapters/GEN.1", gotPath)
	assert.Equal(t, []string{"text"}, gotQuery["content-type"])
	assert.Equal(t, []string{"true"}, gotQuery["include-verse-numbers"])
	assert.Equal(t, "GEN.1", ch.ID)
	assert.Equal(t, "[1] In the beginning", ch.Content)
}

func TestGetChapterOmitsVerseNumbersParamByDefault(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":{"id":"GEN.1"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	_, err := client.GetChapter(context.Background(), "ed", "GEN.1", ChapterOptions{ContentType: "html"})

	require.NoError(t, err)
	assert.Equal(t, []string{"html"}, gotQuery["content-type"])
	assert.NotContains(t, gotQuery, "include-verse-numbers")
}

func TestNon200IsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	_, err := client.GetChapter(context.Background(), "ed", "GEN.1", ChapterOptions{})

	require.Error(t, err)
	assert.True(t, errs.IsProvider(err))
	assert.Contains(t, err.Error(), "429")
}

func TestUnreachableHostIsProviderError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "key")

	_, err := client.GetBooks(context.Background(), "ed")

	require.Error(t, err)
	assert.True(t, errs.IsProvider(err))
}
