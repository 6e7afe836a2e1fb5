package models

import (
	"strings"
	"time"
)

// Testament identifies which testament a book belongs to
type Testament string

const (
	TestamentOld Testament = "OT"
	TestamentNew Testament = "NT"
)

// Genre is the literary genre of a book
type Genre string

const (
	GenreLaw         Genre = "law"
	GenreHistory     Genre = "history"
	GenreWisdom      Genre = "wisdom"
	GenreProphecy    Genre = "prophecy"
	GenreGospel      Genre = "gospel"
	GenreEpistle     Genre = "epistle"
	GenreApocalyptic Genre = "apocalyptic"
)

// VerseEmbedding is one stored record per (reference, translation). The
// store enforces uniqueness on that pair; re-indexing overwrites in place.
type VerseEmbedding struct {
	Reference   string `db:"reference" json:"reference"`
	Translation string `db:"translation" json:"translation"`

	Book     string `db:"book" json:"book"`
	BookName string `db:"book_name" json:"book_name"`
	Chapter  int    `db:"chapter" json:"chapter"`
	Verse    int    `db:"verse" json:"verse"`
	Text     string `db:"text" json:"text"`

	// ChapterContext is the chapter-level theme line; VerseContext is the
	// exact string that was fed to the embedding model, stored so a result
	// can be audited against the input that produced it.
	ChapterContext string `db:"chapter_context" json:"chapter_context,omitempty"`
	VerseContext   string `db:"verse_context" json:"verse_context,omitempty"`

	Embedding      []float64 `db:"-" json:"-"`
	EmbeddingModel string    `db:"embedding_model" json:"embedding_model"`
	EmbeddingDate  time.Time `db:"embedding_date" json:"embedding_date"`

	Testament Testament `db:"testament" json:"testament"`
	Genre     Genre     `db:"genre" json:"genre"`
	Themes    []string  `db:"-" json:"themes"`

	// SearchableText feeds the lexical fallback index only.
	SearchableText string `db:"searchable_text" json:"-"`
}

// BuildSearchableText derives the lower-cased text the lexical fallback
// indexes: reference, verse text and themes concatenated.
func BuildSearchableText(reference, text string, themes []string) string {
	parts := make([]string, 0, 2+len(themes))
	parts = append(parts, reference, text)
	parts = append(parts, themes...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoredVerse is a search result: a stored record plus its similarity score.
type ScoredVerse struct {
	VerseEmbedding
	Score float64 `json:"score"`
}

// SearchOptions controls Search filtering and result shaping.
type SearchOptions struct {
	Limit          int     `json:"limit"`
	Book           string  `json:"book,omitempty"`
	Chapter        int     `json:"chapter,omitempty"`
	Translation    string  `json:"translation,omitempty"`
	MinScore       float64 `json:"min_score,omitempty"`
	IncludeContext bool    `json:"include_context,omitempty"`
}

// Statistics summarizes the indexed corpus.
type Statistics struct {
	TotalVerses   int64            `json:"total_verses"`
	ByTranslation map[string]int64 `json:"by_translation"`
	ByBook        map[string]int64 `json:"by_book"`
}
