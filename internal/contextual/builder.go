// Package contextual assembles the text that gets embedded for each verse.
// The output is stored verbatim with the vector, so Build is a pure function:
// identical inputs must reproduce the same bytes.
package contextual

import (
	"fmt"
	"strings"
)

// VerseInput is the target verse being embedded.
type VerseInput struct {
	Reference   string
	Text        string
	Chapter     int
	VerseNumber int
}

// BookContext carries the book-level metadata woven around the verse.
type BookContext struct {
	Name         string
	Description  string
	ChapterTheme string
	Themes       []string
}

// Build produces the embedding input for a verse. Sections appear in fixed
// order; the previous- and next-verse lines are omitted entirely (not left
// blank) when the neighboring text is absent.
func Build(v VerseInput, b BookContext, prevText, nextText string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Book: %s. %s\n", b.Name, b.Description)
	fmt.Fprintf(&sb, "Chapter %d: %s\n", v.Chapter, b.ChapterTheme)
	fmt.Fprintf(&sb, "Themes: %s\n", strings.Join(b.Themes, ", "))

	if prevText != "" {
		fmt.Fprintf(&sb, "Previous verse: %s\n", prevText)
	}
	fmt.Fprintf(&sb, "Verse %s: %s\n", v.Reference, v.Text)
	if nextText != "" {
		fmt.Fprintf(&sb, "Next verse: %s\n", nextText)
	}

	fmt.Fprintf(&sb, "This verse is from %s, %s.", b.Name, b.Description)
	return sb.String()
}
