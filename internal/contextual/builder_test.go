package contextual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genesisBook() BookContext {
	return BookContext{
		Name:         "Genesis",
		Description:  "the book of beginnings, recounting creation, the fall, the flood, and the patriarchs",
		ChapterTheme: "Genesis chapter 1 — creation, covenant, promise",
		Themes:       []string{"creation", "covenant", "promise"},
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	v := VerseInput{Reference: "GEN.1.2", Text: "And the earth was without form, and void.", Chapter: 1, VerseNumber: 2}
	b := genesisBook()

	first := Build(v, b, "In the beginning God created the heaven and the earth.", "And God said, Let there be light.")
	for i := 0; i < 10; i++ {
		again := Build(v, b, "In the beginning God created the heaven and the earth.", "And God said, Let there be light.")
		require.Equal(t, first, again)
	}
}

func TestBuildFirstVerseOmitsPreviousLine(t *testing.T) {
	// Genesis 1:1 has no previous verse but a known next verse.
	v := VerseInput{Reference: "GEN.1.1", Text: "In the beginning God created the heaven and the earth.", Chapter: 1, VerseNumber: 1}
	next := "And the earth was without form, and void."

	out := Build(v, genesisBook(), "", next)

	assert.NotContains(t, out, "Previous verse:")
	assert.Contains(t, out, "Next verse: "+next)
	assert.Contains(t, out, "Verse GEN.1.1: In the beginning God created the heaven and the earth.")
}

func TestBuildLastVerseOmitsNextLine(t *testing.T) {
	v := VerseInput{Reference: "GEN.1.31", Text: "And God saw every thing that he had made.", Chapter: 1, VerseNumber: 31}

	out := Build(v, genesisBook(), "previous text", "")

	assert.Contains(t, out, "Previous verse: previous text")
	assert.NotContains(t, out, "Next verse:")
}

func TestBuildSectionOrder(t *testing.T) {
	v := VerseInput{Reference: "GEN.1.2", Text: "verse text", Chapter: 1, VerseNumber: 2}
	out := Build(v, genesisBook(), "prev text", "next text")

	wantOrder := []string{
		"Book: Genesis.",
		"Chapter 1:",
		"Themes: creation, covenant, promise",
		"Previous verse: prev text",
		"Verse GEN.1.2: verse text",
		"Next verse: next text",
		"This verse is from Genesis,",
	}

	pos := -1
	for _, section := range wantOrder {
		idx := strings.Index(out, section)
		require.Greaterf(t, idx, pos, "section %q out of order in:\n%s", section, out)
		pos = idx
	}
}
