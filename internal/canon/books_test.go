package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-scripture-index/internal/models"
)

func TestCatalogHasSixtySixBooks(t *testing.T) {
	require.Len(t, Books, 66)

	seen := make(map[string]bool, len(Books))
	oldCount, newCount := 0, 0
	for _, b := range Books {
		assert.Falsef(t, seen[b.Code], "duplicate code %s", b.Code)
		seen[b.Code] = true

		assert.NotEmptyf(t, b.Name, "%s has no name", b.Code)
		assert.Positivef(t, b.Chapters, "%s has no chapters", b.Code)
		assert.Positivef(t, b.Verses, "%s has no verses", b.Code)
		assert.NotEmptyf(t, b.Description, "%s has no description", b.Code)
		assert.NotEmptyf(t, b.Themes, "%s has no themes", b.Code)

		switch b.Testament {
		case models.TestamentOld:
			oldCount++
		case models.TestamentNew:
			newCount++
		default:
			t.Errorf("%s has unknown testament %q", b.Code, b.Testament)
		}
	}
	assert.Equal(t, 39, oldCount)
	assert.Equal(t, 27, newCount)
}

func TestCatalogOrder(t *testing.T) {
	assert.Equal(t, "GEN", Books[0].Code)
	assert.Equal(t, "MAL", Books[38].Code)
	assert.Equal(t, "MAT", Books[39].Code)
	assert.Equal(t, "REV", Books[65].Code)
}

func TestByCode(t *testing.T) {
	b, ok := ByCode("PSA")
	require.True(t, ok)
	assert.Equal(t, "Psalms", b.Name)

	_, ok = ByCode("XYZ")
	assert.False(t, ok)
}

func TestIdentifiers(t *testing.T) {
	b, ok := ByCode("GEN")
	require.True(t, ok)

	assert.Equal(t, "GEN.3", b.ChapterID(3))
	assert.Equal(t, "GEN.1.1", b.VerseReference(1, 1))
	assert.Equal(t, "Genesis chapter 1 — creation, covenant, promise", b.ChapterTheme(1))
}
