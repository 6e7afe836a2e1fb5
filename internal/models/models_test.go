package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchableText(t *testing.T) {
	got := BuildSearchableText("JHN.3.16", "For God so Loved the world", []string{"Love", "salvation"})

	assert.Equal(t, "jhn.3.16 for god so loved the world love salvation", got)
}

func TestBuildSearchableTextNoThemes(t *testing.T) {
	got := BuildSearchableText("GEN.1.1", "In the beginning", nil)

	assert.Equal(t, "gen.1.1 in the beginning", got)
}

func TestCheckpointMarkCompleted(t *testing.T) {
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	cp := NewCheckpoint("WEB", start)

	later := start.Add(time.Hour)
	cp.MarkCompleted("GEN", 1533, later)

	assert.True(t, cp.IsCompleted("GEN"))
	assert.False(t, cp.IsCompleted("EXO"))
	assert.Equal(t, "GEN", cp.LastCompletedBook)
	assert.Equal(t, int64(1533), cp.TotalVersesProcessed)
	assert.Equal(t, later, cp.LastUpdateTime)
	assert.Equal(t, start, cp.StartTime)
}

func TestCheckpointMarkCompletedIsIdempotentOnBookList(t *testing.T) {
	now := time.Now()
	cp := NewCheckpoint("WEB", now)

	cp.MarkCompleted("GEN", 100, now)
	cp.MarkCompleted("GEN", 50, now)

	require.Len(t, cp.CompletedBooks, 1)
	// Verse counter still accumulates; the book list does not.
	assert.Equal(t, int64(150), cp.TotalVersesProcessed)
}

func TestCheckpointRecordError(t *testing.T) {
	now := time.Now()
	cp := NewCheckpoint("WEB", now)

	cp.RecordError("OBA", "chapter fetch failed", now)

	require.Len(t, cp.Errors, 1)
	assert.Equal(t, "OBA", cp.Errors[0].Book)
	assert.Equal(t, "chapter fetch failed", cp.Errors[0].Message)
	assert.Zero(t, cp.TotalVersesProcessed)
	assert.False(t, cp.IsCompleted("OBA"))
}
