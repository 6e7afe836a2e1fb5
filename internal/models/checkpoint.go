package models

import "time"

// IndexingError is one append-only error entry in a checkpoint.
type IndexingError struct {
	Book      string    `json:"book"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Checkpoint is the durable progress record of one indexing run, keyed by
// translation. It is rewritten after every book transition so a crash loses
// at most the in-flight book.
type Checkpoint struct {
	Translation          string          `json:"translation"`
	CompletedBooks       []string        `json:"completed_books"`
	LastCompletedBook    string          `json:"last_completed_book"`
	TotalVersesProcessed int64           `json:"total_verses_processed"`
	StartTime            time.Time       `json:"start_time"`
	LastUpdateTime       time.Time       `json:"last_update_time"`
	Errors               []IndexingError `json:"errors"`
}

// NewCheckpoint creates an empty checkpoint for a fresh run.
func NewCheckpoint(translation string, now time.Time) *Checkpoint {
	return &Checkpoint{
		Translation:    translation,
		CompletedBooks: []string{},
		StartTime:      now,
		LastUpdateTime: now,
		Errors:         []IndexingError{},
	}
}

// IsCompleted reports whether the book was finished in a previous run.
func (c *Checkpoint) IsCompleted(bookCode string) bool {
	for _, b := range c.CompletedBooks {
		if b == bookCode {
			return true
		}
	}
	return false
}

// MarkCompleted records a finished book and the verses it contributed.
// TotalVersesProcessed only ever grows.
func (c *Checkpoint) MarkCompleted(bookCode string, verses int64, now time.Time) {
	if !c.IsCompleted(bookCode) {
		c.CompletedBooks = append(c.CompletedBooks, bookCode)
	}
	c.LastCompletedBook = bookCode
	c.TotalVersesProcessed += verses
	c.LastUpdateTime = now
}

// RecordError appends a book-level failure without affecting counters.
func (c *Checkpoint) RecordError(bookCode, message string, now time.Time) {
	c.Errors = append(c.Errors, IndexingError{
		Book:      bookCode,
		Message:   message,
		Timestamp: now,
	})
	c.LastUpdateTime = now
}
