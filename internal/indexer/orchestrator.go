// Package indexer drives the batch embedding pipeline: it walks the book
// catalog, fetches and parses chapter text, builds contextual embedding
// input, and upserts vectors in fixed-size batches, checkpointing after
// every book so a killed run resumes where it left off.
package indexer

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lumen-scripture-index/internal/canon"
	"github.com/lumen-scripture-index/internal/contextual"
	"github.com/lumen-scripture-index/internal/errs"
	"github.com/lumen-scripture-index/internal/models"
	"github.com/lumen-scripture-index/internal/repository"
	"github.com/lumen-scripture-index/internal/scripture"
)

// maxConsecutiveChapterFailures is the point at which repeated provider
// failures inside one book are treated as an outage spanning the book.
const maxConsecutiveChapterFailures = 3

// VerseEmbedder embeds contextual verse text and names the model doing it.
type VerseEmbedder interface {
	EmbedVerse(ctx context.Context, text string) ([]float64, error)
	Model() string
}

// Options configures one indexing run. Zero values get defaults from
// normalize; delays exist to stay under provider rate limits, not for
// throughput.
type Options struct {
	EditionID   string
	Translation string

	BatchSize         int
	InterBatchDelay   time.Duration
	InterChapterDelay time.Duration
	RecoveryDelay     time.Duration

	// The inter-book delay is dynamic: the next book's canonical verse
	// count times PerVerseDelay, capped at MaxInterBookDelay.
	PerVerseDelay     time.Duration
	MaxInterBookDelay time.Duration

	// Books defaults to the full canon in canonical order.
	Books []canon.Book

	ShowProgress bool
}

func (o *Options) normalize() {
	if o.BatchSize <= 0 {
		o.BatchSize = 10
	}
	if o.InterBatchDelay <= 0 {
		o.InterBatchDelay = time.Second
	}
	if o.InterChapterDelay <= 0 {
		o.InterChapterDelay = 500 * time.Millisecond
	}
	if o.RecoveryDelay <= 0 {
		o.RecoveryDelay = 5 * time.Second
	}
	if o.PerVerseDelay <= 0 {
		o.PerVerseDelay = 40 * time.Millisecond
	}
	if o.MaxInterBookDelay <= 0 {
		o.MaxInterBookDelay = time.Minute
	}
	if o.Books == nil {
		o.Books = canon.Books
	}
}

// Orchestrator runs the batch indexing job strictly sequentially: one book,
// one chapter, one batch at a time, with explicit sleeps between them.
type Orchestrator struct {
	texts       scripture.Provider
	embedder    VerseEmbedder
	verses      repository.VerseRepository
	checkpoints repository.CheckpointRepository
	opts        Options

	sleep func(time.Duration)
}

// New creates an orchestrator with injected collaborators.
func New(
	texts scripture.Provider,
	embedder VerseEmbedder,
	verses repository.VerseRepository,
	checkpoints repository.CheckpointRepository,
	opts Options,
) *Orchestrator {
	opts.normalize()
	return &Orchestrator{
		texts:       texts,
		embedder:    embedder,
		verses:      verses,
		checkpoints: checkpoints,
		opts:        opts,
		sleep:       time.Sleep,
	}
}

// Run executes the indexing job until the catalog is exhausted. Book-level
// provider failures are recorded in the checkpoint and skipped; a
// persistence failure halts the run, since progress cannot be checkpointed
// safely without the store. The returned checkpoint reflects all progress
// that was durably persisted.
func (o *Orchestrator) Run(ctx context.Context) (*models.Checkpoint, error) {
	cp, err := o.checkpoints.Load(ctx, o.opts.Translation)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		cp = models.NewCheckpoint(o.opts.Translation, time.Now())
		log.Printf("Starting fresh indexing run for translation %s", o.opts.Translation)
	} else {
		log.Printf("Resuming indexing run for translation %s: %d books done, %d verses processed",
			o.opts.Translation, len(cp.CompletedBooks), cp.TotalVersesProcessed)
	}

	remaining := make([]canon.Book, 0, len(o.opts.Books))
	for _, b := range o.opts.Books {
		if !cp.IsCompleted(b.Code) {
			remaining = append(remaining, b)
		}
	}
	if len(remaining) == 0 {
		log.Printf("All %d books already indexed for %s, nothing to do", len(o.opts.Books), o.opts.Translation)
		return cp, nil
	}

	var bar *progressbar.ProgressBar
	if o.opts.ShowProgress {
		bar = progressbar.NewOptions(len(remaining),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("indexing"),
			progressbar.OptionSetWidth(32),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, book := range remaining {
		log.Printf("Indexing %s (%s): %d chapters", book.Name, book.Code, book.Chapters)

		verses, err := o.processBook(ctx, book)
		if err != nil {
			if errs.IsPersistence(err) {
				return cp, err
			}
			log.Printf("Book %s failed, continuing with next book: %v", book.Code, err)
			cp.RecordError(book.Code, err.Error(), time.Now())
			if saveErr := o.checkpoints.Save(ctx, cp); saveErr != nil {
				return cp, saveErr
			}
			o.sleep(o.opts.RecoveryDelay)
			continue
		}

		cp.MarkCompleted(book.Code, verses, time.Now())
		if err := o.checkpoints.Save(ctx, cp); err != nil {
			return cp, err
		}
		log.Printf("Completed %s: %d verses (%d total)", book.Code, verses, cp.TotalVersesProcessed)
		if bar != nil {
			_ = bar.Add(1)
		}

		if i < len(remaining)-1 {
			o.sleep(o.interBookDelay(remaining[i+1]))
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	log.Printf("Indexing run finished for %s: %d books, %d verses, %d errors",
		o.opts.Translation, len(cp.CompletedBooks), cp.TotalVersesProcessed, len(cp.Errors))
	return cp, nil
}

// interBookDelay sizes the pause before the next book by its expected verse
// count, smoothing load against provider quotas.
func (o *Orchestrator) interBookDelay(next canon.Book) time.Duration {
	d := time.Duration(next.Verses) * o.opts.PerVerseDelay
	if d > o.opts.MaxInterBookDelay {
		d = o.opts.MaxInterBookDelay
	}
	return d
}

// processBook indexes every chapter of one book and returns the number of
// verses durably upserted. Provider failures skip the affected chapter;
// too many in a row are promoted to a book-level failure.
func (o *Orchestrator) processBook(ctx context.Context, book canon.Book) (int64, error) {
	var total int64
	batch := make([]*models.VerseEmbedding, 0, o.opts.BatchSize)
	consecutiveFailures := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		stored, err := o.verses.UpsertBatch(ctx, batch)
		total += int64(stored)
		if err != nil {
			return err
		}
		batch = batch[:0]
		o.sleep(o.opts.InterBatchDelay)
		return nil
	}

	for ch := 1; ch <= book.Chapters; ch++ {
		chapter, err := o.texts.GetChapter(ctx, o.opts.EditionID, book.ChapterID(ch), scripture.ChapterOptions{
			ContentType:         "text",
			IncludeVerseNumbers: true,
		})
		if err != nil {
			consecutiveFailures++
			if consecutiveFailures >= maxConsecutiveChapterFailures {
				return total, fmt.Errorf("giving up on %s after %d consecutive chapter failures: %w",
					book.Code, consecutiveFailures, err)
			}
			log.Printf("Skipping %s: %v", book.ChapterID(ch), err)
			continue
		}

		verses := parseVerses(chapter.Content)
		if len(verses) == 0 {
			log.Printf("Skipping %s: %v", book.ChapterID(ch),
				errs.NewValidationError("chapter parsed into zero verses"))
			continue
		}

		aborted := false
		for i, v := range verses {
			reference := book.VerseReference(ch, v.Number)

			var prevText, nextText string
			if i > 0 {
				prevText = verses[i-1].Text
			}
			if i+1 < len(verses) {
				nextText = verses[i+1].Text
			}

			chapterTheme := book.ChapterTheme(ch)
			verseContext := contextual.Build(
				contextual.VerseInput{
					Reference:   reference,
					Text:        v.Text,
					Chapter:     ch,
					VerseNumber: v.Number,
				},
				contextual.BookContext{
					Name:         book.Name,
					Description:  book.Description,
					ChapterTheme: chapterTheme,
					Themes:       book.Themes,
				},
				prevText, nextText,
			)

			embedding, err := o.embedder.EmbedVerse(ctx, verseContext)
			if err != nil {
				consecutiveFailures++
				if consecutiveFailures >= maxConsecutiveChapterFailures {
					if ferr := flush(); ferr != nil {
						return total, ferr
					}
					return total, fmt.Errorf("giving up on %s after %d consecutive failures: %w",
						book.Code, consecutiveFailures, err)
				}
				log.Printf("Skipping rest of %s after embed failure at %s: %v", book.ChapterID(ch), reference, err)
				aborted = true
				break
			}

			batch = append(batch, &models.VerseEmbedding{
				Reference:      reference,
				Translation:    o.opts.Translation,
				Book:           book.Code,
				BookName:       book.Name,
				Chapter:        ch,
				Verse:          v.Number,
				Text:           v.Text,
				ChapterContext: chapterTheme,
				VerseContext:   verseContext,
				Embedding:      embedding,
				EmbeddingModel: o.embedder.Model(),
				EmbeddingDate:  time.Now().UTC(),
				Testament:      book.Testament,
				Genre:          book.Genre,
				Themes:         book.Themes,
				SearchableText: models.BuildSearchableText(reference, v.Text, book.Themes),
			})
			if len(batch) >= o.opts.BatchSize {
				if err := flush(); err != nil {
					return total, err
				}
			}
		}

		if !aborted {
			consecutiveFailures = 0
		}
		o.sleep(o.opts.InterChapterDelay)
	}

	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}
