// The indexer is the offline batch job that embeds the scripture corpus.
// It is safe to kill at any point: progress is checkpointed after every
// book, and a restart skips everything already completed.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/lumen-scripture-index/internal/config"
	"github.com/lumen-scripture-index/internal/db"
	"github.com/lumen-scripture-index/internal/embeddings"
	"github.com/lumen-scripture-index/internal/indexer"
	"github.com/lumen-scripture-index/internal/repository/postgres"
	"github.com/lumen-scripture-index/internal/scripture"
)

func main() {
	translation := flag.String("translation", "", "Translation code to index (default: DEFAULT_TRANSLATION)")
	edition := flag.String("edition", "", "Provider edition id (default: SCRIPTURE_EDITION_ID)")
	batchSize := flag.Int("batch-size", 10, "Records per upsert batch")
	setupIndexes := flag.Bool("setup-indexes", false, "Create store indexes before indexing")
	noProgress := flag.Bool("no-progress", false, "Disable the progress bar")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if *translation == "" {
		*translation = cfg.DefaultTranslation
	}
	if *edition == "" {
		*edition = cfg.ScriptureEdition
	}
	if *edition == "" {
		log.Fatal("SCRIPTURE_EDITION_ID or -edition is required")
	}
	if cfg.ScriptureAPIKey == "" {
		log.Fatal("SCRIPTURE_API_KEY is required")
	}

	ctx := context.Background()

	pgDB, err := db.Connect(ctx, cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer pgDB.Close()

	verseRepo := postgres.NewVerseRepository(pgDB, cfg.EmbeddingDimensions)
	checkpointRepo := postgres.NewCheckpointRepository(pgDB)

	if err := verseRepo.CreateSchema(ctx); err != nil {
		log.Fatalf("Failed to create verse schema: %v", err)
	}
	if err := checkpointRepo.CreateSchema(ctx); err != nil {
		log.Fatalf("Failed to create checkpoint schema: %v", err)
	}
	if *setupIndexes {
		log.Println("Creating store indexes")
		if err := verseRepo.CreateIndexes(ctx); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	embeddingsSvc, err := embeddings.NewService(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}
	defer embeddingsSvc.Close()

	texts := scripture.NewClient(cfg.ScriptureAPIURL, cfg.ScriptureAPIKey)

	job := indexer.New(texts, embeddingsSvc, verseRepo, checkpointRepo, indexer.Options{
		EditionID:    *edition,
		Translation:  *translation,
		BatchSize:    *batchSize,
		ShowProgress: !*noProgress,
	})

	start := time.Now()
	cp, err := job.Run(ctx)
	if err != nil {
		log.Fatalf("Indexing halted after %s: %v", time.Since(start).Round(time.Second), err)
	}

	log.Printf("Indexing finished in %s: %d books completed, %d verses processed",
		time.Since(start).Round(time.Second), len(cp.CompletedBooks), cp.TotalVersesProcessed)
	for _, e := range cp.Errors {
		log.Printf("  book %s failed at %s: %s", e.Book, e.Timestamp.Format(time.RFC3339), e.Message)
	}
}
