package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lumen-scripture-index/internal/config"
)

// CustomEmbedder implements Embedder using a custom HTTP embedding service
type CustomEmbedder struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewCustomEmbedder creates a new custom HTTP embedder
func NewCustomEmbedder(cfg *config.Config) *CustomEmbedder {
	return &CustomEmbedder{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

var taskTypeToInstruction = map[TaskType]string{
	TaskTypeQuery:    "Represent the question for retrieving relevant Bible verses: ",
	TaskTypeDocument: "Represent the Bible verse for retrieval: ",
}

type customEmbeddingRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction"`
}

type customEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

type customBatchEmbeddingRequest struct {
	Texts       []string `json:"texts"`
	Instruction string   `json:"instruction"`
}

type customBatchEmbeddingResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

// Embed generates an embedding for a single text
func (e *CustomEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	instruction := taskTypeToInstruction[taskType]
	if instruction == "" {
		instruction = taskTypeToInstruction[TaskTypeDocument]
	}

	url := e.cfg.EmbeddingServiceURL + "/embed"

	reqBody := customEmbeddingRequest{
		Text:        text,
		Instruction: instruction,
	}

	var embResp customEmbeddingResponse
	if err := e.postJSON(ctx, url, reqBody, &embResp); err != nil {
		return nil, err
	}
	return embResp.Embedding, nil
}

// EmbedBatch generates embeddings for multiple texts
func (e *CustomEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	instruction := taskTypeToInstruction[taskType]
	if instruction == "" {
		instruction = taskTypeToInstruction[TaskTypeDocument]
	}

	url := e.cfg.EmbeddingServiceURL + "/embed/batch"

	reqBody := customBatchEmbeddingRequest{
		Texts:       texts,
		Instruction: instruction,
	}

	var batchResp customBatchEmbeddingResponse
	if err := e.postJSON(ctx, url, reqBody, &batchResp); err != nil {
		return nil, err
	}
	return batchResp.Embeddings, nil
}

func (e *CustomEmbedder) postJSON(ctx context.Context, url string, in, out any) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call embedding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("embedding service error: %s", string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
