package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// PostgreSQL
	PostgresURI string

	// Embeddings
	EmbeddingProvider   string // "vertex" or "custom"
	EmbeddingServiceURL string // For custom provider
	EmbeddingDimensions int

	// Vertex AI (when EmbeddingProvider = "vertex")
	GCPProjectID string
	GCPLocation  string
	VertexModel  string

	// Scripture text provider
	ScriptureAPIURL   string
	ScriptureAPIKey   string
	ScriptureEdition  string
	DefaultTranslation string
}

// Load reads configuration from the environment. Callers construct one
// Config per process and pass it to the components that need it.
func Load() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Lumen Scripture Index API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		PostgresURI: getEnv("POSTGRES_URI", ""),

		EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "vertex"),
		EmbeddingServiceURL: getEnv("EMBEDDING_SERVICE_URL", "http://localhost:8001"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 3072),

		GCPProjectID: getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:  getEnv("GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("VERTEX_MODEL", "gemini-embedding-001"),

		ScriptureAPIURL:    getEnv("SCRIPTURE_API_URL", "https://api.scripture.api.bible/v1"),
		ScriptureAPIKey:    getEnv("SCRIPTURE_API_KEY", ""),
		ScriptureEdition:   getEnv("SCRIPTURE_EDITION_ID", ""),
		DefaultTranslation: getEnv("DEFAULT_TRANSLATION", "WEB"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
