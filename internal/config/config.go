package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ingestion IngestionConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
}

type IngestionConfig struct {
	ChunkSizeTokens   int
	OverlapTokens     int
	IngestTopic       string
	EmbedRatePerSec   float64 // embedding calls per second, 0 disables throttling
	MaxUploadSizeMB   int
	ReprocessInterval int // minutes between retry sweeps, 0 disables
}

type RetrievalConfig struct {
	TopK                int
	SimilarityThreshold float64
	QueryCacheTTLSec    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ingestion: IngestionConfig{
			ChunkSizeTokens:   getEnvAsInt("CHUNK_SIZE_TOKENS", 400),
			OverlapTokens:     getEnvAsInt("CHUNK_OVERLAP_TOKENS", 100),
			IngestTopic:       getEnv("INGEST_DOCUMENT_TOPIC_NAME", "INGEST_DOCUMENT"),
			EmbedRatePerSec:   getEnvAsFloat("EMBED_RATE_PER_SEC", 2),
			MaxUploadSizeMB:   getEnvAsInt("MAX_UPLOAD_SIZE_MB", 25),
			ReprocessInterval: getEnvAsInt("REPROCESS_INTERVAL_MINUTES", 0),
		},
		Retrieval: RetrievalConfig{
			TopK:                getEnvAsInt("RETRIEVAL_TOP_K", 5),
			SimilarityThreshold: getEnvAsFloat("RETRIEVAL_SIMILARITY_THRESHOLD", 0),
			QueryCacheTTLSec:    getEnvAsInt("QUERY_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
