package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Keys APIKeys
	Ai   AIConfig
	Rag  RAGConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
}

type APIKeys struct {
	GoogleGemini string
	AuditTopic   string // Session audit event topic
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string // e.g. "gemini-2.5-flash", "llama3"
}

type RAGConfig struct {
	ChunkSize       int // characters per chunk
	ChunkOverlap    int // characters re-read on hard splits
	TopK            int // retrieved chunks per question
	MaxChunks       int // cap on chunks per document
	HistoryTurns    int // turns forwarded to the generation call
	SessionTTLHours int // idle hours before a session expires
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			AuditTopic:   getEnv("SESSION_AUDIT_TOPIC_NAME", "SESSION_AUDIT"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.5-flash"),
		},
		Rag: RAGConfig{
			ChunkSize:       getEnvAsInt("RAG_CHUNK_SIZE_CHARS", 2500),
			ChunkOverlap:    getEnvAsInt("RAG_CHUNK_OVERLAP_CHARS", 300),
			TopK:            getEnvAsInt("RAG_TOP_K", 5),
			MaxChunks:       getEnvAsInt("RAG_MAX_CHUNKS", 200),
			HistoryTurns:    getEnvAsInt("RAG_HISTORY_TURNS", 10),
			SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
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
