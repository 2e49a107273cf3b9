package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Gateway   GatewayConfig
	Keys      APIKeys
	Assistant AssistantConfig
	Search    SearchConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type GatewayConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type APIKeys struct {
	GoogleGemini string
	QueryTopic   string // Search query event topic
}

type AssistantConfig struct {
	LLMProvider        string // "gemini" or "ollama"
	LLMModel           string // e.g. "llama3"
	OllamaBaseURL      string
	HistoryCap         int
	CallTimeoutSeconds int
}

type SearchConfig struct {
	MinQueryLength int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Gateway: GatewayConfig{
			BaseURL:        getEnv("CATALOG_API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getEnvAsInt("CATALOG_API_TIMEOUT_SECONDS", 10),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			QueryTopic:   getEnv("SEARCH_QUERY_TOPIC_NAME", "SEARCH_QUERY"),
		},
		Assistant: AssistantConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:           getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HistoryCap:         getEnvAsInt("ASSISTANT_HISTORY_CAP", 200),
			CallTimeoutSeconds: getEnvAsInt("ASSISTANT_CALL_TIMEOUT_SECONDS", 15),
		},
		Search: SearchConfig{
			MinQueryLength: getEnvAsInt("SEARCH_MIN_QUERY_LENGTH", 3),
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
