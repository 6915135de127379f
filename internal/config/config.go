package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Ai        AIConfig
	Knowledge KnowledgeConfig
	Limits    LimitsConfig
	Redis     RedisConfig
}

type AppConfig struct {
	Name               string
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string
	APIKey        string
	BaseURL       string // OpenAI-compatible endpoint override
	OllamaBaseURL string
}

type KnowledgeConfig struct {
	Path string
}

type LimitsConfig struct {
	MaxRequests     int
	RateLimitWindow time.Duration
	MaxHistory      int
	SessionTTL      time.Duration // 0 keeps sessions until an explicit clear
}

type RedisConfig struct {
	URL string // optional; feedback counters fall back to memory when empty
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Name:               getEnv("APP_NAME", "AI Support Bot"),
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Ai: AIConfig{
			Provider:      getEnv("AI_PROVIDER", "openai"),
			Model:         getEnv("AI_MODEL", "gpt-3.5-turbo"),
			APIKey:        getEnv("AI_API_KEY", ""),
			BaseURL:       getEnv("AI_BASE_URL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Knowledge: KnowledgeConfig{
			Path: getEnv("KNOWLEDGE_BASE_PATH", "knowledge_base.csv"),
		},
		Limits: LimitsConfig{
			MaxRequests:     getEnvAsInt("MAX_REQUESTS", 10),
			RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", 60*time.Second),
			MaxHistory:      getEnvAsInt("MAX_HISTORY", 10),
			SessionTTL:      getEnvAsDuration("SESSION_TTL", 0),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
