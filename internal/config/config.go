package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by NOVA_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("NOVA_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// LLMProvider returns the configured LLM provider.
// Defaults to "ollama" (local inference) if not set.
// Valid values: openai, ollama, anthropic, mock
func LLMProvider() string {
	p := os.Getenv("LLM_PROVIDER")
	if p == "" {
		return "ollama"
	}
	return p
}

// OllamaURL returns the base URL of the local Ollama server.
// Empty means the client default (http://localhost:11434).
func OllamaURL() string {
	return os.Getenv("OLLAMA_URL")
}

// EmbeddingProvider returns the configured embedding provider.
// Defaults to "none" (similarity recall disabled) if not set.
// Valid values: openai, mock, none
func EmbeddingProvider() string {
	p := os.Getenv("EMBEDDING_PROVIDER")
	if p == "" {
		return "none"
	}
	return p
}

// EmbeddingModel returns the embedding model name for the OpenAI provider.
// Empty means the client default; the store schema fixes the dimension
// count, so only 1536-dimension models are usable.
func EmbeddingModel() string {
	return os.Getenv("EMBEDDING_MODEL")
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "ollama", "mock":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

// UseAIExtraction reports whether the reminder extractor may fall back to
// the LLM when rule extraction is weak. Defaults to true.
func UseAIExtraction() bool {
	v := os.Getenv("USE_AI_EXTRACTION")
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

// ContextMaxTurns returns the conversation context turn cap.
// Defaults to 20 if not set.
func ContextMaxTurns() int {
	n, err := strconv.Atoi(os.Getenv("CONTEXT_MAX_TURNS"))
	if err != nil || n <= 0 {
		return 20
	}
	return n
}

// ClassifyCacheSize returns the classification LRU cache size.
// Defaults to 512 if not set; 0 disables caching.
func ClassifyCacheSize() int {
	n, err := strconv.Atoi(os.Getenv("CLASSIFY_CACHE_SIZE"))
	if err != nil || n < 0 {
		return 512
	}
	return n
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
