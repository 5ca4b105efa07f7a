package config

import "os"

type Config struct {
	// Server configuration
	Port string

	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIModel  string
}

// Load reads the configuration from the environment. A missing API key is
// not fatal here: generation routes report it per request so /health stays up.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
