package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server ServerConfig
	Cohere CohereConfig
	Log    LogConfig
}

// Load reads configuration from environment variables. A missing
// Cohere credential is an error; the process must not start without it.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	cohere, err := loadCohereConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Cohere: cohere,
		Log:    loadLogConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// CohereConfig describes the chat provider connection.
type CohereConfig struct {
	APIKey  string
	BaseURL string
}

func loadCohereConfig() (CohereConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("COHERE_API_KEY"))
	if apiKey == "" {
		return CohereConfig{}, fmt.Errorf("COHERE_API_KEY is required")
	}

	return CohereConfig{
		APIKey:  apiKey,
		BaseURL: getEnvOrDefault("COHERE_BASE_URL", ""),
	}, nil
}

// LogConfig describes the transcript log location.
type LogConfig struct {
	File string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		File: getEnvOrDefault("LOG_FILE", "research.log"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
