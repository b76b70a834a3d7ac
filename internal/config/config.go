package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	TextbookDir      string
	SourceManifest   string
	GlossaryPath     string
	OutputPath       string
	MissingGlossPath string
	WorkerCount      int
	BatchSize        int
	DatabaseURL      string
	Neo4jURI         string
	Neo4jUser        string
	Neo4jPassword    string
	LogLevel         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		TextbookDir:      getEnv("TEXTBOOK_DIR", "textbooks"),
		SourceManifest:   getEnv("SOURCE_MANIFEST", ""),
		GlossaryPath:     getEnv("GLOSSARY_PATH", "translations.json"),
		OutputPath:       getEnv("OUTPUT_PATH", "lessons.json"),
		MissingGlossPath: getEnv("MISSING_GLOSS_PATH", ""),
		WorkerCount:      getEnvInt("WORKER_COUNT", 1),
		BatchSize:        getEnvInt("BATCH_SIZE", 50),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/textbooks?sslmode=disable"),
		Neo4jURI:         getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:        getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:    getEnv("NEO4J_PASSWORD", "password"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer in environment, using default")
		return fallback
	}
	return n
}
