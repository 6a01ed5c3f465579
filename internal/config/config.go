package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir      string
	DefaultProfile string
	LogLevel       string

	CottonMinPct   float64
	ElastaneMinPct float64

	BatchWorkers int
}

// Load reads configuration from the environment, with a local .env file as
// fallback. Threshold zero values mean "use the profile defaults".
func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir:      getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DefaultProfile: getEnv("DEFAULT_PROFILE", "jean_levis"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		CottonMinPct:   getEnvFloat("COTTON_MIN_PCT", 0),
		ElastaneMinPct: getEnvFloat("ELASTANE_MIN_PCT", 0),

		BatchWorkers: getEnvInt("BATCH_WORKERS", 4),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
