package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	SmtpHost   string
	SmtpPort   int
	SmtpSender string

	CsvDir        string
	SnowflakeNode int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		SmtpHost:        getEnv("SMTP_HOST", "localhost"),
		SmtpPort:        int(getEnvAsInt64("SMTP_PORT", 1025)),
		SmtpSender:      getEnv("SMTP_SENDER", "admin@influmarket.io"),
		CsvDir:          getEnv("CSV_DIR", "csv_files"),
		SnowflakeNode:   getEnvAsInt64("SNOWFLAKE_NODE", 1),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
