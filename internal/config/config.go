package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var AppEnv Config

type Config struct {
	MongoURI            string
	DBName              string
	Port                string
	LogLevel            string
	PinterestToken      string
	PinterestAPIBase    string
	PinterestRatePerSec float64
	S3Bucket            string
	S3KeyPrefix         string
	AWSRegion           string
	MediaFetchTimeout   time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Info(".env not loaded")
	}
	AppEnv = Config{
		MongoURI:            getEnvOrDefault("MONGO_URI", ""),
		DBName:              getEnvOrDefault("DB_NAME", "danki-adidas"),
		Port:                getEnvOrDefault("PORT", "8080"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		PinterestToken:      getEnvOrDefault("PINTEREST_TOKEN", ""),
		PinterestAPIBase:    getEnvOrDefault("PINTEREST_API_BASE", ""),
		PinterestRatePerSec: getFloatEnv("PINTEREST_RATE_PER_SEC", 2),
		S3Bucket:            getEnvOrDefault("S3_BUCKET", "dankiadidas"),
		S3KeyPrefix:         getEnvOrDefault("S3_KEY_PREFIX", "PINTEREST_IMAGES"),
		AWSRegion:           getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
		MediaFetchTimeout:   getDurationEnv("MEDIA_FETCH_TIMEOUT", 30, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
