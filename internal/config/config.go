package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sealed-auction/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string // Listen address, e.g. ":8080"
	DatabaseURL      string // PostgreSQL DSN; empty selects the in-memory store
	DBConnectRetries uint64 // Ping retries before giving up on the database
	RedisURL         string // Redis URL or host:port; empty disables the auction cache
	AuctionCacheTTL  time.Duration
	RateLimitRPS     float64  // Requests per second per client IP
	RateLimitBurst   int      // Burst size for rate limiting
	KafkaBrokers     []string // Audit events are also published to Kafka when set
	KafkaAuditTopic  string
	LogLevel         string
}

// Load reads configuration from an optional .env file and the environment
func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		utils.Debug("no .env file found, using environment variables or defaults", map[string]any{"error": err.Error()})
	}

	return &Config{
		Port:             ":" + getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DBConnectRetries: uint64(getEnvInt("DB_CONNECT_RETRIES", 5)),
		RedisURL:         getEnv("REDIS_URL", ""),
		AuctionCacheTTL:  time.Duration(getEnvInt("AUCTION_CACHE_TTL_SECONDS", 30)) * time.Second,
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 20),
		KafkaBrokers:     getEnvList("AUDIT_KAFKA_BROKERS"),
		KafkaAuditTopic:  getEnv("AUDIT_KAFKA_TOPIC", "auction-audit"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue >= 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
