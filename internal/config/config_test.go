package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DB_CONNECT_RETRIES", "REDIS_URL", "AUCTION_CACHE_TTL_SECONDS",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "AUDIT_KAFKA_BROKERS", "AUDIT_KAFKA_TOPIC", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, ":8080", cfg.Port)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, uint64(5), cfg.DBConnectRetries)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 30*time.Second, cfg.AuctionCacheTTL)
	require.Equal(t, 10.0, cfg.RateLimitRPS)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.Nil(t, cfg.KafkaBrokers)
	require.Equal(t, "auction-audit", cfg.KafkaAuditTopic)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/auctions")
	t.Setenv("DB_CONNECT_RETRIES", "2")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUCTION_CACHE_TTL_SECONDS", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("AUDIT_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("AUDIT_KAFKA_TOPIC", "audit")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	require.Equal(t, ":9090", cfg.Port)
	require.Equal(t, "postgres://localhost/auctions", cfg.DatabaseURL)
	require.Equal(t, uint64(2), cfg.DBConnectRetries)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, 5*time.Second, cfg.AuctionCacheTTL)
	require.Equal(t, 2.5, cfg.RateLimitRPS)
	require.Equal(t, 4, cfg.RateLimitBurst)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "audit", cfg.KafkaAuditTopic)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "-3")
	t.Setenv("DB_CONNECT_RETRIES", "many")

	cfg := Load()

	require.Equal(t, 10.0, cfg.RateLimitRPS)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.Equal(t, uint64(5), cfg.DBConnectRetries)
}
