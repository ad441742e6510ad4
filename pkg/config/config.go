// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// Ledger backends.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendLevelDB  = "leveldb"
	BackendPostgres = "postgres"
)

// Event backends.
const (
	EventsNone  = "none"
	EventsSQS   = "sqs"
	EventsKafka = "kafka"
)

// Config holds everything the entry points need to assemble the service.
type Config struct {
	HTTPPort string

	LedgerBackend     string
	LedgerMaxAttempts int
	DynamoDBTable     string
	LevelDBPath       string
	PostgresURL       string

	EventsBackend string
	SQSQueueURL   string
	KafkaBrokers  []string
	KafkaTopic    string

	LogLevel slog.Level
}

// Load reads a .env file if one exists, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment and checks that every setting
// the selected backends need is present.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:          getenv("HTTP_PORT", "8080"),
		LedgerBackend:     strings.ToLower(getenv("LEDGER_BACKEND", BackendMemory)),
		LedgerMaxAttempts: storage.DefaultMaxAttempts,
		DynamoDBTable:     os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
		LevelDBPath:       getenv("LEVELDB_PATH", "data/ledger"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		EventsBackend:     strings.ToLower(getenv("EVENTS_BACKEND", EventsNone)),
		SQSQueueURL:       os.Getenv("SQS_QUEUE_URL"),
		KafkaTopic:        getenv("KAFKA_TOPIC", "registry-events"),
		LogLevel:          slog.LevelInfo,
	}

	if v := os.Getenv("LEDGER_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("LEDGER_MAX_ATTEMPTS must be a positive integer, got %q", v)
		}
		cfg.LedgerMaxAttempts = n
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.LedgerBackend {
	case BackendMemory, BackendLevelDB:
	case BackendDynamoDB:
		if cfg.DynamoDBTable == "" {
			return nil, fmt.Errorf("DYNAMODB_LEDGER_TABLE_NAME environment variable not set")
		}
	case BackendPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unknown LEDGER_BACKEND %q", cfg.LedgerBackend)
	}

	switch cfg.EventsBackend {
	case EventsNone:
	case EventsSQS:
		if cfg.SQSQueueURL == "" {
			return nil, fmt.Errorf("SQS_QUEUE_URL environment variable not set")
		}
	case EventsKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unknown EVENTS_BACKEND %q", cfg.EventsBackend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
