// Package bootstrap builds the ledger substrate and event publisher selected by
// the configuration. Both entry points share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/sandeepmed2/property-registration/pkg/config"
	"github.com/sandeepmed2/property-registration/pkg/events"
	"github.com/sandeepmed2/property-registration/pkg/storage"
	dydbstore "github.com/sandeepmed2/property-registration/pkg/storage/dynamodb"
	"github.com/sandeepmed2/property-registration/pkg/storage/leveldb"
	"github.com/sandeepmed2/property-registration/pkg/storage/memory"
	"github.com/sandeepmed2/property-registration/pkg/storage/postgres"
)

// Closer releases whatever a constructor opened.
type Closer func()

func noClose() {}

// NewLedger opens the substrate named by cfg.LedgerBackend.
func NewLedger(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Ledger, Closer, error) {
	switch cfg.LedgerBackend {
	case config.BackendMemory:
		logger.Warn("using the in-memory ledger, state is lost on exit")
		return memory.New(), noClose, nil

	case config.BackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		ledger := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable)
		ledger.MaxAttempts = cfg.LedgerMaxAttempts
		return ledger, noClose, nil

	case config.BackendLevelDB:
		ledger, err := leveldb.Open(cfg.LevelDBPath)
		if err != nil {
			return nil, nil, err
		}
		return ledger, func() {
			if err := ledger.Close(); err != nil {
				logger.Error("failed to close leveldb ledger", "error", err)
			}
		}, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		ledger := postgres.New(pool)
		ledger.MaxAttempts = cfg.LedgerMaxAttempts
		if err := ledger.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return ledger, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}

// NewPublisher creates the event publisher named by cfg.EventsBackend.
func NewPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (events.Publisher, Closer, error) {
	switch cfg.EventsBackend {
	case config.EventsNone:
		return events.NoOpPublisher{}, noClose, nil

	case config.EventsSQS:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL), noClose, nil

	case config.EventsKafka:
		writer := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		return events.NewKafkaPublisher(writer), func() {
			if err := writer.Close(); err != nil {
				logger.Error("failed to close kafka writer", "error", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown events backend %q", cfg.EventsBackend)
	}
}
