package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Ledger.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Ledger implements storage.Ledger on a single DynamoDB table keyed by "pk".
//
// Reads are strongly consistent and remember the version they observed. Writes
// are buffered and committed with one TransactWriteItems call whose items are
// conditioned on those versions, so an invocation that raced with another one
// is cancelled and attempted again.
type Ledger struct {
	Client      DynamoDBAPI
	TableName   string
	MaxAttempts int
	now         func() time.Time
}

// New creates a new Ledger.
func New(client DynamoDBAPI, tableName string) *Ledger {
	return &Ledger{
		Client:      client,
		TableName:   tableName,
		MaxAttempts: storage.DefaultMaxAttempts,
		now:         time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.Ledger = (*Ledger)(nil)

// RunInTransaction executes fn and commits its writes atomically.
func (l *Ledger) RunInTransaction(ctx context.Context, fn func(tx storage.Tx) error) error {
	return storage.Retry(ctx, l.MaxAttempts, func() error {
		tx := newTransaction(l)
		err := fn(tx)
		tx.closed = true
		if err != nil {
			return err
		}
		return tx.commit(ctx)
	})
}
