package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// item is the stored form of a ledger record.
type item struct {
	PK        string    `dynamodbav:"pk"`
	Value     []byte    `dynamodbav:"value"`
	Version   int64     `dynamodbav:"version"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// observation is what a transaction saw when it first read a key.
// A version of zero means the key was absent.
type observation struct {
	version int64
	value   []byte
}

type transaction struct {
	ledger   *Ledger
	observed map[keys.Key]observation
	writes   map[keys.Key][]byte
	order    []keys.Key
	closed   bool
}

func newTransaction(l *Ledger) *transaction {
	return &transaction{
		ledger:   l,
		observed: make(map[keys.Key]observation),
		writes:   make(map[keys.Key][]byte),
	}
}

func (t *transaction) Get(ctx context.Context, key keys.Key) ([]byte, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if value, ok := t.writes[key]; ok {
		return value, nil
	}
	obs, err := t.observe(ctx, key)
	if err != nil {
		return nil, err
	}
	return obs.value, nil
}

func (t *transaction) Put(ctx context.Context, key keys.Key, value []byte) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	// The commit condition needs the version the write replaces.
	if _, err := t.observe(ctx, key); err != nil {
		return err
	}
	if _, ok := t.writes[key]; !ok {
		t.order = append(t.order, key)
	}
	t.writes[key] = value
	return nil
}

func (t *transaction) observe(ctx context.Context, key keys.Key) (observation, error) {
	if obs, ok := t.observed[key]; ok {
		return obs, nil
	}

	pk, err := attributevalue.MarshalMap(map[string]string{"pk": string(key)})
	if err != nil {
		return observation{}, fmt.Errorf("failed to marshal ledger key: %w", err)
	}

	result, err := t.ledger.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.ledger.TableName),
		Key:            pk,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return observation{}, fmt.Errorf("failed to get ledger item from DynamoDB: %w", err)
	}

	var obs observation
	if result.Item != nil {
		var it item
		if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
			return observation{}, fmt.Errorf("failed to unmarshal ledger item: %w", err)
		}
		obs = observation{version: it.Version, value: it.Value}
	}
	t.observed[key] = obs
	return obs, nil
}

// commit writes every buffered value and re-checks every key that was only read.
func (t *transaction) commit(ctx context.Context) error {
	if len(t.writes) == 0 {
		return nil
	}

	now := t.ledger.now()
	transactItems := make([]types.TransactWriteItem, 0, len(t.observed))
	for _, key := range t.order {
		obs := t.observed[key]
		av, err := attributevalue.MarshalMap(item{
			PK:        string(key),
			Value:     t.writes[key],
			Version:   obs.version + 1,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal ledger item: %w", err)
		}
		condition, values := versionCondition(obs.version)
		transactItems = append(transactItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                 aws.String(t.ledger.TableName),
				Item:                      av,
				ConditionExpression:       condition,
				ExpressionAttributeValues: values,
			},
		})
	}
	for key, obs := range t.observed {
		if _, written := t.writes[key]; written {
			continue
		}
		condition, values := versionCondition(obs.version)
		transactItems = append(transactItems, types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:                 aws.String(t.ledger.TableName),
				Key:                       map[string]types.AttributeValue{"pk": &types.AttributeValueMemberS{Value: string(key)}},
				ConditionExpression:       condition,
				ExpressionAttributeValues: values,
			},
		})
	}

	slog.Log(ctx, slog.LevelDebug, "committing ledger transaction", "writes", len(t.writes), "items", len(transactItems))

	_, err := t.ledger.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code == nil {
					continue
				}
				if *reason.Code == "ConditionalCheckFailed" || *reason.Code == "TransactionConflict" {
					return fmt.Errorf("%w: %s", storage.ErrConflict, *reason.Code)
				}
			}
		}
		return fmt.Errorf("%w: failed to execute ledger transaction: %w", storage.ErrCommit, err)
	}

	return nil
}

func versionCondition(version int64) (*string, map[string]types.AttributeValue) {
	if version == 0 {
		return aws.String("attribute_not_exists(pk)"), nil
	}
	return aws.String("version = :version"), map[string]types.AttributeValue{
		":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", version)},
	}
}
