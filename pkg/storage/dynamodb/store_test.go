package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
	"github.com/sandeepmed2/property-registration/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func keyIs(key keys.Key) interface{} {
	return mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		pk, ok := in.Key["pk"].(*types.AttributeValueMemberS)
		return ok && pk.Value == string(key) && aws.ToBool(in.ConsistentRead)
	})
}

func storedItem(t *testing.T, key keys.Key, value string, version int64) *dynamodb.GetItemOutput {
	av, err := attributevalue.MarshalMap(item{PK: string(key), Value: []byte(value), Version: version})
	require.NoError(t, err)
	return &dynamodb.GetItemOutput{Item: av}
}

func conflict() error {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}},
	}
}

func newLedger(client DynamoDBAPI) *Ledger {
	l := New(client, "ledger")
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	propertyKey := keys.Property("P-1")
	accountKey := keys.Account("alice", "T1")

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, keyIs(propertyKey)).Return(&dynamodb.GetItemOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 1 || in.TransactItems[0].Put == nil {
				return false
			}
			put := in.TransactItems[0].Put
			var it item
			if err := attributevalue.UnmarshalMap(put.Item, &it); err != nil {
				return false
			}
			return aws.ToString(put.ConditionExpression) == "attribute_not_exists(pk)" &&
				it.PK == string(propertyKey) && string(it.Value) == "v1" && it.Version == 1
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			return tx.Put(ctx, propertyKey, []byte("v1"))
		})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Reads Own Writes", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, keyIs(propertyKey)).Once().Return(storedItem(t, propertyKey, "old", 1), nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			got, err := tx.Get(ctx, propertyKey)
			require.NoError(t, err)
			assert.Equal(t, "old", string(got))
			require.NoError(t, tx.Put(ctx, propertyKey, []byte("new")))
			got, err = tx.Get(ctx, propertyKey)
			require.NoError(t, err)
			assert.Equal(t, "new", string(got))
			return nil
		})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Conditions", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, keyIs(propertyKey)).Return(storedItem(t, propertyKey, "old", 4), nil)
		mockClient.On("GetItem", mock.Anything, keyIs(accountKey)).Return(storedItem(t, accountKey, "owner", 7), nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 2 {
				return false
			}
			put, check := in.TransactItems[0].Put, in.TransactItems[1].ConditionCheck
			if put == nil || check == nil {
				return false
			}
			putVersion := put.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value
			checkVersion := check.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value
			return aws.ToString(put.ConditionExpression) == "version = :version" && putVersion == "4" &&
				aws.ToString(check.ConditionExpression) == "version = :version" && checkVersion == "7"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			if _, err := tx.Get(ctx, accountKey); err != nil {
				return err
			}
			return tx.Put(ctx, propertyKey, []byte("new"))
		})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Read Only", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, keyIs(propertyKey)).Return(storedItem(t, propertyKey, "v1", 1), nil)

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			_, err := tx.Get(ctx, propertyKey)
			return err
		})

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Function Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)
		boom := errors.New("boom")

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			if err := tx.Put(ctx, propertyKey, []byte("v1")); err != nil {
				return err
			}
			return boom
		})

		assert.ErrorIs(t, err, boom)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Conflict Retries", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(nil, conflict())
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		attempts := 0
		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			attempts++
			return tx.Put(ctx, propertyKey, []byte("v1"))
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, attempts)
		mockClient.AssertNumberOfCalls(t, "GetItem", 2)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict Gives Up", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conflict())

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			return tx.Put(ctx, propertyKey, []byte("v1"))
		})

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", storage.DefaultMaxAttempts)
	})

	t.Run("Commit Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			return tx.Put(ctx, propertyKey, []byte("v1"))
		})

		assert.ErrorIs(t, err, storage.ErrCommit)
		assert.Contains(t, err.Error(), "failed to execute ledger transaction")
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", 1)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		err := newLedger(mockClient).RunInTransaction(ctx, func(tx storage.Tx) error {
			_, err := tx.Get(ctx, propertyKey)
			return err
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get ledger item from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}
