package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sandeepmed2/property-registration/pkg/events"
	"github.com/sandeepmed2/property-registration/pkg/events/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var occurredAt = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func purchaseEvent() events.Event {
	return events.New(events.PropertyPurchased, "property:P-1", events.PurchasePayload{
		PropertyID: "P-1",
		SellerKey:  "account:alice:T1",
		BuyerKey:   "account:bob:T2",
		Price:      300,
	}, occurredAt)
}

func TestNew(t *testing.T) {
	a := purchaseEvent()
	b := purchaseEvent()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, events.PropertyPurchased, a.Type)
	assert.Equal(t, "property:P-1", a.Key)
	assert.Equal(t, occurredAt, a.OccurredAt)
}

func TestSQSPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		event := purchaseEvent()
		mockClient := mocks.NewSQSAPI(t)
		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			var decoded map[string]any
			if err := json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &decoded); err != nil {
				return false
			}
			return aws.ToString(in.QueueUrl) == "https://queue" &&
				decoded["id"] == event.ID &&
				decoded["type"] == "property.purchased" &&
				aws.ToString(in.MessageAttributes["event_type"].StringValue) == "property.purchased"
		})).Return(&sqs.SendMessageOutput{}, nil)

		err := events.NewSQSPublisher(mockClient, "https://queue").Publish(ctx, event)

		assert.NoError(t, err)
	})

	t.Run("Send Error", func(t *testing.T) {
		mockClient := mocks.NewSQSAPI(t)
		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := events.NewSQSPublisher(mockClient, "https://queue").Publish(ctx, purchaseEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestKafkaPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		event := purchaseEvent()
		writer := mocks.NewMessageWriter(t)
		writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msg kafka.Message) bool {
			var decoded events.Event
			if err := json.Unmarshal(msg.Value, &decoded); err != nil {
				return false
			}
			return string(msg.Key) == "property:P-1" &&
				decoded.ID == event.ID &&
				len(msg.Headers) == 1 && string(msg.Headers[0].Value) == "property.purchased"
		})).Return(nil)

		err := events.NewKafkaPublisher(writer).Publish(ctx, event)

		assert.NoError(t, err)
	})

	t.Run("Write Error", func(t *testing.T) {
		writer := mocks.NewMessageWriter(t)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available"))

		err := events.NewKafkaPublisher(writer).Publish(ctx, purchaseEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write message to kafka")
	})
}

func TestNewKafkaWriter(t *testing.T) {
	w := events.NewKafkaWriter([]string{"localhost:9092"}, "registry-events")

	assert.Equal(t, "registry-events", w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.False(t, w.Async)
}

func TestNoOpPublisher(t *testing.T) {
	assert.NoError(t, events.NoOpPublisher{}.Publish(context.Background(), purchaseEvent()))
}
