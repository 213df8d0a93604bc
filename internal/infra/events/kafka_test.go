package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/inventory-backend/stockroom/internal/domain/model"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e model.InventoryEvent
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.EventType != model.InventoryEventProductUpdated || e.ProductID != 7 || e.QuantitySoldDelta != 3 {
			return errors.New("unexpected event")
		}
		if !e.RevenueAccrued.Equal(decimal.RequireFromString("36.00")) {
			return errors.New("unexpected revenue")
		}
		return nil
	})

	p := NewKafkaPublisher(producer, "inventory_events", zaptest.NewLogger(t))
	err := p.Publish(context.Background(), model.InventoryEvent{
		EventType:         model.InventoryEventProductUpdated,
		ProductID:         7,
		SupplierID:        1,
		QuantitySoldDelta: 3,
		QuantityInStock:   20,
		RevenueAccrued:    decimal.RequireFromString("36.00"),
		OccurredAt:        time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisher(producer, "inventory_events", zaptest.NewLogger(t))
	err := p.Publish(context.Background(), model.InventoryEvent{ProductID: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}

func TestHeaderCarrier(t *testing.T) {
	c := headerCarrier{}
	c.Set("traceparent", "a")
	c.Set("traceparent", "b")
	c.Set("baggage", "x")

	assert.Equal(t, "b", c.Get("traceparent"))
	assert.ElementsMatch(t, []string{"traceparent", "baggage"}, c.Keys())
	assert.Equal(t, "", c.Get("missing"))
}
