package handler_test

import (
	"errors"
	"testing"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/rental-service/pkg/circuit_breaker"
	"github.com/Astemirdum/rental-service/pkg/kafka"
	"github.com/Astemirdum/rental-service/rental/internal/handler"
)

func TestEnqueuer_NoProducerIsNoop(t *testing.T) {
	t.Parallel()

	q := handler.NewEnqueuer(nil)
	require.NoError(t, q.Enqueue(kafka.BookingEventsTopic, map[string]string{"type": "booking_created"}))
}

func TestEnqueuer_SendsEvent(t *testing.T) {
	t.Parallel()

	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndSucceed()

	q := handler.NewEnqueuer(producer)
	require.NoError(t, q.Enqueue(kafka.BookingEventsTopic, kafka.BookingEvent{
		Type:       kafka.EventBookingCreated,
		BookingUID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		CarUID:     "6f2b8c5a-7f0e-4bb8-9e3a-1c2d3e4f5a6b",
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-12",
		TotalCost:  100.0,
	}))
	require.NoError(t, producer.Close())
}

func TestEnqueuer_BrokerDownTripsBreaker(t *testing.T) {
	t.Parallel()

	errBroker := errors.New("kafka: broker down")

	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	for i := 0; i < 10; i++ {
		producer.ExpectSendMessageAndFail(errBroker)
	}

	q := handler.NewEnqueuer(producer)
	for i := 0; i < 10; i++ {
		require.ErrorIs(t, q.Enqueue(kafka.BookingEventsTopic, map[string]string{"type": "booking_created"}), errBroker)
	}

	// half the record window failed, further sends are rejected without
	// reaching the producer
	require.ErrorIs(t, q.Enqueue(kafka.BookingEventsTopic, map[string]string{"type": "booking_created"}), circuit_breaker.ErrOpenCB)
	require.NoError(t, producer.Close())
}
