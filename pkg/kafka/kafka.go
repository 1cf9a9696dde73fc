package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// BookingEventsTopic carries booking lifecycle events for downstream
// consumers (billing, notifications).
const BookingEventsTopic = "booking-events"

type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
)

type BookingEvent struct {
	Type       EventType `json:"type"`
	BookingUID string    `json:"bookingUid"`
	CarUID     string    `json:"carUid"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	TotalCost  float64   `json:"totalCost"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
