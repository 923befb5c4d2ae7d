package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
)

// BookingConfirmedEvent is the message published when a booking
// commits. Downstream consumers (confirmation email, analytics) read
// it from the booking topic.
type BookingConfirmedEvent struct {
	BookingID   string          `json:"booking_id"`
	BookingCode string          `json:"booking_code"`
	ShowID      string          `json:"show_id"`
	UserID      string          `json:"user_id,omitempty"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Producer publishes booking lifecycle events to Kafka.
type Producer interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaProducer creates a synchronous Kafka producer for booking
// events. Messages for the same show land on the same partition so a
// consumer sees one show's bookings in order.
func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.BookingTopic,
		log:      logger.GetDefault(),
	}, nil
}

func (p *kafkaProducer) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ShowID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("booking.confirmed")},
			{Key: []byte("booking_id"), Value: []byte(event.BookingID)},
			{Key: []byte("created_at"), Value: []byte(event.CreatedAt.Format(time.RFC3339))},
		},
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	p.log.Info("booking event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"booking_id", event.BookingID,
	)
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
