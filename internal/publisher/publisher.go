package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sms-location-webhook/internal/db"
	k "sms-location-webhook/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshalRecord = errors.New("error marshalling record")
	ErrWriteMessage  = errors.New("error writing message")
)

const DefaultTimeout = 5 * time.Second

type Config struct {
	Brokers []string
	Topic   string
	// Timeout bounds a single Publish call. DefaultTimeout when zero.
	Timeout time.Duration
}

// Publisher writes stored events to Kafka within the request that stored
// them. Nothing is buffered between requests.
type Publisher struct {
	writer  k.Writer
	timeout time.Duration
}

func New(cfg Config) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		// Each webhook writes one message; don't wait for a batch to fill.
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
	}, cfg.Timeout)
}

func newPublisher(writer k.Writer, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Publisher{
		writer:  writer,
		timeout: timeout,
	}
}

func (p *Publisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing publisher resources...")
	if err := p.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing kafka writer", "error", err)
	}
}

// Publish writes one event keyed by sender and waits for the broker ack.
func (p *Publisher) Publish(ctx context.Context, event db.DeviceEvent) error {
	const fn = "Publisher:Publish"
	out, err := json.Marshal(k.NewRecord(event))
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalRecord, err)
	}

	var key []byte
	if event.FromNumber != nil {
		key = []byte(*event.FromNumber)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.InfoContext(ctx, "Published device location", "from_number", string(key))
	return nil
}
