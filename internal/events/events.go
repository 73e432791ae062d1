package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	BetPlaced           = "bet_placed"
	BetSettled          = "bet_settled"
	BetUnlocked         = "bet_unlocked"
	WithdrawalRequested = "withdrawal_requested"
)

// Events are written one per request, so the writer flushes almost at once
// instead of waiting for kafka-go's default one second batch.
const batchTimeout = 5 * time.Millisecond

// emitTimeout bounds how long a request can wait on the broker.
var emitTimeout = 500 * time.Millisecond

type Event struct {
	Type     string  `json:"type"`
	UserID   int     `json:"user_id"`
	BetID    int     `json:"bet_id,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	TsUnixMs int64   `json:"ts_unix_ms"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		WriteTimeout:           emitTimeout,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, now: time.Now}
}

// Publish keys messages by user id so one user's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	event.TsUnixMs = p.now().UnixMilli()
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(event.UserID)),
		Value: b,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// Emit publishes after the business operation has committed. A broker
// failure never fails the caller.
func Emit(ctx context.Context, p Publisher, event Event) {
	ctx, cancel := context.WithTimeout(ctx, emitTimeout)
	defer cancel()
	if err := p.Publish(ctx, event); err != nil {
		zap.L().Warn("event not published", zap.String("type", event.Type), zap.Error(err))
	}
}
