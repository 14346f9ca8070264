// Package events publishes booking lifecycle events for downstream
// consumers (notifications, analytics, trip timelines).
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wayfarer/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

const (
	TypeDraftCreated     = "booking.draft_created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingFailed    = "booking.failed"
)

type BookingEvent struct {
	Type             string    `json:"type"`
	DraftID          string    `json:"draft_id"`
	TripID           string    `json:"trip_id"`
	OfferID          string    `json:"offer_id"`
	OrderID          string    `json:"order_id,omitempty"`
	BookingReference string    `json:"booking_reference,omitempty"`
	TotalMinorUnits  int64     `json:"total_minor_units,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	Reason           string    `json:"reason,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Publisher is the port the finalize flow emits through. Publishing is
// best-effort: a booking never fails because an event could not be sent.
type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Producer{writer: writer, logger: logger}
}

func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.DraftID),
		Value: payload,
	})
	if err != nil {
		p.logger.Warn("failed to publish booking event", "type", event.Type, "draft_id", event.DraftID, "error", err)
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events; used in tests and local development
// without a broker.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) error { return nil }
