package events

import (
	"context"

	"stayhub/pkg/config"
	"stayhub/pkg/kafka"
	"stayhub/pkg/model"
)

const (
	EventBookingCreated = "booking.created"

	schemaVersion = "1"
	source        = "bookings"
)

// Publisher emits booking lifecycle events. Creation is already committed
// by the time an event is published, so publish failures are logged and
// swallowed; downstream consumers reconcile from the store.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
}

type kafkaPublisher struct {
	producer *kafka.Producer
	cfg      *config.Config
}

func NewKafkaPublisher(producer *kafka.Producer, cfg *config.Config) Publisher {
	return &kafkaPublisher{
		producer: producer,
		cfg:      cfg,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	msg := kafka.NewMessage().
		WithKey(booking.Listing).
		WithValue(booking).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.cfg.Log.Error("Failed to publish booking event",
			"event_type", EventBookingCreated,
			"booking_id", booking.ID,
			"error", err,
		)
		return
	}

	p.cfg.Log.Debug("Booking event published",
		"event_type", EventBookingCreated,
		"booking_id", booking.ID,
	)
}

// NopPublisher drops events; used when no events topic is configured.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(context.Context, *model.Booking) {}
