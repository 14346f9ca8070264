package commands

import (
	"context"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/seatmap"
	"wayfarer/internal/infra/events"
	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/usecase/queries"

	"github.com/google/uuid"
)

// Consumer-side ports: the write paths declare what they need and the
// infra adapters satisfy them.

// SupplierGateway is the full airline-supplier surface the write side
// touches. CreateOrder is the only non-retry-safe call in the system.
type SupplierGateway interface {
	VerifyOffer(ctx context.Context, offerID string) (*supplier.OfferVerification, error)
	ListBagServices(ctx context.Context, offerID string) ([]supplier.BagService, error)
	GetSeatMap(ctx context.Context, offerID string) ([]seatmap.Segment, error)
	CreateOrder(ctx context.Context, orderReq supplier.CreateOrderRequest) (*supplier.Order, error)
	FindOrderByReference(ctx context.Context, clientReference string) (*supplier.Order, error)
}

type DraftStore interface {
	Save(ctx context.Context, draft *booking.Draft) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	FindIDByOfferID(ctx context.Context, offerID string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AcquireFinalizeLock(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseFinalizeLock(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order queries.OrderView) error
	FindByDraftID(ctx context.Context, draftID uuid.UUID) (*queries.OrderView, error)
}

// EventPublisher emits lifecycle events. Failures are logged, never
// propagated: a confirmed booking must not fail on a broker hiccup.
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}
