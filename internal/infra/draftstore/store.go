// Package draftstore persists booking drafts for the duration of their
// offer's validity window.
package draftstore

import (
	"context"
	"time"

	"wayfarer/internal/domain/booking"

	"github.com/google/uuid"
)

// Store is the draft persistence port. A mutation is durable only once
// Save returns; callers write whole aggregates, never deltas.
//
// The finalize lock gives the one-shot order submission exclusive access
// to a draft: while held, the owning usecase is the only writer.
type Store interface {
	Save(ctx context.Context, draft *booking.Draft) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	// FindIDByOfferID resolves the single draft attached to an offer,
	// upholding the one-draft-per-offer invariant at creation time.
	FindIDByOfferID(ctx context.Context, offerID string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AcquireFinalizeLock(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseFinalizeLock(ctx context.Context, id uuid.UUID) error
}
