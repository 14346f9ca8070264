package booking

import (
	"time"

	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/money"

	"github.com/google/uuid"
)

// OfferSnapshot is what the draft inherits from the verified offer at
// creation time: authoritative pricing, fare rules, expiry and the
// included baggage the fare grants.
type OfferSnapshot struct {
	OfferID         string
	BasePrice       money.Money
	PassengerCount  int
	ExpiresAt       time.Time
	FareRules       FareRules
	IncludedBaggage []BaggageAllowance
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{Clock: c}
}

// CreateDraft fixes the passenger roster and fare-rule snapshot. The
// roster size must match the offer's priced passenger count, and the
// offer must still be inside its validity window.
func (f *Factory) CreateDraft(offer OfferSnapshot, tripID uuid.UUID, passengers []Passenger) (*Draft, error) {
	now := f.Clock.Now()

	if len(passengers) == 0 {
		return nil, ErrNoPassengers
	}
	if len(passengers) != offer.PassengerCount {
		return nil, ErrPassengerCountMismatch
	}
	seen := make(map[string]struct{}, len(passengers))
	for _, p := range passengers {
		if _, dup := seen[p.ID()]; dup {
			return nil, ErrDuplicatePassenger
		}
		seen[p.ID()] = struct{}{}
	}
	if now.After(offer.ExpiresAt) {
		return nil, ErrOfferExpired
	}

	d := &Draft{
		id:              uuid.New(),
		offerID:         offer.OfferID,
		tripID:          tripID,
		passengers:      passengers,
		includedBaggage: offer.IncludedBaggage,
		policyAck:       false,
		fareRules:       offer.FareRules,
		basePrice:       offer.BasePrice,
		expiresAt:       offer.ExpiresAt,
		status:          StatusDraft,
		createdAt:       now,
		updatedAt:       now,
	}
	if err := d.recomputeTotals(); err != nil {
		return nil, err
	}
	return d, nil
}
