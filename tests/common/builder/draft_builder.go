//go:build unit

package builder

import (
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/money"

	"github.com/google/uuid"
)

// BaseTime is the frozen "now" shared by draft tests.
var BaseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type DraftBuilder struct {
	OfferID        string
	TripID         uuid.UUID
	BaseMinor      int64
	Currency       string
	PassengerCount int
	PassengerIDs   []string
	ExpiresAt      time.Time
	FareRules      booking.FareRules
	Clock          *clock.MockClock
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		OfferID:        "off_0001",
		TripID:         uuid.New(),
		BaseMinor:      40000,
		Currency:       "EUR",
		PassengerCount: 2,
		PassengerIDs:   []string{"pas_001", "pas_002"},
		ExpiresAt:      BaseTime.Add(30 * time.Minute),
		FareRules: booking.FareRules{
			CanChange:    true,
			CanRefund:    false,
			ChangePolicy: "Changes allowed for a fee",
			RefundPolicy: "Non-refundable fare",
		},
		Clock: clock.NewMockClock(BaseTime),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildSnapshot() booking.OfferSnapshot {
	base, err := money.New(b.BaseMinor, b.Currency)
	if err != nil {
		panic(err)
	}
	return booking.OfferSnapshot{
		OfferID:        b.OfferID,
		BasePrice:      base,
		PassengerCount: b.PassengerCount,
		ExpiresAt:      b.ExpiresAt,
		FareRules:      b.FareRules,
		IncludedBaggage: []booking.BaggageAllowance{
			{PassengerID: firstOr(b.PassengerIDs, "pas_001"), Quantity: 1, Kind: "carry_on", Weight: "10kg"},
		},
	}
}

func (b *DraftBuilder) BuildPassengers() []booking.Passenger {
	passengers := make([]booking.Passenger, 0, len(b.PassengerIDs))
	for i, id := range b.PassengerIDs {
		name := "Passenger " + string(rune('A'+i))
		p, err := booking.NewPassenger(id, name, booking.PassengerAdult)
		if err != nil {
			panic(err)
		}
		passengers = append(passengers, p)
	}
	return passengers
}

func (b *DraftBuilder) BuildDomain() (*booking.Draft, error) {
	factory := booking.NewFactory(b.Clock)
	return factory.CreateDraft(b.BuildSnapshot(), b.TripID, b.BuildPassengers())
}

// MustBuild panics on construction failure; for tests whose subject is
// not draft creation itself.
func (b *DraftBuilder) MustBuild() *booking.Draft {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func MustMoney(minor int64, currency string) money.Money {
	m, err := money.New(minor, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func MustBag(passengerID, serviceID string, qty int, unitMinor int64, currency string) booking.BagSelection {
	sel, err := booking.NewBagSelection(passengerID, serviceID, qty, MustMoney(unitMinor, currency), "checked", "23kg")
	if err != nil {
		panic(err)
	}
	return sel
}

func MustSeat(passengerID, segmentID, serviceID, designator string, priceMinor int64, currency string) booking.SeatSelection {
	sel, err := booking.NewSeatSelection(passengerID, segmentID, serviceID, designator, MustMoney(priceMinor, currency))
	if err != nil {
		panic(err)
	}
	return sel
}

func firstOr(ids []string, fallback string) string {
	if len(ids) > 0 {
		return ids[0]
	}
	return fallback
}
