package booking

import (
	"errors"
	"strings"

	"wayfarer/internal/pkg/money"
)

var (
	ErrEmptyPassengerID   = errors.New("passenger id cannot be empty")
	ErrEmptyServiceID     = errors.New("service id cannot be empty")
	ErrEmptySegmentID     = errors.New("segment id cannot be empty")
	ErrEmptyDesignator    = errors.New("seat designator cannot be empty")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidPassenger   = errors.New("invalid passenger")
	ErrUnknownPassengerID = errors.New("selection references unknown passenger")
)

// Passenger is a member of the draft's roster, fixed at creation time.
// Identity documents live on the per-booking passenger forms, not here.
type Passenger struct {
	id    string
	name  string
	ptype PassengerType
}

func NewPassenger(id, name string, ptype PassengerType) (Passenger, error) {
	if strings.TrimSpace(id) == "" {
		return Passenger{}, ErrEmptyPassengerID
	}
	if !ptype.IsValid() {
		return Passenger{}, ErrInvalidPassenger
	}
	return Passenger{id: id, name: strings.TrimSpace(name), ptype: ptype}, nil
}

func (p Passenger) ID() string          { return p.id }
func (p Passenger) Name() string        { return p.name }
func (p Passenger) Type() PassengerType { return p.ptype }

// BaggageAllowance is the fare-included baggage for one passenger,
// informational only.
type BaggageAllowance struct {
	PassengerID string
	Quantity    int
	Kind        string
	Weight      string
}

// BagSelection is one purchasable baggage line: a service bought at a
// quantity for one passenger. Zero-quantity lines are never stored.
type BagSelection struct {
	passengerID string
	serviceID   string
	quantity    int
	unitPrice   money.Money
	kind        string
	weight      string
}

func NewBagSelection(passengerID, serviceID string, quantity int, unitPrice money.Money, kind, weight string) (BagSelection, error) {
	if strings.TrimSpace(passengerID) == "" {
		return BagSelection{}, ErrEmptyPassengerID
	}
	if strings.TrimSpace(serviceID) == "" {
		return BagSelection{}, ErrEmptyServiceID
	}
	if quantity < 0 {
		return BagSelection{}, ErrNegativeQuantity
	}
	return BagSelection{
		passengerID: passengerID,
		serviceID:   serviceID,
		quantity:    quantity,
		unitPrice:   unitPrice,
		kind:        kind,
		weight:      weight,
	}, nil
}

func (b BagSelection) PassengerID() string    { return b.passengerID }
func (b BagSelection) ServiceID() string      { return b.serviceID }
func (b BagSelection) Quantity() int          { return b.quantity }
func (b BagSelection) UnitPrice() money.Money { return b.unitPrice }
func (b BagSelection) Kind() string           { return b.kind }
func (b BagSelection) Weight() string         { return b.weight }

func (b BagSelection) LineTotal() money.Money {
	return b.unitPrice.MultiplyQty(b.quantity)
}

// SeatSelection is one purchased seat for a passenger on a segment.
// The (passengerID, segmentID) pair is the uniqueness key.
type SeatSelection struct {
	passengerID    string
	segmentID      string
	serviceID      string
	seatDesignator string
	price          money.Money
}

func NewSeatSelection(passengerID, segmentID, serviceID, seatDesignator string, price money.Money) (SeatSelection, error) {
	if strings.TrimSpace(passengerID) == "" {
		return SeatSelection{}, ErrEmptyPassengerID
	}
	if strings.TrimSpace(segmentID) == "" {
		return SeatSelection{}, ErrEmptySegmentID
	}
	if strings.TrimSpace(serviceID) == "" {
		return SeatSelection{}, ErrEmptyServiceID
	}
	if strings.TrimSpace(seatDesignator) == "" {
		return SeatSelection{}, ErrEmptyDesignator
	}
	return SeatSelection{
		passengerID:    passengerID,
		segmentID:      segmentID,
		serviceID:      serviceID,
		seatDesignator: seatDesignator,
		price:          price,
	}, nil
}

func (s SeatSelection) PassengerID() string    { return s.passengerID }
func (s SeatSelection) SegmentID() string      { return s.segmentID }
func (s SeatSelection) ServiceID() string      { return s.serviceID }
func (s SeatSelection) SeatDesignator() string { return s.seatDesignator }
func (s SeatSelection) Price() money.Money     { return s.price }

// FareRules is the change/refund snapshot taken from the offer at draft
// creation; immutable afterwards.
type FareRules struct {
	CanChange    bool
	CanRefund    bool
	ChangePolicy string
	RefundPolicy string
}
