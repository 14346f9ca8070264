package booking

import (
	"errors"
	"time"

	"wayfarer/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrDraftNotMutable        = errors.New("draft is in a terminal state")
	ErrFinalizeInProgress     = errors.New("finalize is in progress")
	ErrOfferExpired           = errors.New("offer has expired")
	ErrPolicyNotAcknowledged  = errors.New("policy has not been acknowledged")
	ErrNotFinalizing          = errors.New("draft is not finalizing")
	ErrPassengerCountMismatch = errors.New("passenger count does not match offer")
	ErrNoPassengers           = errors.New("draft requires at least one passenger")
	ErrDuplicatePassenger     = errors.New("duplicate passenger id")
	ErrCurrencyMismatch       = errors.New("extra priced in a different currency than the draft")
)

// Draft is the aggregate root of a booking in progress: one draft per
// priced offer, mutated by extras selection and the policy gate, then
// finalized exactly once. Totals are recomputed inside every mutation so
// the stored total can never drift from the sum of its parts.
type Draft struct {
	id              uuid.UUID
	offerID         string
	tripID          uuid.UUID
	passengers      []Passenger
	includedBaggage []BaggageAllowance
	bagSelections   []BagSelection
	seatSelections  []SeatSelection
	policyAck       bool
	fareRules       FareRules
	basePrice       money.Money
	extrasTotal     money.Money
	totalPrice      money.Money
	expiresAt       time.Time
	status          Status
	orderID         string
	bookingRef      string
	failureReason   string
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructDraft(
	id uuid.UUID,
	offerID string,
	tripID uuid.UUID,
	passengers []Passenger,
	includedBaggage []BaggageAllowance,
	bagSelections []BagSelection,
	seatSelections []SeatSelection,
	policyAck bool,
	fareRules FareRules,
	basePrice money.Money,
	expiresAt time.Time,
	status Status,
	orderID, bookingRef, failureReason string,
	createdAt, updatedAt time.Time,
) (*Draft, error) {
	d := &Draft{
		id:              id,
		offerID:         offerID,
		tripID:          tripID,
		passengers:      passengers,
		includedBaggage: includedBaggage,
		bagSelections:   bagSelections,
		seatSelections:  seatSelections,
		policyAck:       policyAck,
		fareRules:       fareRules,
		basePrice:       basePrice,
		expiresAt:       expiresAt,
		status:          status,
		orderID:         orderID,
		bookingRef:      bookingRef,
		failureReason:   failureReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
	if err := d.recomputeTotals(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Draft) ID() uuid.UUID                      { return d.id }
func (d *Draft) OfferID() string                    { return d.offerID }
func (d *Draft) TripID() uuid.UUID                  { return d.tripID }
func (d *Draft) Passengers() []Passenger            { return d.passengers }
func (d *Draft) IncludedBaggage() []BaggageAllowance { return d.includedBaggage }
func (d *Draft) BagSelections() []BagSelection      { return d.bagSelections }
func (d *Draft) SeatSelections() []SeatSelection    { return d.seatSelections }
func (d *Draft) PolicyAcknowledged() bool           { return d.policyAck }
func (d *Draft) FareRules() FareRules               { return d.fareRules }
func (d *Draft) BasePrice() money.Money             { return d.basePrice }
func (d *Draft) ExtrasTotal() money.Money           { return d.extrasTotal }
func (d *Draft) TotalPrice() money.Money            { return d.totalPrice }
func (d *Draft) Currency() string                   { return d.basePrice.Currency() }
func (d *Draft) ExpiresAt() time.Time               { return d.expiresAt }
func (d *Draft) Status() Status                     { return d.status }
func (d *Draft) OrderID() string                    { return d.orderID }
func (d *Draft) BookingReference() string           { return d.bookingRef }
func (d *Draft) FailureReason() string              { return d.failureReason }
func (d *Draft) CreatedAt() time.Time               { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time               { return d.updatedAt }

func (d *Draft) HasExpired(now time.Time) bool {
	return now.After(d.expiresAt)
}

// FindPassenger returns the roster entry with the given id.
func (d *Draft) FindPassenger(passengerID string) (Passenger, bool) {
	for _, p := range d.passengers {
		if p.ID() == passengerID {
			return p, true
		}
	}
	return Passenger{}, false
}

// ensureMutable is the single gate in front of every mutation: terminal
// drafts are frozen, an in-flight finalize blocks everything else, and an
// elapsed offer expiry flips the draft to expired before failing.
func (d *Draft) ensureMutable(now time.Time) error {
	if d.status.IsTerminal() {
		if d.status == StatusExpired {
			return ErrOfferExpired
		}
		return ErrDraftNotMutable
	}
	if d.status == StatusFinalizing {
		return ErrFinalizeInProgress
	}
	if d.HasExpired(now) {
		d.status = StatusExpired
		d.updatedAt = now
		return ErrOfferExpired
	}
	return nil
}

// ReplaceBagSelections replaces the entire set of bag selections.
// Callers submit the complete desired state each time, which makes rapid
// sequential writes last-write-wins safe. Zero-quantity lines are dropped
// rather than stored.
func (d *Draft) ReplaceBagSelections(now time.Time, selections []BagSelection) error {
	if err := d.ensureMutable(now); err != nil {
		return err
	}

	kept := make([]BagSelection, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity() == 0 {
			continue
		}
		if _, ok := d.FindPassenger(sel.PassengerID()); !ok {
			return ErrUnknownPassengerID
		}
		if sel.UnitPrice().Currency() != d.Currency() {
			return ErrCurrencyMismatch
		}
		kept = append(kept, sel)
	}

	d.bagSelections = kept
	d.updatedAt = now
	return d.recomputeTotals()
}

// ReplaceSeatSelections replaces the entire set of seat selections.
// Duplicate (passenger, segment) keys resolve last-write-wins, so the
// at-most-one-seat invariant holds by construction.
func (d *Draft) ReplaceSeatSelections(now time.Time, selections []SeatSelection) error {
	if err := d.ensureMutable(now); err != nil {
		return err
	}

	type seatKey struct{ passengerID, segmentID string }
	index := make(map[seatKey]int, len(selections))
	kept := make([]SeatSelection, 0, len(selections))
	for _, sel := range selections {
		if _, ok := d.FindPassenger(sel.PassengerID()); !ok {
			return ErrUnknownPassengerID
		}
		if sel.Price().Currency() != d.Currency() {
			return ErrCurrencyMismatch
		}
		key := seatKey{sel.PassengerID(), sel.SegmentID()}
		if i, dup := index[key]; dup {
			kept[i] = sel
			continue
		}
		index[key] = len(kept)
		kept = append(kept, sel)
	}

	d.seatSelections = kept
	d.updatedAt = now
	return d.recomputeTotals()
}

// SetPolicyAcknowledged flips the policy gate. Pricing is unaffected; the
// flag is re-read at finalize time, not trusted from the moment it flipped.
func (d *Draft) SetPolicyAcknowledged(now time.Time, acknowledged bool) error {
	if err := d.ensureMutable(now); err != nil {
		return err
	}
	d.policyAck = acknowledged
	d.updatedAt = now
	return nil
}

// BeginFinalize re-checks every precondition from scratch and transitions
// the draft into the finalizing state, shutting out further mutation until
// the order-creation call resolves.
func (d *Draft) BeginFinalize(now time.Time) error {
	if err := d.ensureMutable(now); err != nil {
		return err
	}
	if !d.policyAck {
		return ErrPolicyNotAcknowledged
	}
	d.status = StatusFinalizing
	d.updatedAt = now
	return nil
}

// Confirm records the supplier order and moves the draft to its terminal
// confirmed state.
func (d *Draft) Confirm(now time.Time, orderID, bookingRef string) error {
	if d.status != StatusFinalizing {
		return ErrNotFinalizing
	}
	d.orderID = orderID
	d.bookingRef = bookingRef
	d.status = StatusConfirmed
	d.updatedAt = now
	return nil
}

// Fail records a definitive supplier rejection. The draft is terminal; the
// user must start over from a fresh offer.
func (d *Draft) Fail(now time.Time, reason string) error {
	if d.status != StatusFinalizing {
		return ErrNotFinalizing
	}
	d.failureReason = reason
	d.status = StatusFailed
	d.updatedAt = now
	return nil
}

// Expire marks the draft expired, either lazily on mutation or when the
// supplier declares the offer gone mid-finalize.
func (d *Draft) Expire(now time.Time) error {
	if d.status.IsTerminal() {
		return ErrDraftNotMutable
	}
	d.status = StatusExpired
	d.updatedAt = now
	return nil
}

// AbortFinalize returns a finalizing draft to the mutable draft state.
// Only reconciliation may call this, after confirming the supplier holds
// no order for the draft.
func (d *Draft) AbortFinalize(now time.Time) error {
	if d.status != StatusFinalizing {
		return ErrNotFinalizing
	}
	d.status = StatusDraft
	d.updatedAt = now
	return nil
}

func (d *Draft) recomputeTotals() error {
	extras := money.Zero(d.Currency())
	var err error
	for _, bag := range d.bagSelections {
		extras, err = extras.Add(bag.LineTotal())
		if err != nil {
			return ErrCurrencyMismatch
		}
	}
	for _, seat := range d.seatSelections {
		extras, err = extras.Add(seat.Price())
		if err != nil {
			return ErrCurrencyMismatch
		}
	}

	total, err := d.basePrice.Add(extras)
	if err != nil {
		return ErrCurrencyMismatch
	}

	d.extrasTotal = extras
	d.totalPrice = total
	return nil
}
