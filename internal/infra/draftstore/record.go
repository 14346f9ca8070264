package draftstore

import (
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/infra"
	"wayfarer/internal/pkg/money"

	"github.com/google/uuid"
)

// draftRecord is the stored JSON shape of a draft. Derived totals are
// not stored; they are recomputed on reconstruction so a stale total can
// never be read back.
type draftRecord struct {
	ID              uuid.UUID          `json:"id"`
	OfferID         string             `json:"offer_id"`
	TripID          uuid.UUID          `json:"trip_id"`
	Passengers      []passengerRecord  `json:"passengers"`
	IncludedBaggage []allowanceRecord  `json:"included_baggage,omitempty"`
	BagSelections   []bagRecord        `json:"bag_selections,omitempty"`
	SeatSelections  []seatRecord       `json:"seat_selections,omitempty"`
	PolicyAck       bool               `json:"policy_acknowledged"`
	CanChange       bool               `json:"can_change"`
	CanRefund       bool               `json:"can_refund"`
	ChangePolicy    string             `json:"change_policy,omitempty"`
	RefundPolicy    string             `json:"refund_policy,omitempty"`
	BaseMinorUnits  int64              `json:"base_minor_units"`
	Currency        string             `json:"currency"`
	ExpiresAt       time.Time          `json:"expires_at"`
	Status          string             `json:"status"`
	OrderID         string             `json:"order_id,omitempty"`
	BookingRef      string             `json:"booking_reference,omitempty"`
	FailureReason   string             `json:"failure_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type passengerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type allowanceRecord struct {
	PassengerID string `json:"passenger_id"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"type"`
	Weight      string `json:"weight,omitempty"`
}

type bagRecord struct {
	PassengerID    string `json:"passenger_id"`
	ServiceID      string `json:"service_id"`
	Quantity       int    `json:"quantity"`
	UnitMinorUnits int64  `json:"unit_minor_units"`
	Currency       string `json:"currency"`
	Kind           string `json:"type,omitempty"`
	Weight         string `json:"weight,omitempty"`
}

type seatRecord struct {
	PassengerID    string `json:"passenger_id"`
	SegmentID      string `json:"segment_id"`
	ServiceID      string `json:"service_id"`
	SeatDesignator string `json:"seat_designator"`
	MinorUnits     int64  `json:"minor_units"`
	Currency       string `json:"currency"`
}

func toRecord(d *booking.Draft) draftRecord {
	passengers := make([]passengerRecord, 0, len(d.Passengers()))
	for _, p := range d.Passengers() {
		passengers = append(passengers, passengerRecord{ID: p.ID(), Name: p.Name(), Type: string(p.Type())})
	}

	allowances := make([]allowanceRecord, 0, len(d.IncludedBaggage()))
	for _, a := range d.IncludedBaggage() {
		allowances = append(allowances, allowanceRecord{
			PassengerID: a.PassengerID, Quantity: a.Quantity, Kind: a.Kind, Weight: a.Weight,
		})
	}

	bags := make([]bagRecord, 0, len(d.BagSelections()))
	for _, b := range d.BagSelections() {
		bags = append(bags, bagRecord{
			PassengerID:    b.PassengerID(),
			ServiceID:      b.ServiceID(),
			Quantity:       b.Quantity(),
			UnitMinorUnits: b.UnitPrice().MinorUnits(),
			Currency:       b.UnitPrice().Currency(),
			Kind:           b.Kind(),
			Weight:         b.Weight(),
		})
	}

	seats := make([]seatRecord, 0, len(d.SeatSelections()))
	for _, s := range d.SeatSelections() {
		seats = append(seats, seatRecord{
			PassengerID:    s.PassengerID(),
			SegmentID:      s.SegmentID(),
			ServiceID:      s.ServiceID(),
			SeatDesignator: s.SeatDesignator(),
			MinorUnits:     s.Price().MinorUnits(),
			Currency:       s.Price().Currency(),
		})
	}

	rules := d.FareRules()
	return draftRecord{
		ID:              d.ID(),
		OfferID:         d.OfferID(),
		TripID:          d.TripID(),
		Passengers:      passengers,
		IncludedBaggage: allowances,
		BagSelections:   bags,
		SeatSelections:  seats,
		PolicyAck:       d.PolicyAcknowledged(),
		CanChange:       rules.CanChange,
		CanRefund:       rules.CanRefund,
		ChangePolicy:    rules.ChangePolicy,
		RefundPolicy:    rules.RefundPolicy,
		BaseMinorUnits:  d.BasePrice().MinorUnits(),
		Currency:        d.Currency(),
		ExpiresAt:       d.ExpiresAt(),
		Status:          d.Status().String(),
		OrderID:         d.OrderID(),
		BookingRef:      d.BookingReference(),
		FailureReason:   d.FailureReason(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func fromRecord(rec draftRecord) (*booking.Draft, error) {
	passengers := make([]booking.Passenger, 0, len(rec.Passengers))
	for _, p := range rec.Passengers {
		passenger, err := booking.NewPassenger(p.ID, p.Name, booking.PassengerType(p.Type))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt passenger record", err)
		}
		passengers = append(passengers, passenger)
	}

	allowances := make([]booking.BaggageAllowance, 0, len(rec.IncludedBaggage))
	for _, a := range rec.IncludedBaggage {
		allowances = append(allowances, booking.BaggageAllowance{
			PassengerID: a.PassengerID, Quantity: a.Quantity, Kind: a.Kind, Weight: a.Weight,
		})
	}

	bags := make([]booking.BagSelection, 0, len(rec.BagSelections))
	for _, b := range rec.BagSelections {
		unit, err := money.New(b.UnitMinorUnits, b.Currency)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt bag selection record", err)
		}
		sel, err := booking.NewBagSelection(b.PassengerID, b.ServiceID, b.Quantity, unit, b.Kind, b.Weight)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt bag selection record", err)
		}
		bags = append(bags, sel)
	}

	seats := make([]booking.SeatSelection, 0, len(rec.SeatSelections))
	for _, s := range rec.SeatSelections {
		price, err := money.New(s.MinorUnits, s.Currency)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt seat selection record", err)
		}
		sel, err := booking.NewSeatSelection(s.PassengerID, s.SegmentID, s.ServiceID, s.SeatDesignator, price)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt seat selection record", err)
		}
		seats = append(seats, sel)
	}

	base, err := money.New(rec.BaseMinorUnits, rec.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt base price record", err)
	}

	status := booking.Status(rec.Status)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("corrupt draft status", nil)
	}

	draft, err := booking.ReconstructDraft(
		rec.ID,
		rec.OfferID,
		rec.TripID,
		passengers,
		allowances,
		bags,
		seats,
		rec.PolicyAck,
		booking.FareRules{
			CanChange:    rec.CanChange,
			CanRefund:    rec.CanRefund,
			ChangePolicy: rec.ChangePolicy,
			RefundPolicy: rec.RefundPolicy,
		},
		base,
		rec.ExpiresAt,
		status,
		rec.OrderID,
		rec.BookingRef,
		rec.FailureReason,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct draft", err)
	}
	return draft, nil
}
