// Package seatmap models a supplier cabin layout as a closed set of
// element variants, so selection logic can handle every fixture kind
// exhaustively instead of poking at loosely-typed payloads.
package seatmap

import (
	"errors"
	"fmt"

	"wayfarer/internal/pkg/money"
)

var (
	ErrUnknownElementType = errors.New("unknown seat map element type")
	ErrNotASeat           = errors.New("element is not a seat")
	ErrSeatUnavailable    = errors.New("seat has no purchasable service for this passenger")
)

type ElementType string

const (
	ElementSeat     ElementType = "seat"
	ElementAisle    ElementType = "aisle"
	ElementLavatory ElementType = "lavatory"
	ElementGalley   ElementType = "galley"
	ElementExitRow  ElementType = "exit_row"
)

// ParseElementType rejects discriminants outside the closed set.
func ParseElementType(s string) (ElementType, error) {
	switch t := ElementType(s); t {
	case ElementSeat, ElementAisle, ElementLavatory, ElementGalley, ElementExitRow:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownElementType, s)
	}
}

// SeatService is one purchasable instance of a seat, priced per passenger.
type SeatService struct {
	ID          string
	PassengerID string
	Price       money.Money
}

// Seat is a physical seat position. A seat with no services is occupied
// or otherwise not for sale.
type Seat struct {
	Designator string
	Services   []SeatService
}

// ServiceFor returns the purchase service available to the given
// passenger, if any.
func (s Seat) ServiceFor(passengerID string) (SeatService, bool) {
	for _, svc := range s.Services {
		if svc.PassengerID == passengerID {
			return svc, true
		}
	}
	return SeatService{}, false
}

// Element is one grid cell of the cabin layout. Seat is non-nil exactly
// when Type is ElementSeat.
type Element struct {
	Type ElementType
	Seat *Seat
}

// SelectableBy returns the service a passenger would purchase by picking
// this element. Non-seat fixtures and occupied seats are not selectable.
func (e Element) SelectableBy(passengerID string) (SeatService, error) {
	if e.Type != ElementSeat || e.Seat == nil {
		return SeatService{}, ErrNotASeat
	}
	svc, ok := e.Seat.ServiceFor(passengerID)
	if !ok {
		return SeatService{}, ErrSeatUnavailable
	}
	return svc, nil
}

type Row struct {
	Elements []Element
}

// Segment is the cabin layout for one flown leg.
type Segment struct {
	SegmentID string
	Origin    string
	Destination string
	Rows      []Row
}

// FindSeat locates a seat element by designator.
func (s Segment) FindSeat(designator string) (Element, bool) {
	for _, row := range s.Rows {
		for _, el := range row.Elements {
			if el.Type == ElementSeat && el.Seat != nil && el.Seat.Designator == designator {
				return el, true
			}
		}
	}
	return Element{}, false
}
