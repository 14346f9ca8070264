package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PassengerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type BaggageAllowanceView struct {
	PassengerID string `json:"passenger_id"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"type"`
	Weight      string `json:"weight,omitempty"`
}

type BagSelectionView struct {
	PassengerID    string `json:"passenger_id"`
	ServiceID      string `json:"service_id"`
	Quantity       int    `json:"quantity"`
	UnitMinorUnits int64  `json:"unit_minor_units"`
	LineMinorUnits int64  `json:"line_minor_units"`
	Currency       string `json:"currency"`
	Kind           string `json:"type,omitempty"`
	Weight         string `json:"weight,omitempty"`
}

type SeatSelectionView struct {
	PassengerID    string `json:"passenger_id"`
	SegmentID      string `json:"segment_id"`
	ServiceID      string `json:"service_id"`
	SeatDesignator string `json:"seat_designator"`
	MinorUnits     int64  `json:"minor_units"`
	Currency       string `json:"currency"`
}

type FareRulesView struct {
	CanChange    bool   `json:"can_change"`
	CanRefund    bool   `json:"can_refund"`
	ChangePolicy string `json:"change_policy,omitempty"`
	RefundPolicy string `json:"refund_policy,omitempty"`
}

type DraftView struct {
	ID                 uuid.UUID              `json:"id"`
	OfferID            string                 `json:"offer_id"`
	TripID             uuid.UUID              `json:"trip_id"`
	Status             string                 `json:"status"`
	Passengers         []PassengerView        `json:"passengers"`
	IncludedBaggage    []BaggageAllowanceView `json:"included_baggage,omitempty"`
	BagSelections      []BagSelectionView     `json:"bag_selections,omitempty"`
	SeatSelections     []SeatSelectionView    `json:"seat_selections,omitempty"`
	PolicyAcknowledged bool                   `json:"policy_acknowledged"`
	FareRules          FareRulesView          `json:"fare_rules"`
	BaseMinorUnits     int64                  `json:"base_minor_units"`
	ExtrasMinorUnits   int64                  `json:"extras_minor_units"`
	TotalMinorUnits    int64                  `json:"total_minor_units"`
	Currency           string                 `json:"currency"`
	ExpiresAt          time.Time              `json:"expires_at"`
	ExpiresInMinutes   int                    `json:"expires_in_minutes"`
	OrderID            string                 `json:"order_id,omitempty"`
	BookingReference   string                 `json:"booking_reference,omitempty"`
	FailureReason      string                 `json:"failure_reason,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type OfferVerificationView struct {
	Valid            bool      `json:"valid"`
	Reason           string    `json:"reason,omitempty"`
	OfferID          string    `json:"offer_id"`
	TotalMinorUnits  int64     `json:"total_minor_units,omitempty"`
	PerPersonMinor   int64     `json:"per_person_minor_units,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	PassengerCount   int       `json:"passenger_count,omitempty"`
	ExpiresAt        time.Time `json:"expires_at,omitzero"`
	ExpiresInMinutes int       `json:"expires_in_minutes,omitempty"`
}

type BagCatalogItemView struct {
	ServiceID      string `json:"service_id"`
	PassengerID    string `json:"passenger_id"`
	Kind           string `json:"type"`
	Weight         string `json:"weight,omitempty"`
	MaxQuantity    int    `json:"max_quantity"`
	UnitMinorUnits int64  `json:"unit_minor_units"`
	Currency       string `json:"currency"`
	DisplayPrice   string `json:"display_price"`
}

type BagCatalogView struct {
	DraftID uuid.UUID            `json:"draft_id"`
	Items   []BagCatalogItemView `json:"items"`
}

type SeatServiceView struct {
	ServiceID   string `json:"service_id"`
	PassengerID string `json:"passenger_id"`
	MinorUnits  int64  `json:"minor_units"`
	Currency    string `json:"currency"`
}

type SeatMapElementView struct {
	Type       string            `json:"type"`
	Designator string            `json:"designator,omitempty"`
	Available  bool              `json:"available"`
	Services   []SeatServiceView `json:"services,omitempty"`
}

type SeatMapSegmentView struct {
	SegmentID   string                 `json:"segment_id"`
	Origin      string                 `json:"origin,omitempty"`
	Destination string                 `json:"destination,omitempty"`
	Rows        [][]SeatMapElementView `json:"rows"`
}

// PriceLineView is one row of the review summary.
type PriceLineView struct {
	Description string `json:"description"`
	MinorUnits  int64  `json:"minor_units"`
}

// ReviewView is the priced snapshot shown before the irreversible
// finalize step.
type ReviewView struct {
	DraftID            uuid.UUID       `json:"draft_id"`
	Status             string          `json:"status"`
	Passengers         []PassengerView `json:"passengers"`
	Lines              []PriceLineView `json:"lines"`
	BaseMinorUnits     int64           `json:"base_minor_units"`
	ExtrasMinorUnits   int64           `json:"extras_minor_units"`
	TotalMinorUnits    int64           `json:"total_minor_units"`
	Currency           string          `json:"currency"`
	PolicyAcknowledged bool            `json:"policy_acknowledged"`
	FareRules          FareRulesView   `json:"fare_rules"`
	ExpiresAt          time.Time       `json:"expires_at"`
	ExpiresInMinutes   int             `json:"expires_in_minutes"`
}

// OrderView is the durable booking-history record, retrievable by trip
// long after the draft itself is gone.
type OrderView struct {
	ID               uuid.UUID `json:"id"`
	DraftID          uuid.UUID `json:"draft_id"`
	TripID           uuid.UUID `json:"trip_id"`
	OfferID          string    `json:"offer_id"`
	SupplierOrderID  string    `json:"supplier_order_id"`
	BookingReference string    `json:"booking_reference"`
	BaseMinorUnits   int64     `json:"base_minor_units"`
	ExtrasMinorUnits int64     `json:"extras_minor_units"`
	TotalMinorUnits  int64     `json:"total_minor_units"`
	Currency         string    `json:"currency"`
	PassengerCount   int       `json:"passenger_count"`
	CreatedAt        time.Time `json:"created_at"`
}
