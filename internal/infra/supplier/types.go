package supplier

import (
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/pkg/money"
)

// Wire DTOs for the travel-supplier API. All prices cross this boundary
// as display strings ("EUR 400.00") and are normalized to minor units in
// the converter before anything downstream sees them.

type offerPayload struct {
	ID                    string           `json:"id"`
	Status                string           `json:"status"`
	TotalAmount           string           `json:"total_amount"`
	PerPassengerAmount    string           `json:"per_passenger_amount"`
	PassengerCount        int              `json:"passenger_count"`
	ExpiresAt             time.Time        `json:"expires_at"`
	AllowChanges          bool             `json:"allow_changes"`
	AllowRefunds          bool             `json:"allow_refunds"`
	ChangePolicy          string           `json:"change_policy"`
	RefundPolicy          string           `json:"refund_policy"`
	IncludedBaggage       []baggagePayload `json:"included_baggage"`
	UnavailabilityMessage string           `json:"unavailability_message,omitempty"`
}

type baggagePayload struct {
	PassengerID string `json:"passenger_id"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"type"`
	Weight      string `json:"weight,omitempty"`
}

type bagServicePayload struct {
	ID          string `json:"id"`
	PassengerID string `json:"passenger_id"`
	Kind        string `json:"type"`
	Weight      string `json:"weight,omitempty"`
	MaxQuantity int    `json:"max_quantity"`
	Amount      string `json:"amount"`
}

type seatMapPayload struct {
	Segments []seatSegmentPayload `json:"segments"`
}

type seatSegmentPayload struct {
	SegmentID   string           `json:"segment_id"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	Rows        [][]seatElementPayload `json:"rows"`
}

type seatElementPayload struct {
	Type       string               `json:"type"`
	Designator string               `json:"designator,omitempty"`
	Services   []seatServicePayload `json:"services,omitempty"`
}

type seatServicePayload struct {
	ID          string `json:"id"`
	PassengerID string `json:"passenger_id"`
	Amount      string `json:"amount"`
}

type orderPayload struct {
	ID               string `json:"id"`
	BookingReference string `json:"booking_reference"`
	TotalAmount      string `json:"total_amount"`
	Status           string `json:"status"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createOrderBody struct {
	OfferID         string                  `json:"offer_id"`
	ClientReference string                  `json:"client_reference"`
	Passengers      []orderPassengerPayload `json:"passengers"`
	Services        []orderServicePayload   `json:"services"`
	ExpectedAmount  string                  `json:"expected_amount"`
}

type orderPassengerPayload struct {
	ID                     string `json:"id"`
	GivenName              string `json:"given_name"`
	FamilyName             string `json:"family_name"`
	DateOfBirth            string `json:"date_of_birth"`
	Gender                 string `json:"gender,omitempty"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	PassportNumber         string `json:"passport_number"`
	PassportIssuingCountry string `json:"passport_issuing_country"`
	PassportExpiryDate     string `json:"passport_expiry_date"`
}

type orderServicePayload struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// ---------------------------------------------------------------------------
// Adapter-facing result types (already normalized).

// OfferVerification is the outcome of the pre-draft offer check. Invalid
// covers both "offer gone" and "supplier unreachable"; Reason is always
// human-readable.
type OfferVerification struct {
	Valid           bool
	Reason          string
	OfferID         string
	TotalPrice      money.Money
	PerPassenger    money.Money
	PassengerCount  int
	ExpiresAt       time.Time
	FareRules       booking.FareRules
	IncludedBaggage []booking.BaggageAllowance
}

// BagService is one purchasable baggage service from the offer catalog.
type BagService struct {
	ID          string
	PassengerID string
	Kind        string
	Weight      string
	MaxQuantity int
	Price       money.Money
}

// Order is a confirmed supplier order.
type Order struct {
	ID               string
	BookingReference string
	TotalPrice       money.Money
}

// OrderPassenger is the validated identity data submitted with an order.
type OrderPassenger struct {
	ID                     string
	GivenName              string
	FamilyName             string
	DateOfBirth            string
	Gender                 string
	Email                  string
	Phone                  string
	PassportNumber         string
	PassportIssuingCountry string
	PassportExpiryDate     string
}

// ServiceSelection is one purchased extra (bag or seat) by service id.
type ServiceSelection struct {
	ServiceID string
	Quantity  int
}

// CreateOrderRequest is the one-shot order submission. ClientReference is
// the draft id, which doubles as the reconciliation key when the call's
// outcome is ambiguous.
type CreateOrderRequest struct {
	OfferID         string
	ClientReference string
	Passengers      []OrderPassenger
	Services        []ServiceSelection
	ExpectedTotal   money.Money
}
