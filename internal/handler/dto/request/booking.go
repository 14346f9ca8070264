package request

import (
	"strings"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/passenger"

	"github.com/google/uuid"
)

type DraftPassenger struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
	Type string `json:"type" binding:"required,oneof=adult child infant"`
}

type CreateDraftRequest struct {
	OfferID    string           `json:"offer_id" binding:"required"`
	TripID     uuid.UUID        `json:"trip_id" binding:"required"`
	Passengers []DraftPassenger `json:"passengers" binding:"required,min=1,dive"`
}

func (r CreateDraftRequest) ToDomain() ([]booking.Passenger, error) {
	passengers := make([]booking.Passenger, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		entity, err := booking.NewPassenger(p.ID, p.Name, booking.PassengerType(p.Type))
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, entity)
	}
	return passengers, nil
}

type BagSelectionItem struct {
	PassengerID string `json:"passenger_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"min=0"`
}

// UpdateBagSelectionsRequest replaces the draft's bag selections as a
// whole. An empty list clears everything.
type UpdateBagSelectionsRequest struct {
	Selections []BagSelectionItem `json:"selections"`
}

type SeatSelectionItem struct {
	PassengerID    string `json:"passenger_id" binding:"required"`
	SegmentID      string `json:"segment_id" binding:"required"`
	SeatDesignator string `json:"seat_designator" binding:"required"`
}

// UpdateSeatSelectionsRequest replaces the draft's seat selections as a
// whole. An empty list clears everything.
type UpdateSeatSelectionsRequest struct {
	Selections []SeatSelectionItem `json:"selections"`
}

type AcknowledgePolicyRequest struct {
	Acknowledged *bool `json:"acknowledged" binding:"required"`
}

type PassengerFormPayload struct {
	GivenName              string `json:"given_name"`
	FamilyName             string `json:"family_name"`
	DateOfBirth            string `json:"date_of_birth"`
	Gender                 string `json:"gender"`
	Email                  string `json:"email"`
	PhoneCountryCode       string `json:"phone_country_code"`
	PhoneNumber            string `json:"phone_number"`
	PassportNumber         string `json:"passport_number"`
	PassportIssuingCountry string `json:"passport_issuing_country"`
	PassportExpiryDate     string `json:"passport_expiry_date"`
}

type FinalizeDraftRequest struct {
	Passengers []PassengerFormPayload `json:"passengers" binding:"required,min=1,dive"`
}

func (r FinalizeDraftRequest) ToForms() []passenger.Form {
	forms := make([]passenger.Form, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		forms = append(forms, passenger.Form{
			GivenName:              strings.TrimSpace(p.GivenName),
			FamilyName:             strings.TrimSpace(p.FamilyName),
			DateOfBirth:            strings.TrimSpace(p.DateOfBirth),
			Gender:                 strings.TrimSpace(p.Gender),
			Email:                  strings.TrimSpace(p.Email),
			PhoneCountryCode:       strings.TrimSpace(p.PhoneCountryCode),
			PhoneNumber:            strings.TrimSpace(p.PhoneNumber),
			PassportNumber:         strings.TrimSpace(p.PassportNumber),
			PassportIssuingCountry: strings.TrimSpace(strings.ToUpper(p.PassportIssuingCountry)),
			PassportExpiryDate:     strings.TrimSpace(p.PassportExpiryDate),
		})
	}
	return forms
}
