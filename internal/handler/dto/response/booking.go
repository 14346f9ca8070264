package response

import (
	"time"

	"wayfarer/internal/domain/passenger"
	"wayfarer/internal/usecase/commands"
	"wayfarer/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferVerificationResponse struct {
	Valid            bool      `json:"valid"`
	Reason           string    `json:"reason,omitempty"`
	OfferID          string    `json:"offerId"`
	TotalMinorUnits  int64     `json:"totalMinorUnits,omitempty"`
	PerPersonMinor   int64     `json:"perPersonMinorUnits,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	PassengerCount   int       `json:"passengerCount,omitempty"`
	ExpiresAt        time.Time `json:"expiresAt,omitzero"`
	ExpiresInMinutes int       `json:"expiresInMinutes,omitempty"`
}

func FromOfferVerificationView(v *queries.OfferVerificationView) *OfferVerificationResponse {
	return &OfferVerificationResponse{
		Valid:            v.Valid,
		Reason:           v.Reason,
		OfferID:          v.OfferID,
		TotalMinorUnits:  v.TotalMinorUnits,
		PerPersonMinor:   v.PerPersonMinor,
		Currency:         v.Currency,
		PassengerCount:   v.PassengerCount,
		ExpiresAt:        v.ExpiresAt,
		ExpiresInMinutes: v.ExpiresInMinutes,
	}
}

type PassengerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type BaggageAllowanceResponse struct {
	PassengerID string `json:"passengerId"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"type"`
	Weight      string `json:"weight,omitempty"`
}

type BagSelectionResponse struct {
	PassengerID    string `json:"passengerId"`
	ServiceID      string `json:"serviceId"`
	Quantity       int    `json:"quantity"`
	UnitMinorUnits int64  `json:"unitMinorUnits"`
	LineMinorUnits int64  `json:"lineMinorUnits"`
	Currency       string `json:"currency"`
	Kind           string `json:"type,omitempty"`
	Weight         string `json:"weight,omitempty"`
}

type SeatSelectionResponse struct {
	PassengerID    string `json:"passengerId"`
	SegmentID      string `json:"segmentId"`
	ServiceID      string `json:"serviceId"`
	SeatDesignator string `json:"seatDesignator"`
	MinorUnits     int64  `json:"minorUnits"`
	Currency       string `json:"currency"`
}

type FareRulesResponse struct {
	CanChange    bool   `json:"canChange"`
	CanRefund    bool   `json:"canRefund"`
	ChangePolicy string `json:"changePolicy,omitempty"`
	RefundPolicy string `json:"refundPolicy,omitempty"`
}

type DraftResponse struct {
	ID                 uuid.UUID                  `json:"id"`
	OfferID            string                     `json:"offerId"`
	TripID             uuid.UUID                  `json:"tripId"`
	Status             string                     `json:"status"`
	Passengers         []PassengerResponse        `json:"passengers"`
	IncludedBaggage    []BaggageAllowanceResponse `json:"includedBaggage,omitempty"`
	BagSelections      []BagSelectionResponse     `json:"bagSelections,omitempty"`
	SeatSelections     []SeatSelectionResponse    `json:"seatSelections,omitempty"`
	PolicyAcknowledged bool                       `json:"policyAcknowledged"`
	FareRules          FareRulesResponse          `json:"fareRules"`
	BaseMinorUnits     int64                      `json:"baseMinorUnits"`
	ExtrasMinorUnits   int64                      `json:"extrasMinorUnits"`
	TotalMinorUnits    int64                      `json:"totalMinorUnits"`
	Currency           string                     `json:"currency"`
	ExpiresAt          time.Time                  `json:"expiresAt"`
	ExpiresInMinutes   int                        `json:"expiresInMinutes"`
	OrderID            string                     `json:"orderId,omitempty"`
	BookingReference   string                     `json:"bookingReference,omitempty"`
	FailureReason      string                     `json:"failureReason,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	passengers := make([]PassengerResponse, 0, len(v.Passengers))
	for _, p := range v.Passengers {
		passengers = append(passengers, PassengerResponse(p))
	}
	allowances := make([]BaggageAllowanceResponse, 0, len(v.IncludedBaggage))
	for _, a := range v.IncludedBaggage {
		allowances = append(allowances, BaggageAllowanceResponse(a))
	}
	bags := make([]BagSelectionResponse, 0, len(v.BagSelections))
	for _, b := range v.BagSelections {
		bags = append(bags, BagSelectionResponse(b))
	}
	seats := make([]SeatSelectionResponse, 0, len(v.SeatSelections))
	for _, s := range v.SeatSelections {
		seats = append(seats, SeatSelectionResponse(s))
	}
	return &DraftResponse{
		ID:                 v.ID,
		OfferID:            v.OfferID,
		TripID:             v.TripID,
		Status:             v.Status,
		Passengers:         passengers,
		IncludedBaggage:    allowances,
		BagSelections:      bags,
		SeatSelections:     seats,
		PolicyAcknowledged: v.PolicyAcknowledged,
		FareRules:          FareRulesResponse(v.FareRules),
		BaseMinorUnits:     v.BaseMinorUnits,
		ExtrasMinorUnits:   v.ExtrasMinorUnits,
		TotalMinorUnits:    v.TotalMinorUnits,
		Currency:           v.Currency,
		ExpiresAt:          v.ExpiresAt,
		ExpiresInMinutes:   v.ExpiresInMinutes,
		OrderID:            v.OrderID,
		BookingReference:   v.BookingReference,
		FailureReason:      v.FailureReason,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type BagCatalogItemResponse struct {
	ServiceID      string `json:"serviceId"`
	PassengerID    string `json:"passengerId"`
	Kind           string `json:"type"`
	Weight         string `json:"weight,omitempty"`
	MaxQuantity    int    `json:"maxQuantity"`
	UnitMinorUnits int64  `json:"unitMinorUnits"`
	Currency       string `json:"currency"`
	DisplayPrice   string `json:"displayPrice"`
}

type BagCatalogResponse struct {
	DraftID uuid.UUID                `json:"draftId"`
	Items   []BagCatalogItemResponse `json:"items"`
}

func FromBagCatalogView(v *queries.BagCatalogView) *BagCatalogResponse {
	items := make([]BagCatalogItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, BagCatalogItemResponse(item))
	}
	return &BagCatalogResponse{DraftID: v.DraftID, Items: items}
}

type SeatServiceResponse struct {
	ServiceID   string `json:"serviceId"`
	PassengerID string `json:"passengerId"`
	MinorUnits  int64  `json:"minorUnits"`
	Currency    string `json:"currency"`
}

type SeatMapElementResponse struct {
	Type       string                `json:"type"`
	Designator string                `json:"designator,omitempty"`
	Available  bool                  `json:"available"`
	Services   []SeatServiceResponse `json:"services,omitempty"`
}

type SeatMapSegmentResponse struct {
	SegmentID   string                     `json:"segmentId"`
	Origin      string                     `json:"origin,omitempty"`
	Destination string                     `json:"destination,omitempty"`
	Rows        [][]SeatMapElementResponse `json:"rows"`
}

func FromSeatMapViews(segments []queries.SeatMapSegmentView) []SeatMapSegmentResponse {
	out := make([]SeatMapSegmentResponse, 0, len(segments))
	for _, seg := range segments {
		rows := make([][]SeatMapElementResponse, 0, len(seg.Rows))
		for _, row := range seg.Rows {
			elements := make([]SeatMapElementResponse, 0, len(row))
			for _, el := range row {
				services := make([]SeatServiceResponse, 0, len(el.Services))
				for _, svc := range el.Services {
					services = append(services, SeatServiceResponse(svc))
				}
				elements = append(elements, SeatMapElementResponse{
					Type:       el.Type,
					Designator: el.Designator,
					Available:  el.Available,
					Services:   services,
				})
			}
			rows = append(rows, elements)
		}
		out = append(out, SeatMapSegmentResponse{
			SegmentID:   seg.SegmentID,
			Origin:      seg.Origin,
			Destination: seg.Destination,
			Rows:        rows,
		})
	}
	return out
}

type PriceLineResponse struct {
	Description string `json:"description"`
	MinorUnits  int64  `json:"minorUnits"`
}

type ReviewResponse struct {
	DraftID            uuid.UUID           `json:"draftId"`
	Status             string              `json:"status"`
	Passengers         []PassengerResponse `json:"passengers"`
	Lines              []PriceLineResponse `json:"lines"`
	BaseMinorUnits     int64               `json:"baseMinorUnits"`
	ExtrasMinorUnits   int64               `json:"extrasMinorUnits"`
	TotalMinorUnits    int64               `json:"totalMinorUnits"`
	Currency           string              `json:"currency"`
	PolicyAcknowledged bool                `json:"policyAcknowledged"`
	FareRules          FareRulesResponse   `json:"fareRules"`
	ExpiresAt          time.Time           `json:"expiresAt"`
	ExpiresInMinutes   int                 `json:"expiresInMinutes"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	passengers := make([]PassengerResponse, 0, len(v.Passengers))
	for _, p := range v.Passengers {
		passengers = append(passengers, PassengerResponse(p))
	}
	lines := make([]PriceLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, PriceLineResponse(l))
	}
	return &ReviewResponse{
		DraftID:            v.DraftID,
		Status:             v.Status,
		Passengers:         passengers,
		Lines:              lines,
		BaseMinorUnits:     v.BaseMinorUnits,
		ExtrasMinorUnits:   v.ExtrasMinorUnits,
		TotalMinorUnits:    v.TotalMinorUnits,
		Currency:           v.Currency,
		PolicyAcknowledged: v.PolicyAcknowledged,
		FareRules:          FareRulesResponse(v.FareRules),
		ExpiresAt:          v.ExpiresAt,
		ExpiresInMinutes:   v.ExpiresInMinutes,
	}
}

type OrderResponse struct {
	ID               uuid.UUID `json:"id"`
	DraftID          uuid.UUID `json:"draftId"`
	TripID           uuid.UUID `json:"tripId"`
	OfferID          string    `json:"offerId"`
	SupplierOrderID  string    `json:"supplierOrderId"`
	BookingReference string    `json:"bookingReference"`
	BaseMinorUnits   int64     `json:"baseMinorUnits"`
	ExtrasMinorUnits int64     `json:"extrasMinorUnits"`
	TotalMinorUnits  int64     `json:"totalMinorUnits"`
	Currency         string    `json:"currency"`
	PassengerCount   int       `json:"passengerCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	r := OrderResponse(*v)
	return &r
}

func FromOrderViews(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, OrderResponse(v))
	}
	return out
}

// FinalizeResponse covers both the confirmed and the reverted outcome of
// a finalize or reconcile call.
type FinalizeResponse struct {
	State    string         `json:"state"`
	Draft    *DraftResponse `json:"draft,omitempty"`
	Order    *OrderResponse `json:"order,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

func FromFinalizeResult(result *commands.FinalizeResult) *FinalizeResponse {
	resp := &FinalizeResponse{State: result.State, Warnings: result.Warnings}
	if result.Draft != nil {
		resp.Draft = FromDraftView(result.Draft)
	}
	if result.Order != nil {
		resp.Order = FromOrderView(result.Order)
	}
	return resp
}

type PassengerViolationResponse struct {
	PassengerIndex int    `json:"passengerIndex"`
	PassengerName  string `json:"passengerName,omitempty"`
	Message        string `json:"message"`
}

func FromViolations(violations []passenger.Violation) []PassengerViolationResponse {
	out := make([]PassengerViolationResponse, 0, len(violations))
	for _, v := range violations {
		out = append(out, PassengerViolationResponse{
			PassengerIndex: v.PassengerIndex,
			PassengerName:  v.PassengerName,
			Message:        v.Message,
		})
	}
	return out
}
