// Package supplier adapts the travel-supplier HTTP API: offer
// verification, extras catalogs, seat maps and the single-shot order
// creation call.
package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/seatmap"
	"wayfarer/internal/infra"
	"wayfarer/internal/pkg/config"
	"wayfarer/internal/pkg/money"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	finalize   *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.SupplierConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.ReadTimeout},
		finalize:   &http.Client{Timeout: cfg.FinalizeTimeout},
		logger:     logger,
	}
}

// VerifyOffer confirms an offer is still purchasable and returns its
// authoritative pricing. Both "offer gone" and transport failures come
// back as Valid=false with a reason; this call never panics and is safe
// to retry.
func (c *Client) VerifyOffer(ctx context.Context, offerID string) (*OfferVerification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/air/offers/"+url.PathEscape(offerID)), nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build offer request", err, infra.KindUnavailable)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("offer verification transport failure", "offer_id", offerID, "error", err)
		return &OfferVerification{Valid: false, OfferID: offerID, Reason: "Could not reach the flight supplier. Please try again."}, nil
	}
	defer closeBody(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return &OfferVerification{Valid: false, OfferID: offerID, Reason: "Fare no longer available"}, nil
	case resp.StatusCode >= 500:
		c.logger.Warn("offer verification supplier error", "offer_id", offerID, "status", resp.StatusCode)
		return &OfferVerification{Valid: false, OfferID: offerID, Reason: "The flight supplier is temporarily unavailable. Please try again."}, nil
	case resp.StatusCode != http.StatusOK:
		return &OfferVerification{Valid: false, OfferID: offerID, Reason: "Fare no longer available"}, nil
	}

	var payload offerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer payload", err, infra.KindUnavailable)
	}

	if payload.Status != "available" {
		reason := payload.UnavailabilityMessage
		if reason == "" {
			reason = "Fare no longer available"
		}
		return &OfferVerification{Valid: false, OfferID: offerID, Reason: reason}, nil
	}

	return convertOffer(payload)
}

// ListBagServices fetches the purchasable baggage catalog for an offer,
// prices normalized to minor units.
func (c *Client) ListBagServices(ctx context.Context, offerID string) ([]BagService, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/air/offers/"+url.PathEscape(offerID)+"/services?type=baggage"), nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bag services request", err, infra.KindUnavailable)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, infra.WrapRepoErr("bag services request failed", err, infra.KindUnavailable)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return nil, infra.WrapRepoErr("offer no longer available", nil, infra.KindExpired)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(fmt.Sprintf("bag services returned status %d", resp.StatusCode), nil, infra.KindUnavailable)
	}

	var payloads []bagServicePayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, infra.WrapRepoErr("failed to decode bag services", err, infra.KindUnavailable)
	}

	services := make([]BagService, 0, len(payloads))
	for _, p := range payloads {
		price, err := money.ParseDisplayPrice(p.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("unparseable bag service price", err, infra.KindUnavailable)
		}
		services = append(services, BagService{
			ID:          p.ID,
			PassengerID: p.PassengerID,
			Kind:        p.Kind,
			Weight:      p.Weight,
			MaxQuantity: p.MaxQuantity,
			Price:       price,
		})
	}
	return services, nil
}

// GetSeatMap fetches per-segment cabin layouts. Unknown element
// discriminants are an error: the variant set is closed.
func (c *Client) GetSeatMap(ctx context.Context, offerID string) ([]seatmap.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/air/seat_maps?offer_id="+url.QueryEscape(offerID)), nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build seat map request", err, infra.KindUnavailable)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, infra.WrapRepoErr("seat map request failed", err, infra.KindUnavailable)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return nil, infra.WrapRepoErr("offer no longer available", nil, infra.KindExpired)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(fmt.Sprintf("seat map returned status %d", resp.StatusCode), nil, infra.KindUnavailable)
	}

	var payload seatMapPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, infra.WrapRepoErr("failed to decode seat map", err, infra.KindUnavailable)
	}

	return convertSeatMap(payload)
}

// CreateOrder submits the draft to the supplier. This call is never
// retried here: a transport failure after the request may have reached
// the supplier comes back as OUTCOME_UNKNOWN and must go through
// reconciliation, not a blind resubmit.
func (c *Client) CreateOrder(ctx context.Context, orderReq CreateOrderRequest) (*Order, error) {
	body, err := json.Marshal(buildOrderBody(orderReq))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode order request", err, infra.KindRejected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/air/orders"), bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build order request", err, infra.KindRejected)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.finalize.Do(req)
	if err != nil {
		c.logger.Error("order creation outcome unknown", "client_reference", orderReq.ClientReference, "error", err)
		return nil, infra.WrapRepoErr("no definitive response from supplier", err, infra.KindOutcomeUnknown)
	}
	defer closeBody(resp.Body)

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		var payload orderPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			// The order may exist even though we could not read it.
			return nil, infra.WrapRepoErr("unreadable order response", err, infra.KindOutcomeUnknown)
		}
		return convertOrder(payload)

	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusGone:
		return nil, infra.WrapRepoErr(rejectMessage(resp.Body, "Fare no longer available"), nil, infra.KindExpired)

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, infra.WrapRepoErr(rejectMessage(resp.Body, "The supplier rejected the booking"), nil, infra.KindRejected)

	default:
		// 5xx after a POST: the supplier may or may not have ticketed.
		c.logger.Error("order creation ambiguous supplier error", "client_reference", orderReq.ClientReference, "status", resp.StatusCode)
		return nil, infra.WrapRepoErr(fmt.Sprintf("supplier returned status %d", resp.StatusCode), nil, infra.KindOutcomeUnknown)
	}
}

// FindOrderByReference looks an order up by client reference. Used by
// reconciliation after an ambiguous CreateOrder outcome.
func (c *Client) FindOrderByReference(ctx context.Context, clientReference string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/air/orders?client_reference="+url.QueryEscape(clientReference)), nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build order lookup request", err, infra.KindUnavailable)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, infra.WrapRepoErr("order lookup failed", err, infra.KindUnavailable)
	}
	defer closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		var payload orderPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, infra.WrapRepoErr("failed to decode order lookup", err, infra.KindUnavailable)
		}
		return convertOrder(payload)
	case http.StatusNotFound:
		return nil, infra.WrapRepoErr("no order for reference", nil, infra.KindNotFound)
	default:
		return nil, infra.WrapRepoErr(fmt.Sprintf("order lookup returned status %d", resp.StatusCode), nil, infra.KindUnavailable)
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func convertOffer(payload offerPayload) (*OfferVerification, error) {
	total, err := money.ParseDisplayPrice(payload.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("unparseable offer total", err, infra.KindUnavailable)
	}
	perPassenger, err := money.ParseDisplayPrice(payload.PerPassengerAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("unparseable per-passenger amount", err, infra.KindUnavailable)
	}

	included := make([]booking.BaggageAllowance, 0, len(payload.IncludedBaggage))
	for _, b := range payload.IncludedBaggage {
		included = append(included, booking.BaggageAllowance{
			PassengerID: b.PassengerID,
			Quantity:    b.Quantity,
			Kind:        b.Kind,
			Weight:      b.Weight,
		})
	}

	return &OfferVerification{
		Valid:          true,
		OfferID:        payload.ID,
		TotalPrice:     total,
		PerPassenger:   perPassenger,
		PassengerCount: payload.PassengerCount,
		ExpiresAt:      payload.ExpiresAt,
		FareRules: booking.FareRules{
			CanChange:    payload.AllowChanges,
			CanRefund:    payload.AllowRefunds,
			ChangePolicy: payload.ChangePolicy,
			RefundPolicy: payload.RefundPolicy,
		},
		IncludedBaggage: included,
	}, nil
}

func convertSeatMap(payload seatMapPayload) ([]seatmap.Segment, error) {
	segments := make([]seatmap.Segment, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		rows := make([]seatmap.Row, 0, len(seg.Rows))
		for _, rowPayload := range seg.Rows {
			elements := make([]seatmap.Element, 0, len(rowPayload))
			for _, el := range rowPayload {
				elementType, err := seatmap.ParseElementType(el.Type)
				if err != nil {
					return nil, infra.WrapRepoErr("unrecognized seat map element", err, infra.KindUnavailable)
				}

				element := seatmap.Element{Type: elementType}
				if elementType == seatmap.ElementSeat {
					services := make([]seatmap.SeatService, 0, len(el.Services))
					for _, svc := range el.Services {
						price, err := money.ParseDisplayPrice(svc.Amount)
						if err != nil {
							return nil, infra.WrapRepoErr("unparseable seat price", err, infra.KindUnavailable)
						}
						services = append(services, seatmap.SeatService{
							ID:          svc.ID,
							PassengerID: svc.PassengerID,
							Price:       price,
						})
					}
					element.Seat = &seatmap.Seat{Designator: el.Designator, Services: services}
				}
				elements = append(elements, element)
			}
			rows = append(rows, seatmap.Row{Elements: elements})
		}
		segments = append(segments, seatmap.Segment{
			SegmentID:   seg.SegmentID,
			Origin:      seg.Origin,
			Destination: seg.Destination,
			Rows:        rows,
		})
	}
	return segments, nil
}

func convertOrder(payload orderPayload) (*Order, error) {
	total, err := money.ParseDisplayPrice(payload.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("unparseable order total", err, infra.KindOutcomeUnknown)
	}
	return &Order{
		ID:               payload.ID,
		BookingReference: payload.BookingReference,
		TotalPrice:       total,
	}, nil
}

func buildOrderBody(orderReq CreateOrderRequest) createOrderBody {
	passengers := make([]orderPassengerPayload, 0, len(orderReq.Passengers))
	for _, p := range orderReq.Passengers {
		passengers = append(passengers, orderPassengerPayload{
			ID:                     p.ID,
			GivenName:              p.GivenName,
			FamilyName:             p.FamilyName,
			DateOfBirth:            p.DateOfBirth,
			Gender:                 p.Gender,
			Email:                  p.Email,
			Phone:                  p.Phone,
			PassportNumber:         p.PassportNumber,
			PassportIssuingCountry: p.PassportIssuingCountry,
			PassportExpiryDate:     p.PassportExpiryDate,
		})
	}
	services := make([]orderServicePayload, 0, len(orderReq.Services))
	for _, s := range orderReq.Services {
		services = append(services, orderServicePayload{ID: s.ServiceID, Quantity: s.Quantity})
	}
	return createOrderBody{
		OfferID:         orderReq.OfferID,
		ClientReference: orderReq.ClientReference,
		Passengers:      passengers,
		Services:        services,
		ExpectedAmount:  orderReq.ExpectedTotal.Display(),
	}
}

func rejectMessage(body io.Reader, fallback string) string {
	var payload errorPayload
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}

func closeBody(body io.ReadCloser) {
	if _, err := io.Copy(io.Discard, body); err != nil && !errors.Is(err, io.EOF) {
		return
	}
	_ = body.Close()
}
