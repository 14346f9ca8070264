package queries

import (
	"context"
	"strconv"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/seatmap"
	"wayfarer/internal/infra"
	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound       = errs.New("draft not found")
	ErrOrderNotFound       = errs.New("order not found")
	ErrOfferUnavailable    = errs.New("offer unavailable")
	ErrSupplierUnreachable = errs.New("supplier unreachable")
)

// SupplierReader is the read-only slice of the supplier adapter used by
// queries: verification, catalogs and seat maps, all retry-safe.
type SupplierReader interface {
	VerifyOffer(ctx context.Context, offerID string) (*supplier.OfferVerification, error)
	ListBagServices(ctx context.Context, offerID string) ([]supplier.BagService, error)
	GetSeatMap(ctx context.Context, offerID string) ([]seatmap.Segment, error)
}

// DraftReader is the read side of the draft store.
type DraftReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
}

// OrderReader is the booking-history read path.
type OrderReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]OrderView, error)
}

type BookingQueries interface {
	VerifyOffer(ctx context.Context, offerID string) (*OfferVerificationView, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*DraftView, error)
	LoadBagCatalog(ctx context.Context, draftID uuid.UUID) (*BagCatalogView, error)
	LoadSeatMap(ctx context.Context, offerID string) ([]SeatMapSegmentView, error)
	GetReview(ctx context.Context, draftID uuid.UUID) (*ReviewView, error)
	GetTripOrders(ctx context.Context, tripID uuid.UUID) ([]OrderView, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type bookingQueriesImpl struct {
	supplierAPI SupplierReader
	drafts      DraftReader
	orders      OrderReader
	clock       clock.Clock
}

func NewBookingQueries(supplierAPI SupplierReader, drafts DraftReader, orders OrderReader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		supplierAPI: supplierAPI,
		drafts:      drafts,
		orders:      orders,
		clock:       clk,
	}
}

func (q *bookingQueriesImpl) VerifyOffer(ctx context.Context, offerID string) (*OfferVerificationView, error) {
	verification, err := q.supplierAPI.VerifyOffer(ctx, offerID)
	if err != nil {
		return nil, errs.Mark(err, ErrSupplierUnreachable)
	}

	view := &OfferVerificationView{
		Valid:   verification.Valid,
		Reason:  verification.Reason,
		OfferID: verification.OfferID,
	}
	if verification.Valid {
		view.TotalMinorUnits = verification.TotalPrice.MinorUnits()
		view.PerPersonMinor = verification.PerPassenger.MinorUnits()
		view.Currency = verification.TotalPrice.Currency()
		view.PassengerCount = verification.PassengerCount
		view.ExpiresAt = verification.ExpiresAt
		view.ExpiresInMinutes = int(clock.Until(q.clock, verification.ExpiresAt).Minutes())
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetDraft(ctx context.Context, draftID uuid.UUID) (*DraftView, error) {
	draft, err := q.drafts.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}
	return DraftToView(draft, q.clock), nil
}

func (q *bookingQueriesImpl) LoadBagCatalog(ctx context.Context, draftID uuid.UUID) (*BagCatalogView, error) {
	draft, err := q.drafts.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}

	services, err := q.supplierAPI.ListBagServices(ctx, draft.OfferID())
	if err != nil {
		if infra.IsKind(err, infra.KindExpired) {
			return nil, errs.Mark(err, ErrOfferUnavailable)
		}
		return nil, errs.Mark(err, ErrSupplierUnreachable)
	}

	items := make([]BagCatalogItemView, 0, len(services))
	for _, svc := range services {
		items = append(items, BagCatalogItemView{
			ServiceID:      svc.ID,
			PassengerID:    svc.PassengerID,
			Kind:           svc.Kind,
			Weight:         svc.Weight,
			MaxQuantity:    svc.MaxQuantity,
			UnitMinorUnits: svc.Price.MinorUnits(),
			Currency:       svc.Price.Currency(),
			DisplayPrice:   svc.Price.Display(),
		})
	}
	return &BagCatalogView{DraftID: draftID, Items: items}, nil
}

func (q *bookingQueriesImpl) LoadSeatMap(ctx context.Context, offerID string) ([]SeatMapSegmentView, error) {
	segments, err := q.supplierAPI.GetSeatMap(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindExpired) {
			return nil, errs.Mark(err, ErrOfferUnavailable)
		}
		return nil, errs.Mark(err, ErrSupplierUnreachable)
	}

	views := make([]SeatMapSegmentView, 0, len(segments))
	for _, seg := range segments {
		rows := make([][]SeatMapElementView, 0, len(seg.Rows))
		for _, row := range seg.Rows {
			elements := make([]SeatMapElementView, 0, len(row.Elements))
			for _, el := range row.Elements {
				elements = append(elements, elementToView(el))
			}
			rows = append(rows, elements)
		}
		views = append(views, SeatMapSegmentView{
			SegmentID:   seg.SegmentID,
			Origin:      seg.Origin,
			Destination: seg.Destination,
			Rows:        rows,
		})
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetReview(ctx context.Context, draftID uuid.UUID) (*ReviewView, error) {
	draft, err := q.drafts.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}

	lines := make([]PriceLineView, 0, 1+len(draft.BagSelections())+len(draft.SeatSelections()))
	lines = append(lines, PriceLineView{
		Description: "Base fare",
		MinorUnits:  draft.BasePrice().MinorUnits(),
	})
	for _, bag := range draft.BagSelections() {
		name := passengerName(draft, bag.PassengerID())
		lines = append(lines, PriceLineView{
			Description: lineDescription("Checked bag", name, bag.Quantity()),
			MinorUnits:  bag.LineTotal().MinorUnits(),
		})
	}
	for _, seat := range draft.SeatSelections() {
		name := passengerName(draft, seat.PassengerID())
		lines = append(lines, PriceLineView{
			Description: "Seat " + seat.SeatDesignator() + " (" + name + ", " + seat.SegmentID() + ")",
			MinorUnits:  seat.Price().MinorUnits(),
		})
	}

	passengers := make([]PassengerView, 0, len(draft.Passengers()))
	for _, p := range draft.Passengers() {
		passengers = append(passengers, PassengerView{ID: p.ID(), Name: p.Name(), Type: string(p.Type())})
	}

	rules := draft.FareRules()
	return &ReviewView{
		DraftID:            draft.ID(),
		Status:             draft.Status().String(),
		Passengers:         passengers,
		Lines:              lines,
		BaseMinorUnits:     draft.BasePrice().MinorUnits(),
		ExtrasMinorUnits:   draft.ExtrasTotal().MinorUnits(),
		TotalMinorUnits:    draft.TotalPrice().MinorUnits(),
		Currency:           draft.Currency(),
		PolicyAcknowledged: draft.PolicyAcknowledged(),
		FareRules: FareRulesView{
			CanChange:    rules.CanChange,
			CanRefund:    rules.CanRefund,
			ChangePolicy: rules.ChangePolicy,
			RefundPolicy: rules.RefundPolicy,
		},
		ExpiresAt:        draft.ExpiresAt(),
		ExpiresInMinutes: int(clock.Until(q.clock, draft.ExpiresAt()).Minutes()),
	}, nil
}

func (q *bookingQueriesImpl) GetTripOrders(ctx context.Context, tripID uuid.UUID) ([]OrderView, error) {
	orders, err := q.orders.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list trip orders")
	}
	return orders, nil
}

func (q *bookingQueriesImpl) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	order, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to load order")
	}
	return order, nil
}

// DraftToView converts the aggregate into its read model, deriving the
// expiry countdown at read time.
func DraftToView(draft *booking.Draft, clk clock.Clock) *DraftView {
	passengers := make([]PassengerView, 0, len(draft.Passengers()))
	for _, p := range draft.Passengers() {
		passengers = append(passengers, PassengerView{ID: p.ID(), Name: p.Name(), Type: string(p.Type())})
	}

	allowances := make([]BaggageAllowanceView, 0, len(draft.IncludedBaggage()))
	for _, a := range draft.IncludedBaggage() {
		allowances = append(allowances, BaggageAllowanceView{
			PassengerID: a.PassengerID, Quantity: a.Quantity, Kind: a.Kind, Weight: a.Weight,
		})
	}

	bags := make([]BagSelectionView, 0, len(draft.BagSelections()))
	for _, b := range draft.BagSelections() {
		bags = append(bags, BagSelectionView{
			PassengerID:    b.PassengerID(),
			ServiceID:      b.ServiceID(),
			Quantity:       b.Quantity(),
			UnitMinorUnits: b.UnitPrice().MinorUnits(),
			LineMinorUnits: b.LineTotal().MinorUnits(),
			Currency:       b.UnitPrice().Currency(),
			Kind:           b.Kind(),
			Weight:         b.Weight(),
		})
	}

	seats := make([]SeatSelectionView, 0, len(draft.SeatSelections()))
	for _, s := range draft.SeatSelections() {
		seats = append(seats, SeatSelectionView{
			PassengerID:    s.PassengerID(),
			SegmentID:      s.SegmentID(),
			ServiceID:      s.ServiceID(),
			SeatDesignator: s.SeatDesignator(),
			MinorUnits:     s.Price().MinorUnits(),
			Currency:       s.Price().Currency(),
		})
	}

	rules := draft.FareRules()
	return &DraftView{
		ID:                 draft.ID(),
		OfferID:            draft.OfferID(),
		TripID:             draft.TripID(),
		Status:             draft.Status().String(),
		Passengers:         passengers,
		IncludedBaggage:    allowances,
		BagSelections:      bags,
		SeatSelections:     seats,
		PolicyAcknowledged: draft.PolicyAcknowledged(),
		FareRules: FareRulesView{
			CanChange:    rules.CanChange,
			CanRefund:    rules.CanRefund,
			ChangePolicy: rules.ChangePolicy,
			RefundPolicy: rules.RefundPolicy,
		},
		BaseMinorUnits:   draft.BasePrice().MinorUnits(),
		ExtrasMinorUnits: draft.ExtrasTotal().MinorUnits(),
		TotalMinorUnits:  draft.TotalPrice().MinorUnits(),
		Currency:         draft.Currency(),
		ExpiresAt:        draft.ExpiresAt(),
		ExpiresInMinutes: int(clock.Until(clk, draft.ExpiresAt()).Minutes()),
		OrderID:          draft.OrderID(),
		BookingReference: draft.BookingReference(),
		FailureReason:    draft.FailureReason(),
		CreatedAt:        draft.CreatedAt(),
		UpdatedAt:        draft.UpdatedAt(),
	}
}

func elementToView(el seatmap.Element) SeatMapElementView {
	view := SeatMapElementView{Type: string(el.Type)}
	if el.Type == seatmap.ElementSeat && el.Seat != nil {
		view.Designator = el.Seat.Designator
		view.Available = len(el.Seat.Services) > 0
		for _, svc := range el.Seat.Services {
			view.Services = append(view.Services, SeatServiceView{
				ServiceID:   svc.ID,
				PassengerID: svc.PassengerID,
				MinorUnits:  svc.Price.MinorUnits(),
				Currency:    svc.Price.Currency(),
			})
		}
	}
	return view
}

func passengerName(draft *booking.Draft, passengerID string) string {
	if p, ok := draft.FindPassenger(passengerID); ok && p.Name() != "" {
		return p.Name()
	}
	return passengerID
}

func lineDescription(kind, name string, qty int) string {
	if qty > 1 {
		return kind + " x" + strconv.Itoa(qty) + " (" + name + ")"
	}
	return kind + " (" + name + ")"
}
