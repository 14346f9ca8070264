package commands

import (
	"context"
	"errors"
	"log/slog"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/seatmap"
	reqdto "wayfarer/internal/handler/dto/request"
	"wayfarer/internal/infra"
	"wayfarer/internal/infra/events"
	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/errs"
	"wayfarer/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound            = errs.New("draft not found")
	ErrOfferNotAvailable        = errs.New("offer not available")
	ErrOfferExpired             = errs.New("offer expired")
	ErrDraftNotMutable          = errs.New("draft is no longer mutable")
	ErrFinalizeInProgress       = errs.New("finalize already in progress")
	ErrUnknownService           = errs.New("selection references unknown service")
	ErrServicePassengerMismatch = errs.New("service belongs to another passenger")
	ErrQuantityExceedsLimit     = errs.New("quantity exceeds service limit")
	ErrSeatNotSelectable        = errs.New("seat not selectable")
	ErrUnknownSegment           = errs.New("selection references unknown segment")
	ErrDomainValidation         = errs.New("domain validation error")
	ErrSupplierUnavailable      = errs.New("supplier unavailable")
	ErrStoreOperationFailed     = errs.New("draft store operation failed")
)

// CreateDraftResult reports whether an existing draft was returned
// instead of a new one (one draft per offer).
type CreateDraftResult struct {
	Draft      *queries.DraftView
	IsExisting bool
	Reason     string
}

type DraftCommands interface {
	CreateDraft(ctx context.Context, req reqdto.CreateDraftRequest) (*CreateDraftResult, error)
	UpdateBagSelections(ctx context.Context, draftID uuid.UUID, req reqdto.UpdateBagSelectionsRequest) (*queries.DraftView, error)
	UpdateSeatSelections(ctx context.Context, draftID uuid.UUID, req reqdto.UpdateSeatSelectionsRequest) (*queries.DraftView, error)
	AcknowledgePolicy(ctx context.Context, draftID uuid.UUID, acknowledged bool) (*queries.DraftView, error)
}

type draftUseCaseImpl struct {
	supplierAPI SupplierGateway
	store       DraftStore
	factory     *booking.Factory
	publisher   EventPublisher
	clock       clock.Clock
	logger      *slog.Logger
}

func NewDraftUseCase(
	supplierAPI SupplierGateway,
	store DraftStore,
	factory *booking.Factory,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) DraftCommands {
	return &draftUseCaseImpl{
		supplierAPI: supplierAPI,
		store:       store,
		factory:     factory,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
	}
}

// CreateDraft verifies the offer against the supplier before anything is
// persisted. A failed verification produces no draft at all, and an
// offer that already has a live draft returns that draft instead of
// creating a second one.
func (u *draftUseCaseImpl) CreateDraft(ctx context.Context, req reqdto.CreateDraftRequest) (*CreateDraftResult, error) {
	verification, err := u.supplierAPI.VerifyOffer(ctx, req.OfferID)
	if err != nil {
		return nil, errs.Mark(err, ErrSupplierUnavailable)
	}
	if !verification.Valid {
		return nil, errs.Mark(errs.New(verification.Reason), ErrOfferNotAvailable)
	}

	if existingID, err := u.store.FindIDByOfferID(ctx, req.OfferID); err == nil {
		existing, findErr := u.store.FindByID(ctx, existingID)
		if findErr == nil {
			return &CreateDraftResult{
				Draft:      queries.DraftToView(existing, u.clock),
				IsExisting: true,
			}, nil
		}
		// Index pointed at a draft that has since expired out of the
		// store. Fall through and create a fresh one.
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	passengers, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snapshot := booking.OfferSnapshot{
		OfferID:         verification.OfferID,
		BasePrice:       verification.TotalPrice,
		PassengerCount:  verification.PassengerCount,
		ExpiresAt:       verification.ExpiresAt,
		FareRules:       verification.FareRules,
		IncludedBaggage: verification.IncludedBaggage,
	}
	draft, err := u.factory.CreateDraft(snapshot, req.TripID, passengers)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	u.publish(ctx, events.BookingEvent{
		Type:            events.TypeDraftCreated,
		DraftID:         draft.ID().String(),
		TripID:          draft.TripID().String(),
		OfferID:         draft.OfferID(),
		TotalMinorUnits: draft.TotalPrice().MinorUnits(),
		Currency:        draft.Currency(),
		OccurredAt:      u.clock.Now(),
	})

	return &CreateDraftResult{Draft: queries.DraftToView(draft, u.clock)}, nil
}

// UpdateBagSelections replaces the whole bag collection. Each submitted
// line is resolved against the supplier catalog so that prices and
// quantity caps are the supplier's, never the client's.
func (u *draftUseCaseImpl) UpdateBagSelections(ctx context.Context, draftID uuid.UUID, req reqdto.UpdateBagSelectionsRequest) (*queries.DraftView, error) {
	draft, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	services, err := u.supplierAPI.ListBagServices(ctx, draft.OfferID())
	if err != nil {
		if infra.IsKind(err, infra.KindExpired) {
			return nil, errs.Mark(err, ErrOfferExpired)
		}
		return nil, errs.Mark(err, ErrSupplierUnavailable)
	}
	catalog := make(map[string]supplier.BagService, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}

	selections := make([]booking.BagSelection, 0, len(req.Selections))
	for _, item := range req.Selections {
		svc, ok := catalog[item.ServiceID]
		if !ok {
			return nil, errs.Mark(errs.Newf("bag service %s not in offer catalog", item.ServiceID), ErrUnknownService)
		}
		if svc.PassengerID != item.PassengerID {
			return nil, errs.Mark(errs.Newf("bag service %s is not offered to passenger %s", item.ServiceID, item.PassengerID), ErrServicePassengerMismatch)
		}
		if svc.MaxQuantity > 0 && item.Quantity > svc.MaxQuantity {
			return nil, errs.Mark(errs.Newf("quantity %d exceeds limit %d for service %s", item.Quantity, svc.MaxQuantity, item.ServiceID), ErrQuantityExceedsLimit)
		}
		selection, err := booking.NewBagSelection(item.PassengerID, item.ServiceID, item.Quantity, svc.Price, svc.Kind, svc.Weight)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		selections = append(selections, selection)
	}

	if err := draft.ReplaceBagSelections(u.clock.Now(), selections); err != nil {
		return nil, u.mapMutationErr(err)
	}
	if err := u.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return queries.DraftToView(draft, u.clock), nil
}

// UpdateSeatSelections replaces the whole seat collection. Designators
// are resolved against the live seat map: the element must be a seat
// with a purchasable service for that passenger.
func (u *draftUseCaseImpl) UpdateSeatSelections(ctx context.Context, draftID uuid.UUID, req reqdto.UpdateSeatSelectionsRequest) (*queries.DraftView, error) {
	draft, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	segments, err := u.supplierAPI.GetSeatMap(ctx, draft.OfferID())
	if err != nil {
		if infra.IsKind(err, infra.KindExpired) {
			return nil, errs.Mark(err, ErrOfferExpired)
		}
		return nil, errs.Mark(err, ErrSupplierUnavailable)
	}

	selections := make([]booking.SeatSelection, 0, len(req.Selections))
	for _, item := range req.Selections {
		segment, ok := findSegment(segments, item.SegmentID)
		if !ok {
			return nil, errs.Mark(errs.Newf("segment %s not in seat map", item.SegmentID), ErrUnknownSegment)
		}
		element, ok := segment.FindSeat(item.SeatDesignator)
		if !ok {
			return nil, errs.Mark(errs.Newf("seat %s not found on segment %s", item.SeatDesignator, item.SegmentID), ErrSeatNotSelectable)
		}
		svc, err := element.SelectableBy(item.PassengerID)
		if err != nil {
			return nil, errs.Mark(err, ErrSeatNotSelectable)
		}
		selection, err := booking.NewSeatSelection(item.PassengerID, item.SegmentID, svc.ID, item.SeatDesignator, svc.Price)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		selections = append(selections, selection)
	}

	if err := draft.ReplaceSeatSelections(u.clock.Now(), selections); err != nil {
		return nil, u.mapMutationErr(err)
	}
	if err := u.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return queries.DraftToView(draft, u.clock), nil
}

// AcknowledgePolicy persists the checkbox state and returns what was
// actually stored, so an optimistic UI can roll back on failure.
func (u *draftUseCaseImpl) AcknowledgePolicy(ctx context.Context, draftID uuid.UUID, acknowledged bool) (*queries.DraftView, error) {
	draft, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.SetPolicyAcknowledged(u.clock.Now(), acknowledged); err != nil {
		return nil, u.mapMutationErr(err)
	}
	if err := u.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return queries.DraftToView(draft, u.clock), nil
}

func (u *draftUseCaseImpl) loadDraft(ctx context.Context, draftID uuid.UUID) (*booking.Draft, error) {
	draft, err := u.store.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return draft, nil
}

func (u *draftUseCaseImpl) mapMutationErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrOfferExpired):
		return errs.Mark(err, ErrOfferExpired)
	case errors.Is(err, booking.ErrFinalizeInProgress):
		return errs.Mark(err, ErrFinalizeInProgress)
	case errors.Is(err, booking.ErrDraftNotMutable):
		return errs.Mark(err, ErrDraftNotMutable)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func (u *draftUseCaseImpl) publish(ctx context.Context, event events.BookingEvent) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.WarnContext(ctx, "failed to publish booking event",
			slog.String("type", event.Type),
			slog.String("draft_id", event.DraftID),
			slog.String("error", err.Error()),
		)
	}
}

func findSegment(segments []seatmap.Segment, segmentID string) (seatmap.Segment, bool) {
	for _, seg := range segments {
		if seg.SegmentID == segmentID {
			return seg, true
		}
	}
	return seatmap.Segment{}, false
}
