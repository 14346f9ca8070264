package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/passenger"
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
	ErrPolicyNotAcknowledged = errs.New("policy not acknowledged")
	ErrFinalizeRejected      = errs.New("finalize rejected by supplier")
	// ErrOutcomeUnknown means the order submission got no definitive
	// answer. The draft stays in finalizing and must be reconciled,
	// never blindly retried.
	ErrOutcomeUnknown  = errs.New("finalize outcome unknown")
	ErrNotReconcilable = errs.New("draft has no finalize in flight")
)

// finalizeLockTTL outlives the supplier's order timeout so a crashed
// process cannot leave a draft lockable mid-submission.
const finalizeLockTTL = 2 * time.Minute

// PassengerValidationError carries the per-passenger violations so the
// handler can render them as actionable field errors.
type PassengerValidationError struct {
	Result passenger.Result
}

func (e *PassengerValidationError) Error() string {
	return fmt.Sprintf("passenger validation failed with %d violation(s)", len(e.Result.Violations))
}

// FinalizeResult is the terminal report of a finalize or reconcile
// attempt. State is one of confirmed, reverted.
type FinalizeResult struct {
	State    string
	Draft    *queries.DraftView
	Order    *queries.OrderView
	Warnings []string
}

type FinalizeCommands interface {
	FinalizeDraft(ctx context.Context, draftID uuid.UUID, req reqdto.FinalizeDraftRequest) (*FinalizeResult, error)
	ReconcileFinalize(ctx context.Context, draftID uuid.UUID) (*FinalizeResult, error)
}

type finalizeUseCaseImpl struct {
	supplierAPI SupplierGateway
	store       DraftStore
	orders      OrderRepository
	publisher   EventPublisher
	clock       clock.Clock
	logger      *slog.Logger
}

func NewFinalizeUseCase(
	supplierAPI SupplierGateway,
	store DraftStore,
	orders OrderRepository,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) FinalizeCommands {
	return &finalizeUseCaseImpl{
		supplierAPI: supplierAPI,
		store:       store,
		orders:      orders,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
	}
}

// FinalizeDraft is the single-attempt order submission. Passenger forms
// are validated before anything touches the supplier, the store lock and
// the finalizing status shut out concurrent attempts, and the supplier
// call is made exactly once per invocation regardless of outcome.
func (u *finalizeUseCaseImpl) FinalizeDraft(ctx context.Context, draftID uuid.UUID, req reqdto.FinalizeDraftRequest) (*FinalizeResult, error) {
	forms := req.ToForms()
	validation := passenger.ValidateForms(forms, u.clock.Now())
	if !validation.Valid {
		return nil, &PassengerValidationError{Result: validation}
	}

	acquired, err := u.store.AcquireFinalizeLock(ctx, draftID, finalizeLockTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !acquired {
		return nil, ErrFinalizeInProgress
	}
	defer u.releaseLock(ctx, draftID)

	draft, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if len(forms) != len(draft.Passengers()) {
		return nil, errs.Mark(errs.Newf("expected %d passenger forms, got %d", len(draft.Passengers()), len(forms)), ErrDomainValidation)
	}

	if err := draft.BeginFinalize(u.clock.Now()); err != nil {
		return nil, u.mapFinalizeErr(err)
	}
	// The finalizing state is persisted before the supplier call so an
	// ambiguous outcome is visible to every reader, not just this
	// request.
	if err := u.store.Save(ctx, draft); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	order, err := u.supplierAPI.CreateOrder(ctx, buildOrderRequest(draft, forms))
	if err != nil {
		return nil, u.handleOrderFailure(ctx, draft, err)
	}

	result, err := u.completeConfirmation(ctx, draft, order)
	if err != nil {
		return nil, err
	}
	result.Warnings = validation.Warnings
	return result, nil
}

// ReconcileFinalize resolves a draft stuck in finalizing after an
// ambiguous order submission by asking the supplier whether an order
// exists under the draft's client reference.
func (u *finalizeUseCaseImpl) ReconcileFinalize(ctx context.Context, draftID uuid.UUID) (*FinalizeResult, error) {
	acquired, err := u.store.AcquireFinalizeLock(ctx, draftID, finalizeLockTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !acquired {
		return nil, ErrFinalizeInProgress
	}
	defer u.releaseLock(ctx, draftID)

	draft, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status() != booking.StatusFinalizing {
		return nil, ErrNotReconcilable
	}

	order, err := u.supplierAPI.FindOrderByReference(ctx, draft.ID().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The supplier never received (or never accepted) the
			// order. Safe to hand the draft back for another attempt.
			if abortErr := draft.AbortFinalize(u.clock.Now()); abortErr != nil {
				return nil, errs.Mark(abortErr, ErrNotReconcilable)
			}
			if saveErr := u.store.Save(ctx, draft); saveErr != nil {
				return nil, errs.Mark(saveErr, ErrStoreOperationFailed)
			}
			return &FinalizeResult{State: "reverted", Draft: queries.DraftToView(draft, u.clock)}, nil
		}
		return nil, errs.Mark(err, ErrOutcomeUnknown)
	}

	return u.completeConfirmation(ctx, draft, order)
}

// handleOrderFailure maps the one-shot submission outcome onto the draft
// lifecycle. Ambiguity is the only branch that leaves the draft in
// finalizing.
func (u *finalizeUseCaseImpl) handleOrderFailure(ctx context.Context, draft *booking.Draft, orderErr error) error {
	now := u.clock.Now()

	switch infra.KindOf(orderErr) {
	case infra.KindOutcomeUnknown:
		u.logger.WarnContext(ctx, "order submission outcome unknown, reconciliation required",
			slog.String("draft_id", draft.ID().String()),
			slog.String("error", orderErr.Error()),
		)
		return errs.Mark(orderErr, ErrOutcomeUnknown)

	case infra.KindExpired:
		if err := draft.Expire(now); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		u.persistFailure(ctx, draft, "offer expired")
		return errs.Mark(orderErr, ErrOfferExpired)

	default:
		reason := orderErr.Error()
		if err := draft.Fail(now, reason); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		u.persistFailure(ctx, draft, reason)
		return errs.Mark(orderErr, ErrFinalizeRejected)
	}
}

func (u *finalizeUseCaseImpl) persistFailure(ctx context.Context, draft *booking.Draft, reason string) {
	if err := u.store.Save(ctx, draft); err != nil {
		u.logger.ErrorContext(ctx, "failed to persist terminal draft state",
			slog.String("draft_id", draft.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	u.publish(ctx, events.BookingEvent{
		Type:       events.TypeBookingFailed,
		DraftID:    draft.ID().String(),
		TripID:     draft.TripID().String(),
		OfferID:    draft.OfferID(),
		Reason:     reason,
		OccurredAt: u.clock.Now(),
	})
}

// completeConfirmation is shared by the happy path and reconciliation:
// confirm the draft, persist the durable order row, emit the event and
// drop the draft from the store.
func (u *finalizeUseCaseImpl) completeConfirmation(ctx context.Context, draft *booking.Draft, order *supplier.Order) (*FinalizeResult, error) {
	now := u.clock.Now()
	if err := draft.Confirm(now, order.ID, order.BookingReference); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	view := queries.OrderView{
		ID:               uuid.New(),
		DraftID:          draft.ID(),
		TripID:           draft.TripID(),
		OfferID:          draft.OfferID(),
		SupplierOrderID:  order.ID,
		BookingReference: order.BookingReference,
		BaseMinorUnits:   draft.BasePrice().MinorUnits(),
		ExtrasMinorUnits: draft.ExtrasTotal().MinorUnits(),
		TotalMinorUnits:  draft.TotalPrice().MinorUnits(),
		Currency:         draft.Currency(),
		PassengerCount:   len(draft.Passengers()),
		CreatedAt:        now,
	}
	if err := u.orders.Create(ctx, view); err != nil {
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrStoreOperationFailed)
		}
		// Already recorded by an earlier attempt that confirmed with
		// the supplier before losing its response. Reuse that row.
		existing, findErr := u.orders.FindByDraftID(ctx, draft.ID())
		if findErr != nil {
			return nil, errs.Mark(findErr, ErrStoreOperationFailed)
		}
		view = *existing
	}

	u.publish(ctx, events.BookingEvent{
		Type:             events.TypeBookingConfirmed,
		DraftID:          draft.ID().String(),
		TripID:           draft.TripID().String(),
		OfferID:          draft.OfferID(),
		OrderID:          order.ID,
		BookingReference: order.BookingReference,
		TotalMinorUnits:  draft.TotalPrice().MinorUnits(),
		Currency:         draft.Currency(),
		OccurredAt:       now,
	})

	if err := u.store.Delete(ctx, draft.ID()); err != nil {
		u.logger.WarnContext(ctx, "failed to delete confirmed draft",
			slog.String("draft_id", draft.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return &FinalizeResult{
		State: "confirmed",
		Draft: queries.DraftToView(draft, u.clock),
		Order: &view,
	}, nil
}

func (u *finalizeUseCaseImpl) loadDraft(ctx context.Context, draftID uuid.UUID) (*booking.Draft, error) {
	draft, err := u.store.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return draft, nil
}

func (u *finalizeUseCaseImpl) mapFinalizeErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrPolicyNotAcknowledged):
		return errs.Mark(err, ErrPolicyNotAcknowledged)
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

func (u *finalizeUseCaseImpl) releaseLock(ctx context.Context, draftID uuid.UUID) {
	if err := u.store.ReleaseFinalizeLock(ctx, draftID); err != nil {
		u.logger.WarnContext(ctx, "failed to release finalize lock",
			slog.String("draft_id", draftID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (u *finalizeUseCaseImpl) publish(ctx context.Context, event events.BookingEvent) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.WarnContext(ctx, "failed to publish booking event",
			slog.String("type", event.Type),
			slog.String("draft_id", event.DraftID),
			slog.String("error", err.Error()),
		)
	}
}

// buildOrderRequest pairs the roster with the validated forms by index
// and flattens the draft's extras into service selections.
func buildOrderRequest(draft *booking.Draft, forms []passenger.Form) supplier.CreateOrderRequest {
	passengers := make([]supplier.OrderPassenger, 0, len(forms))
	roster := draft.Passengers()
	for i, form := range forms {
		passengers = append(passengers, supplier.OrderPassenger{
			ID:                     roster[i].ID(),
			GivenName:              form.GivenName,
			FamilyName:             form.FamilyName,
			DateOfBirth:            form.DateOfBirth,
			Gender:                 form.Gender,
			Email:                  form.Email,
			Phone:                  form.PhoneCountryCode + form.PhoneNumber,
			PassportNumber:         form.PassportNumber,
			PassportIssuingCountry: form.PassportIssuingCountry,
			PassportExpiryDate:     form.PassportExpiryDate,
		})
	}

	services := make([]supplier.ServiceSelection, 0, len(draft.BagSelections())+len(draft.SeatSelections()))
	for _, bag := range draft.BagSelections() {
		services = append(services, supplier.ServiceSelection{ServiceID: bag.ServiceID(), Quantity: bag.Quantity()})
	}
	for _, seat := range draft.SeatSelections() {
		services = append(services, supplier.ServiceSelection{ServiceID: seat.ServiceID(), Quantity: 1})
	}

	return supplier.CreateOrderRequest{
		OfferID:         draft.OfferID(),
		ClientReference: draft.ID().String(),
		Passengers:      passengers,
		Services:        services,
		ExpectedTotal:   draft.TotalPrice(),
	}
}
