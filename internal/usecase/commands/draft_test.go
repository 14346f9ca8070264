//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/domain/seatmap"
	reqdto "wayfarer/internal/handler/dto/request"
	"wayfarer/internal/infra"
	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/usecase/commands"
	"wayfarer/tests/common/builder"
	commandsmock "wayfarer/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	supplierAPI *commandsmock.MockSupplierGateway
	store       *commandsmock.MockDraftStore
	publisher   *commandsmock.MockEventPublisher
	clock       *clock.MockClock
	usecase     commands.DraftCommands
}

func TestDraftCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(DraftCommandsTestSuite))
}

func (s *DraftCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.supplierAPI = commandsmock.NewMockSupplierGateway(s.ctrl)
	s.store = commandsmock.NewMockDraftStore(s.ctrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.usecase = commands.NewDraftUseCase(
		s.supplierAPI,
		s.store,
		booking.NewFactory(s.clock),
		s.publisher,
		s.clock,
		slog.New(slog.DiscardHandler),
	)
}

func (s *DraftCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DraftCommandsTestSuite) validVerification(b *builder.DraftBuilder) *supplier.OfferVerification {
	return &supplier.OfferVerification{
		Valid:          true,
		OfferID:        b.OfferID,
		TotalPrice:     builder.MustMoney(b.BaseMinor, b.Currency),
		PerPassenger:   builder.MustMoney(b.BaseMinor/int64(b.PassengerCount), b.Currency),
		PassengerCount: b.PassengerCount,
		ExpiresAt:      b.ExpiresAt,
		FareRules:      b.FareRules,
	}
}

func (s *DraftCommandsTestSuite) createRequest(b *builder.DraftBuilder) reqdto.CreateDraftRequest {
	passengers := make([]reqdto.DraftPassenger, 0, len(b.PassengerIDs))
	for _, id := range b.PassengerIDs {
		passengers = append(passengers, reqdto.DraftPassenger{ID: id, Name: "Pax " + id, Type: "adult"})
	}
	return reqdto.CreateDraftRequest{OfferID: b.OfferID, TripID: b.TripID, Passengers: passengers}
}

func (s *DraftCommandsTestSuite) TestCreateDraft() {
	s.Run("verified offer produces a fresh draft", func() {
		b := builder.NewDraftBuilder()
		req := s.createRequest(b)

		s.supplierAPI.EXPECT().VerifyOffer(gomock.Any(), b.OfferID).Return(s.validVerification(b), nil)
		s.store.EXPECT().FindIDByOfferID(gomock.Any(), b.OfferID).
			Return(uuid.Nil, infra.WrapRepoErr("no draft for offer", nil, infra.KindNotFound))
		s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.usecase.CreateDraft(context.Background(), req)

		s.Require().NoError(err)
		s.False(result.IsExisting)
		s.Equal("draft", result.Draft.Status)
		s.Equal(int64(40000), result.Draft.TotalMinorUnits)
		s.Equal(int64(0), result.Draft.ExtrasMinorUnits)
		s.Len(result.Draft.Passengers, 2)
	})

	s.Run("failed verification creates nothing", func() {
		b := builder.NewDraftBuilder()
		req := s.createRequest(b)

		s.supplierAPI.EXPECT().VerifyOffer(gomock.Any(), b.OfferID).
			Return(&supplier.OfferVerification{Valid: false, OfferID: b.OfferID, Reason: "Fare no longer available"}, nil)

		result, err := s.usecase.CreateDraft(context.Background(), req)

		s.Require().Error(err)
		s.True(errors.Is(err, commands.ErrOfferNotAvailable))
		s.Nil(result)
	})

	s.Run("an offer with a live draft returns that draft", func() {
		b := builder.NewDraftBuilder()
		req := s.createRequest(b)
		existing := b.MustBuild()

		s.supplierAPI.EXPECT().VerifyOffer(gomock.Any(), b.OfferID).Return(s.validVerification(b), nil)
		s.store.EXPECT().FindIDByOfferID(gomock.Any(), b.OfferID).Return(existing.ID(), nil)
		s.store.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		result, err := s.usecase.CreateDraft(context.Background(), req)

		s.Require().NoError(err)
		s.True(result.IsExisting)
		s.Equal(existing.ID(), result.Draft.ID)
	})

	s.Run("passenger count mismatch is rejected", func() {
		b := builder.NewDraftBuilder()
		req := s.createRequest(b)
		req.Passengers = req.Passengers[:1]

		s.supplierAPI.EXPECT().VerifyOffer(gomock.Any(), b.OfferID).Return(s.validVerification(b), nil)
		s.store.EXPECT().FindIDByOfferID(gomock.Any(), b.OfferID).
			Return(uuid.Nil, infra.WrapRepoErr("no draft for offer", nil, infra.KindNotFound))

		_, err := s.usecase.CreateDraft(context.Background(), req)

		s.Require().Error(err)
		s.True(errors.Is(err, commands.ErrDomainValidation))
	})
}

func (s *DraftCommandsTestSuite) TestUpdateBagSelections() {
	catalog := []supplier.BagService{
		{ID: "bag_1", PassengerID: "pas_001", Kind: "checked", Weight: "23kg", MaxQuantity: 3, Price: builder.MustMoney(3000, "EUR")},
		{ID: "bag_2", PassengerID: "pas_002", Kind: "checked", Weight: "23kg", MaxQuantity: 3, Price: builder.MustMoney(3000, "EUR")},
	}

	s.Run("selection priced from the catalog, not the client", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().ListBagServices(gomock.Any(), b.OfferID).Return(catalog, nil)
		s.store.EXPECT().Save(gomock.Any(), draft).Return(nil)

		view, err := s.usecase.UpdateBagSelections(context.Background(), draft.ID(), reqdto.UpdateBagSelectionsRequest{
			Selections: []reqdto.BagSelectionItem{{PassengerID: "pas_001", ServiceID: "bag_1", Quantity: 1}},
		})

		s.Require().NoError(err)
		s.Equal(int64(3000), view.ExtrasMinorUnits)
		s.Equal(int64(43000), view.TotalMinorUnits)
	})

	s.Run("unknown service is rejected", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().ListBagServices(gomock.Any(), b.OfferID).Return(catalog, nil)

		_, err := s.usecase.UpdateBagSelections(context.Background(), draft.ID(), reqdto.UpdateBagSelectionsRequest{
			Selections: []reqdto.BagSelectionItem{{PassengerID: "pas_001", ServiceID: "bag_999", Quantity: 1}},
		})

		s.True(errors.Is(err, commands.ErrUnknownService))
	})

	s.Run("service offered to another passenger is rejected", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().ListBagServices(gomock.Any(), b.OfferID).Return(catalog, nil)

		_, err := s.usecase.UpdateBagSelections(context.Background(), draft.ID(), reqdto.UpdateBagSelectionsRequest{
			Selections: []reqdto.BagSelectionItem{{PassengerID: "pas_001", ServiceID: "bag_2", Quantity: 1}},
		})

		s.True(errors.Is(err, commands.ErrServicePassengerMismatch))
	})

	s.Run("quantity above the catalog cap is rejected", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().ListBagServices(gomock.Any(), b.OfferID).Return(catalog, nil)

		_, err := s.usecase.UpdateBagSelections(context.Background(), draft.ID(), reqdto.UpdateBagSelectionsRequest{
			Selections: []reqdto.BagSelectionItem{{PassengerID: "pas_001", ServiceID: "bag_1", Quantity: 4}},
		})

		s.True(errors.Is(err, commands.ErrQuantityExceedsLimit))
	})

	s.Run("missing draft reports not found", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("draft not found", nil, infra.KindNotFound))

		_, err := s.usecase.UpdateBagSelections(context.Background(), id, reqdto.UpdateBagSelectionsRequest{})

		s.True(errors.Is(err, commands.ErrDraftNotFound))
	})
}

func (s *DraftCommandsTestSuite) TestUpdateSeatSelections() {
	seatMap := []seatmap.Segment{{
		SegmentID: "seg_1",
		Rows: []seatmap.Row{{
			Elements: []seatmap.Element{
				{Type: seatmap.ElementSeat, Seat: &seatmap.Seat{
					Designator: "12A",
					Services: []seatmap.SeatService{
						{ID: "seat_12a_p1", PassengerID: "pas_001", Price: builder.MustMoney(1500, "EUR")},
					},
				}},
				{Type: seatmap.ElementSeat, Seat: &seatmap.Seat{Designator: "12B"}},
				{Type: seatmap.ElementAisle},
			},
		}},
	}}

	s.Run("seat resolved against the live seat map", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().GetSeatMap(gomock.Any(), b.OfferID).Return(seatMap, nil)
		s.store.EXPECT().Save(gomock.Any(), draft).Return(nil)

		view, err := s.usecase.UpdateSeatSelections(context.Background(), draft.ID(), reqdto.UpdateSeatSelectionsRequest{
			Selections: []reqdto.SeatSelectionItem{{PassengerID: "pas_001", SegmentID: "seg_1", SeatDesignator: "12A"}},
		})

		s.Require().NoError(err)
		s.Len(view.SeatSelections, 1)
		s.Equal("seat_12a_p1", view.SeatSelections[0].ServiceID)
		s.Equal(int64(41500), view.TotalMinorUnits)
	})

	s.Run("occupied seat is not selectable", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().GetSeatMap(gomock.Any(), b.OfferID).Return(seatMap, nil)

		_, err := s.usecase.UpdateSeatSelections(context.Background(), draft.ID(), reqdto.UpdateSeatSelectionsRequest{
			Selections: []reqdto.SeatSelectionItem{{PassengerID: "pas_001", SegmentID: "seg_1", SeatDesignator: "12B"}},
		})

		s.True(errors.Is(err, commands.ErrSeatNotSelectable))
	})

	s.Run("unknown segment is rejected", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.supplierAPI.EXPECT().GetSeatMap(gomock.Any(), b.OfferID).Return(seatMap, nil)

		_, err := s.usecase.UpdateSeatSelections(context.Background(), draft.ID(), reqdto.UpdateSeatSelectionsRequest{
			Selections: []reqdto.SeatSelectionItem{{PassengerID: "pas_001", SegmentID: "seg_99", SeatDesignator: "12A"}},
		})

		s.True(errors.Is(err, commands.ErrUnknownSegment))
	})
}

func (s *DraftCommandsTestSuite) TestAcknowledgePolicy() {
	s.Run("stores and returns the new flag", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)
		s.store.EXPECT().Save(gomock.Any(), draft).Return(nil)

		view, err := s.usecase.AcknowledgePolicy(context.Background(), draft.ID(), true)

		s.Require().NoError(err)
		s.True(view.PolicyAcknowledged)
	})

	s.Run("expired draft cannot be acknowledged", func() {
		b := builder.NewDraftBuilder()
		draft := b.MustBuild()
		s.clock.Set(b.ExpiresAt.Add(time.Minute))

		s.store.EXPECT().FindByID(gomock.Any(), draft.ID()).Return(draft, nil)

		_, err := s.usecase.AcknowledgePolicy(context.Background(), draft.ID(), true)

		s.True(errors.Is(err, commands.ErrOfferExpired))
	})
}
