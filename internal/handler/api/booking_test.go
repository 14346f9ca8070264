//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"wayfarer/internal/domain/passenger"
	"wayfarer/internal/handler/api"
	reqdto "wayfarer/internal/handler/dto/request"
	resdto "wayfarer/internal/handler/dto/response"
	"wayfarer/internal/pkg/errs"
	"wayfarer/internal/usecase/commands"
	"wayfarer/internal/usecase/queries"
	"wayfarer/tests/common/builder"
	"wayfarer/tests/common/httptest"
	"wayfarer/tests/common/testutil"
	commandsmock "wayfarer/tests/mock/commands"
	queriesmock "wayfarer/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockDraftCmds    *commandsmock.MockDraftCommands
	mockFinalizeCmds *commandsmock.MockFinalizeCommands
	mockQueries      *queriesmock.MockBookingQueries
	handler          *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDraftCmds = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockFinalizeCmds = commandsmock.NewMockFinalizeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockDraftCmds, s.mockFinalizeCmds, s.mockQueries)

	s.router.GET("/offers/:offerId/verify", s.handler.VerifyOffer)
	s.router.GET("/offers/:offerId/seat-map", s.handler.GetSeatMap)
	s.router.POST("/drafts", s.handler.CreateDraft)
	s.router.GET("/drafts/:id", s.handler.GetDraft)
	s.router.PUT("/drafts/:id/bags", s.handler.UpdateBagSelections)
	s.router.PUT("/drafts/:id/seats", s.handler.UpdateSeatSelections)
	s.router.PUT("/drafts/:id/policy", s.handler.AcknowledgePolicy)
	s.router.GET("/drafts/:id/review", s.handler.GetReview)
	s.router.POST("/drafts/:id/finalize", s.handler.FinalizeDraft)
	s.router.POST("/drafts/:id/finalize/reconcile", s.handler.ReconcileFinalize)
	s.router.GET("/trips/:tripId/orders", s.handler.GetTripOrders)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) draftView() *queries.DraftView {
	b := builder.NewDraftBuilder()
	return queries.DraftToView(b.MustBuild(), b.Clock)
}

func (s *BookingHandlerTestSuite) createDraftBody() reqdto.CreateDraftRequest {
	return reqdto.CreateDraftRequest{
		OfferID: "off_0001",
		TripID:  uuid.New(),
		Passengers: []reqdto.DraftPassenger{
			{ID: "pas_001", Name: "Maria Silva", Type: "adult"},
			{ID: "pas_002", Name: "Joao Silva", Type: "adult"},
		},
	}
}

// ================================================================================
// TestVerifyOffer
// ================================================================================

func (s *BookingHandlerTestSuite) TestVerifyOffer() {
	s.Run("success: returns verification result", func() {
		s.mockQueries.EXPECT().VerifyOffer(gomock.Any(), "off_0001").
			Return(&queries.OfferVerificationView{Valid: true, OfferID: "off_0001", TotalMinorUnits: 40000, Currency: "EUR"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/off_0001/verify", nil)

		var body resdto.OfferVerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal(int64(40000), body.TotalMinorUnits)
	})

	s.Run("error: 502 when the supplier is unreachable", func() {
		s.mockQueries.EXPECT().VerifyOffer(gomock.Any(), "off_0001").
			Return(nil, errs.Mark(errs.New("connection refused"), queries.ErrSupplierUnreachable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/off_0001/verify", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Could not reach the airline")
	})
}

// ================================================================================
// TestCreateDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateDraft() {
	url := "/drafts"

	s.Run("success: returns 201 Created for a new draft", func() {
		view := s.draftView()
		s.mockDraftCmds.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			Return(&commands.CreateDraftResult{Draft: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createDraftBody())

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("draft", body.Status)
	})

	s.Run("success: returns 200 OK when the offer already has a draft", func() {
		view := s.draftView()
		s.mockDraftCmds.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			Return(&commands.CreateDraftResult{Draft: view, IsExisting: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createDraftBody())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: offer_id", mutate: testutil.Field("offer_id", nil)},
			{name: "missing field: trip_id", mutate: testutil.Field("trip_id", nil)},
			{name: "missing field: passengers", mutate: testutil.Field("passengers", nil)},
			{name: "empty passengers", mutate: testutil.Field("passengers", []any{})},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), s.createDraftBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 410 Gone when the offer is no longer available", func() {
		s.mockDraftCmds.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("Fare no longer available"), commands.ErrOfferNotAvailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createDraftBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "no longer available")
	})
}

// ================================================================================
// TestGetDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetDraft() {
	s.Run("success: returns 200 OK with the draft", func() {
		view := s.draftView()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+view.ID.String(), nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(40000), body.TotalMinorUnits)
	})

	s.Run("error: 404 when the draft is unknown", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(nil, queries.ErrDraftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("error: 400 on a malformed draft id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft id")
	})
}

// ================================================================================
// TestUpdateBagSelections
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBagSelections() {
	draftID := uuid.New()
	url := "/drafts/" + draftID.String() + "/bags"
	body := reqdto.UpdateBagSelectionsRequest{
		Selections: []reqdto.BagSelectionItem{{PassengerID: "pas_001", ServiceID: "bag_1", Quantity: 1}},
	}

	s.Run("success: returns the updated draft", func() {
		view := s.draftView()
		s.mockDraftCmds.EXPECT().UpdateBagSelections(gomock.Any(), draftID, gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown service", commandsError: commands.ErrUnknownService, expectedStatus: http.StatusUnprocessableEntity},
			{name: "quantity over cap", commandsError: commands.ErrQuantityExceedsLimit, expectedStatus: http.StatusUnprocessableEntity},
			{name: "expired offer", commandsError: commands.ErrOfferExpired, expectedStatus: http.StatusGone},
			{name: "finalize in progress", commandsError: commands.ErrFinalizeInProgress, expectedStatus: http.StatusConflict},
			{name: "draft not found", commandsError: commands.ErrDraftNotFound, expectedStatus: http.StatusNotFound},
			{name: "supplier down", commandsError: commands.ErrSupplierUnavailable, expectedStatus: http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDraftCmds.EXPECT().UpdateBagSelections(gomock.Any(), draftID, gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestAcknowledgePolicy
// ================================================================================

func (s *BookingHandlerTestSuite) TestAcknowledgePolicy() {
	draftID := uuid.New()
	url := "/drafts/" + draftID.String() + "/policy"

	s.Run("success: returns the stored value", func() {
		view := s.draftView()
		view.PolicyAcknowledged = true
		s.mockDraftCmds.EXPECT().AcknowledgePolicy(gomock.Any(), draftID, true).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"acknowledged": true})

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.PolicyAcknowledged)
	})

	s.Run("error: 400 when the flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestFinalizeDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestFinalizeDraft() {
	draftID := uuid.New()
	url := "/drafts/" + draftID.String() + "/finalize"
	body := reqdto.FinalizeDraftRequest{Passengers: []reqdto.PassengerFormPayload{{GivenName: "Maria"}}}

	s.Run("success: 200 OK with the confirmed order", func() {
		order := queries.OrderView{ID: uuid.New(), BookingReference: "PNR123", SupplierOrderID: "ord_001"}
		s.mockFinalizeCmds.EXPECT().FinalizeDraft(gomock.Any(), draftID, gomock.Any()).
			Return(&commands.FinalizeResult{State: "confirmed", Order: &order}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("confirmed", resp.State)
		s.Equal("PNR123", resp.Order.BookingReference)
	})

	s.Run("ambiguous outcome: 202 Accepted with a pending state", func() {
		s.mockFinalizeCmds.EXPECT().FinalizeDraft(gomock.Any(), draftID, gomock.Any()).
			Return(nil, commands.ErrOutcomeUnknown)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &resp)
		s.Equal("pending", resp.State)
		s.NotEmpty(resp.Warnings)
	})

	s.Run("error: 422 with per-passenger violations", func() {
		s.mockFinalizeCmds.EXPECT().FinalizeDraft(gomock.Any(), draftID, gomock.Any()).
			Return(nil, &commands.PassengerValidationError{Result: passenger.Result{
				Violations: []passenger.Violation{{PassengerIndex: 1, PassengerName: "Kim Young", Message: "Email address is invalid"}},
			}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Passenger details are invalid")

		var resp struct {
			Detail []resdto.PassengerViolationResponse `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Require().Len(resp.Detail, 1)
		s.Equal("Kim Young", resp.Detail[0].PassengerName)
	})

	s.Run("error: maps finalize errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "policy not acknowledged", commandsError: commands.ErrPolicyNotAcknowledged, expectedStatus: http.StatusConflict},
			{name: "finalize in progress", commandsError: commands.ErrFinalizeInProgress, expectedStatus: http.StatusConflict},
			{name: "offer expired", commandsError: commands.ErrOfferExpired, expectedStatus: http.StatusGone},
			{name: "supplier rejection", commandsError: commands.ErrFinalizeRejected, expectedStatus: http.StatusUnprocessableEntity},
			{name: "draft not found", commandsError: commands.ErrDraftNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockFinalizeCmds.EXPECT().FinalizeDraft(gomock.Any(), draftID, gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestReconcileFinalize
// ================================================================================

func (s *BookingHandlerTestSuite) TestReconcileFinalize() {
	draftID := uuid.New()
	url := "/drafts/" + draftID.String() + "/finalize/reconcile"

	s.Run("success: confirmed order found at the supplier", func() {
		order := queries.OrderView{ID: uuid.New(), BookingReference: "PNR456"}
		s.mockFinalizeCmds.EXPECT().ReconcileFinalize(gomock.Any(), draftID).
			Return(&commands.FinalizeResult{State: "confirmed", Order: &order}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("confirmed", resp.State)
	})

	s.Run("success: draft reverted when no order exists", func() {
		view := s.draftView()
		s.mockFinalizeCmds.EXPECT().ReconcileFinalize(gomock.Any(), draftID).
			Return(&commands.FinalizeResult{State: "reverted", Draft: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("reverted", resp.State)
		s.Equal("draft", resp.Draft.Status)
	})

	s.Run("error: 409 when there is nothing to reconcile", func() {
		s.mockFinalizeCmds.EXPECT().ReconcileFinalize(gomock.Any(), draftID).
			Return(nil, commands.ErrNotReconcilable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no finalize in flight")
	})
}

// ================================================================================
// TestGetTripOrders
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetTripOrders() {
	tripID := uuid.New()

	s.Run("success: lists the trip's confirmed bookings", func() {
		orders := []queries.OrderView{
			{ID: uuid.New(), TripID: tripID, BookingReference: "PNR123"},
			{ID: uuid.New(), TripID: tripID, BookingReference: "PNR456"},
		}
		s.mockQueries.EXPECT().GetTripOrders(gomock.Any(), tripID).Return(orders, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/"+tripID.String()+"/orders", nil)

		var resp []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("error: 400 on a malformed trip id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/abc/orders", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid trip id")
	})
}
