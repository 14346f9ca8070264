package api

import (
	"errors"
	"net/http"

	reqdto "wayfarer/internal/handler/dto/request"
	resdto "wayfarer/internal/handler/dto/response"
	"wayfarer/internal/handler/httperr"
	"wayfarer/internal/usecase/commands"
	"wayfarer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	draftCmds    commands.DraftCommands
	finalizeCmds commands.FinalizeCommands
	q            queries.BookingQueries
}

func NewBookingHandler(draftCmds commands.DraftCommands, finalizeCmds commands.FinalizeCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{draftCmds: draftCmds, finalizeCmds: finalizeCmds, q: q}
}

// @Summary Verify offer
// @Description Re-check an offer's price and availability before booking
// @Tags offers
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {object} resdto.OfferVerificationResponse
// @Failure 502 {object} httperr.Response
// @Router /offers/{offerId}/verify [get]
func (h *BookingHandler) VerifyOffer(c *gin.Context) {
	view, err := h.q.VerifyOffer(c.Request.Context(), c.Param("offerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not reach the airline, please retry", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferVerificationView(view))
}

// @Summary Create booking draft
// @Description Verify the offer and open a booking draft for it
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDraftRequest true "Create draft request"
// @Success 201 {object} resdto.DraftResponse
// @Success 200 {object} resdto.DraftResponse "An existing draft for the offer"
// @Failure 400 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drafts [post]
func (h *BookingHandler) CreateDraft(c *gin.Context) {
	var req reqdto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.draftCmds.CreateDraft(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotAvailable):
			httperr.AbortWithError(c, http.StatusGone, err, "Offer is no longer available", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid draft request", nil)
		case errors.Is(err, commands.ErrSupplierUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not reach the airline, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create draft", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.IsExisting {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromDraftView(result.Draft))
}

// @Summary Get booking draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [get]
func (h *BookingHandler) GetDraft(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	view, err := h.q.GetDraft(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDraftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load draft", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Replace bag selections
// @Description Replace the draft's checked-bag selections as a whole collection
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.UpdateBagSelectionsRequest true "Bag selections"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/bags [put]
func (h *BookingHandler) UpdateBagSelections(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBagSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.draftCmds.UpdateBagSelections(c.Request.Context(), id, req)
	if err != nil {
		h.abortDraftMutation(c, err, "Failed to update bag selections")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Replace seat selections
// @Description Replace the draft's seat selections as a whole collection
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.UpdateSeatSelectionsRequest true "Seat selections"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/seats [put]
func (h *BookingHandler) UpdateSeatSelections(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSeatSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.draftCmds.UpdateSeatSelections(c.Request.Context(), id, req)
	if err != nil {
		h.abortDraftMutation(c, err, "Failed to update seat selections")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Acknowledge fare policy
// @Description Persist the fare-policy checkbox; the stored value is returned
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.AcknowledgePolicyRequest true "Acknowledgement"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /drafts/{id}/policy [put]
func (h *BookingHandler) AcknowledgePolicy(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	var req reqdto.AcknowledgePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.draftCmds.AcknowledgePolicy(c.Request.Context(), id, *req.Acknowledged)
	if err != nil {
		h.abortDraftMutation(c, err, "Failed to update policy acknowledgement")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Bag catalog
// @Description Purchasable baggage services for the draft's offer
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.BagCatalogResponse
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drafts/{id}/bag-catalog [get]
func (h *BookingHandler) GetBagCatalog(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	view, err := h.q.LoadBagCatalog(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err, "Failed to load bag catalog")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBagCatalogView(view))
}

// @Summary Seat map
// @Description Cabin layout per segment with per-passenger seat pricing
// @Tags offers
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {array} resdto.SeatMapSegmentResponse
// @Failure 410 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /offers/{offerId}/seat-map [get]
func (h *BookingHandler) GetSeatMap(c *gin.Context) {
	segments, err := h.q.LoadSeatMap(c.Request.Context(), c.Param("offerId"))
	if err != nil {
		h.abortQueryErr(c, err, "Failed to load seat map")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatMapViews(segments))
}

// @Summary Review draft
// @Description Priced summary shown before the irreversible finalize step
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/review [get]
func (h *BookingHandler) GetReview(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	view, err := h.q.GetReview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDraftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Finalize draft
// @Description One-shot booking submission. Never auto-retried: an ambiguous
// @Description outcome returns 202 and must be reconciled before any retry.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.FinalizeDraftRequest true "Passenger forms"
// @Success 200 {object} resdto.FinalizeResponse
// @Success 202 {object} resdto.FinalizeResponse "Outcome unknown, reconcile before retrying"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/finalize [post]
func (h *BookingHandler) FinalizeDraft(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	var req reqdto.FinalizeDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.finalizeCmds.FinalizeDraft(c.Request.Context(), id, req)
	if err != nil {
		h.abortFinalizeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinalizeResult(result))
}

// @Summary Reconcile finalize
// @Description Resolve a draft left in finalizing by an ambiguous submission
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/finalize/reconcile [post]
func (h *BookingHandler) ReconcileFinalize(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	result, err := h.finalizeCmds.ReconcileFinalize(c.Request.Context(), id)
	if err != nil {
		h.abortFinalizeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinalizeResult(result))
}

// @Summary Trip orders
// @Description Confirmed bookings for a trip, newest first
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /trips/{tripId}/orders [get]
func (h *BookingHandler) GetTripOrders(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trip id", nil)
		return
	}
	orders, err := h.q.GetTripOrders(c.Request.Context(), tripID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(orders))
}

func (h *BookingHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) abortDraftMutation(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, commands.ErrOfferExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Offer has expired, start over from a fresh search", nil)
	case errors.Is(err, commands.ErrFinalizeInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "A finalize attempt is in progress", nil)
	case errors.Is(err, commands.ErrDraftNotMutable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft can no longer be changed", nil)
	case errors.Is(err, commands.ErrUnknownService),
		errors.Is(err, commands.ErrServicePassengerMismatch),
		errors.Is(err, commands.ErrQuantityExceedsLimit),
		errors.Is(err, commands.ErrSeatNotSelectable),
		errors.Is(err, commands.ErrUnknownSegment),
		errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selection was rejected", nil)
	case errors.Is(err, commands.ErrSupplierUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not reach the airline, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func (h *BookingHandler) abortQueryErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, queries.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, queries.ErrOfferUnavailable):
		httperr.AbortWithError(c, http.StatusGone, err, "Offer is no longer available", nil)
	case errors.Is(err, queries.ErrSupplierUnreachable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not reach the airline, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func (h *BookingHandler) abortFinalizeErr(c *gin.Context, err error) {
	var validationErr *commands.PassengerValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Passenger details are invalid",
			resdto.FromViolations(validationErr.Result.Violations))
		return
	}

	switch {
	case errors.Is(err, commands.ErrOutcomeUnknown):
		// Not a terminal failure: the order may exist. The client must
		// reconcile (or check the trip's orders) before retrying.
		c.JSON(http.StatusAccepted, resdto.FinalizeResponse{
			State:    "pending",
			Warnings: []string{"Booking outcome unknown. Check your flights before retrying."},
		})
	case errors.Is(err, commands.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, commands.ErrPolicyNotAcknowledged):
		httperr.AbortWithError(c, http.StatusConflict, err, "Fare policy must be acknowledged first", nil)
	case errors.Is(err, commands.ErrFinalizeInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "A finalize attempt is already in progress", nil)
	case errors.Is(err, commands.ErrNotReconcilable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft has no finalize in flight", nil)
	case errors.Is(err, commands.ErrOfferExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Offer expired before the booking completed", nil)
	case errors.Is(err, commands.ErrDraftNotMutable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft can no longer be finalized", nil)
	case errors.Is(err, commands.ErrFinalizeRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking was rejected by the airline", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Finalize request was rejected", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to finalize draft", nil)
	}
}
