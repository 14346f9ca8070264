//go:build unit

package booking_test

import (
	"testing"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateDraft(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		draft, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, draft)

		assert.Equal(t, booking.StatusDraft, draft.Status())
		assert.Equal(t, "off_0001", draft.OfferID())
		assert.Len(t, draft.Passengers(), 2)
		assert.False(t, draft.PolicyAcknowledged())
		assert.Equal(t, int64(40000), draft.BasePrice().MinorUnits())
		assert.Equal(t, int64(0), draft.ExtrasTotal().MinorUnits())
		assert.Equal(t, int64(40000), draft.TotalPrice().MinorUnits())
		assert.Equal(t, "EUR", draft.Currency())
	})

	t.Run("搭乗者数不一致NG", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.PassengerCount = 3
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrPassengerCountMismatch)
	})

	t.Run("期限切れオファーNG", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ExpiresAt = builder.BaseTime.Add(-time.Minute)
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrOfferExpired)
	})

	t.Run("搭乗者ID重複NG", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.PassengerIDs = []string{"pas_001", "pas_001"}
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrDuplicatePassenger)
	})

	t.Run("搭乗者ゼロNG", func(t *testing.T) {
		b := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.PassengerIDs = nil
			b.PassengerCount = 0
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNoPassengers)
	})
}

// Two adults at EUR 400.00 base; one checked bag at EUR 30.00 for the
// first passenger plus one seat at EUR 15.00 for the second on SEG1 must
// price out to extras 45.00 and total 445.00.
func TestDraft_ExtrasPricing(t *testing.T) {
	draft := builder.NewDraftBuilder().MustBuild()
	now := builder.BaseTime

	err := draft.ReplaceBagSelections(now, []booking.BagSelection{
		builder.MustBag("pas_001", "svc_bag1", 1, 3000, "EUR"),
	})
	require.NoError(t, err)

	err = draft.ReplaceSeatSelections(now, []booking.SeatSelection{
		builder.MustSeat("pas_002", "SEG1", "svc_seat1", "12A", 1500, "EUR"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4500), draft.ExtrasTotal().MinorUnits())
	assert.Equal(t, int64(44500), draft.TotalPrice().MinorUnits())
}

func TestDraft_TotalsAlwaysSumOfParts(t *testing.T) {
	draft := builder.NewDraftBuilder().MustBuild()
	now := builder.BaseTime

	steps := [][]booking.BagSelection{
		{builder.MustBag("pas_001", "svc_bag1", 2, 3000, "EUR")},
		{builder.MustBag("pas_001", "svc_bag1", 1, 3000, "EUR"), builder.MustBag("pas_002", "svc_bag2", 1, 4500, "EUR")},
		{},
	}
	wantExtras := []int64{6000, 7500, 0}

	for i, sels := range steps {
		require.NoError(t, draft.ReplaceBagSelections(now, sels))
		assert.Equal(t, wantExtras[i], draft.ExtrasTotal().MinorUnits())
		assert.Equal(t, draft.BasePrice().MinorUnits()+wantExtras[i], draft.TotalPrice().MinorUnits())
	}
}

func TestDraft_ReplaceBagSelections(t *testing.T) {
	now := builder.BaseTime

	t.Run("idempotent replace: same input twice yields same state", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()
		sels := []booking.BagSelection{
			builder.MustBag("pas_001", "svc_bag1", 1, 3000, "EUR"),
		}
		require.NoError(t, draft.ReplaceBagSelections(now, sels))
		require.NoError(t, draft.ReplaceBagSelections(now, sels))

		assert.Len(t, draft.BagSelections(), 1)
		assert.Equal(t, int64(3000), draft.ExtrasTotal().MinorUnits())
	})

	t.Run("zero quantity rows are dropped", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()
		err := draft.ReplaceBagSelections(now, []booking.BagSelection{
			builder.MustBag("pas_001", "svc_bag1", 0, 3000, "EUR"),
			builder.MustBag("pas_002", "svc_bag2", 1, 4500, "EUR"),
		})
		require.NoError(t, err)
		assert.Len(t, draft.BagSelections(), 1)
		assert.Equal(t, "pas_002", draft.BagSelections()[0].PassengerID())
	})

	t.Run("unknown passenger rejected", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()
		err := draft.ReplaceBagSelections(now, []booking.BagSelection{
			builder.MustBag("pas_999", "svc_bag1", 1, 3000, "EUR"),
		})
		assert.ErrorIs(t, err, booking.ErrUnknownPassengerID)
	})

	t.Run("foreign currency rejected", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()
		err := draft.ReplaceBagSelections(now, []booking.BagSelection{
			builder.MustBag("pas_001", "svc_bag1", 1, 3000, "USD"),
		})
		assert.ErrorIs(t, err, booking.ErrCurrencyMismatch)
	})
}

func TestDraft_ReplaceSeatSelections(t *testing.T) {
	now := builder.BaseTime

	t.Run("re-selecting the same passenger and segment keeps the last seat", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		require.NoError(t, draft.ReplaceSeatSelections(now, []booking.SeatSelection{
			builder.MustSeat("pas_001", "SEG1", "svc_s1", "12A", 1500, "EUR"),
		}))
		require.NoError(t, draft.ReplaceSeatSelections(now, []booking.SeatSelection{
			builder.MustSeat("pas_001", "SEG1", "svc_s2", "14C", 1800, "EUR"),
		}))

		require.Len(t, draft.SeatSelections(), 1)
		assert.Equal(t, "14C", draft.SeatSelections()[0].SeatDesignator())
		assert.Equal(t, int64(1800), draft.ExtrasTotal().MinorUnits())
	})

	t.Run("duplicate keys inside one submission resolve last-write-wins", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		require.NoError(t, draft.ReplaceSeatSelections(now, []booking.SeatSelection{
			builder.MustSeat("pas_001", "SEG1", "svc_s1", "12A", 1500, "EUR"),
			builder.MustSeat("pas_001", "SEG1", "svc_s2", "14C", 1800, "EUR"),
		}))

		require.Len(t, draft.SeatSelections(), 1)
		assert.Equal(t, "14C", draft.SeatSelections()[0].SeatDesignator())
	})

	t.Run("different segments keep both seats", func(t *testing.T) {
		draft := builder.NewDraftBuilder().MustBuild()

		require.NoError(t, draft.ReplaceSeatSelections(now, []booking.SeatSelection{
			builder.MustSeat("pas_001", "SEG1", "svc_s1", "12A", 1500, "EUR"),
			builder.MustSeat("pas_001", "SEG2", "svc_s3", "12A", 1500, "EUR"),
		}))

		assert.Len(t, draft.SeatSelections(), 2)
		assert.Equal(t, int64(3000), draft.ExtrasTotal().MinorUnits())
	})
}

func TestDraft_ExpiryGating(t *testing.T) {
	b := builder.NewDraftBuilder()
	draft := b.MustBuild()
	after := b.ExpiresAt.Add(time.Second)

	err := draft.ReplaceBagSelections(after, []booking.BagSelection{
		builder.MustBag("pas_001", "svc_bag1", 1, 3000, "EUR"),
	})
	assert.ErrorIs(t, err, booking.ErrOfferExpired)
	assert.Equal(t, booking.StatusExpired, draft.Status())

	// Once expired, every entry point stays shut.
	assert.ErrorIs(t, draft.SetPolicyAcknowledged(after, true), booking.ErrOfferExpired)
	assert.ErrorIs(t, draft.BeginFinalize(after), booking.ErrOfferExpired)
}

func TestDraft_PolicyGate(t *testing.T) {
	draft := builder.NewDraftBuilder().MustBuild()
	now := builder.BaseTime

	t.Run("finalize blocked until acknowledged", func(t *testing.T) {
		err := draft.BeginFinalize(now)
		assert.ErrorIs(t, err, booking.ErrPolicyNotAcknowledged)
		assert.Equal(t, booking.StatusDraft, draft.Status())
	})

	t.Run("acknowledgment is revertible", func(t *testing.T) {
		require.NoError(t, draft.SetPolicyAcknowledged(now, true))
		assert.True(t, draft.PolicyAcknowledged())
		require.NoError(t, draft.SetPolicyAcknowledged(now, false))
		assert.False(t, draft.PolicyAcknowledged())

		err := draft.BeginFinalize(now)
		assert.ErrorIs(t, err, booking.ErrPolicyNotAcknowledged)
	})
}

func TestDraft_FinalizeLifecycle(t *testing.T) {
	now := builder.BaseTime

	newAcknowledged := func(t *testing.T) *booking.Draft {
		t.Helper()
		draft := builder.NewDraftBuilder().MustBuild()
		require.NoError(t, draft.SetPolicyAcknowledged(now, true))
		return draft
	}

	t.Run("confirm path", func(t *testing.T) {
		draft := newAcknowledged(t)
		require.NoError(t, draft.BeginFinalize(now))
		assert.Equal(t, booking.StatusFinalizing, draft.Status())

		// Finalizing drafts admit no mutation.
		err := draft.ReplaceBagSelections(now, nil)
		assert.ErrorIs(t, err, booking.ErrFinalizeInProgress)
		err = draft.BeginFinalize(now)
		assert.ErrorIs(t, err, booking.ErrFinalizeInProgress)

		require.NoError(t, draft.Confirm(now, "ord_123", "PNR123"))
		assert.Equal(t, booking.StatusConfirmed, draft.Status())
		assert.Equal(t, "ord_123", draft.OrderID())
		assert.Equal(t, "PNR123", draft.BookingReference())

		// Confirmed is terminal.
		assert.ErrorIs(t, draft.SetPolicyAcknowledged(now, false), booking.ErrDraftNotMutable)
	})

	t.Run("fail path", func(t *testing.T) {
		draft := newAcknowledged(t)
		require.NoError(t, draft.BeginFinalize(now))
		require.NoError(t, draft.Fail(now, "fare no longer available"))
		assert.Equal(t, booking.StatusFailed, draft.Status())
		assert.Equal(t, "fare no longer available", draft.FailureReason())
	})

	t.Run("abort returns to draft", func(t *testing.T) {
		draft := newAcknowledged(t)
		require.NoError(t, draft.BeginFinalize(now))
		require.NoError(t, draft.AbortFinalize(now))
		assert.Equal(t, booking.StatusDraft, draft.Status())

		// A new attempt re-validates from scratch.
		require.NoError(t, draft.BeginFinalize(now))
	})

	t.Run("confirm and fail require finalizing state", func(t *testing.T) {
		draft := newAcknowledged(t)
		assert.ErrorIs(t, draft.Confirm(now, "ord_1", "REF"), booking.ErrNotFinalizing)
		assert.ErrorIs(t, draft.Fail(now, "x"), booking.ErrNotFinalizing)
		assert.ErrorIs(t, draft.AbortFinalize(now), booking.ErrNotFinalizing)
	})

	t.Run("expire mid-finalize", func(t *testing.T) {
		draft := newAcknowledged(t)
		require.NoError(t, draft.BeginFinalize(now))
		require.NoError(t, draft.Expire(now))
		assert.Equal(t, booking.StatusExpired, draft.Status())
		assert.ErrorIs(t, draft.Expire(now), booking.ErrDraftNotMutable)
	})
}
