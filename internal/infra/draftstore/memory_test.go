//go:build unit

package draftstore_test

import (
	"context"
	"testing"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/infra"
	"wayfarer/internal/infra/draftstore"
	"wayfarer/internal/pkg/clock"
	"wayfarer/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := draftstore.NewMemoryStore(clock.NewMockClock(builder.BaseTime))

	draft := builder.NewDraftBuilder().MustBuild()
	require.NoError(t, draft.ReplaceBagSelections(builder.BaseTime, []booking.BagSelection{
		builder.MustBag("pas_001", "svc_bag1", 1, 3000, "EUR"),
	}))
	require.NoError(t, draft.ReplaceSeatSelections(builder.BaseTime, []booking.SeatSelection{
		builder.MustSeat("pas_002", "SEG1", "svc_s1", "12A", 1500, "EUR"),
	}))
	require.NoError(t, draft.SetPolicyAcknowledged(builder.BaseTime, true))
	require.NoError(t, store.Save(ctx, draft))

	loaded, err := store.FindByID(ctx, draft.ID())
	require.NoError(t, err)

	assert.Equal(t, draft.ID(), loaded.ID())
	assert.Equal(t, draft.OfferID(), loaded.OfferID())
	assert.True(t, loaded.PolicyAcknowledged())
	require.Len(t, loaded.BagSelections(), 1)
	require.Len(t, loaded.SeatSelections(), 1)
	assert.Equal(t, "12A", loaded.SeatSelections()[0].SeatDesignator())

	// Totals are recomputed on load, never read back stale.
	assert.Equal(t, int64(4500), loaded.ExtrasTotal().MinorUnits())
	assert.Equal(t, int64(44500), loaded.TotalPrice().MinorUnits())
}

func TestMemoryStore_FindIDByOfferID(t *testing.T) {
	ctx := context.Background()
	store := draftstore.NewMemoryStore(clock.NewMockClock(builder.BaseTime))

	draft := builder.NewDraftBuilder().MustBuild()
	require.NoError(t, store.Save(ctx, draft))

	id, err := store.FindIDByOfferID(ctx, draft.OfferID())
	require.NoError(t, err)
	assert.Equal(t, draft.ID(), id)

	_, err = store.FindIDByOfferID(ctx, "off_unknown")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := draftstore.NewMemoryStore(clock.NewMockClock(builder.BaseTime))

	draft := builder.NewDraftBuilder().MustBuild()
	require.NoError(t, store.Save(ctx, draft))
	require.NoError(t, store.Delete(ctx, draft.ID()))

	_, err := store.FindByID(ctx, draft.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	_, err = store.FindIDByOfferID(ctx, draft.OfferID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	// Deleting a missing draft is a no-op.
	assert.NoError(t, store.Delete(ctx, uuid.New()))
}

func TestMemoryStore_FinalizeLock(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.BaseTime)
	store := draftstore.NewMemoryStore(clk)
	id := uuid.New()

	ok, err := store.AcquireFinalizeLock(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second acquisition while held fails.
	ok, err = store.AcquireFinalizeLock(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ReleaseFinalizeLock(ctx, id))
	ok, err = store.AcquireFinalizeLock(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// A held lock expires with its TTL.
	clk.Add(2 * time.Minute)
	ok, err = store.AcquireFinalizeLock(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
