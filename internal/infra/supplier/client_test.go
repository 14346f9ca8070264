//go:build unit

package supplier_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wayfarer/internal/domain/seatmap"
	"wayfarer/internal/infra"
	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/pkg/config"
	"wayfarer/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) (*supplier.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.SupplierConfig{
		BaseURL:         server.URL,
		APIKey:          "test-key",
		ReadTimeout:     2 * time.Second,
		FinalizeTimeout: 200 * time.Millisecond,
	}
	return supplier.NewClient(cfg, slog.New(slog.DiscardHandler)), server
}

func TestClient_VerifyOffer(t *testing.T) {
	t.Run("available offer with normalized prices", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/air/offers/off_1", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "off_1",
				"status": "available",
				"total_amount": "EUR 400.00",
				"per_passenger_amount": "EUR 200.00",
				"passenger_count": 2,
				"expires_at": "2025-06-01T12:30:00Z",
				"allow_changes": true,
				"allow_refunds": false,
				"change_policy": "Changes allowed for a fee",
				"refund_policy": "Non-refundable fare",
				"included_baggage": [{"passenger_id": "pas_001", "quantity": 1, "type": "carry_on", "weight": "10kg"}]
			}`))
		}))

		verification, err := client.VerifyOffer(context.Background(), "off_1")
		require.NoError(t, err)
		assert.True(t, verification.Valid)
		assert.Equal(t, int64(40000), verification.TotalPrice.MinorUnits())
		assert.Equal(t, int64(20000), verification.PerPassenger.MinorUnits())
		assert.Equal(t, "EUR", verification.TotalPrice.Currency())
		assert.Equal(t, 2, verification.PassengerCount)
		assert.True(t, verification.FareRules.CanChange)
		assert.False(t, verification.FareRules.CanRefund)
		require.Len(t, verification.IncludedBaggage, 1)
	})

	t.Run("gone offer is invalid with a reason, not an error", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusGone)
		}))

		verification, err := client.VerifyOffer(context.Background(), "off_2")
		require.NoError(t, err)
		assert.False(t, verification.Valid)
		assert.Equal(t, "Fare no longer available", verification.Reason)
	})

	t.Run("supplier 5xx is invalid with a retry hint", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		verification, err := client.VerifyOffer(context.Background(), "off_3")
		require.NoError(t, err)
		assert.False(t, verification.Valid)
		assert.Contains(t, verification.Reason, "try again")
	})

	t.Run("unavailable status in payload carries supplier message", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"off_4","status":"expired","unavailability_message":"Fare no longer available"}`))
		}))

		verification, err := client.VerifyOffer(context.Background(), "off_4")
		require.NoError(t, err)
		assert.False(t, verification.Valid)
		assert.Equal(t, "Fare no longer available", verification.Reason)
	})

	t.Run("transport failure is invalid, never a panic", func(t *testing.T) {
		client, server := newClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		verification, err := client.VerifyOffer(context.Background(), "off_5")
		require.NoError(t, err)
		assert.False(t, verification.Valid)
		assert.Contains(t, verification.Reason, "Could not reach")
	})
}

func TestClient_ListBagServices(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "baggage", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`[
			{"id": "svc_b1", "passenger_id": "pas_001", "type": "checked", "weight": "23kg", "max_quantity": 3, "amount": "EUR 30.00"},
			{"id": "svc_b2", "passenger_id": "pas_002", "type": "checked", "weight": "23kg", "max_quantity": 3, "amount": "EUR 30.00"}
		]`))
	}))

	services, err := client.ListBagServices(context.Background(), "off_1")
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, int64(3000), services[0].Price.MinorUnits())
	assert.Equal(t, 3, services[0].MaxQuantity)
}

func TestClient_GetSeatMap(t *testing.T) {
	t.Run("decodes every element variant", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "off_1", r.URL.Query().Get("offer_id"))
			_, _ = w.Write([]byte(`{"segments": [{
				"segment_id": "SEG1",
				"origin": "AMS",
				"destination": "LIS",
				"rows": [
					[
						{"type": "seat", "designator": "12A", "services": [{"id": "svc_s1", "passenger_id": "pas_001", "amount": "EUR 15.00"}]},
						{"type": "aisle"},
						{"type": "seat", "designator": "12C"}
					],
					[{"type": "galley"}, {"type": "lavatory"}, {"type": "exit_row"}]
				]
			}]}`))
		}))

		segments, err := client.GetSeatMap(context.Background(), "off_1")
		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.Len(t, segments[0].Rows, 2)

		seatEl := segments[0].Rows[0].Elements[0]
		assert.Equal(t, seatmap.ElementSeat, seatEl.Type)
		svc, err := seatEl.SelectableBy("pas_001")
		require.NoError(t, err)
		assert.Equal(t, int64(1500), svc.Price.MinorUnits())

		// Occupied seat: present without services.
		occupied := segments[0].Rows[0].Elements[2]
		_, err = occupied.SelectableBy("pas_001")
		assert.ErrorIs(t, err, seatmap.ErrSeatUnavailable)
	})

	t.Run("unknown element type is rejected", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"segments": [{"segment_id": "SEG1", "rows": [[{"type": "bassinet"}]]}]}`))
		}))

		_, err := client.GetSeatMap(context.Background(), "off_1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}

func TestClient_CreateOrder(t *testing.T) {
	orderReq := func() supplier.CreateOrderRequest {
		total, _ := money.New(44500, "EUR")
		return supplier.CreateOrderRequest{
			OfferID:         "off_1",
			ClientReference: "draft-1",
			ExpectedTotal:   total,
		}
	}

	t.Run("success returns the confirmed order", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "ord_1", "booking_reference": "PNR123", "total_amount": "EUR 445.00", "status": "confirmed"}`))
		}))

		order, err := client.CreateOrder(context.Background(), orderReq())
		require.NoError(t, err)
		assert.Equal(t, "ord_1", order.ID)
		assert.Equal(t, "PNR123", order.BookingReference)
		assert.Equal(t, int64(44500), order.TotalPrice.MinorUnits())
	})

	t.Run("expired offer mid-flight is an EXPIRED rejection", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusGone)
			_, _ = w.Write([]byte(`{"code": "offer_expired", "message": "Fare no longer available"}`))
		}))

		_, err := client.CreateOrder(context.Background(), orderReq())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindExpired))
	})

	t.Run("business rejection is REJECTED with the supplier message", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code": "passport_invalid", "message": "Passport fails destination entry rules"}`))
		}))

		_, err := client.CreateOrder(context.Background(), orderReq())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.Contains(t, err.Error(), "Passport fails destination entry rules")
	})

	t.Run("timeout is OUTCOME_UNKNOWN, never silently retried", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond) // beyond the finalize timeout
			w.WriteHeader(http.StatusCreated)
		}))

		_, err := client.CreateOrder(context.Background(), orderReq())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindOutcomeUnknown))
	})

	t.Run("5xx is OUTCOME_UNKNOWN", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.CreateOrder(context.Background(), orderReq())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindOutcomeUnknown))
	})
}

func TestClient_FindOrderByReference(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "draft-1", r.URL.Query().Get("client_reference"))
			_, _ = w.Write([]byte(`{"id": "ord_1", "booking_reference": "PNR123", "total_amount": "EUR 445.00"}`))
		}))

		order, err := client.FindOrderByReference(context.Background(), "draft-1")
		require.NoError(t, err)
		assert.Equal(t, "PNR123", order.BookingReference)
	})

	t.Run("absent order is NOT_FOUND", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.FindOrderByReference(context.Background(), "draft-2")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
