// Package repository persists confirmed bookings to Postgres. This is
// the durable "my flights" read path that outlives the draft lifecycle.
package repository

import (
	"context"
	"errors"

	"wayfarer/internal/infra"
	"wayfarer/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrderSQL = `
INSERT INTO orders (
	id, draft_id, trip_id, offer_id, supplier_order_id, booking_reference,
	base_minor_units, extras_minor_units, total_minor_units, currency,
	passenger_count, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`

// Create records a confirmed order. The draft id carries a unique
// constraint so a reconciled ambiguous finalize can never double-insert.
func (r *OrderRepository) Create(ctx context.Context, order queries.OrderView) error {
	_, err := r.db.Exec(ctx, insertOrderSQL,
		order.ID,
		order.DraftID,
		order.TripID,
		order.OfferID,
		order.SupplierOrderID,
		order.BookingReference,
		order.BaseMinorUnits,
		order.ExtrasMinorUnits,
		order.TotalMinorUnits,
		order.Currency,
		order.PassengerCount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("order already recorded for draft", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

const selectOrderSQL = `
SELECT id, draft_id, trip_id, offer_id, supplier_order_id, booking_reference,
	base_minor_units, extras_minor_units, total_minor_units, currency,
	passenger_count, created_at
FROM orders`

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, selectOrderSQL+" WHERE id = $1", id)
	view, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return view, nil
}

func (r *OrderRepository) FindByDraftID(ctx context.Context, draftID uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, selectOrderSQL+" WHERE draft_id = $1", draftID)
	view, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by draft", err)
	}
	return view, nil
}

// FindByTripID lists a trip's confirmed bookings, newest first.
func (r *OrderRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := r.db.Query(ctx, selectOrderSQL+" WHERE trip_id = $1 ORDER BY created_at DESC", tripID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trip orders", err)
	}
	defer rows.Close()

	var views []queries.OrderView
	for rows.Next() {
		view, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trip orders", err)
	}
	return views, nil
}

func scanOrder(row pgx.Row) (*queries.OrderView, error) {
	var view queries.OrderView
	err := row.Scan(
		&view.ID,
		&view.DraftID,
		&view.TripID,
		&view.OfferID,
		&view.SupplierOrderID,
		&view.BookingReference,
		&view.BaseMinorUnits,
		&view.ExtrasMinorUnits,
		&view.TotalMinorUnits,
		&view.Currency,
		&view.PassengerCount,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
