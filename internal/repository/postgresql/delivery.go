package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

type DeliveryRepo struct {
	db db.DB
}

func NewDeliveryRepo(db db.DB) storage.DeliveryRepository {
	return &DeliveryRepo{db: db}
}

func (r *DeliveryRepo) CreateTx(ctx context.Context, tx db.Tx, d *repository.Delivery) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO deliveries (
            id, order_id, rider_id, status, pickup_address, delivery_address,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, d.ID, d.OrderID, d.RiderID, d.Status, d.PickupAddress, d.DeliveryAddress,
		d.CreatedAt, d.UpdatedAt)
	return err
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*repository.Delivery, error) {
	var d repository.Delivery
	err := r.db.Get(ctx, &d, "SELECT * FROM deliveries WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListOpen returns unclaimed deliveries oldest-first, so the earliest
// posted delivery surfaces first.
func (r *DeliveryRepo) ListOpen(ctx context.Context) ([]*repository.Delivery, error) {
	var deliveries []*repository.Delivery
	err := r.db.Select(ctx, &deliveries, `
        SELECT * FROM deliveries WHERE status = $1 ORDER BY created_at ASC
    `, repository.DeliveryStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to list open deliveries: %w", err)
	}
	return deliveries, nil
}

func (r *DeliveryRepo) GetByRider(ctx context.Context, riderID string) ([]*repository.Delivery, error) {
	var deliveries []*repository.Delivery
	err := r.db.Select(ctx, &deliveries, `
        SELECT * FROM deliveries WHERE rider_id = $1 ORDER BY created_at DESC
    `, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider deliveries: %w", err)
	}
	return deliveries, nil
}

// ClaimTx assigns the delivery to the rider, first claim wins. The
// open-and-unassigned predicate is evaluated atomically with the write;
// a lost race surfaces as ErrObjectNotFound. Returns the order id so the
// caller can mirror the order status in the same transaction.
func (r *DeliveryRepo) ClaimTx(ctx context.Context, tx db.Tx, id, riderID string) (string, error) {
	var orderID string
	err := tx.Get(ctx, &orderID, `
        UPDATE deliveries
        SET rider_id = $2, status = $3, updated_at = $4
        WHERE id = $1 AND status = $5 AND rider_id IS NULL
        RETURNING order_id
    `, id, riderID, repository.DeliveryStatusAssigned, time.Now().UTC(), repository.DeliveryStatusOpen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to claim delivery: %w", err)
	}
	return orderID, nil
}

// ProgressByRiderTx advances an assigned delivery one step and stamps the
// matching timestamp column. Only the assigned rider can advance it, and
// only from the expected prior status.
func (r *DeliveryRepo) ProgressByRiderTx(ctx context.Context, tx db.Tx, id, riderID, from, to string, at time.Time) (string, error) {
	var timeColumn string
	switch to {
	case repository.DeliveryStatusPickedUp:
		timeColumn = "pickup_time"
	case repository.DeliveryStatusDelivered:
		timeColumn = "delivery_time"
	default:
		return "", fmt.Errorf("unsupported delivery transition to %q", to)
	}

	var orderID string
	query := fmt.Sprintf(`
        UPDATE deliveries
        SET status = $3, %s = $4, updated_at = $4
        WHERE id = $1 AND rider_id = $2 AND status = $5
        RETURNING order_id
    `, timeColumn)
	err := tx.Get(ctx, &orderID, query, id, riderID, to, at, from)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to progress delivery: %w", err)
	}
	return orderID, nil
}

// CancelByOrderTx cascades an order cancellation onto its delivery.
func (r *DeliveryRepo) CancelByOrderTx(ctx context.Context, tx db.Tx, orderID string) error {
	_, err := tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $2, updated_at = $3
        WHERE order_id = $1
    `, orderID, repository.DeliveryStatusCancelled, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to cancel delivery: %w", err)
	}
	return nil
}
