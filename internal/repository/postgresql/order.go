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

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (
            id, buyer_id, seller_id, item_id, quantity, total_amount,
            delivery_address, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, order.ID, order.BuyerID, order.SellerID, order.ItemID, order.Quantity, order.TotalAmount,
		order.DeliveryAddress, order.Status, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByBuyer(ctx context.Context, buyerID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC
    `, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) GetBySeller(ctx context.Context, sellerID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders WHERE seller_id = $1 ORDER BY created_at DESC
    `, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller orders: %w", err)
	}
	return orders, nil
}

// ConfirmPending is a compare-and-set against (id, seller_id, pending).
// Zero rows affected means the order is missing, not the caller's, or
// already processed; the three outcomes are deliberately indistinguishable.
func (r *OrderRepo) ConfirmPending(ctx context.Context, id, sellerID string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $3, updated_at = $4
        WHERE id = $1 AND seller_id = $2 AND status = $5
    `, id, sellerID, repository.OrderStatusConfirmed, time.Now().UTC(), repository.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// CancelPendingTx cancels only orders that have not advanced past
// confirmed. The delivery cascade runs in the same transaction.
func (r *OrderRepo) CancelPendingTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = $3
        WHERE id = $1 AND status IN ($4, $5)
    `, id, repository.OrderStatusCancelled, time.Now().UTC(),
		repository.OrderStatusPending, repository.OrderStatusConfirmed)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// SetStatusTx mirrors a delivery transition onto the order. It is only
// called inside the transaction that moved the delivery, so the delivery
// row stays the single writable source of shipment state.
func (r *OrderRepo) SetStatusTx(ctx context.Context, tx db.Tx, id, status string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1
    `, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
