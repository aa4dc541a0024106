package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) storage.ItemRepository {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Create(ctx context.Context, item *repository.Item) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO items (
            id, seller_id, title, price, is_available, is_borrowable,
            borrow_price_per_day, max_borrow_days, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, item.ID, item.SellerID, item.Title, item.Price, item.IsAvailable, item.IsBorrowable,
		item.BorrowPricePerDay, item.MaxBorrowDays, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) GetAvailable(ctx context.Context) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items, `
        SELECT * FROM items
        WHERE is_available = TRUE
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get available items: %w", err)
	}
	return items, nil
}

// SetAvailabilityTx flips the availability flag inside the caller's
// transaction. Only borrow lifecycle transitions call this; orders never
// touch availability.
func (r *ItemRepo) SetAvailabilityTx(ctx context.Context, tx db.Tx, id string, available bool) error {
	tag, err := tx.Exec(ctx, `
        UPDATE items
        SET is_available = $2, updated_at = now()
        WHERE id = $1
    `, id, available)
	if err != nil {
		return fmt.Errorf("failed to set item availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ItemRepo) DeleteByOwner(ctx context.Context, id, sellerID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM items WHERE id = $1 AND seller_id = $2", id, sellerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
