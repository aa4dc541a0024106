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

type BorrowRepo struct {
	db db.DB
}

func NewBorrowRepo(db db.DB) storage.BorrowRepository {
	return &BorrowRepo{db: db}
}

func (r *BorrowRepo) CreateTx(ctx context.Context, tx db.Tx, req *repository.BorrowRequest) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO borrow_requests (
            id, item_id, borrower_id, seller_id, start_date, end_date,
            total_days, total_cost, message, admin_notes, status,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, req.ID, req.ItemID, req.BorrowerID, req.SellerID, req.StartDate, req.EndDate,
		req.TotalDays, req.TotalCost, req.Message, req.AdminNotes, req.Status,
		req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *BorrowRepo) GetByID(ctx context.Context, id string) (*repository.BorrowRequest, error) {
	var req repository.BorrowRequest
	err := r.db.Get(ctx, &req, "SELECT * FROM borrow_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *BorrowRepo) GetByBorrower(ctx context.Context, borrowerID string) ([]*repository.BorrowRequest, error) {
	var reqs []*repository.BorrowRequest
	err := r.db.Select(ctx, &reqs, `
        SELECT * FROM borrow_requests WHERE borrower_id = $1 ORDER BY created_at DESC
    `, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrower requests: %w", err)
	}
	return reqs, nil
}

func (r *BorrowRepo) GetBySeller(ctx context.Context, sellerID string) ([]*repository.BorrowRequest, error) {
	var reqs []*repository.BorrowRequest
	err := r.db.Select(ctx, &reqs, `
        SELECT * FROM borrow_requests WHERE seller_id = $1 ORDER BY created_at DESC
    `, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller requests: %w", err)
	}
	return reqs, nil
}

// LockOverlappingTx locks every approved or active request for the item
// whose inclusive date range intersects [start, end]. Running it in the
// same transaction as the insert closes the window where two requests for
// the same slot both pass a plain read check.
func (r *BorrowRepo) LockOverlappingTx(ctx context.Context, tx db.Tx, itemID string, start, end time.Time) ([]string, error) {
	var ids []string
	err := tx.Select(ctx, &ids, `
        SELECT id FROM borrow_requests
        WHERE item_id = $1
          AND status IN ($2, $3)
          AND start_date <= $5
          AND end_date >= $4
        FOR UPDATE
    `, itemID, repository.BorrowStatusApproved, repository.BorrowStatusActive, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to lock overlapping requests: %w", err)
	}
	return ids, nil
}

// RespondPendingTx resolves a pending request to approved or rejected.
// Returns the item id so an approval can reserve the item in the same
// transaction.
func (r *BorrowRepo) RespondPendingTx(ctx context.Context, tx db.Tx, id, sellerID, status, adminNotes string) (string, error) {
	var itemID string
	err := tx.Get(ctx, &itemID, `
        UPDATE borrow_requests
        SET status = $3, admin_notes = $4, updated_at = $5
        WHERE id = $1 AND seller_id = $2 AND status = $6
        RETURNING item_id
    `, id, sellerID, status, adminNotes, time.Now().UTC(), repository.BorrowStatusPending)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to respond to borrow request: %w", err)
	}
	return itemID, nil
}

func (r *BorrowRepo) MarkActiveTx(ctx context.Context, tx db.Tx, id, sellerID string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE borrow_requests
        SET status = $3, updated_at = $4
        WHERE id = $1 AND seller_id = $2 AND status = $5
    `, id, sellerID, repository.BorrowStatusActive, time.Now().UTC(), repository.BorrowStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to mark borrow request active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *BorrowRepo) MarkReturnedTx(ctx context.Context, tx db.Tx, id, sellerID string) (string, error) {
	var itemID string
	err := tx.Get(ctx, &itemID, `
        UPDATE borrow_requests
        SET status = $3, updated_at = $4
        WHERE id = $1 AND seller_id = $2 AND status = $5
        RETURNING item_id
    `, id, sellerID, repository.BorrowStatusReturned, time.Now().UTC(), repository.BorrowStatusActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to mark borrow request returned: %w", err)
	}
	return itemID, nil
}
