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

type ConditionRepo struct {
	db db.DB
}

func NewConditionRepo(db db.DB) storage.ConditionRepository {
	return &ConditionRepo{db: db}
}

func (r *ConditionRepo) CreateTx(ctx context.Context, tx db.Tx, c *repository.ItemCondition) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO item_conditions (
            id, borrow_request_id, condition_before, images_before,
            damage_reported, refund_amount, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, FALSE, 0, $5, $6)
    `, c.ID, c.BorrowRequestID, c.ConditionBefore, c.ImagesBefore, c.CreatedAt, c.UpdatedAt)
	return err
}

// CompleteTx fills in the after-return half of the condition record. The
// row is created when the borrow starts, so a missing row here means the
// request never went active.
func (r *ConditionRepo) CompleteTx(ctx context.Context, tx db.Tx, requestID string, upd *storage.ConditionReturn) error {
	tag, err := tx.Exec(ctx, `
        UPDATE item_conditions
        SET condition_after = $2,
            images_after = $3,
            damage_reported = $4,
            damage_description = $5,
            refund_amount = $6,
            updated_at = now()
        WHERE borrow_request_id = $1
    `, requestID, upd.ConditionAfter, upd.ImagesAfter, upd.DamageReported,
		upd.DamageDescription, upd.RefundAmount)
	if err != nil {
		return fmt.Errorf("failed to complete condition record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// GetByRequestForParty returns the condition record only to the borrower
// or the seller on the underlying request.
func (r *ConditionRepo) GetByRequestForParty(ctx context.Context, requestID, userID string) (*repository.ItemCondition, error) {
	var c repository.ItemCondition
	err := r.db.Get(ctx, &c, `
        SELECT ic.* FROM item_conditions ic
        JOIN borrow_requests br ON ic.borrow_request_id = br.id
        WHERE br.id = $1 AND (br.borrower_id = $2 OR br.seller_id = $2)
    `, requestID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &c, nil
}
