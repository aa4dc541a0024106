package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
)

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// Notification event kinds published through the outbox. Consumers turn
// these into user-facing notifications; delivery of a notification never
// gates or rolls back the state transition that produced it.
const (
	EventOrderCreated          = "order.created"
	EventOrderCancelled        = "order.cancelled"
	EventDeliveryClaimed       = "delivery.claimed"
	EventDeliveryStatusChanged = "delivery.status_changed"
	EventBorrowRequested       = "borrow.requested"
	EventBorrowDecided         = "borrow.decided"
	EventBorrowReturned        = "borrow.returned"
)

type MarketplaceEvent struct {
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id,omitempty"`
	DeliveryID string    `json:"delivery_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	ItemID     string    `json:"item_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Amount     int       `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
