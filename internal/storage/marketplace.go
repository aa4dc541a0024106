package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/metrics"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
)

type ItemRepository interface {
	Create(ctx context.Context, item *repository.Item) error
	GetByID(ctx context.Context, id string) (*repository.Item, error)
	GetAvailable(ctx context.Context) ([]*repository.Item, error)
	SetAvailabilityTx(ctx context.Context, tx db.Tx, id string, available bool) error
	DeleteByOwner(ctx context.Context, id, sellerID string) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	GetByBuyer(ctx context.Context, buyerID string) ([]*repository.Order, error)
	GetBySeller(ctx context.Context, sellerID string) ([]*repository.Order, error)
	ConfirmPending(ctx context.Context, id, sellerID string) error
	CancelPendingTx(ctx context.Context, tx db.Tx, id string) error
	SetStatusTx(ctx context.Context, tx db.Tx, id, status string) error
}

type DeliveryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, d *repository.Delivery) error
	GetByID(ctx context.Context, id string) (*repository.Delivery, error)
	ListOpen(ctx context.Context) ([]*repository.Delivery, error)
	GetByRider(ctx context.Context, riderID string) ([]*repository.Delivery, error)
	ClaimTx(ctx context.Context, tx db.Tx, id, riderID string) (string, error)
	ProgressByRiderTx(ctx context.Context, tx db.Tx, id, riderID, from, to string, at time.Time) (string, error)
	CancelByOrderTx(ctx context.Context, tx db.Tx, orderID string) error
}

type BorrowRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, req *repository.BorrowRequest) error
	GetByID(ctx context.Context, id string) (*repository.BorrowRequest, error)
	GetByBorrower(ctx context.Context, borrowerID string) ([]*repository.BorrowRequest, error)
	GetBySeller(ctx context.Context, sellerID string) ([]*repository.BorrowRequest, error)
	LockOverlappingTx(ctx context.Context, tx db.Tx, itemID string, start, end time.Time) ([]string, error)
	RespondPendingTx(ctx context.Context, tx db.Tx, id, sellerID, status, adminNotes string) (string, error)
	MarkActiveTx(ctx context.Context, tx db.Tx, id, sellerID string) error
	MarkReturnedTx(ctx context.Context, tx db.Tx, id, sellerID string) (string, error)
}

type ConditionRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, c *repository.ItemCondition) error
	CompleteTx(ctx context.Context, tx db.Tx, requestID string, upd *ConditionReturn) error
	GetByRequestForParty(ctx context.Context, requestID, userID string) (*repository.ItemCondition, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password, role string) error
	Authenticate(ctx context.Context, username, password string) (*Actor, error)
}

// ItemCache is the in-process availability cache; nil disables caching.
type ItemCache interface {
	GetAll() []*repository.Item
	Set(item *repository.Item)
	SetAvailability(itemID string, available bool)
	Delete(itemID string)
	Warm() bool
}

// Marketplace drives the order, delivery and borrow lifecycles. Every
// state transition is a conditional update scoped to the expected prior
// state, and every cross-entity write (order+delivery, borrow+item,
// borrow+condition) happens inside one transaction.
type Marketplace struct {
	db         db.DB
	items      ItemRepository
	orders     OrderRepository
	deliveries DeliveryRepository
	borrows    BorrowRepository
	conditions ConditionRepository
	outbox     OutboxTaskRepository
	cache      ItemCache
	logger     *zap.Logger
}

func NewMarketplace(
	database db.DB,
	items ItemRepository,
	orders OrderRepository,
	deliveries DeliveryRepository,
	borrows BorrowRepository,
	conditions ConditionRepository,
	outbox OutboxTaskRepository,
	cache ItemCache,
	logger *zap.Logger,
) *Marketplace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Marketplace{
		db:         database,
		items:      items,
		orders:     orders,
		deliveries: deliveries,
		borrows:    borrows,
		conditions: conditions,
		outbox:     outbox,
		cache:      cache,
		logger:     logger,
	}
}

// The original seller flow has no pickup address field; deliveries carry
// this placeholder until pickup coordination moves into the product.
const pickupAddressPlaceholder = "Seller Location"

type CreateOrderInput struct {
	ItemID          string
	Quantity        int
	DeliveryAddress string
}

// CreateOrder inserts the order and its companion open delivery as one
// atomic unit. The item stays available: purchases do not reserve items.
func (m *Marketplace) CreateOrder(ctx context.Context, buyerID string, in CreateOrderInput) (*Order, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if in.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery address is required", ErrInvalidInput)
	}

	item, err := m.items.GetByID(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: item not available", ErrNotFound)
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("%w: item not available", ErrNotFound)
	}

	now := time.Now().UTC()
	order := &repository.Order{
		ID:              uuid.New().String(),
		BuyerID:         buyerID,
		SellerID:        item.SellerID,
		ItemID:          item.ID,
		Quantity:        in.Quantity,
		TotalAmount:     item.Price * in.Quantity,
		DeliveryAddress: in.DeliveryAddress,
		Status:          repository.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	delivery := &repository.Delivery{
		ID:              uuid.New().String(),
		OrderID:         order.ID,
		Status:          repository.DeliveryStatusOpen,
		PickupAddress:   pickupAddressPlaceholder,
		DeliveryAddress: in.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := m.orders.CreateTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := m.deliveries.CreateTx(ctx, tx, delivery); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventOrderCreated,
		OrderID:    order.ID,
		DeliveryID: delivery.ID,
		ItemID:     item.ID,
		ActorID:    buyerID,
		Amount:     order.TotalAmount,
		OccurredAt: now,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	m.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("item_id", item.ID),
		zap.Int("total_amount", order.TotalAmount))
	return toAPIOrder(order), nil
}

func (m *Marketplace) GetOrder(ctx context.Context, orderID, callerID string) (*Order, error) {
	order, err := m.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if order.BuyerID != callerID && order.SellerID != callerID {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	return toAPIOrder(order), nil
}

func (m *Marketplace) ListBuyerOrders(ctx context.Context, buyerID string) ([]Order, error) {
	rows, err := m.orders.GetByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return toAPIOrders(rows), nil
}

func (m *Marketplace) ListSellerOrders(ctx context.Context, sellerID string) ([]Order, error) {
	rows, err := m.orders.GetBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toAPIOrders(rows), nil
}

// ConfirmOrder moves pending to confirmed. Calling it twice succeeds once;
// the second call loses the compare-and-set and reports not found.
func (m *Marketplace) ConfirmOrder(ctx context.Context, orderID, sellerID string) error {
	err := m.orders.ConfirmPending(ctx, orderID, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: order not found or already processed", ErrNotFound)
		}
		metrics.OperationErrorsTotal.WithLabelValues("confirm_order").Inc()
		return err
	}
	m.logger.Info("order confirmed", zap.String("order_id", orderID))
	return nil
}

// CancelOrder is permitted to the buyer or seller while the order is still
// pending or confirmed, and cancels the companion delivery in the same
// transaction.
func (m *Marketplace) CancelOrder(ctx context.Context, orderID, callerID string) error {
	order, err := m.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return err
	}
	if order.BuyerID != callerID && order.SellerID != callerID {
		return fmt.Errorf("%w: not a party to this order", ErrForbidden)
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := m.orders.CancelPendingTx(ctx, tx, orderID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: order cannot be cancelled at this stage", ErrConflict)
		}
		return err
	}
	if err := m.deliveries.CancelByOrderTx(ctx, tx, orderID); err != nil {
		return err
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventOrderCancelled,
		OrderID:    orderID,
		ActorID:    callerID,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCancelledTotal.Inc()
	m.logger.Info("order cancelled", zap.String("order_id", orderID), zap.String("caller_id", callerID))
	return nil
}

func (m *Marketplace) ListOpenDeliveries(ctx context.Context) ([]Delivery, error) {
	rows, err := m.deliveries.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return toAPIDeliveries(rows), nil
}

func (m *Marketplace) ListRiderDeliveries(ctx context.Context, riderID string) ([]Delivery, error) {
	rows, err := m.deliveries.GetByRider(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return toAPIDeliveries(rows), nil
}

// AcceptDelivery claims an open delivery for the rider, first claim wins.
// A lost race is a conflict the caller must surface, never silently retry.
// The order is mirrored to assigned inside the claim transaction.
func (m *Marketplace) AcceptDelivery(ctx context.Context, deliveryID, riderID string) error {
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	orderID, err := m.deliveries.ClaimTx(ctx, tx, deliveryID, riderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			metrics.DeliveryClaimConflictsTotal.Inc()
			// Distinguish a lost race from a missing delivery for the UI.
			if _, getErr := m.deliveries.GetByID(ctx, deliveryID); getErr != nil {
				return fmt.Errorf("%w: delivery", ErrNotFound)
			}
			return fmt.Errorf("%w: delivery already assigned", ErrConflict)
		}
		return err
	}

	if err := m.orders.SetStatusTx(ctx, tx, orderID, repository.OrderStatusAssigned); err != nil {
		return err
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventDeliveryClaimed,
		DeliveryID: deliveryID,
		OrderID:    orderID,
		ActorID:    riderID,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	metrics.DeliveriesClaimedTotal.Inc()
	m.logger.Info("delivery claimed",
		zap.String("delivery_id", deliveryID),
		zap.String("rider_id", riderID))
	return nil
}

// UpdateDeliveryStatus advances the delivery to picked_up or delivered,
// stamps the transition time, and mirrors the order in the same
// transaction.
func (m *Marketplace) UpdateDeliveryStatus(ctx context.Context, deliveryID, riderID, status string) error {
	var from string
	switch status {
	case repository.DeliveryStatusPickedUp:
		from = repository.DeliveryStatusAssigned
	case repository.DeliveryStatusDelivered:
		from = repository.DeliveryStatusPickedUp
	default:
		return fmt.Errorf("%w: status must be picked_up or delivered", ErrInvalidInput)
	}

	now := time.Now().UTC()
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	orderID, err := m.deliveries.ProgressByRiderTx(ctx, tx, deliveryID, riderID, from, status, now)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return m.classifyProgressFailure(ctx, deliveryID, riderID)
		}
		return err
	}

	if err := m.orders.SetStatusTx(ctx, tx, orderID, status); err != nil {
		return err
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventDeliveryStatusChanged,
		DeliveryID: deliveryID,
		OrderID:    orderID,
		ActorID:    riderID,
		Status:     status,
		OccurredAt: now,
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	m.logger.Info("delivery status updated",
		zap.String("delivery_id", deliveryID),
		zap.String("status", status))
	return nil
}

func (m *Marketplace) classifyProgressFailure(ctx context.Context, deliveryID, riderID string) error {
	d, err := m.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("%w: delivery", ErrNotFound)
	}
	if d.RiderID == nil || *d.RiderID != riderID {
		return fmt.Errorf("%w: delivery is not assigned to you", ErrForbidden)
	}
	return fmt.Errorf("%w: delivery is not in the expected state", ErrConflict)
}

type BorrowRequestInput struct {
	ItemID    string
	StartDate time.Time
	EndDate   time.Time
	Message   string
}

// RequestBorrow validates duration against the item's limits and inserts
// the request after locking every approved or active request whose dates
// intersect. Pending and rejected requests never block a slot.
func (m *Marketplace) RequestBorrow(ctx context.Context, borrowerID string, in BorrowRequestInput) (*BorrowRequest, error) {
	item, err := m.items.GetByID(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: item not available for borrowing", ErrNotFound)
		}
		return nil, err
	}
	if !item.IsBorrowable || !item.IsAvailable {
		return nil, fmt.Errorf("%w: item not available for borrowing", ErrNotFound)
	}

	if !in.EndDate.After(in.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}
	totalDays := int(math.Ceil(in.EndDate.Sub(in.StartDate).Hours() / 24))
	if totalDays > item.MaxBorrowDays {
		return nil, fmt.Errorf("%w: maximum borrow period is %d days", ErrInvalidInput, item.MaxBorrowDays)
	}

	now := time.Now().UTC()
	req := &repository.BorrowRequest{
		ID:         uuid.New().String(),
		ItemID:     item.ID,
		BorrowerID: borrowerID,
		SellerID:   item.SellerID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		TotalDays:  totalDays,
		TotalCost:  totalDays * item.BorrowPricePerDay,
		Message:    in.Message,
		Status:     repository.BorrowStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	overlapping, err := m.borrows.LockOverlappingTx(ctx, tx, item.ID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		metrics.BorrowOverlapConflictsTotal.Inc()
		return nil, fmt.Errorf("%w: item is not available for the selected dates", ErrConflict)
	}

	if err := m.borrows.CreateTx(ctx, tx, req); err != nil {
		return nil, fmt.Errorf("failed to create borrow request: %w", err)
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventBorrowRequested,
		RequestID:  req.ID,
		ItemID:     item.ID,
		ActorID:    borrowerID,
		Amount:     req.TotalCost,
		OccurredAt: now,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.BorrowRequestsTotal.Inc()
	m.logger.Info("borrow request created",
		zap.String("request_id", req.ID),
		zap.String("item_id", item.ID),
		zap.Int("total_days", totalDays),
		zap.Int("total_cost", req.TotalCost))
	return toAPIBorrowRequest(req), nil
}

func (m *Marketplace) ListBorrowerRequests(ctx context.Context, borrowerID string) ([]BorrowRequest, error) {
	rows, err := m.borrows.GetByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toAPIBorrowRequests(rows), nil
}

func (m *Marketplace) ListSellerRequests(ctx context.Context, sellerID string) ([]BorrowRequest, error) {
	rows, err := m.borrows.GetBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toAPIBorrowRequests(rows), nil
}

// RespondBorrow resolves a pending request. Approval reserves the item
// (availability off) in the same transaction that flips the status.
func (m *Marketplace) RespondBorrow(ctx context.Context, requestID, sellerID, status, adminNotes string) error {
	if status != repository.BorrowStatusApproved && status != repository.BorrowStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	itemID, err := m.borrows.RespondPendingTx(ctx, tx, requestID, sellerID, status, adminNotes)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: borrow request", ErrNotFound)
		}
		return err
	}

	if status == repository.BorrowStatusApproved {
		if err := m.items.SetAvailabilityTx(ctx, tx, itemID, false); err != nil {
			return err
		}
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventBorrowDecided,
		RequestID:  requestID,
		ItemID:     itemID,
		ActorID:    sellerID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if status == repository.BorrowStatusApproved && m.cache != nil {
		m.cache.SetAvailability(itemID, false)
	}
	m.logger.Info("borrow request resolved",
		zap.String("request_id", requestID),
		zap.String("status", status))
	return nil
}

// StartBorrow moves an approved request to active and records the item's
// before-handover condition in the same transaction.
func (m *Marketplace) StartBorrow(ctx context.Context, requestID, sellerID, conditionBefore string, imagesBefore []string) error {
	images, err := marshalImages(imagesBefore)
	if err != nil {
		return err
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := m.borrows.MarkActiveTx(ctx, tx, requestID, sellerID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: approved borrow request", ErrNotFound)
		}
		return err
	}

	now := time.Now().UTC()
	cond := &repository.ItemCondition{
		ID:              uuid.New().String(),
		BorrowRequestID: requestID,
		ConditionBefore: conditionBefore,
		ImagesBefore:    images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := m.conditions.CreateTx(ctx, tx, cond); err != nil {
		return fmt.Errorf("failed to record item condition: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	m.logger.Info("borrow started", zap.String("request_id", requestID))
	return nil
}

type ReturnBorrowInput struct {
	ConditionAfter    string
	ImagesAfter       []string
	DamageReported    bool
	DamageDescription string
	RefundAmount      int
}

// ReturnBorrow closes the loan: request to returned, condition record
// completed, item back in the pool. All three writes share one
// transaction.
func (m *Marketplace) ReturnBorrow(ctx context.Context, requestID, sellerID string, in ReturnBorrowInput) error {
	images, err := marshalImages(in.ImagesAfter)
	if err != nil {
		return err
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	itemID, err := m.borrows.MarkReturnedTx(ctx, tx, requestID, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: active borrow request", ErrNotFound)
		}
		return err
	}

	if err := m.conditions.CompleteTx(ctx, tx, requestID, &ConditionReturn{
		ConditionAfter:    in.ConditionAfter,
		ImagesAfter:       images,
		DamageReported:    in.DamageReported,
		DamageDescription: in.DamageDescription,
		RefundAmount:      in.RefundAmount,
	}); err != nil {
		return err
	}
	if err := m.items.SetAvailabilityTx(ctx, tx, itemID, true); err != nil {
		return err
	}
	if err := m.emitTx(ctx, tx, MarketplaceEvent{
		Kind:       EventBorrowReturned,
		RequestID:  requestID,
		ItemID:     itemID,
		ActorID:    sellerID,
		Amount:     in.RefundAmount,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if m.cache != nil {
		m.cache.SetAvailability(itemID, true)
	}
	m.logger.Info("borrow returned",
		zap.String("request_id", requestID),
		zap.Bool("damage_reported", in.DamageReported))
	return nil
}

func (m *Marketplace) GetConditionRecord(ctx context.Context, requestID, callerID string) (*ItemCondition, error) {
	c, err := m.conditions.GetByRequestForParty(ctx, requestID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: condition record", ErrNotFound)
		}
		return nil, err
	}
	return toAPICondition(c)
}

// ListItems serves the available-item listing from the warm cache when
// possible, falling back to the store.
func (m *Marketplace) ListItems(ctx context.Context) ([]Item, error) {
	if m.cache != nil && m.cache.Warm() {
		return toAPIItems(m.cache.GetAll()), nil
	}
	rows, err := m.items.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toAPIItems(rows), nil
}

type ItemInput struct {
	Title             string
	Price             int
	IsBorrowable      bool
	BorrowPricePerDay int
	MaxBorrowDays     int
}

func (m *Marketplace) CreateItem(ctx context.Context, sellerID string, in ItemInput) (*Item, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Price < 0 || in.BorrowPricePerDay < 0 || in.MaxBorrowDays < 0 {
		return nil, fmt.Errorf("%w: prices and limits must not be negative", ErrInvalidInput)
	}

	now := time.Now().UTC()
	item := &repository.Item{
		ID:                uuid.New().String(),
		SellerID:          sellerID,
		Title:             in.Title,
		Price:             in.Price,
		IsAvailable:       true,
		IsBorrowable:      in.IsBorrowable,
		BorrowPricePerDay: in.BorrowPricePerDay,
		MaxBorrowDays:     in.MaxBorrowDays,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := m.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	if m.cache != nil {
		m.cache.Set(item)
	}
	return toAPIItem(item), nil
}

func (m *Marketplace) DeleteItem(ctx context.Context, itemID, sellerID string) error {
	err := m.items.DeleteByOwner(ctx, itemID, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: item", ErrNotFound)
		}
		return err
	}
	if m.cache != nil {
		m.cache.Delete(itemID)
	}
	return nil
}

func (m *Marketplace) emitTx(ctx context.Context, tx db.Tx, event MarketplaceEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return m.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   event.Kind,
	})
}

func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("%w: images", ErrInvalidInput)
	}
	return data, nil
}

func toAPIOrder(o *repository.Order) *Order {
	return &Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ItemID:          o.ItemID,
		Quantity:        o.Quantity,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toAPIOrders(rows []*repository.Order) []Order {
	orders := make([]Order, len(rows))
	for i, row := range rows {
		orders[i] = *toAPIOrder(row)
	}
	return orders
}

func toAPIDelivery(d *repository.Delivery) *Delivery {
	return &Delivery{
		ID:              d.ID,
		OrderID:         d.OrderID,
		RiderID:         d.RiderID,
		Status:          d.Status,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		PickupTime:      d.PickupTime,
		DeliveryTime:    d.DeliveryTime,
		CreatedAt:       d.CreatedAt,
	}
}

func toAPIDeliveries(rows []*repository.Delivery) []Delivery {
	deliveries := make([]Delivery, len(rows))
	for i, row := range rows {
		deliveries[i] = *toAPIDelivery(row)
	}
	return deliveries
}

func toAPIBorrowRequest(r *repository.BorrowRequest) *BorrowRequest {
	return &BorrowRequest{
		ID:         r.ID,
		ItemID:     r.ItemID,
		BorrowerID: r.BorrowerID,
		SellerID:   r.SellerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalDays:  r.TotalDays,
		TotalCost:  r.TotalCost,
		Message:    r.Message,
		AdminNotes: r.AdminNotes,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toAPIBorrowRequests(rows []*repository.BorrowRequest) []BorrowRequest {
	reqs := make([]BorrowRequest, len(rows))
	for i, row := range rows {
		reqs[i] = *toAPIBorrowRequest(row)
	}
	return reqs
}

func toAPICondition(c *repository.ItemCondition) (*ItemCondition, error) {
	cond := &ItemCondition{
		ID:                c.ID,
		BorrowRequestID:   c.BorrowRequestID,
		ConditionBefore:   c.ConditionBefore,
		ConditionAfter:    c.ConditionAfter,
		DamageReported:    c.DamageReported,
		DamageDescription: c.DamageDescription,
		RefundAmount:      c.RefundAmount,
	}
	if len(c.ImagesBefore) > 0 {
		if err := json.Unmarshal(c.ImagesBefore, &cond.ImagesBefore); err != nil {
			return nil, fmt.Errorf("failed to decode condition images: %w", err)
		}
	}
	if len(c.ImagesAfter) > 0 {
		if err := json.Unmarshal(c.ImagesAfter, &cond.ImagesAfter); err != nil {
			return nil, fmt.Errorf("failed to decode condition images: %w", err)
		}
	}
	return cond, nil
}

func toAPIItem(i *repository.Item) *Item {
	return &Item{
		ID:                i.ID,
		SellerID:          i.SellerID,
		Title:             i.Title,
		Price:             i.Price,
		IsAvailable:       i.IsAvailable,
		IsBorrowable:      i.IsBorrowable,
		BorrowPricePerDay: i.BorrowPricePerDay,
		MaxBorrowDays:     i.MaxBorrowDays,
		CreatedAt:         i.CreatedAt,
	}
}

func toAPIItems(rows []*repository.Item) []Item {
	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = *toAPIItem(row)
	}
	return items
}
