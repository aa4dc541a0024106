package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

// Order statuses. Once a delivery is assigned the order status only moves
// forward, mirroring the delivery; cancellation is reachable from pending
// and confirmed only.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusAssigned  = "assigned"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	DeliveryStatusOpen      = "open"
	DeliveryStatusAssigned  = "assigned"
	DeliveryStatusPickedUp  = "picked_up"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCancelled = "cancelled"
)

// Borrow request statuses. BorrowStatusOverdue is referenced by reporting
// but no transition produces it; an automatic sweep over end_date is an
// open product decision.
const (
	BorrowStatusPending  = "pending"
	BorrowStatusApproved = "approved"
	BorrowStatusRejected = "rejected"
	BorrowStatusActive   = "active"
	BorrowStatusReturned = "returned"
	BorrowStatusOverdue  = "overdue"
)

type Item struct {
	ID                string    `db:"id"`
	SellerID          string    `db:"seller_id"`
	Title             string    `db:"title"`
	Price             int       `db:"price"`
	IsAvailable       bool      `db:"is_available"`
	IsBorrowable      bool      `db:"is_borrowable"`
	BorrowPricePerDay int       `db:"borrow_price_per_day"`
	MaxBorrowDays     int       `db:"max_borrow_days"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type Order struct {
	ID              string    `db:"id"`
	BuyerID         string    `db:"buyer_id"`
	SellerID        string    `db:"seller_id"`
	ItemID          string    `db:"item_id"`
	Quantity        int       `db:"quantity"`
	TotalAmount     int       `db:"total_amount"`
	DeliveryAddress string    `db:"delivery_address"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Delivery struct {
	ID              string     `db:"id"`
	OrderID         string     `db:"order_id"`
	RiderID         *string    `db:"rider_id"`
	Status          string     `db:"status"`
	PickupAddress   string     `db:"pickup_address"`
	DeliveryAddress string     `db:"delivery_address"`
	PickupTime      *time.Time `db:"pickup_time"`
	DeliveryTime    *time.Time `db:"delivery_time"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type BorrowRequest struct {
	ID         string    `db:"id"`
	ItemID     string    `db:"item_id"`
	BorrowerID string    `db:"borrower_id"`
	SellerID   string    `db:"seller_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	TotalDays  int       `db:"total_days"`
	TotalCost  int       `db:"total_cost"`
	Message    string    `db:"message"`
	AdminNotes string    `db:"admin_notes"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type ItemCondition struct {
	ID                string    `db:"id"`
	BorrowRequestID   string    `db:"borrow_request_id"`
	ConditionBefore   string    `db:"condition_before"`
	ImagesBefore      []byte    `db:"images_before"`
	ConditionAfter    *string   `db:"condition_after"`
	ImagesAfter       []byte    `db:"images_after"`
	DamageReported    bool      `db:"damage_reported"`
	DamageDescription *string   `db:"damage_description"`
	RefundAmount      int       `db:"refund_amount"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
