package storage

import "time"

// Actor is the verified caller identity supplied by the auth boundary.
// Operations declare their required role at the handler boundary; owner
// and rider relationship checks happen inside the lifecycle operations.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleRider  = "rider"
	RoleAdmin  = "admin"
)

type Item struct {
	ID                string    `json:"id"`
	SellerID          string    `json:"seller_id"`
	Title             string    `json:"title"`
	Price             int       `json:"price"`
	IsAvailable       bool      `json:"is_available"`
	IsBorrowable      bool      `json:"is_borrowable"`
	BorrowPricePerDay int       `json:"borrow_price_per_day"`
	MaxBorrowDays     int       `json:"max_borrow_days"`
	CreatedAt         time.Time `json:"created_at"`
}

type Order struct {
	ID              string    `json:"id"`
	BuyerID         string    `json:"buyer_id"`
	SellerID        string    `json:"seller_id"`
	ItemID          string    `json:"item_id"`
	Quantity        int       `json:"quantity"`
	TotalAmount     int       `json:"total_amount"`
	DeliveryAddress string    `json:"delivery_address"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Delivery struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	RiderID         *string    `json:"rider_id,omitempty"`
	Status          string     `json:"status"`
	PickupAddress   string     `json:"pickup_address"`
	DeliveryAddress string     `json:"delivery_address"`
	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	DeliveryTime    *time.Time `json:"delivery_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type BorrowRequest struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	BorrowerID string    `json:"borrower_id"`
	SellerID   string    `json:"seller_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalDays  int       `json:"total_days"`
	TotalCost  int       `json:"total_cost"`
	Message    string    `json:"message"`
	AdminNotes string    `json:"admin_notes"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ItemCondition struct {
	ID                string   `json:"id"`
	BorrowRequestID   string   `json:"borrow_request_id"`
	ConditionBefore   string   `json:"condition_before"`
	ImagesBefore      []string `json:"images_before"`
	ConditionAfter    *string  `json:"condition_after,omitempty"`
	ImagesAfter       []string `json:"images_after,omitempty"`
	DamageReported    bool     `json:"damage_reported"`
	DamageDescription *string  `json:"damage_description,omitempty"`
	RefundAmount      int      `json:"refund_amount"`
}

// ConditionReturn carries the after-return half of a condition record.
type ConditionReturn struct {
	ConditionAfter    string
	ImagesAfter       []byte
	DamageReported    bool
	DamageDescription string
	RefundAmount      int
}
