package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

// Orders are immutable once created, so "created" is the only status the
// service ever writes. The type stays open for downstream consumers.
const StatusCreated Status = "created"

// ItemInput is one requested line of a new order.
type ItemInput struct {
	ProductID uuid.UUID
	Qty       int
}

// OrderItem carries the price snapshot taken at order-creation time.
// Later product price changes never alter these values.
type OrderItem struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
	ItemTotal decimal.Decimal
}

type Order struct {
	ID        uuid.UUID
	UserID    string
	Items     []OrderItem
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time
}

// ProductDetails is the catalog data embedded per line item at read time.
type ProductDetails struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

// OrderItemView is a line item joined against the catalog. ProductDetails
// is null when the referenced product no longer exists; the snapshot
// columns stay visible regardless.
type OrderItemView struct {
	ProductDetails *ProductDetails `json:"productDetails"`
	Qty            int             `json:"qty"`
	ItemTotal      decimal.Decimal `json:"itemTotal"`
}

type OrderView struct {
	ID    uuid.UUID       `json:"id"`
	Items []OrderItemView `json:"items"`
	Total decimal.Decimal `json:"total"`
}
