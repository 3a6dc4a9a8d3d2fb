package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Size is one entry of a product's size list. Duplicate size values are
// allowed and stored verbatim, no merging.
type Size struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Sizes     []Size          `json:"sizes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ProductFilter has AND semantics across fields. Nil fields are ignored.
type ProductFilter struct {
	// Name matches as a case-insensitive substring.
	Name *string
	// Size matches products whose size list contains an entry with this
	// size value, regardless of quantity.
	Size *string
}

func (p Product) Validate() error {
	if p.Name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Price.IsNegative() {
		return ValidationError{Field: "price", Reason: "must not be negative"}
	}
	for _, s := range p.Sizes {
		if s.Quantity < 0 {
			return ValidationError{Field: "sizes.quantity", Reason: "must not be negative"}
		}
	}
	return nil
}
