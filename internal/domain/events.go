package domain

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"

	TopicOrderCreated = "catalog.order.created"
)

// Envelope is the versioned wrapper for every published event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// EventItem carries the requested lines only. Consumers needing price
// data re-query the store, prices on the wire would just be a second
// source of truth.
type EventItem struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderCreatedPayload struct {
	OrderID string      `json:"order_id"`
	UserID  string      `json:"user_id"`
	Items   []EventItem `json:"items"`
}

// PartitionKey keys events by order id so one order's events stay ordered
// within a partition.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
