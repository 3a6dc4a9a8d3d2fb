package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	kafkax "github.com/ariefcatur/go-catalog-orders.git/internal/kafka"
	"github.com/ariefcatur/go-catalog-orders.git/internal/redisx"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

type OrdersHandler struct {
	Service     *service.OrderService
	Producer    *kafkax.Producer
	Redis       *redis.Client
	ServiceName string
}

type createOrderItemReq struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type createOrderReq struct {
	UserID string               `json:"userId"`
	Items  []createOrderItemReq `json:"items"`
}

type createOrderResp struct {
	ID uuid.UUID `json:"id"`
}

type orderListResp struct {
	Data []domain.OrderView `json:"data"`
	Page domain.Page        `json:"page"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{userID}", h.listUserOrders)
	r.Get("/orders/{orderID}/status", h.getOrderStatus)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	items := make([]domain.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			writeError(w, domain.ValidationError{
				Field:  "items.productId",
				Reason: fmt.Sprintf("invalid product id %q", it.ProductID),
			})
			return
		}
		items = append(items, domain.ItemInput{ProductID: productID, Qty: it.Qty})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.Service.CreateOrder(ctx, req.UserID, items)
	if err != nil {
		writeError(w, err)
		return
	}

	// cache the initial status so the first reads skip the store
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, statusKey, `{"status":"created"}`, redisx.TTLStatusCache).Err()

	h.publishOrderCreated(r, orderID, req)

	writeJSON(w, http.StatusCreated, createOrderResp{ID: orderID})
}

func (h *OrdersHandler) publishOrderCreated(r *http.Request, orderID uuid.UUID, req createOrderReq) {
	eventItems := make([]domain.EventItem, 0, len(req.Items))
	for _, it := range req.Items {
		eventItems = append(eventItems, domain.EventItem{ProductID: it.ProductID, Qty: it.Qty})
	}

	ev := domain.Envelope{
		EventID:       uuid.NewString(),
		EventType:     domain.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.ServiceName,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: orderID.String(),
		Payload: kafkax.MustMarshal(domain.OrderCreatedPayload{
			OrderID: orderID.String(),
			UserID:  req.UserID,
			Items:   eventItems,
		}),
	}

	h.Producer.Publish(domain.PartitionKey(orderID.String()), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(domain.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *OrdersHandler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	views, page, err := h.Service.ListUserOrders(ctx, userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	if views == nil {
		views = []domain.OrderView{}
	}
	writeJSON(w, http.StatusOK, orderListResp{Data: views, Page: page})
}

func (h *OrdersHandler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, domain.ValidationError{Field: "orderId", Reason: "must be a uuid"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	status, err := h.Service.GetOrderStatus(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	b := kafkax.MustMarshal(map[string]domain.Status{"status": status})
	_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
