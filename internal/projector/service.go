package projector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	kafkax "github.com/ariefcatur/go-catalog-orders.git/internal/kafka"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
	"github.com/ariefcatur/go-catalog-orders.git/internal/redisx"
)

// Service projects order-created events into the redis status cache so
// status reads stay hot after the TTL written at creation time expires.
type Service struct {
	Orders      port.OrderRepository
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderCreated is the consumer handler. Duplicate deliveries are
// dropped via per-event-id dedup keys.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env domain.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != domain.EventOrderCreated {
		return nil
	}

	dedupKey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dedupKey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dedupKey, "1", redisx.TTLDedup).Err()

	payload, err := kafkax.UnwrapPayload[domain.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		return fmt.Errorf("order id %q: %w", payload.OrderID, err)
	}

	status, err := s.Orders.GetOrderStatus(ctx, orderID)
	if err != nil {
		// the order vanished between publish and projection, nothing to cache
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	body := kafkax.MustMarshal(map[string]domain.Status{"status": status})
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	return s.Redis.Set(ctx, statusKey, body, redisx.TTLStatusCache).Err()
}
