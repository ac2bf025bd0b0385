// Package alerts memantau event order dan menerbitkan peringatan low-stock
// untuk produk yang stoknya jatuh di bawah threshold setelah ada pembelian.
package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	kafkax "github.com/ariefcatur/go-inventory-orders.git/internal/kafka"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
	"github.com/ariefcatur/go-inventory-orders.git/internal/redisx"
)

type Service struct {
	Products    *catalog.Repo
	Redis       *redis.Client
	Producer    *kafkax.Producer // topic stock.low
	ServiceName string
}

// HandleOrderCreated dipasang sebagai handler consumer order.created.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderCreated {
		return nil // ignore
	}

	// dedup per event_id
	dkey := fmt.Sprintf(redisx.KeyDedup, "alerts", env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	for _, it := range p.Items {
		if err := s.checkProduct(ctx, it.ProductID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkProduct(ctx context.Context, productID string) error {
	prod, err := s.Products.GetByID(ctx, productID)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil // sudah dihapus dari katalog; abaikan
	}
	if err != nil {
		return err
	}
	if !prod.IsLowStock() {
		return nil
	}

	// jangan spam: satu alert per produk per TTL
	akey := fmt.Sprintf(redisx.KeyLowStockAlerted, prod.ID)
	if exists, _ := redisx.Exists(ctx, s.Redis, akey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, akey, "1", redisx.TTLLowStockAlert).Err()

	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventLowStock,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: prod.ID,
		Payload: kafkax.MustMarshal(orders.LowStockPayload{
			ProductID: prod.ID,
			Name:      prod.Name,
			SKU:       prod.SKU,
			Quantity:  prod.Quantity,
			Threshold: prod.LowStockThreshold,
		}),
	}
	s.Producer.Publish([]byte(prod.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventLowStock)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	log.Printf("low stock: sku=%s qty=%d threshold=%d", prod.SKU, prod.Quantity, prod.LowStockThreshold)
	return nil
}
