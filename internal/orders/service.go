package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/ariefcatur/go-inventory-orders.git/internal/kafka"
)

// Publisher dipenuhi oleh kafkax.Producer; nil berarti tanpa event.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service adalah coordinator transaksi order: draft masuk, hasilnya order
// ter-commit + stok terpotong, atau tidak ada efek sama sekali.
type Service struct {
	Store       Store
	Events      Publisher
	EventsAbort Publisher // topic order.cancelled; boleh sama dengan Events di test
	ServiceName string
	Now         func() time.Time // nil => time.Now
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateOrder menjalankan alur Validating -> Reserving -> Committing.
// Kegagalan di item manapun membatalkan seluruh unit of work: tidak ada
// pemotongan parsial dan tidak ada record order yang tersisa.
func (s *Service) CreateOrder(ctx context.Context, d Draft, actorID string) (Order, error) {
	d.Normalize()
	if err := d.Validate(); err != nil {
		return Order{}, err
	}
	if actorID == "" {
		return Order{}, ValidationError{Field: "actor", Reason: "is required"}
	}

	now := s.now().UTC()
	day := DayKey(now)
	o := Order{
		ID:            uuid.NewString(),
		Status:        StatusCompleted, // stok dipotong sinkron
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Notes:         d.Notes,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}

	err := s.Store.InTx(ctx, func(tx StoreTx) error {
		var total int64
		for _, it := range d.Items {
			snap, err := tx.ReserveStock(ctx, it.ProductID, it.Qty)
			if err != nil {
				return err // rollback semua reservasi attempt ini
			}
			sub := snap.PriceCents * int64(it.Qty)
			o.Items = append(o.Items, Item{
				ProductID:     it.ProductID,
				ProductName:   snap.Name,
				SKU:           snap.SKU,
				Qty:           it.Qty,
				PriceCents:    snap.PriceCents,
				SubtotalCents: sub,
			})
			total += sub
		}
		o.TotalCents = total

		// Nomor urut diambil dalam tx yang sama dengan pemotongan stok,
		// jadi dua order di instant yang sama tetap dapat nomor berbeda.
		seq, err := tx.NextSeq(ctx, day)
		if err != nil {
			return err
		}
		o.OrderNumber = FormatOrderNumber(day, seq)

		return tx.InsertOrder(ctx, &o)
	})
	if err != nil {
		return Order{}, classify(err)
	}

	s.publish(s.Events, EventOrderCreated, o.ID, OrderCreatedPayload{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Items:       o.Items,
		TotalCents:  o.TotalCents,
		CreatedBy:   o.CreatedBy,
	})
	return o, nil
}

// UpdateStatus: pembatalan mengembalikan stok dalam satu unit of work;
// transisi lain cuma update satu baris.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, to Status) (Order, error) {
	if !to.Valid() {
		return Order{}, ValidationError{Field: "status", Reason: "is not a valid status"}
	}

	if to == StatusCancelled {
		return s.cancel(ctx, orderID)
	}

	o, err := s.Store.GetOrder(ctx, orderID)
	if err != nil {
		return Order{}, classify(err)
	}
	if !CanTransition(o.Status, to) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, o.Status, to)
	}
	if err := s.Store.SetStatus(ctx, orderID, to); err != nil {
		return Order{}, classify(err)
	}
	o.Status = to
	return o, nil
}

func (s *Service) cancel(ctx context.Context, orderID string) (Order, error) {
	var o Order
	err := s.Store.InTx(ctx, func(tx StoreTx) error {
		var err error
		o, err = tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, StatusCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, o.Status, StatusCancelled)
		}
		for _, it := range o.Items {
			if err := tx.ReleaseStock(ctx, it.ProductID, it.Qty); err != nil {
				return err
			}
		}
		return tx.SetStatus(ctx, orderID, StatusCancelled)
	})
	if err != nil {
		return Order{}, classify(err)
	}
	o.Status = StatusCancelled

	s.publish(s.EventsAbort, EventOrderCancelled, o.ID, OrderCancelledPayload{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Items:       o.Items,
	})
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (Order, error) {
	o, err := s.Store.GetOrder(ctx, id)
	if err != nil {
		return Order{}, classify(err)
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context, f ListFilter) ([]Order, int, error) {
	out, total, err := s.Store.ListOrders(ctx, f)
	if err != nil {
		return nil, 0, classify(err)
	}
	return out, total, nil
}

func (s *Service) publish(p Publisher, eventType, orderID string, payload any) {
	if p == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    s.now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(payload),
	}
	p.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

// classify: error domain diteruskan apa adanya, sisanya dianggap kegagalan
// commit/infra dan dibungkus ErrTxAborted (aman di-retry utuh).
func classify(err error) error {
	var (
		nf ProductNotFoundError
		is InsufficientStockError
		ve ValidationError
	)
	switch {
	case errors.As(err, &nf), errors.As(err, &is), errors.As(err, &ve),
		errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrBadTransition):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrTxAborted, err)
	}
}
