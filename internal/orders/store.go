package orders

import "context"

// ItemSnapshot adalah field deskriptif produk yang di-capture pada momen
// reservasi (di bawah row lock), bukan hasil lookup ulang.
type ItemSnapshot struct {
	Name       string
	SKU        string
	PriceCents int64
}

// StoreTx adalah unit of work atomik: semua operasi di dalamnya commit
// bersama atau tidak sama sekali.
type StoreTx interface {
	// ReserveStock: cek-dan-potong stok satu produk secara atomik.
	// Gagal dengan ProductNotFoundError / InsufficientStockError.
	ReserveStock(ctx context.Context, productID string, qty int) (ItemSnapshot, error)

	// ReleaseStock adalah kompensasi ReserveStock (dipakai pembatalan order).
	ReleaseStock(ctx context.Context, productID string, qty int) error

	// NextSeq menaikkan dan mengembalikan nomor urut order untuk hari `day`,
	// mulai dari 1.
	NextSeq(ctx context.Context, day string) (int, error)

	InsertOrder(ctx context.Context, o *Order) error

	// LockOrder memuat order + items dengan lock (utk pembatalan).
	LockOrder(ctx context.Context, id string) (Order, error)

	SetStatus(ctx context.Context, id string, st Status) error
}

// Store adalah kolaborator storage milik coordinator. Implementasi pgx ada
// di store_pg.go; test pakai fake in-memory.
type Store interface {
	// InTx membuka unit of work; fn return error => rollback total.
	InTx(ctx context.Context, fn func(tx StoreTx) error) error

	GetOrder(ctx context.Context, id string) (Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]Order, int, error)

	// SetStatus di luar tx: update satu baris saja (transisi non-pembatalan).
	SetStatus(ctx context.Context, id string, st Status) error
}

type ListFilter struct {
	Status Status
	Page   int
	Limit  int
}
