package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrTxAborted: commit gagal karena infra (timeout, koneksi, dsb).
	// Aman di-retry utuh oleh caller; tidak ada efek yang tersisa.
	ErrTxAborted = errors.New("order transaction aborted")

	ErrOrderNotFound = errors.New("order not found")

	ErrBadTransition = errors.New("invalid status transition")
)

// ProductNotFoundError: produk yang direferensikan draft tidak ada.
type ProductNotFoundError struct {
	ProductID string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// InsufficientStockError membawa available vs requested supaya pesan ke
// user bisa actionable.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

// ValidationError: input draft tidak lolos validasi boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}
