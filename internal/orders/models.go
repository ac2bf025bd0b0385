package orders

import "time"

// Item adalah line item order. Nama, SKU, dan harga adalah snapshot saat
// pembelian: edit/hapus produk di katalog tidak boleh mengubah order lama.
type Item struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKU           string `json:"sku"`
	Qty           int    `json:"qty"`
	PriceCents    int64  `json:"price_cents"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

type Order struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Items         []Item    `json:"items"`
	TotalCents    int64     `json:"total_cents"`
	Status        Status    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type DraftItem struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Draft adalah input createOrder sebelum divalidasi.
type Draft struct {
	Items         []DraftItem `json:"items"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Notes         string      `json:"notes"`
}
