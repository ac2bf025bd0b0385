package csvx

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

func TestCents(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0))
	assert.Equal(t, "0.05", Cents(5))
	assert.Equal(t, "1.50", Cents(150))
	assert.Equal(t, "1234.00", Cents(123400))
	assert.Equal(t, "-3.25", Cents(-325))
}

func TestWriteProducts(t *testing.T) {
	created := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	ps := []catalog.Product{
		{
			Name: "Kursi Kayu", SKU: "FRN-001", Category: catalog.CategoryFurniture,
			PriceCents: 150_00, Quantity: 3, LowStockThreshold: 5, CreatedAt: created,
		},
		{
			Name: "Laptop", SKU: "ELC-100", Category: catalog.CategoryElectronics,
			PriceCents: 9_999_00, Quantity: 20, LowStockThreshold: 5, CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, ps))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, []string{
		"SKU", "Product Name", "Category", "Price", "Quantity",
		"Low Stock Threshold", "Stock Status", "Total Value", "Created At",
	}, recs[0])
	assert.Equal(t, []string{
		"FRN-001", "Kursi Kayu", "Furniture", "150.00", "3", "5",
		"Low Stock", "450.00", "2026-01-05",
	}, recs[1])
	assert.Equal(t, "In Stock", recs[2][6])
	assert.Equal(t, "199980.00", recs[2][7])
}

func TestWriteOrders(t *testing.T) {
	created := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	list := []orders.Order{
		{
			OrderNumber:   "ORD-20260210-0001",
			CustomerName:  "Budi, Santoso", // koma harus di-escape oleh encoding/csv
			CustomerEmail: "budi@example.com",
			TotalCents:    436_50,
			Status:        orders.StatusCompleted,
			Items:         []orders.Item{{ProductID: "p1"}, {ProductID: "p2"}},
			CreatedAt:     created,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, list))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, []string{
		"Order Number", "Customer Name", "Customer Email", "Total Amount",
		"Status", "Items Count", "Created At",
	}, recs[0])
	assert.Equal(t, []string{
		"ORD-20260210-0001", "Budi, Santoso", "budi@example.com",
		"436.50", "completed", "2", "2026-02-10",
	}, recs[1])
}
