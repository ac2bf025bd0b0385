// Package csvx menulis export CSV produk & order. Harga disimpan sebagai
// cents; di CSV ditampilkan sebagai desimal 2 digit.
package csvx

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

func Cents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

var productHeader = []string{
	"SKU", "Product Name", "Category", "Price", "Quantity",
	"Low Stock Threshold", "Stock Status", "Total Value", "Created At",
}

func WriteProducts(w io.Writer, products []catalog.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(productHeader); err != nil {
		return err
	}
	for i := range products {
		p := &products[i]
		status := "In Stock"
		if p.IsLowStock() {
			status = "Low Stock"
		}
		rec := []string{
			p.SKU,
			p.Name,
			string(p.Category),
			Cents(p.PriceCents),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.LowStockThreshold),
			status,
			Cents(p.PriceCents * int64(p.Quantity)),
			p.CreatedAt.UTC().Format("2006-01-02"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var orderHeader = []string{
	"Order Number", "Customer Name", "Customer Email", "Total Amount",
	"Status", "Items Count", "Created At",
}

func WriteOrders(w io.Writer, list []orders.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(orderHeader); err != nil {
		return err
	}
	for i := range list {
		o := &list[i]
		rec := []string{
			o.OrderNumber,
			o.CustomerName,
			o.CustomerEmail,
			Cents(o.TotalCents),
			string(o.Status),
			strconv.Itoa(len(o.Items)),
			o.CreatedAt.UTC().Format("2006-01-02"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
