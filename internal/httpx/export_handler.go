package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	"github.com/ariefcatur/go-inventory-orders.git/internal/csvx"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

type ExportHandler struct {
	Products *catalog.Repo
	Orders   *orders.Service
}

func (h *ExportHandler) Register(r chi.Router) {
	r.Get("/export/products", h.products)
	r.Get("/export/orders", h.orders)
}

func csvHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}

func (h *ExportHandler) products(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Products.ListAll(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	csvHeaders(w, "products-"+time.Now().UTC().Format("20060102")+".csv")
	_ = csvx.WriteProducts(w, list)
}

func (h *ExportHandler) orders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// export semua order, page besar sekali jalan
	list, _, err := h.Orders.ListOrders(ctx, orders.ListFilter{Page: 1, Limit: 1 << 20})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	csvHeaders(w, "orders-"+time.Now().UTC().Format("20060102")+".csv")
	_ = csvx.WriteOrders(w, list)
}
