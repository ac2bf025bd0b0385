package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ariefcatur/go-inventory-orders.git/internal/auth"
	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeDomainError memetakan error domain ke status HTTP. Mapping ini satu
// tempat supaya handler tidak mengulang-ulang errors.As.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		ve  orders.ValidationError
		nfe orders.ProductNotFoundError
		ise orders.InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.As(err, &nfe):
		writeError(w, http.StatusNotFound, nfe.Error())
	case errors.As(err, &ise):
		writeError(w, http.StatusConflict, ise.Error())
	case errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, orders.ErrBadTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrSKUTaken), errors.Is(err, auth.ErrCredentialTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, auth.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, orders.ErrTxAborted):
		// transient; client boleh retry utuh
		writeError(w, http.StatusServiceUnavailable, "temporary failure, please retry")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

func paginate(page, limit, total int) pagination {
	pages := (total + limit - 1) / limit
	return pagination{CurrentPage: page, TotalPages: pages, TotalItems: total, ItemsPerPage: limit}
}
