package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inventory-orders.git/internal/dashboard"
)

type DashboardHandler struct {
	Service *dashboard.Service
}

func (h *DashboardHandler) Register(r chi.Router) {
	r.Get("/dashboard/stats", h.stats)
	r.Get("/dashboard/overview", h.overview)
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	st, err := h.Service.Stats(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *DashboardHandler) overview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	ov, err := h.Service.Overview(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
