package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const claimsKey ctxKey = 0

// UserID ambil id user dari context; "" jika request tidak ter-autentikasi.
func UserID(ctx context.Context) string {
	if c, ok := ctx.Value(claimsKey).(Claims); ok {
		return c.Subject
	}
	return ""
}

// Middleware cek header Authorization: Bearer <token> dan taruh claims di
// context. 401 JSON polos tanpa detail kenapa token ditolak.
func Middleware(t *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || raw == "" {
				unauthorized(w)
				return
			}
			claims, err := t.ParseAccess(raw)
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
