package redisx

import "time"

const (
	// Cache hasil agregasi dashboard: dash:stats -> JSON
	KeyDashboardStats = "dash:stats"

	// Refresh token: auth:refresh:{token} -> user_id
	KeyRefreshToken = "auth:refresh:%s"

	// Dedup event consumer: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Penanda alert low-stock sudah terkirim: alert:lowstock:{product_id}
	KeyLowStockAlerted = "alert:lowstock:%s"
)

var (
	TTLDashboardStats = 5 * time.Minute
	TTLDedup          = 48 * time.Hour
	TTLLowStockAlert  = 6 * time.Hour
)
