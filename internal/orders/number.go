package orders

import (
	"fmt"
	"time"
)

// Nomor order human-readable: ORD-YYYYMMDD-NNNN. Urutan per hari kalender
// (UTC) diambil dari baris order_sequences yang di-upsert dalam tx yang sama
// dengan pemotongan stok, jadi tidak ada celah duplikat antar request.

func DayKey(t time.Time) string {
	return t.UTC().Format("20060102")
}

func FormatOrderNumber(day string, seq int) string {
	return fmt.Sprintf("ORD-%s-%04d", day, seq)
}
