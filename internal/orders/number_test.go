package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey_UTC(t *testing.T) {
	// 23:30 WIB (UTC+7) tanggal 15 = 16:30 UTC tanggal 15
	wib := time.FixedZone("WIB", 7*3600)
	assert.Equal(t, "20260315", DayKey(time.Date(2026, 3, 15, 23, 30, 0, 0, wib)))

	// 03:00 WIB tanggal 16 masih tanggal 15 di UTC
	assert.Equal(t, "20260315", DayKey(time.Date(2026, 3, 16, 3, 0, 0, 0, wib)))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-20260315-0001", FormatOrderNumber("20260315", 1))
	assert.Equal(t, "ORD-20260315-0042", FormatOrderNumber("20260315", 42))
	assert.Equal(t, "ORD-20260315-9999", FormatOrderNumber("20260315", 9999))
	// lewat 4 digit tetap unik, cuma lebih panjang
	assert.Equal(t, "ORD-20260315-10000", FormatOrderNumber("20260315", 10000))
}
