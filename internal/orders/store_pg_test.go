package orders

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-inventory-orders.git/internal/postgres"
)

// Test integrasi: butuh postgres beneran. Jalankan dengan
// TEST_POSTGRES_DSN=postgres://... go test ./internal/orders -run PgStore
func pgStoreForTest(t *testing.T) *PgStore {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN tidak di-set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return &PgStore{DB: pool}
}

func seedUserAndProduct(t *testing.T, s *PgStore, qty int) (userID, productID string) {
	t.Helper()
	ctx := context.Background()
	userID = uuid.NewString()
	productID = uuid.NewString()
	_, err := s.DB.Exec(ctx, `
		INSERT INTO users(id, username, email, password_hash)
		VALUES ($1, $2, $3, 'x')`,
		userID, "u"+userID[:8], userID[:8]+"@test.local")
	require.NoError(t, err)
	_, err = s.DB.Exec(ctx, `
		INSERT INTO products(id, name, sku, category, price_cents, quantity, created_by)
		VALUES ($1, 'Produk Test', $2, 'Other', 1000, $3, $4)`,
		productID, "TST-"+userID[:8], qty, userID)
	require.NoError(t, err)
	return userID, productID
}

func TestPgStore_NoOversellConcurrent(t *testing.T) {
	s := pgStoreForTest(t)
	userID, productID := seedUserAndProduct(t, s, 10)

	svc := &Service{Store: s, ServiceName: "test"}
	const attempts = 20

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(context.Background(), Draft{
				Items:         []DraftItem{{ProductID: productID, Qty: 3}},
				CustomerName:  "Budi",
				CustomerEmail: "budi@example.com",
			}, userID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			var ise InsufficientStockError
			require.ErrorAs(t, err, &ise)
		}
	}
	assert.Equal(t, 3, succeeded)

	var remaining int
	require.NoError(t, s.DB.QueryRow(context.Background(),
		`SELECT quantity FROM products WHERE id=$1`, productID).Scan(&remaining))
	assert.Equal(t, 10-3*succeeded, remaining)
}

func TestPgStore_NumberingUniqueConcurrent(t *testing.T) {
	s := pgStoreForTest(t)
	userID, productID := seedUserAndProduct(t, s, 1000)

	svc := &Service{Store: s, ServiceName: "test"}
	const n = 10

	type result struct {
		num string
		err error
	}
	var wg sync.WaitGroup
	numbers := make(chan result, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := svc.CreateOrder(context.Background(), Draft{
				Items:         []DraftItem{{ProductID: productID, Qty: 1}},
				CustomerName:  "Budi",
				CustomerEmail: "budi@example.com",
			}, userID)
			numbers <- result{num: o.OrderNumber, err: err}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for r := range numbers {
		require.NoError(t, r.err)
		assert.False(t, seen[r.num], "duplikat %s", r.num)
		seen[r.num] = true
	}
	assert.Len(t, seen, n)
}

func TestPgStore_AtomicRollback(t *testing.T) {
	s := pgStoreForTest(t)
	userID, productID := seedUserAndProduct(t, s, 50)

	svc := &Service{Store: s, ServiceName: "test"}
	_, err := svc.CreateOrder(context.Background(), Draft{
		Items: []DraftItem{
			{ProductID: productID, Qty: 2},
			{ProductID: uuid.NewString(), Qty: 1}, // tidak ada
		},
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
	}, userID)

	var nfe ProductNotFoundError
	require.ErrorAs(t, err, &nfe)

	var remaining int
	require.NoError(t, s.DB.QueryRow(context.Background(),
		`SELECT quantity FROM products WHERE id=$1`, productID).Scan(&remaining))
	assert.Equal(t, 50, remaining, "reservasi item pertama harus ikut rollback")
}

func TestPgStore_GetOrderRoundTrip(t *testing.T) {
	s := pgStoreForTest(t)
	userID, productID := seedUserAndProduct(t, s, 10)

	svc := &Service{Store: s, ServiceName: "test"}
	o, err := svc.CreateOrder(context.Background(), Draft{
		Items:         []DraftItem{{ProductID: productID, Qty: 2}},
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		Notes:         "tolong cepat",
	}, userID)
	require.NoError(t, err)

	got, err := s.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, got.OrderNumber)
	assert.Equal(t, fmt.Sprintf("%d", o.TotalCents), fmt.Sprintf("%d", got.TotalCents))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Produk Test", got.Items[0].ProductName)
	assert.Equal(t, int64(2000), got.TotalCents)
}
