package dashboard

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/go-inventory-orders.git/internal/redisx"
)

type Service struct {
	DB  *pgxpool.Pool
	RDB *redis.Client // boleh nil; tanpa cache
}

// Stats: agregasi berat, di-cache di redis 5 menit. Cache miss / redis mati
// jatuh ke query langsung.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	if s.RDB != nil {
		if raw, err := s.RDB.Get(ctx, redisx.KeyDashboardStats).Result(); err == nil {
			var cached Stats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	var st Stats
	if err := s.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_cents), 0) FROM orders WHERE status='completed'`).
		Scan(&st.TotalRevenueCents); err != nil {
		return Stats{}, err
	}

	rows, err := s.DB.Query(ctx, `
		SELECT category, COUNT(*), COALESCE(SUM(price_cents * quantity), 0)
		FROM products GROUP BY category ORDER BY COUNT(*) DESC`)
	if err != nil {
		return Stats{}, err
	}
	for rows.Next() {
		var c CategoryStat
		if err := rows.Scan(&c.Category, &c.Count, &c.TotalValueCents); err != nil {
			rows.Close()
			return Stats{}, err
		}
		st.CategoryBreakdown = append(st.CategoryBreakdown, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	rows, err = s.DB.Query(ctx, `
		SELECT name, sku, category, quantity, low_stock_threshold
		FROM products WHERE quantity <= low_stock_threshold
		ORDER BY quantity LIMIT 10`)
	if err != nil {
		return Stats{}, err
	}
	for rows.Next() {
		var p LowStockProduct
		if err := rows.Scan(&p.Name, &p.SKU, &p.Category, &p.Quantity, &p.Threshold); err != nil {
			rows.Close()
			return Stats{}, err
		}
		st.LowStockProducts = append(st.LowStockProducts, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	rows, err = s.DB.Query(ctx, `
		SELECT order_number, customer_name, total_cents, status, created_at
		FROM orders ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return Stats{}, err
	}
	for rows.Next() {
		var o RecentOrder
		if err := rows.Scan(&o.OrderNumber, &o.CustomerName, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			rows.Close()
			return Stats{}, err
		}
		st.RecentOrders = append(st.RecentOrders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	rows, err = s.DB.Query(ctx, `
		SELECT oi.product_id, MIN(oi.product_name),
		       SUM(oi.qty), SUM(oi.subtotal_cents)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'completed'
		GROUP BY oi.product_id
		ORDER BY SUM(oi.qty) DESC LIMIT 10`)
	if err != nil {
		return Stats{}, err
	}
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.TotalQtySold, &tp.TotalRevenueCents); err != nil {
			rows.Close()
			return Stats{}, err
		}
		st.TopSellingProducts = append(st.TopSellingProducts, tp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	rows, err = s.DB.Query(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'),
		       SUM(total_cents), COUNT(*)
		FROM orders
		WHERE status = 'completed' AND created_at >= now() - interval '6 months'
		GROUP BY 1 ORDER BY 1`)
	if err != nil {
		return Stats{}, err
	}
	for rows.Next() {
		var m MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.RevenueCents, &m.OrderCount); err != nil {
			rows.Close()
			return Stats{}, err
		}
		st.MonthlyRevenue = append(st.MonthlyRevenue, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	if s.RDB != nil {
		if b, err := json.Marshal(st); err == nil {
			_ = s.RDB.Set(ctx, redisx.KeyDashboardStats, b, redisx.TTLDashboardStats).Err()
		}
	}
	return st, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var ov Overview
	err := s.DB.QueryRow(ctx, `
		SELECT
		  (SELECT COUNT(*) FROM products),
		  (SELECT COUNT(*) FROM orders WHERE status='completed'),
		  (SELECT COUNT(*) FROM products WHERE quantity <= low_stock_threshold),
		  (SELECT COALESCE(SUM(total_cents),0) FROM orders
		   WHERE status='completed' AND created_at >= date_trunc('day', now() AT TIME ZONE 'utc'))`).
		Scan(&ov.TotalProducts, &ov.TotalOrders, &ov.LowStockCount, &ov.TodayRevenueCents)
	return ov, err
}
