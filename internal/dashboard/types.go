package dashboard

import "time"

type CategoryStat struct {
	Category        string `json:"category"`
	Count           int    `json:"count"`
	TotalValueCents int64  `json:"total_value_cents"` // harga x stok
}

type LowStockProduct struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"low_stock_threshold"`
}

type RecentOrder struct {
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type TopProduct struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	TotalQtySold      int    `json:"total_qty_sold"`
	TotalRevenueCents int64  `json:"total_revenue_cents"`
}

type MonthlyRevenue struct {
	Month        string `json:"month"` // YYYY-MM
	RevenueCents int64  `json:"revenue_cents"`
	OrderCount   int    `json:"order_count"`
}

type Stats struct {
	TotalRevenueCents  int64             `json:"total_revenue_cents"`
	CategoryBreakdown  []CategoryStat    `json:"category_breakdown"`
	LowStockProducts   []LowStockProduct `json:"low_stock_products"`
	RecentOrders       []RecentOrder     `json:"recent_orders"`
	TopSellingProducts []TopProduct      `json:"top_selling_products"`
	MonthlyRevenue     []MonthlyRevenue  `json:"monthly_revenue"`
}

type Overview struct {
	TotalProducts     int   `json:"total_products"`
	TotalOrders       int   `json:"total_orders"` // hanya completed
	LowStockCount     int   `json:"low_stock_count"`
	TodayRevenueCents int64 `json:"today_revenue_cents"`
}
