// Package selector holds read-only projections of slice state used by views.
package selector

import (
	"github.com/shopspring/decimal"

	"adminconsole/internal/domain/entity"
)

const (
	LowStockThreshold = 10
	RecentLimit       = 5
)

// DashboardStats is the summary shown on the dashboard.
type DashboardStats struct {
	TotalProducts      int
	ActiveProducts     int
	InactiveProducts   int
	LowStockProducts   int
	OutOfStockProducts int
	TotalOrders        int
	PendingOrders      int
	TotalUsers         int
	TotalRevenue       decimal.Decimal
	RecentProducts     []entity.Product
}

// Dashboard summarizes the loaded collections. Revenue is rounded to cents.
func Dashboard(products []entity.Product, orders []entity.Order, users []entity.User) DashboardStats {
	stats := DashboardStats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		TotalUsers:     len(users),
		TotalRevenue:   Revenue(orders),
		PendingOrders:  OrderStatusCounts(orders)[entity.OrderPending],
		RecentProducts: RecentProducts(products, RecentLimit),
	}
	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		}
		switch {
		case p.Stock == 0:
			stats.OutOfStockProducts++
		case p.Stock <= LowStockThreshold:
			stats.LowStockProducts++
		}
	}
	stats.InactiveProducts = stats.TotalProducts - stats.ActiveProducts
	return stats
}

// Revenue sums order amounts, rounded to cents.
func Revenue(orders []entity.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.Amount)
	}
	return sum.Round(2)
}

// RecentProducts returns the first n products of the list, which the server sorts newest first.
func RecentProducts(products []entity.Product, n int) []entity.Product {
	if n > len(products) {
		n = len(products)
	}
	out := make([]entity.Product, n)
	for i := range out {
		out[i] = products[i].Clone()
	}
	return out
}

// LowStock returns products with stock between 1 and the low stock threshold.
func LowStock(products []entity.Product) []entity.Product {
	var out []entity.Product
	for _, p := range products {
		if p.Stock > 0 && p.Stock <= LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}
