package selector

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"adminconsole/internal/domain/entity"
)

func product(id string, stock int, active bool) entity.Product {
	return entity.Product{ID: id, Name: id, Stock: stock, IsActive: active}
}

func order(status entity.OrderStatus, amount string) entity.Order {
	return entity.Order{Status: status, Amount: decimal.RequireFromString(amount)}
}

func TestDashboard(t *testing.T) {
	products := []entity.Product{
		product("p1", 0, true),
		product("p2", 5, true),
		product("p3", 10, false),
		product("p4", 11, true),
		product("p5", 50, true),
		product("p6", 1, false),
	}
	orders := []entity.Order{
		order(entity.OrderPending, "10.005"),
		order(entity.OrderPending, "20"),
		order(entity.OrderDelivered, "0.10"),
	}
	users := []entity.User{{ID: "u1"}, {ID: "u2"}}

	stats := Dashboard(products, orders, users)

	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 4, stats.ActiveProducts)
	assert.Equal(t, 2, stats.InactiveProducts)
	assert.Equal(t, 3, stats.LowStockProducts)
	assert.Equal(t, 1, stats.OutOfStockProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, "30.11", stats.TotalRevenue.StringFixed(2))
	assert.Len(t, stats.RecentProducts, RecentLimit)
	assert.Equal(t, "p1", stats.RecentProducts[0].ID)
}

func TestDashboardEmpty(t *testing.T) {
	stats := Dashboard(nil, nil, nil)
	assert.Zero(t, stats.TotalProducts)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Empty(t, stats.RecentProducts)
}

func TestLowStock(t *testing.T) {
	got := LowStock([]entity.Product{product("a", 0, true), product("b", 3, true), product("c", 10, true), product("d", 11, true)})
	ids := []string{}
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "c"}, ids)
}

func TestRecentProductsCopiesImages(t *testing.T) {
	products := []entity.Product{{ID: "a", Images: []string{"x.png"}}}
	recent := RecentProducts(products, 3)
	recent[0].Images[0] = "changed.png"
	assert.Equal(t, "x.png", products[0].Images[0])
}
