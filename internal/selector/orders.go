package selector

import "adminconsole/internal/domain/entity"

// OrderStatusCounts counts orders per status; every known status is present.
func OrderStatusCounts(orders []entity.Order) map[entity.OrderStatus]int {
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// OrdersByStatus returns the orders in status, in their original order.
func OrdersByStatus(orders []entity.Order, status entity.OrderStatus) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
