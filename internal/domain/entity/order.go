package entity

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CustomerRef is the customer who placed an order.
type CustomerRef struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Order struct {
	ID          string          `json:"_id"`
	OrderNumber string          `json:"orderNumber,omitempty"`
	Status      OrderStatus     `json:"status"`
	Amount      decimal.Decimal `json:"totalAmount"`
	Customer    CustomerRef     `json:"user"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (o Order) GetID() string { return o.ID }

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type OrderFilters struct {
	Status    string     `json:"status"`
	DateRange *DateRange `json:"dateRange"`
	Customer  string     `json:"customer"`
}

// DefaultOrderFilters matches every order.
func DefaultOrderFilters() OrderFilters {
	return OrderFilters{Status: StatusAll}
}

type OrderFilterPatch struct {
	Status    *string
	DateRange *DateRange
	Customer  *string
}

func (f OrderFilters) Merge(p OrderFilterPatch) OrderFilters {
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.DateRange != nil {
		r := *p.DateRange
		f.DateRange = &r
	}
	if p.Customer != nil {
		f.Customer = *p.Customer
	}
	return f
}

func (f OrderFilters) Apply(q url.Values) {
	if f.Status != "" && f.Status != StatusAll {
		q.Set("status", f.Status)
	}
	if f.Customer != "" {
		q.Set("customer", f.Customer)
	}
	if f.DateRange != nil {
		q.Set("from", f.DateRange.From.Format(time.RFC3339))
		q.Set("to", f.DateRange.To.Format(time.RFC3339))
	}
}
