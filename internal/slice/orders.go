package slice

import (
	"context"
	"fmt"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/utils"
)

// OrderState is a snapshot of the order slice.
type OrderState struct {
	Items      []entity.Order
	Current    *entity.Order
	Total      int
	Filters    entity.OrderFilters
	Pagination utils.PaginationParams
	Task       Task
}

// OrderQuery overrides the stored filters and pagination for one fetch.
type OrderQuery struct {
	Filters    entity.OrderFilters
	Pagination utils.PaginationParams
}

// OrderSlice holds a page of orders with its filters.
type OrderSlice struct {
	base
	repo repository.OrderRepository

	items      []entity.Order
	current    *entity.Order
	total      int
	filters    entity.OrderFilters
	pagination utils.PaginationParams
}

// NewOrderSlice creates an order slice with default filters.
func NewOrderSlice(repo repository.OrderRepository, notifier Notifier) *OrderSlice {
	s := &OrderSlice{repo: repo}
	s.init("orders", notifier)
	s.reset()
	return s
}

func (s *OrderSlice) reset() {
	s.items = []entity.Order{}
	s.current = nil
	s.total = 0
	s.filters = entity.DefaultOrderFilters()
	s.pagination = utils.DefaultPagination()
	s.task = Task{}
}

// Reset returns the slice to its initial state.
func (s *OrderSlice) Reset() {
	s.update(s.reset)
}

// State returns a copy of the current order state.
func (s *OrderSlice) State() OrderState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filters := s.filters
	filters.DateRange = copyPtr(s.filters.DateRange)
	return OrderState{
		Items:      copyItems(s.items),
		Current:    copyPtr(s.current),
		Total:      s.total,
		Filters:    filters,
		Pagination: s.pagination,
		Task:       s.task,
	}
}

// FetchOrders replaces the collection with one page. A nil query uses the
// stored filters and pagination.
func (s *OrderSlice) FetchOrders(ctx context.Context, query *OrderQuery) error {
	s.mu.RLock()
	q := OrderQuery{Filters: s.filters, Pagination: s.pagination}
	s.mu.RUnlock()
	if query != nil {
		q = *query
	}

	_, err := run(ctx, &s.base, "Failed to fetch orders",
		func(ctx context.Context) (*entity.ListResult[entity.Order], error) {
			return s.repo.List(ctx, q.Filters, q.Pagination)
		},
		func(res *entity.ListResult[entity.Order]) {
			s.items = copyItems(res.Items)
			s.total = res.Total
		})
	return err
}

// FetchOrderByID loads one order into Current.
func (s *OrderSlice) FetchOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	return run(ctx, &s.base, "Failed to fetch order",
		func(ctx context.Context) (*entity.Order, error) {
			return s.repo.GetByID(ctx, id)
		},
		func(o *entity.Order) {
			s.current = copyPtr(o)
		})
}

// UpdateOrderStatus moves an order to status and patches only the status
// field of the local copies.
func (s *OrderSlice) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := run(ctx, &s.base, "Failed to update order status",
		func(ctx context.Context) (entity.OrderStatus, error) {
			if !status.Valid() {
				return "", apperrors.Validation(fmt.Sprintf("Invalid order status %q", status), nil)
			}
			return status, s.repo.UpdateStatus(ctx, id, status)
		},
		func(status entity.OrderStatus) {
			if i := indexByID(s.items, id); i >= 0 {
				s.items[i].Status = status
			}
			if s.current != nil && s.current.ID == id {
				s.current.Status = status
			}
		})
	if err == nil {
		s.notifier.Success("Order status updated successfully!")
	}
	return err
}

// SetFilters merges patch into the filters and goes back to page 1.
func (s *OrderSlice) SetFilters(patch entity.OrderFilterPatch) {
	s.update(func() {
		s.filters = s.filters.Merge(patch)
		s.pagination.Page = utils.DefaultPage
	})
}

// SetPagination merges patch into the stored pagination.
func (s *OrderSlice) SetPagination(patch utils.PaginationParams) {
	s.update(func() {
		s.pagination = s.pagination.Merge(patch).Normalize()
	})
}

// ClearFilters restores the default filters.
func (s *OrderSlice) ClearFilters() {
	s.update(func() {
		s.filters = entity.DefaultOrderFilters()
		s.pagination.Page = utils.DefaultPage
	})
}

// SetCurrent selects o.
func (s *OrderSlice) SetCurrent(o *entity.Order) {
	s.update(func() { s.current = copyPtr(o) })
}

// ClearCurrent drops the selected order.
func (s *OrderSlice) ClearCurrent() {
	s.SetCurrent(nil)
}
