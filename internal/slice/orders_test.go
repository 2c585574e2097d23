package slice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/domain/entity"
	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/utils"
)

func TestFetchOrdersWithStoredFilters(t *testing.T) {
	h := signedIn(t)
	orders := h.store.Orders
	ctx := context.Background()

	require.NoError(t, orders.FetchOrders(ctx, nil))
	assert.Equal(t, 3, orders.State().Total)

	orders.SetFilters(entity.OrderFilterPatch{Status: entity.StringPtr(string(entity.OrderPending))})
	require.NoError(t, orders.FetchOrders(ctx, nil))

	state := orders.State()
	assert.Equal(t, 2, state.Total)
	for _, o := range state.Items {
		assert.Equal(t, entity.OrderPending, o.Status)
	}
	req, _ := h.api.LastRequest()
	assert.Contains(t, req.Query, "status=pending")
}

func TestOrderFiltersResetPage(t *testing.T) {
	h := signedIn(t)
	orders := h.store.Orders

	orders.SetPagination(utils.PaginationParams{Page: 4, Limit: 20})
	orders.SetFilters(entity.OrderFilterPatch{DateRange: &entity.DateRange{From: time.Now().Add(-time.Hour), To: time.Now()}})

	state := orders.State()
	assert.Equal(t, utils.PaginationParams{Page: 1, Limit: 20}, state.Pagination)
	assert.NotNil(t, state.Filters.DateRange)

	orders.ClearFilters()
	assert.Equal(t, entity.DefaultOrderFilters(), orders.State().Filters)
}

func TestUpdateOrderStatusPatchesLocalCopies(t *testing.T) {
	h := signedIn(t)
	orders := h.store.Orders
	ctx := context.Background()

	require.NoError(t, orders.FetchOrders(ctx, nil))
	target := orders.State().Items[0]
	_, err := orders.FetchOrderByID(ctx, target.ID)
	require.NoError(t, err)

	require.NoError(t, orders.UpdateOrderStatus(ctx, target.ID, entity.OrderDelivered))

	state := orders.State()
	assert.Equal(t, entity.OrderDelivered, state.Items[0].Status)
	assert.Equal(t, target.Amount.String(), state.Items[0].Amount.String())
	assert.Equal(t, entity.OrderDelivered, state.Current.Status)
	assert.Contains(t, h.messages(NotifySuccess), "Order status updated successfully!")
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	h := signedIn(t)

	err := h.store.Orders.UpdateOrderStatus(context.Background(), "o1", entity.OrderStatus("lost"))
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Equal(t, 0, h.api.RequestCount())
}
