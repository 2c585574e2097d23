package repository

import (
	"context"
	"net/url"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/pkg/utils"
)

const ordersPath = "orders"

type restOrderRepository struct {
	client *httpclient.Client
}

func NewRestOrderRepository(client *httpclient.Client) repository.OrderRepository {
	return &restOrderRepository{
		client: client,
	}
}

func (r *restOrderRepository) List(ctx context.Context, filters entity.OrderFilters, pagination utils.PaginationParams) (*entity.ListResult[entity.Order], error) {
	q := url.Values{}
	filters.Apply(q)
	pagination.Apply(q)

	resp, err := r.client.Get(ctx, ordersPath, q)
	if err != nil {
		return nil, err
	}

	items, total, err := decodeList[entity.Order](resp.Body, "orders")
	if err != nil {
		return nil, err
	}
	return &entity.ListResult[entity.Order]{Items: items, Total: total}, nil
}

func (r *restOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	resp, err := r.client.Get(ctx, resourcePath(ordersPath, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Order](resp.Body, "order")
}

func (r *restOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := r.client.Put(ctx, resourcePath(ordersPath, id, "status"), map[string]entity.OrderStatus{
		"status": status,
	})
	return err
}
