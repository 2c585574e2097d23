package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/utils"
)

type OrderRepository interface {
	List(ctx context.Context, filters entity.OrderFilters, pagination utils.PaginationParams) (*entity.ListResult[entity.Order], error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
