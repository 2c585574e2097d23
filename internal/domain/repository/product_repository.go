package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/utils"
)

type ProductRepository interface {
	List(ctx context.Context, filters entity.ProductFilters, pagination utils.PaginationParams) (*entity.ListResult[entity.Product], error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, input entity.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id string, input entity.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*entity.Product, error)
	// UploadImage stores an image and returns its public URL.
	UploadImage(ctx context.Context, image entity.Upload) (string, error)
	Stats(ctx context.Context) (*entity.ProductStats, error)
}
