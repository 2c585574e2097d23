package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, input entity.CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, input entity.CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
