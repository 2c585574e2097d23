package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
)

type BannerRepository interface {
	List(ctx context.Context) ([]entity.Banner, error)
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	Create(ctx context.Context, input entity.BannerInput) (*entity.Banner, error)
	Update(ctx context.Context, id string, input entity.BannerInput) (*entity.Banner, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*entity.Banner, error)
	Reorder(ctx context.Context, orders []entity.BannerOrder) error
}
