package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Create registers the account through the public registration endpoint.
	Create(ctx context.Context, input entity.UserInput) (*entity.User, error)
	Update(ctx context.Context, id string, input entity.UserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
