package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
)

const usersPath = "users"

type restUserRepository struct {
	client *httpclient.Client
}

func NewRestUserRepository(client *httpclient.Client) repository.UserRepository {
	return &restUserRepository{
		client: client,
	}
}

func (r *restUserRepository) List(ctx context.Context) ([]entity.User, error) {
	resp, err := r.client.Get(ctx, usersPath, nil)
	if err != nil {
		return nil, err
	}
	items, _, err := decodeList[entity.User](resp.Body, "users")
	return items, err
}

func (r *restUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	resp, err := r.client.Get(ctx, resourcePath(usersPath, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.User](resp.Body, "user")
}

func (r *restUserRepository) Create(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	resp, err := r.client.Post(ctx, "auth/register", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.User](resp.Body, "user")
}

func (r *restUserRepository) Update(ctx context.Context, id string, input entity.UserInput) (*entity.User, error) {
	resp, err := r.client.Put(ctx, resourcePath(usersPath, id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.User](resp.Body, "user")
}

func (r *restUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, resourcePath(usersPath, id))
	return err
}
