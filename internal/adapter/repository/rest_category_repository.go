package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
)

const categoriesPath = "categories"

type restCategoryRepository struct {
	client *httpclient.Client
}

func NewRestCategoryRepository(client *httpclient.Client) repository.CategoryRepository {
	return &restCategoryRepository{
		client: client,
	}
}

func (r *restCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	resp, err := r.client.Get(ctx, categoriesPath, nil)
	if err != nil {
		return nil, err
	}
	items, _, err := decodeList[entity.Category](resp.Body, "categories")
	return items, err
}

func (r *restCategoryRepository) Create(ctx context.Context, input entity.CategoryInput) (*entity.Category, error) {
	resp, err := r.client.Post(ctx, categoriesPath, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Category](resp.Body, "category")
}

func (r *restCategoryRepository) Update(ctx context.Context, id string, input entity.CategoryInput) (*entity.Category, error) {
	resp, err := r.client.Put(ctx, resourcePath(categoriesPath, id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Category](resp.Body, "category")
}

func (r *restCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, resourcePath(categoriesPath, id))
	return err
}
