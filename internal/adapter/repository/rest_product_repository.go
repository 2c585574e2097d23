package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
	"adminconsole/pkg/utils"
)

const productsPath = "products"

type restProductRepository struct {
	client *httpclient.Client
}

func NewRestProductRepository(client *httpclient.Client) repository.ProductRepository {
	return &restProductRepository{
		client: client,
	}
}

func (r *restProductRepository) List(ctx context.Context, filters entity.ProductFilters, pagination utils.PaginationParams) (*entity.ListResult[entity.Product], error) {
	q := url.Values{}
	filters.Apply(q)
	pagination.Apply(q)

	resp, err := r.client.Get(ctx, productsPath, q)
	if err != nil {
		return nil, err
	}

	items, total, err := decodeList[entity.Product](resp.Body, "products")
	if err != nil {
		return nil, err
	}
	return &entity.ListResult[entity.Product]{Items: items, Total: total}, nil
}

func (r *restProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	resp, err := r.client.Get(ctx, resourcePath(productsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Product](resp.Body, "product")
}

func (r *restProductRepository) Create(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	resp, err := r.client.Post(ctx, productsPath, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Product](resp.Body, "product")
}

func (r *restProductRepository) Update(ctx context.Context, id string, input entity.ProductInput) (*entity.Product, error) {
	resp, err := r.client.Put(ctx, resourcePath(productsPath, id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Product](resp.Body, "product")
}

func (r *restProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, resourcePath(productsPath, id))
	return err
}

func (r *restProductRepository) ToggleStatus(ctx context.Context, id string) (*entity.Product, error) {
	resp, err := r.client.Patch(ctx, resourcePath(productsPath, id, "toggle-status"), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Product](resp.Body, "product")
}

func (r *restProductRepository) UploadImage(ctx context.Context, image entity.Upload) (string, error) {
	field := image.FieldName
	if field == "" {
		field = "image"
	}
	body := &httpclient.Multipart{}
	body.AddFile(field, image.Filename, image.Content)

	resp, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   productsPath + "/upload",
		Body:   body,
	})
	if err != nil {
		return "", err
	}

	data := gjson.ParseBytes(resp.Data())
	for _, path := range []string{"url", "imageUrl", "image", "path"} {
		if v := data.Get(path); v.Type == gjson.String && v.String() != "" {
			return v.String(), nil
		}
	}
	return "", errors.Internal("Upload response did not include an image URL", nil)
}

func (r *restProductRepository) Stats(ctx context.Context) (*entity.ProductStats, error) {
	resp, err := r.client.Get(ctx, productsPath+"/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats entity.ProductStats
	if err := response.Decode(response.Field(resp.Body, "stats"), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
