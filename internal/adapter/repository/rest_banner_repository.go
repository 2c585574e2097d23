package repository

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
)

const (
	bannersPath = "banners"
	dateLayout  = "2006-01-02"
)

type restBannerRepository struct {
	client *httpclient.Client
}

func NewRestBannerRepository(client *httpclient.Client) repository.BannerRepository {
	return &restBannerRepository{
		client: client,
	}
}

// bannerPayload is the JSON form used when no image is attached.
type bannerPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	ButtonText  string     `json:"buttonText,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
	Order       *int       `json:"order,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

func (r *restBannerRepository) List(ctx context.Context) ([]entity.Banner, error) {
	resp, err := r.client.Get(ctx, bannersPath, nil)
	if err != nil {
		return nil, err
	}
	items, _, err := decodeList[entity.Banner](resp.Body, "banners")
	return items, err
}

func (r *restBannerRepository) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	resp, err := r.client.Get(ctx, resourcePath(bannersPath, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Banner](resp.Body, "banner")
}

func (r *restBannerRepository) Create(ctx context.Context, input entity.BannerInput) (*entity.Banner, error) {
	resp, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   bannersPath,
		Body:   bannerBody(input),
	})
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Banner](resp.Body, "banner")
}

func (r *restBannerRepository) Update(ctx context.Context, id string, input entity.BannerInput) (*entity.Banner, error) {
	resp, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   resourcePath(bannersPath, id),
		Body:   bannerBody(input),
	})
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Banner](resp.Body, "banner")
}

func (r *restBannerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, resourcePath(bannersPath, id))
	return err
}

func (r *restBannerRepository) ToggleStatus(ctx context.Context, id string) (*entity.Banner, error) {
	resp, err := r.client.Patch(ctx, resourcePath(bannersPath, id, "toggle"), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Banner](resp.Body, "banner")
}

func (r *restBannerRepository) Reorder(ctx context.Context, orders []entity.BannerOrder) error {
	_, err := r.client.Post(ctx, bannersPath+"/reorder", map[string][]entity.BannerOrder{
		"bannerOrders": orders,
	})
	return err
}

// bannerBody sends a multipart form when an image is attached and JSON otherwise.
// Empty form fields are left out.
func bannerBody(input entity.BannerInput) interface{} {
	if input.Image == nil {
		return bannerPayload{
			Title:       input.Title,
			Description: input.Description,
			Link:        input.Link,
			ButtonText:  input.ButtonText,
			IsActive:    input.IsActive,
			Order:       input.Order,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		}
	}

	form := &httpclient.Multipart{}
	add := func(name, value string) {
		if value != "" {
			form.AddField(name, value)
		}
	}
	add("title", input.Title)
	add("description", input.Description)
	add("link", input.Link)
	add("buttonText", input.ButtonText)
	if input.IsActive != nil {
		add("isActive", strconv.FormatBool(*input.IsActive))
	}
	if input.Order != nil {
		add("order", strconv.Itoa(*input.Order))
	}
	if input.StartDate != nil {
		add("startDate", input.StartDate.Format(dateLayout))
	}
	if input.EndDate != nil {
		add("endDate", input.EndDate.Format(dateLayout))
	}

	field := input.Image.FieldName
	if field == "" {
		field = "image"
	}
	form.AddFile(field, input.Image.Filename, input.Image.Content)
	return form
}
