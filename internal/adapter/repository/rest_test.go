package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/internal/infrastructure/session"
	"adminconsole/internal/testutil/fakeapi"
	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/utils"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// newClient returns a client signed in as the seeded admin.
func newClient(t *testing.T) (*fakeapi.Server, *httpclient.Client) {
	t.Helper()
	api := fakeapi.New()
	t.Cleanup(api.Close)

	sess, err := session.New(session.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, sess.Set(api.IssueToken()))

	client, err := httpclient.New(httpclient.Config{BaseURL: api.URL()}, sess)
	require.NoError(t, err)
	return api, client
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "products/p1", resourcePath("products", "p1"))
	assert.Equal(t, "banners/b1/toggle", resourcePath("banners", "b1", "toggle"))
	assert.Equal(t, "users/a%2Fb", resourcePath("users", "a/b"))
}

func TestDecodeListShapes(t *testing.T) {
	items, total, err := decodeList[entity.Category]([]byte(`{"success":true,"data":{"categories":[{"_id":"c1"}]}}`), "categories")
	if assert.NoError(t, err) {
		assert.Len(t, items, 1)
		assert.Equal(t, 1, total)
	}

	items, _, err = decodeList[entity.Category]([]byte(`{"success":true,"data":{}}`), "categories")
	if assert.NoError(t, err) {
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}

	_, _, err = decodeList[entity.Category]([]byte(`{"success":true,"data":[{"_id":1}]}`), "categories")
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}

func TestAuthRepository(t *testing.T) {
	api, client := newClient(t)
	repo := NewRestAuthRepository(client)
	ctx := context.Background()

	result, err := repo.Login(ctx, entity.Credentials{Email: fakeapi.AdminEmail, Password: fakeapi.AdminPassword})
	if assert.NoError(t, err) {
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, fakeapi.AdminEmail, result.User.Email)
	}

	_, err = repo.Login(ctx, entity.Credentials{Email: fakeapi.AdminEmail, Password: "nope"})
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	assert.Equal(t, "Invalid email or password", apperrors.Message(err, ""))

	profile, err := repo.GetProfile(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, "admin", profile.Username)
	}

	updated, err := repo.UpdateProfile(ctx, entity.ProfileInput{Name: "Head Admin"})
	if assert.NoError(t, err) {
		assert.Equal(t, "Head Admin", updated.Name)
	}

	err = repo.ChangePassword(ctx, entity.PasswordChange{CurrentPassword: "wrong", NewPassword: "secret99"})
	assert.Equal(t, "Current password is incorrect", apperrors.Message(err, ""))
	assert.NoError(t, repo.ChangePassword(ctx, entity.PasswordChange{CurrentPassword: fakeapi.AdminPassword, NewPassword: "secret99"}))

	req, _ := api.LastRequest()
	assert.Equal(t, "/auth/change-password", req.Path)
}

func TestProductRepository(t *testing.T) {
	api, client := newClient(t)
	repo := NewRestProductRepository(client)
	ctx := context.Background()

	page, err := repo.List(ctx, entity.DefaultProductFilters(), utils.PaginationParams{Page: 1, Limit: 2})
	if assert.NoError(t, err) {
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 3, page.Total)
	}
	req, _ := api.LastRequest()
	assert.Contains(t, req.Query, "limit=2")
	assert.NotContains(t, req.Query, "status=")

	filters := entity.DefaultProductFilters()
	filters.Status = entity.StatusInactive
	page, err = repo.List(ctx, filters, utils.DefaultPagination())
	if assert.NoError(t, err) && assert.Len(t, page.Items, 1) {
		assert.Equal(t, "Novel", page.Items[0].Name)
		assert.Equal(t, "Books", page.Items[0].Category.Name)
	}

	created, err := repo.Create(ctx, entity.ProductInput{
		Name:     "Lamp",
		Price:    decimal.RequireFromString("19.99"),
		Category: page.Items[0].Category.ID,
		Stock:    3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("19.99")))

	got, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Lamp", got.Name)
	}

	toggled, err := repo.ToggleStatus(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.NotEqual(t, created.IsActive, toggled.IsActive)
	}

	assert.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	stats, err := repo.Stats(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, 3, stats.TotalProducts)
	}
}

func TestProductUploadImage(t *testing.T) {
	api, client := newClient(t)
	repo := NewRestProductRepository(client)

	url, err := repo.UploadImage(context.Background(), entity.Upload{Filename: "lamp.png", Content: pngHeader})
	if assert.NoError(t, err) {
		assert.NotEmpty(t, url)
	}

	req, _ := api.LastRequest()
	assert.Equal(t, "/products/upload", req.Path)
	assert.Equal(t, "image/png", req.Parts["image"])
}

func TestCategoryRepository(t *testing.T) {
	_, client := newClient(t)
	repo := NewRestCategoryRepository(client)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = repo.Create(ctx, entity.CategoryInput{Name: "Books"})
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	created, err := repo.Create(ctx, entity.CategoryInput{Name: "Garden"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, entity.CategoryInput{Name: "Garden & Outdoor"})
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Garden & Outdoor", updated.Name)
	}

	assert.NoError(t, repo.Delete(ctx, created.ID))
	assert.True(t, apperrors.Is(repo.Delete(ctx, created.ID), apperrors.CodeNotFound))
}

func TestOrderRepository(t *testing.T) {
	api, client := newClient(t)
	repo := NewRestOrderRepository(client)
	ctx := context.Background()

	filters := entity.DefaultOrderFilters()
	filters.Status = string(entity.OrderPending)
	page, err := repo.List(ctx, filters, utils.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)

	req, _ := api.LastRequest()
	assert.Contains(t, req.Query, "status=pending")

	id := page.Items[0].ID
	require.NoError(t, repo.UpdateStatus(ctx, id, entity.OrderShipped))

	order, err := repo.GetByID(ctx, id)
	if assert.NoError(t, err) {
		assert.Equal(t, entity.OrderShipped, order.Status)
	}

	err = repo.UpdateStatus(ctx, id, entity.OrderStatus("lost"))
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestUserRepository(t *testing.T) {
	_, client := newClient(t)
	repo := NewRestUserRepository(client)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	created, err := repo.Create(ctx, entity.UserInput{Username: "bob", Email: "bob@example.com", Role: entity.RoleUser, Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", created.Username)

	_, err = repo.Create(ctx, entity.UserInput{Username: "bob", Email: "bob@example.com", Role: entity.RoleUser, Password: "secret1"})
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	updated, err := repo.Update(ctx, created.ID, entity.UserInput{Username: "bobby", Email: "bob@example.com", Role: entity.RoleCustomer})
	if assert.NoError(t, err) {
		assert.Equal(t, "bobby", updated.Username)
		assert.Equal(t, entity.RoleCustomer, updated.Role)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "bobby", got.Username)
	}

	assert.NoError(t, repo.Delete(ctx, created.ID))
}

func TestBannerRepository(t *testing.T) {
	api, client := newClient(t)
	repo := NewRestBannerRepository(client)
	ctx := context.Background()

	banners, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, "Summer Sale", banners[0].Title)

	created, err := repo.Create(ctx, entity.BannerInput{
		Title: "Flash Deal",
		Link:  "/deals",
		Image: &entity.Upload{Filename: "deal.png", Content: pngHeader},
	})
	require.NoError(t, err)
	assert.Equal(t, "Flash Deal", created.Title)
	assert.Equal(t, 2, created.Order)
	assert.Contains(t, created.Image, "deal.png")

	req, _ := api.LastRequest()
	assert.Contains(t, req.ContentType, "multipart/form-data")
	assert.Equal(t, "image/png", req.Parts["image"])
	assert.Contains(t, req.Parts, "link")
	assert.NotContains(t, req.Parts, "description")

	// Without an image the update goes out as JSON.
	updated, err := repo.Update(ctx, created.ID, entity.BannerInput{Title: "Flash Deal!", IsActive: entity.BoolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	req, _ = api.LastRequest()
	assert.Contains(t, req.ContentType, "application/json")

	toggled, err := repo.ToggleStatus(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.True(t, toggled.IsActive)
	}

	require.NoError(t, repo.Reorder(ctx, []entity.BannerOrder{
		{ID: created.ID, Order: 0},
		{ID: banners[0].ID, Order: 1},
		{ID: banners[1].ID, Order: 2},
	}))
	banners, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, banners[0].ID)

	assert.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestLegalRepository(t *testing.T) {
	_, client := newClient(t)
	repo := NewRestLegalRepository(client)
	ctx := context.Background()

	docs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, len(entity.DocumentTypes))
	assert.Equal(t, "<p>cookiePolicy</p>", docs[entity.CookiePolicy].Content)
	assert.NotNil(t, docs[entity.CookiePolicy].LastUpdated)

	doc, err := repo.Update(ctx, entity.TermsOfService, "<p>new terms</p>")
	if assert.NoError(t, err) {
		assert.Equal(t, entity.TermsOfService, doc.Type)
		assert.Equal(t, "<p>new terms</p>", doc.Content)
	}

	doc, err = repo.GetByType(ctx, entity.TermsOfService)
	if assert.NoError(t, err) {
		assert.Equal(t, "<p>new terms</p>", doc.Content)
	}

	doc, err = repo.Create(ctx, entity.AboutUs, "<p>about</p>")
	if assert.NoError(t, err) {
		assert.Equal(t, entity.AboutUs, doc.Type)
	}
}

func TestDecodeDocumentWithoutDate(t *testing.T) {
	doc, err := decodeDocument(entity.PrivacyPolicy, []byte(`{"content":"x","lastUpdated":null}`))
	if assert.NoError(t, err) {
		assert.Equal(t, "x", doc.Content)
		assert.Nil(t, doc.LastUpdated)
	}
}
