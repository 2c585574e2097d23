package slice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/domain/entity"
	apperrors "adminconsole/pkg/errors"
)

func bannerIDs(items []entity.Banner) []string {
	ids := make([]string, len(items))
	for i, b := range items {
		ids[i] = b.ID
	}
	return ids
}

func TestCreateBannerRequiresImage(t *testing.T) {
	h := signedIn(t)

	_, err := h.store.Banners.CreateBanner(context.Background(), entity.BannerInput{Title: "No picture"})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Equal(t, "Please select an image", h.store.Banners.State().Task.Error())
	assert.Equal(t, 0, h.api.RequestCount())
}

func TestBannerLifecycle(t *testing.T) {
	h := signedIn(t)
	banners := h.store.Banners
	ctx := context.Background()

	require.NoError(t, banners.FetchBanners(ctx))
	assert.Equal(t, 2, banners.State().Total)

	created, err := banners.CreateBanner(ctx, entity.BannerInput{
		Title: "Flash Deal",
		Image: &entity.Upload{Filename: "deal.png", Content: pngHeader},
	})
	require.NoError(t, err)
	state := banners.State()
	assert.Equal(t, 3, state.Total)
	assert.Equal(t, created.ID, state.Items[2].ID)

	_, err = banners.UpdateBanner(ctx, created.ID, entity.BannerInput{Title: "Flash Deal!"})
	require.NoError(t, err)
	assert.Equal(t, "Flash Deal!", banners.State().Items[2].Title)

	require.NoError(t, banners.ToggleBannerStatus(ctx, created.ID))
	assert.False(t, banners.State().Items[2].IsActive)

	require.NoError(t, banners.DeleteBanner(ctx, created.ID))
	assert.Equal(t, 2, banners.State().Total)
}

func TestReorderBanners(t *testing.T) {
	h := signedIn(t)
	banners := h.store.Banners
	ctx := context.Background()

	_, err := banners.CreateBanner(ctx, entity.BannerInput{
		Title: "Clearance",
		Image: &entity.Upload{Filename: "c.png", Content: pngHeader},
	})
	require.NoError(t, err)
	require.NoError(t, banners.FetchBanners(ctx))

	ids := bannerIDs(banners.State().Items)
	require.Len(t, ids, 3)
	a, b, c := ids[0], ids[1], ids[2]

	require.NoError(t, banners.ReorderBanners(ctx, OrderFromIDs([]string{c, a, b})))

	state := banners.State()
	assert.Equal(t, []string{c, a, b}, bannerIDs(state.Items))
	for i, item := range state.Items {
		assert.Equal(t, i, item.Order)
	}

	// The server agrees.
	require.NoError(t, banners.FetchBanners(ctx))
	assert.Equal(t, []string{c, a, b}, bannerIDs(banners.State().Items))
}

func TestReorderBannersRejectsPartialOrdering(t *testing.T) {
	h := signedIn(t)
	banners := h.store.Banners
	ctx := context.Background()

	require.NoError(t, banners.FetchBanners(ctx))
	ids := bannerIDs(banners.State().Items)
	requests := h.api.RequestCount()

	err := banners.ReorderBanners(ctx, []entity.BannerOrder{{ID: ids[0], Order: 0}})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	err = banners.ReorderBanners(ctx, []entity.BannerOrder{{ID: ids[0], Order: 0}, {ID: ids[1], Order: 0}})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	err = banners.ReorderBanners(ctx, []entity.BannerOrder{{ID: ids[0], Order: 1}, {ID: "ghost", Order: 0}})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	assert.Equal(t, requests, h.api.RequestCount())
	assert.Equal(t, ids, bannerIDs(banners.State().Items))
}

func TestOrderFromIDs(t *testing.T) {
	assert.Equal(t, []entity.BannerOrder{{ID: "x", Order: 0}, {ID: "y", Order: 1}}, OrderFromIDs([]string{"x", "y"}))
	assert.Empty(t, OrderFromIDs(nil))
}
