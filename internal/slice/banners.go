package slice

import (
	"context"
	"sort"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	apperrors "adminconsole/pkg/errors"
)

// BannerState is a snapshot of the banner slice.
type BannerState struct {
	Items   []entity.Banner
	Current *entity.Banner
	Total   int
	Task    Task
}

// BannerSlice holds the homepage banners.
type BannerSlice struct {
	base
	repo repository.BannerRepository

	items   []entity.Banner
	current *entity.Banner
	total   int
}

// NewBannerSlice creates an empty banner slice.
func NewBannerSlice(repo repository.BannerRepository, notifier Notifier) *BannerSlice {
	s := &BannerSlice{repo: repo}
	s.init("banners", notifier)
	s.reset()
	return s
}

func (s *BannerSlice) reset() {
	s.items = []entity.Banner{}
	s.current = nil
	s.total = 0
	s.task = Task{}
}

// Reset returns the slice to its initial state.
func (s *BannerSlice) Reset() {
	s.update(s.reset)
}

// State returns a copy of the current banner state.
func (s *BannerSlice) State() BannerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BannerState{
		Items:   copyItems(s.items),
		Current: copyPtr(s.current),
		Total:   s.total,
		Task:    s.task,
	}
}

// FetchBanners replaces the collection, kept in ascending display order.
func (s *BannerSlice) FetchBanners(ctx context.Context) error {
	_, err := run(ctx, &s.base, "Failed to fetch banners",
		func(ctx context.Context) ([]entity.Banner, error) {
			return s.repo.List(ctx)
		},
		func(items []entity.Banner) {
			s.items = copyItems(items)
			sortByOrder(s.items)
			s.total = len(items)
		})
	return err
}

// FetchBannerByID loads one banner into Current.
func (s *BannerSlice) FetchBannerByID(ctx context.Context, id string) (*entity.Banner, error) {
	return run(ctx, &s.base, "Failed to fetch banner",
		func(ctx context.Context) (*entity.Banner, error) {
			return s.repo.GetByID(ctx, id)
		},
		func(b *entity.Banner) {
			s.current = copyPtr(b)
		})
}

// CreateBanner uploads a new banner; an image is mandatory.
func (s *BannerSlice) CreateBanner(ctx context.Context, input entity.BannerInput) (*entity.Banner, error) {
	b, err := run(ctx, &s.base, "Failed to create banner",
		func(ctx context.Context) (*entity.Banner, error) {
			if input.Image == nil || len(input.Image.Content) == 0 {
				return nil, apperrors.Validation("Please select an image", nil)
			}
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Create(ctx, input)
		},
		func(b *entity.Banner) {
			s.items = append(s.items, *b)
			s.total++
		})
	if err == nil {
		s.notifier.Success("Banner created successfully!")
	}
	return b, err
}

// UpdateBanner saves a banner and replaces the loaded copy.
func (s *BannerSlice) UpdateBanner(ctx context.Context, id string, input entity.BannerInput) (*entity.Banner, error) {
	b, err := run(ctx, &s.base, "Failed to update banner",
		func(ctx context.Context) (*entity.Banner, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Update(ctx, id, input)
		},
		func(b *entity.Banner) {
			replaceByID(s.items, *b)
			if s.current != nil && s.current.ID == b.ID {
				s.current = copyPtr(b)
			}
		})
	if err == nil {
		s.notifier.Success("Banner updated successfully!")
	}
	return b, err
}

// DeleteBanner removes a banner.
func (s *BannerSlice) DeleteBanner(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to delete banner",
		func(ctx context.Context) (string, error) {
			return id, s.repo.Delete(ctx, id)
		},
		func(id string) {
			var removed bool
			if s.items, removed = removeByID(s.items, id); removed {
				s.total = decrement(s.total)
			}
			if s.current != nil && s.current.ID == id {
				s.current = nil
			}
		})
	if err == nil {
		s.notifier.Success("Banner deleted successfully!")
	}
	return err
}

// ToggleBannerStatus patches only the active flag of the local copies.
func (s *BannerSlice) ToggleBannerStatus(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to update banner status",
		func(ctx context.Context) (*entity.Banner, error) {
			return s.repo.ToggleStatus(ctx, id)
		},
		func(b *entity.Banner) {
			if i := indexByID(s.items, id); i >= 0 {
				s.items[i].IsActive = b.IsActive
			}
			if s.current != nil && s.current.ID == id {
				s.current.IsActive = b.IsActive
			}
		})
	if err == nil {
		s.notifier.Success("Banner status updated successfully!")
	}
	return err
}

// ReorderBanners overwrites the display order of every loaded banner. orders
// must name each loaded banner exactly once with positions 0..n-1.
func (s *BannerSlice) ReorderBanners(ctx context.Context, orders []entity.BannerOrder) error {
	s.mu.RLock()
	invalid := checkOrdering(s.items, orders)
	s.mu.RUnlock()

	orders = append([]entity.BannerOrder(nil), orders...)
	_, err := run(ctx, &s.base, "Failed to reorder banners",
		func(ctx context.Context) (struct{}, error) {
			if invalid != nil {
				return struct{}{}, invalid
			}
			return struct{}{}, s.repo.Reorder(ctx, orders)
		},
		func(struct{}) {
			for _, o := range orders {
				if i := indexByID(s.items, o.ID); i >= 0 {
					s.items[i].Order = o.Order
				}
			}
			sortByOrder(s.items)
		})
	if err == nil {
		s.notifier.Success("Banners reordered successfully!")
	}
	return err
}

// SetCurrent selects b for editing.
func (s *BannerSlice) SetCurrent(b *entity.Banner) {
	s.update(func() { s.current = copyPtr(b) })
}

// ClearCurrent drops the selected banner.
func (s *BannerSlice) ClearCurrent() {
	s.SetCurrent(nil)
}

// OrderFromIDs assigns each id its index as display position.
func OrderFromIDs(ids []string) []entity.BannerOrder {
	orders := make([]entity.BannerOrder, len(ids))
	for i, id := range ids {
		orders[i] = entity.BannerOrder{ID: id, Order: i}
	}
	return orders
}

func checkOrdering(items []entity.Banner, orders []entity.BannerOrder) error {
	invalid := apperrors.Validation("Reorder must list every banner exactly once with positions 0 to n-1", nil)
	if len(orders) != len(items) {
		return invalid
	}
	seenID := make(map[string]bool, len(orders))
	seenPos := make([]bool, len(orders))
	for _, o := range orders {
		if o.Order < 0 || o.Order >= len(orders) || seenPos[o.Order] || seenID[o.ID] {
			return invalid
		}
		if indexByID(items, o.ID) < 0 {
			return invalid
		}
		seenID[o.ID] = true
		seenPos[o.Order] = true
	}
	return nil
}

func sortByOrder(items []entity.Banner) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}
