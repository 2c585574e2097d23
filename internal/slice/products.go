package slice

import (
	"context"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/pkg/utils"
)

// ProductState is a snapshot of the product slice.
type ProductState struct {
	Items      []entity.Product
	Current    *entity.Product
	Total      int
	Filters    entity.ProductFilters
	Pagination utils.PaginationParams
	Stats      *entity.ProductStats
	Task       Task
}

// ProductQuery overrides the stored filters and pagination for one fetch.
type ProductQuery struct {
	Filters    entity.ProductFilters
	Pagination utils.PaginationParams
}

// ProductSlice holds a page of products with its filters.
type ProductSlice struct {
	base
	repo repository.ProductRepository

	items      []entity.Product
	current    *entity.Product
	total      int
	filters    entity.ProductFilters
	pagination utils.PaginationParams
	stats      *entity.ProductStats
}

// NewProductSlice creates a product slice with default filters.
func NewProductSlice(repo repository.ProductRepository, notifier Notifier) *ProductSlice {
	s := &ProductSlice{repo: repo}
	s.init("products", notifier)
	s.reset()
	return s
}

func (s *ProductSlice) reset() {
	s.items = []entity.Product{}
	s.current = nil
	s.total = 0
	s.filters = entity.DefaultProductFilters()
	s.pagination = utils.DefaultPagination()
	s.stats = nil
	s.task = Task{}
}

// Reset returns the slice to its initial state.
func (s *ProductSlice) Reset() {
	s.update(s.reset)
}

// State returns a copy of the current product state.
func (s *ProductSlice) State() ProductState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.Product, len(s.items))
	for i, p := range s.items {
		items[i] = p.Clone()
	}
	var current *entity.Product
	if s.current != nil {
		c := s.current.Clone()
		current = &c
	}
	return ProductState{
		Items:      items,
		Current:    current,
		Total:      s.total,
		Filters:    s.filters,
		Pagination: s.pagination,
		Stats:      copyPtr(s.stats),
		Task:       s.task,
	}
}

// FetchProducts replaces the collection with one page from the server. A nil
// query uses the stored filters and pagination.
func (s *ProductSlice) FetchProducts(ctx context.Context, query *ProductQuery) error {
	s.mu.RLock()
	q := ProductQuery{Filters: s.filters, Pagination: s.pagination}
	s.mu.RUnlock()
	if query != nil {
		q = *query
	}

	_, err := run(ctx, &s.base, "Failed to fetch products",
		func(ctx context.Context) (*entity.ListResult[entity.Product], error) {
			return s.repo.List(ctx, q.Filters, q.Pagination)
		},
		func(res *entity.ListResult[entity.Product]) {
			s.items = copyItems(res.Items)
			s.total = res.Total
		})
	return err
}

// FetchProductByID loads one product into Current.
func (s *ProductSlice) FetchProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return run(ctx, &s.base, "Failed to fetch product",
		func(ctx context.Context) (*entity.Product, error) {
			return s.repo.GetByID(ctx, id)
		},
		func(p *entity.Product) {
			c := p.Clone()
			s.current = &c
		})
}

// CreateProduct adds the server's copy of the new product at the front of the list.
func (s *ProductSlice) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	p, err := run(ctx, &s.base, "Failed to create product",
		func(ctx context.Context) (*entity.Product, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Create(ctx, input)
		},
		func(p *entity.Product) {
			s.items = prepend(s.items, p.Clone())
			s.total++
		})
	if err == nil {
		s.notifier.Success("Product created successfully!")
	}
	return p, err
}

// UpdateProduct replaces the matching product wholesale. Products that are not
// loaded locally are left alone.
func (s *ProductSlice) UpdateProduct(ctx context.Context, id string, input entity.ProductInput) (*entity.Product, error) {
	p, err := run(ctx, &s.base, "Failed to update product",
		func(ctx context.Context) (*entity.Product, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Update(ctx, id, input)
		},
		func(p *entity.Product) {
			replaceByID(s.items, p.Clone())
			if s.current != nil && s.current.ID == p.ID {
				c := p.Clone()
				s.current = &c
			}
		})
	if err == nil {
		s.notifier.Success("Product updated successfully!")
	}
	return p, err
}

// DeleteProduct removes a product. The total only drops when it was loaded.
func (s *ProductSlice) DeleteProduct(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to delete product",
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
		s.notifier.Success("Product deleted successfully!")
	}
	return err
}

// ToggleProductStatus flips the active flag and patches only that field locally.
func (s *ProductSlice) ToggleProductStatus(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to update product status",
		func(ctx context.Context) (*entity.Product, error) {
			return s.repo.ToggleStatus(ctx, id)
		},
		func(p *entity.Product) {
			if i := indexByID(s.items, id); i >= 0 {
				s.items[i].IsActive = p.IsActive
			}
			if s.current != nil && s.current.ID == id {
				s.current.IsActive = p.IsActive
			}
		})
	if err == nil {
		s.notifier.Success("Product status updated successfully!")
	}
	return err
}

// UploadProductImage returns the stored image URL. It does not touch the
// loading state; only a failure is recorded.
func (s *ProductSlice) UploadProductImage(ctx context.Context, image entity.Upload) (string, error) {
	url, err := s.repo.UploadImage(ctx, image)
	if err != nil {
		s.fail(err, "Failed to upload image")
		return "", err
	}
	return url, nil
}

// FetchProductStats loads the catalog counters.
func (s *ProductSlice) FetchProductStats(ctx context.Context) (*entity.ProductStats, error) {
	return run(ctx, &s.base, "Failed to fetch product stats",
		func(ctx context.Context) (*entity.ProductStats, error) {
			return s.repo.Stats(ctx)
		},
		func(st *entity.ProductStats) {
			s.stats = copyPtr(st)
		})
}

// SetFilters merges patch into the filters and returns to the first page.
func (s *ProductSlice) SetFilters(patch entity.ProductFilterPatch) {
	s.update(func() {
		s.filters = s.filters.Merge(patch)
		s.pagination.Page = utils.DefaultPage
	})
}

// SetPagination merges patch into the stored pagination.
func (s *ProductSlice) SetPagination(patch utils.PaginationParams) {
	s.update(func() {
		s.pagination = s.pagination.Merge(patch).Normalize()
	})
}

// ClearFilters restores the default filters.
func (s *ProductSlice) ClearFilters() {
	s.update(func() {
		s.filters = entity.DefaultProductFilters()
		s.pagination.Page = utils.DefaultPage
	})
}

// SetCurrent selects p for editing.
func (s *ProductSlice) SetCurrent(p *entity.Product) {
	s.update(func() {
		if p == nil {
			s.current = nil
			return
		}
		c := p.Clone()
		s.current = &c
	})
}

// ClearCurrent drops the selected product.
func (s *ProductSlice) ClearCurrent() {
	s.SetCurrent(nil)
}
