package slice

import (
	"context"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
)

// CategoryState is a snapshot of the category slice.
type CategoryState struct {
	Items   []entity.Category
	Current *entity.Category
	Total   int
	Task    Task
}

// CategorySlice holds the product categories.
type CategorySlice struct {
	base
	repo repository.CategoryRepository

	items   []entity.Category
	current *entity.Category
	total   int
}

// NewCategorySlice creates an empty category slice.
func NewCategorySlice(repo repository.CategoryRepository, notifier Notifier) *CategorySlice {
	s := &CategorySlice{repo: repo}
	s.init("categories", notifier)
	s.reset()
	return s
}

func (s *CategorySlice) reset() {
	s.items = []entity.Category{}
	s.current = nil
	s.total = 0
	s.task = Task{}
}

// Reset returns the slice to its initial state.
func (s *CategorySlice) Reset() {
	s.update(s.reset)
}

// State returns a copy of the current category state.
func (s *CategorySlice) State() CategoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoryState{
		Items:   copyItems(s.items),
		Current: copyPtr(s.current),
		Total:   s.total,
		Task:    s.task,
	}
}

// FetchCategories replaces the loaded categories with the server's list.
func (s *CategorySlice) FetchCategories(ctx context.Context) error {
	_, err := run(ctx, &s.base, "Failed to fetch categories",
		func(ctx context.Context) ([]entity.Category, error) {
			return s.repo.List(ctx)
		},
		func(items []entity.Category) {
			s.items = copyItems(items)
			s.total = len(items)
		})
	return err
}

// CreateCategory adds a category and appends it locally.
func (s *CategorySlice) CreateCategory(ctx context.Context, input entity.CategoryInput) (*entity.Category, error) {
	c, err := run(ctx, &s.base, "Failed to create category",
		func(ctx context.Context) (*entity.Category, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Create(ctx, input)
		},
		func(c *entity.Category) {
			s.items = append(s.items, *c)
			s.total++
		})
	if err == nil {
		s.notifier.Success("Category created successfully!")
	}
	return c, err
}

// UpdateCategory saves a category and replaces the loaded copy.
func (s *CategorySlice) UpdateCategory(ctx context.Context, id string, input entity.CategoryInput) (*entity.Category, error) {
	c, err := run(ctx, &s.base, "Failed to update category",
		func(ctx context.Context) (*entity.Category, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Update(ctx, id, input)
		},
		func(c *entity.Category) {
			replaceByID(s.items, *c)
			if s.current != nil && s.current.ID == c.ID {
				s.current = copyPtr(c)
			}
		})
	if err == nil {
		s.notifier.Success("Category updated successfully!")
	}
	return c, err
}

// DeleteCategory removes a category.
func (s *CategorySlice) DeleteCategory(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to delete category",
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
		s.notifier.Success("Category deleted successfully!")
	}
	return err
}

// SetCurrent selects c for editing.
func (s *CategorySlice) SetCurrent(c *entity.Category) {
	s.update(func() { s.current = copyPtr(c) })
}

// ClearCurrent drops the selected category.
func (s *CategorySlice) ClearCurrent() {
	s.SetCurrent(nil)
}
