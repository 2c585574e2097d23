package fakeapi

import (
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
	"adminconsole/pkg/utils"
)

func (s *Server) listProducts(c echo.Context) error {
	q := c.QueryParams()
	search := strings.ToLower(q.Get("search"))
	category := q.Get("category")
	status := q.Get("status")
	page := utils.ParsePagination(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []entity.Product{}
	for _, p := range s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && p.Category.ID != category {
			continue
		}
		if status == entity.StatusActive && !p.IsActive || status == entity.StatusInactive && p.IsActive {
			continue
		}
		matched = append(matched, p)
	}

	less := func(a, b entity.Product) bool {
		switch q.Get("sortBy") {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price.LessThan(b.Price)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	desc := q.Get("sortOrder") != "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return less(matched[j], matched[i])
		}
		return less(matched[i], matched[j])
	})

	return response.Success(c, map[string]interface{}{
		"products": paginate(matched, page),
		"total":    len(matched),
		"page":     page.Page,
		"limit":    page.Limit,
	})
}

func (s *Server) getProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	return response.Success(c, s.products[i])
}

func (s *Server) createProduct(c echo.Context) error {
	var req entity.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := entity.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	if err := s.applyProduct(&p, req); err != nil {
		return response.Error(c, err)
	}
	s.products = append(s.products, p)
	return response.Created(c, p)
}

func (s *Server) updateProduct(c echo.Context) error {
	var req entity.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	p := s.products[i]
	if err := s.applyProduct(&p, req); err != nil {
		return response.Error(c, err)
	}
	s.products[i] = p
	return response.Success(c, p)
}

func (s *Server) applyProduct(p *entity.Product, req entity.ProductInput) error {
	ci := indexOf(s.categories, req.Category)
	if ci < 0 {
		return errors.BadRequest("Category does not exist", nil)
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Category = entity.CategoryRef{ID: s.categories[ci].ID, Name: s.categories[ci].Name}
	p.Stock = req.Stock
	p.Images = append([]string{}, req.Images...)
	p.IsActive = req.IsActive == nil || *req.IsActive
	p.UpdatedAt = s.now()
	return nil
}

func (s *Server) deleteProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.products, ok = without(s.products, c.Param("id")); !ok {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (s *Server) toggleProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	s.products[i].IsActive = !s.products[i].IsActive
	s.products[i].UpdatedAt = s.now()
	return response.Success(c, map[string]interface{}{"product": s.products[i]})
}

func (s *Server) productStats(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entity.ProductStats{TotalProducts: len(s.products)}
	for _, p := range s.products {
		if p.IsActive {
			stats.ActiveProducts++
		} else {
			stats.InactiveProducts++
		}
		switch {
		case p.Stock == 0:
			stats.OutOfStockProducts++
		case p.Stock <= 10:
			stats.LowStockProducts++
		}
	}
	return response.Success(c, stats)
}

func (s *Server) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("No image uploaded", err))
	}
	f, err := fh.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unreadable upload", err))
	}
	defer f.Close()
	if _, err := io.Copy(io.Discard, f); err != nil {
		return response.Error(c, errors.BadRequest("Unreadable upload", err))
	}

	s.mu.Lock()
	s.uploads++
	s.mu.Unlock()
	return response.Created(c, map[string]string{"url": "/uploads/" + uuid.NewString() + "-" + fh.Filename})
}

func (s *Server) listCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Success(c, map[string]interface{}{"categories": s.categories})
}

func (s *Server) createCategory(c echo.Context) error {
	var req entity.CategoryInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, req.Name) {
			return response.Error(c, errors.Conflict("Category already exists"))
		}
	}
	now := s.now()
	cat := entity.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories = append(s.categories, cat)
	return response.Created(c, map[string]interface{}{"category": cat})
}

func (s *Server) updateCategory(c echo.Context) error {
	var req entity.CategoryInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.categories, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Category", nil))
	}
	cat := &s.categories[i]
	cat.Name = req.Name
	cat.Description = req.Description
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	cat.UpdatedAt = s.now()
	return response.Success(c, *cat)
}

func (s *Server) deleteCategory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.categories, ok = without(s.categories, c.Param("id")); !ok {
		return response.Error(c, errors.NotFound("Category", nil))
	}
	return response.Success(c, map[string]string{"message": "Category deleted"})
}

func paginate[T any](items []T, p utils.PaginationParams) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Uploads reports how many product images were stored.
func (s *Server) Uploads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads
}
