package entity

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRef is the category a product belongs to. The server sends either
// the bare id or the populated category document.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = CategoryRef{ID: id}
		return nil
	}
	type plain CategoryRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = CategoryRef(p)
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	type plain CategoryRef
	return json.Marshal(plain(r))
}

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    CategoryRef     `json:"category"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p Product) GetID() string { return p.ID }

// Clone copies the image list so callers cannot alias slice state.
func (p Product) Clone() Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Images      []string        `json:"images,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

type ProductFilters struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// DefaultProductFilters matches every product, newest first.
func DefaultProductFilters() ProductFilters {
	return ProductFilters{
		Status:    StatusAll,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
}

// ProductFilterPatch carries only the filter fields a caller wants to change.
type ProductFilterPatch struct {
	Search    *string
	Category  *string
	Status    *string
	SortBy    *string
	SortOrder *string
}

func (f ProductFilters) Merge(p ProductFilterPatch) ProductFilters {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		f.SortOrder = *p.SortOrder
	}
	return f
}

// Apply writes the non-empty filters into q. Status "all" means no filter.
func (f ProductFilters) Apply(q url.Values) {
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" && f.Status != StatusAll {
		q.Set("status", f.Status)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sortOrder", f.SortOrder)
	}
}

type ProductStats struct {
	TotalProducts      int `json:"totalProducts"`
	ActiveProducts     int `json:"activeProducts"`
	InactiveProducts   int `json:"inactiveProducts"`
	LowStockProducts   int `json:"lowStockProducts"`
	OutOfStockProducts int `json:"outOfStockProducts"`
}
