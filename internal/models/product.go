package models

import "time"

// Status is the lifecycle state of a product.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Categories is the fixed vocabulary offered by the product form. The
// Product entity itself accepts any category string.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Other",
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	SKU         string    `json:"sku"`
	Stock       int       `json:"stock"`
	Status      Status    `json:"status"`
	Image       string    `json:"image,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string
	Description string
	Price       float64
	Category    string
	SKU         string
	Stock       int
	Status      Status
	Image       string
	Tags        []string
}

// UpdateProductRequest carries a partial update. Nil fields are left
// untouched on the target product.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	SKU         *string
	Stock       *int
	Status      *Status
	Image       *string
	Tags        []string
}

// SortKey selects the field products are ordered by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByStock     SortKey = "stock"
	SortByCreatedAt SortKey = "createdAt"
)

// SortOrder is the direction applied to the sort key.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters describes the active view over the product collection. It is
// pure view state; no field references any particular product.
type Filters struct {
	Search    string    `json:"search"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	MinPrice  *float64  `json:"minPrice"`
	MaxPrice  *float64  `json:"maxPrice"`
	SortBy    SortKey   `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

// DefaultFilters matches the initial view: everything visible, newest first.
func DefaultFilters() Filters {
	return Filters{
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}
}

// FilterPatch is a partial Filters update; nil fields keep their current
// value when merged. MinPrice and MaxPrice are doubly indirected so a patch
// can distinguish "leave the bound alone" from "clear the bound".
type FilterPatch struct {
	Search    *string
	Category  *string
	Status    *string
	MinPrice  **float64
	MaxPrice  **float64
	SortBy    *SortKey
	SortOrder *SortOrder
}

// ViewMode is how the presentation layer renders the product collection.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)
