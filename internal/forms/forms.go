// Package forms holds the field-level constraints the presentation layer
// applies before dispatching into the state managers. Violations stay at
// the form boundary; they never reach a manager.
package forms

import (
	"strings"

	"github.com/yourorg/stockroom/internal/models"
)

type ProductForm struct {
	Name        string        `validate:"required,max=255"`
	Description string        `validate:"max=1000"`
	Price       float64       `validate:"gte=0"`
	Category    string        `validate:"required"`
	SKU         string        `validate:"required,max=64"`
	Stock       int           `validate:"gte=0"`
	Status      models.Status `validate:"required,oneof=active inactive"`
	Image       string        `validate:"omitempty"`
	Tags        []string      `validate:"dive,max=64"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterForm struct {
	Name            string `validate:"required,max=255"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Request converts a validated product form into a create request, with
// tags deduplicated. Dedup happens here, not in the entity.
func (f ProductForm) Request() models.CreateProductRequest {
	return models.CreateProductRequest{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		SKU:         f.SKU,
		Stock:       f.Stock,
		Status:      f.Status,
		Image:       f.Image,
		Tags:        NormalizeTags(f.Tags),
	}
}

// NormalizeTags trims whitespace, drops empties, and deduplicates while
// preserving first-occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
