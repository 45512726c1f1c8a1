package models

import (
	"slices"
	"time"
)

// Product is a catalog entry. Prices are whole rupiah.
type Product struct {
	ID             int64     `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          int64     `json:"price"`
	Images         []string  `json:"images"`
	Sizes          []string  `json:"sizes"`
	Colors         []string  `json:"colors"`
	Artisan        string    `json:"artisan,omitempty"`
	Location       string    `json:"location,omitempty"`
	Motif          string    `json:"motif,omitempty"`
	ProcessingTime string    `json:"processingTime,omitempty"`
	Category       string    `json:"category"`
	Rating         float64   `json:"rating"`
	Sold           int       `json:"sold"`
	Stock          int       `json:"stock"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Offers reports whether the size/color pair is sellable. A product with no
// listed sizes (or colors) accepts any value for that option.
func (p *Product) Offers(size, color string) bool {
	if len(p.Sizes) > 0 && !slices.Contains(p.Sizes, size) {
		return false
	}

	if len(p.Colors) > 0 && !slices.Contains(p.Colors, color) {
		return false
	}

	return true
}

func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

type CreateProductRequest struct {
	Slug           string   `json:"slug" validate:"required,max=160"`
	Name           string   `json:"name" validate:"required,max=200"`
	Description    string   `json:"description" validate:"max=5000"`
	Price          int64    `json:"price" validate:"required,gt=0"`
	Images         []string `json:"images" validate:"omitempty,dive,url"`
	Sizes          []string `json:"sizes" validate:"omitempty,dive,required"`
	Colors         []string `json:"colors" validate:"omitempty,dive,required"`
	Artisan        string   `json:"artisan" validate:"max=120"`
	Location       string   `json:"location" validate:"max=200"`
	Motif          string   `json:"motif" validate:"max=120"`
	ProcessingTime string   `json:"processingTime" validate:"max=60"`
	Category       string   `json:"category" validate:"omitempty,oneof=klasik modern kontemporer"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Sold           int      `json:"sold" validate:"gte=0"`
	Stock          int      `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price          *int64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Images         []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Sizes          []string `json:"sizes,omitempty"`
	Colors         []string `json:"colors,omitempty"`
	Artisan        *string  `json:"artisan,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Motif          *string  `json:"motif,omitempty"`
	ProcessingTime *string  `json:"processingTime,omitempty"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,oneof=klasik modern kontemporer"`
	Rating         *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Sold           *int     `json:"sold,omitempty" validate:"omitempty,gte=0"`
	Stock          *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

const (
	CategoryKlasik      = "klasik"
	CategoryModern      = "modern"
	CategoryKontemporer = "kontemporer"
)

const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// ProductFilter narrows the catalog listing. Zero values match everything;
// MaxPrice 0 means no upper bound. Price bounds are inclusive.
type ProductFilter struct {
	Category string `validate:"omitempty,oneof=klasik modern kontemporer"`
	MinPrice int64  `validate:"gte=0"`
	MaxPrice int64  `validate:"omitempty,gtefield=MinPrice"`
	Search   string `validate:"max=100"`
	Sort     string `validate:"omitempty,oneof=popular price-low price-high rating"`
}

// priceRanges are the catalog's preset price brackets, in rupiah.
var priceRanges = map[string][2]int64{
	"under-1m": {0, 1_000_000},
	"1m-2m":    {1_000_000, 2_000_000},
	"above-2m": {2_000_000, 0},
}

// ApplyPriceRange sets the bounds of a preset bracket. "all" and "" clear
// nothing and report true; unknown ids report false.
func (f *ProductFilter) ApplyPriceRange(id string) bool {
	if id == "" || id == "all" {
		return true
	}

	bounds, ok := priceRanges[id]
	if !ok {
		return false
	}

	f.MinPrice, f.MaxPrice = bounds[0], bounds[1]

	return true
}
