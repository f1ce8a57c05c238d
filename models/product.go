package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/datatypes"
)

// ProductImage is one entry in a product's image gallery. Slice order is the
// display order.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// SEO holds optional search metadata for a product page.
type SEO struct {
	Title       string `json:"title,omitempty"`       // keep under 60 chars
	Description string `json:"description,omitempty"` // recommended 150-160 chars
	Slug        string `gorm:"index" json:"slug,omitempty"`
}

type Product struct {
	ID           uint                              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    string                            `gorm:"uniqueIndex;not null" json:"product_id"` // human-assigned catalogue code
	Category     string                            `gorm:"index;not null" json:"category"`
	Name         string                            `gorm:"not null" json:"name"`
	Price        int                               `gorm:"not null" json:"price"` // whole rupees
	SalePrice    *int                              `json:"sale_price,omitempty"`
	Description  string                            `gorm:"type:text" json:"description"`
	Images       datatypes.JSONSlice[ProductImage] `json:"images"`
	Sizes        datatypes.JSONSlice[string]       `json:"sizes"`
	IsNewArrival bool                              `json:"is_new_arrival"`
	SEO          SEO                               `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt    time.Time                         `json:"created_at"`
	UpdatedAt    time.Time                         `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]*$`)

var (
	ErrSalePriceAbovePrice = errors.New("sale_price must not exceed price")
	ErrSalePriceNegative   = errors.New("sale_price must not be negative")
	ErrSEOTitleTooLong     = errors.New("seo title must be at most 60 characters")
	ErrInvalidSlug         = errors.New("slug may contain only lowercase letters, digits and hyphens")
)

// Validate checks the invariants an admin-submitted product must satisfy.
func (p *Product) Validate() error {
	if p.SalePrice != nil {
		if *p.SalePrice < 0 {
			return ErrSalePriceNegative
		}
		if *p.SalePrice > p.Price {
			return ErrSalePriceAbovePrice
		}
	}
	if len(p.SEO.Title) > 60 {
		return ErrSEOTitleTooLong
	}
	if !slugPattern.MatchString(p.SEO.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

// EffectivePrice is the price a customer pays right now.
func (p *Product) EffectivePrice() int {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
