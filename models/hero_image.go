package models

import "time"

// HeroImage is one slide of the storefront hero carousel, admin-managed and
// shown in ascending DisplayOrder.
type HeroImage struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	URL          string    `gorm:"not null" json:"url"`
	DisplayOrder int       `gorm:"index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
