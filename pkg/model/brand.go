package model

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Name            string `gorm:"not null"`
	NameNormalized  string `gorm:"not null;index"`
	Type            string `gorm:"index"`
	AdditionalNotes *string
	InStock         bool
	Price           float64 `gorm:"not null;check:chk_brands_price,price >= 0"`
}

type BrandsForType struct {
	Type   string
	Brands []*Brand
}

// BrandSuggestion is a brand found by an external integration that has not been added to the
// inventory yet.
type BrandSuggestion struct {
	Name           string
	Brewery        string
	Style          string
	Description    string
	ImageURL       string
	ABV            *float64
	ExternalID     *uint64
	ExternalSource string
	ExternalRating *float64
}
