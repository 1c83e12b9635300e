package model

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Name                   string             `gorm:"not null"`
	NameNormalized         string             `gorm:"not null;index"`
	RequiredBeersOrLiquors []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredient references a brand by id only. The brand may be deleted later, so BrandID
// carries no foreign key and readers must tolerate it not resolving.
type RecipeIngredient struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrandID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Count    int       `gorm:"not null;check:chk_recipe_ingredients_count,count > 0"`
	Position int       `gorm:"not null"`
}

type ResolvedIngredient struct {
	BrandID         uuid.UUID
	Name            string
	NameNormalized  string
	Type            string
	AdditionalNotes *string
	InStock         bool
	Price           float64
	Count           int
}

type RecipeWithIngredients struct {
	ID                     uuid.UUID
	Name                   string
	NameNormalized         string
	RequiredBeersOrLiquors []ResolvedIngredient
	Price                  float64
}
