package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/textfilter"
)

type BrandRepository interface {
	ListBrands(ctx context.Context, filter BrandFilter) ([]*model.Brand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	GetBrandsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Brand, error)
	AddBrand(ctx context.Context, brand *model.Brand) error
	UpdateBrand(ctx context.Context, brand *model.Brand) error
	SetBrandStock(ctx context.Context, id uuid.UUID, inStock bool) error
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

// BrandFilter narrows a brand listing. The stock flags are independent predicates, so setting
// both yields nothing.
type BrandFilter struct {
	OnlyInStock    bool
	OnlyOutOfStock bool
	Text           textfilter.Filter
}

func brandNotFound(id uuid.UUID) error {
	return apperror.NotFound("BeerOrLiquor with ID %s not found", id)
}

func (r *Repository) ListBrands(ctx context.Context, filter BrandFilter) ([]*model.Brand, error) {
	var brands []*model.Brand

	query := r.DB.WithContext(ctx)
	if filter.OnlyInStock {
		query = query.Where("in_stock = ?", true)
	}

	if filter.OnlyOutOfStock {
		query = query.Where("in_stock = ?", false)
	}

	result := query.Scopes(textFilterScope(filter.Text, "name_normalized")).
		Order("name_normalized asc").
		Find(&brands)
	if result.Error != nil {
		return nil, r.translateError(result.Error)
	}

	return brands, nil
}

func (r *Repository) GetBrand(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	brand := &model.Brand{}

	if result := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(brand); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, brandNotFound(id)
		}

		return nil, r.translateError(result.Error)
	}

	return brand, nil
}

// GetBrandsByIDs returns the brands that still exist for ids, keyed by id. Missing ids are simply
// absent from the map.
func (r *Repository) GetBrandsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Brand, error) {
	brandsByID := make(map[uuid.UUID]*model.Brand, len(ids))
	if len(ids) == 0 {
		return brandsByID, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	var brands []*model.Brand
	if result := r.DB.WithContext(ctx).Where("id IN ?", keys).Find(&brands); result.Error != nil {
		return nil, r.translateError(result.Error)
	}

	for _, brand := range brands {
		brandsByID[brand.ID] = brand
	}

	return brandsByID, nil
}

func (r *Repository) AddBrand(ctx context.Context, brand *model.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}

	if result := r.DB.WithContext(ctx).Create(brand); result.Error != nil {
		return r.translateError(result.Error)
	}

	return nil
}

// UpdateBrand replaces every stored field of the brand, including zero values.
func (r *Repository) UpdateBrand(ctx context.Context, brand *model.Brand) error {
	result := r.DB.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", brand.ID.String()).
		Updates(map[string]any{
			"name":             brand.Name,
			"name_normalized":  brand.NameNormalized,
			"type":             brand.Type,
			"additional_notes": brand.AdditionalNotes,
			"in_stock":         brand.InStock,
			"price":            brand.Price,
		})
	if result.Error != nil {
		return r.translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return brandNotFound(brand.ID)
	}

	return nil
}

func (r *Repository) SetBrandStock(ctx context.Context, id uuid.UUID, inStock bool) error {
	result := r.DB.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", id.String()).Update("in_stock", inStock)
	if result.Error != nil {
		return r.translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return brandNotFound(id)
	}

	return nil
}

// DeleteBrand removes the brand from every recipe referencing it before deleting the brand
// itself. The two statements are not atomic; a reference left behind by a failure between them
// dangles and is dropped when recipes are resolved.
func (r *Repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if result := r.DB.WithContext(ctx).Where("brand_id = ?", id.String()).Delete(&model.RecipeIngredient{}); result.Error != nil {
		return r.translateError(result.Error)
	}

	if result := r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.Brand{}); result.Error != nil {
		return r.translateError(result.Error)
	}

	return nil
}
