package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/model"
)

type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	AddRecipe(ctx context.Context, recipe *model.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
}

func recipeNotFound(id uuid.UUID) error {
	return apperror.NotFound("MixedDrink with ID %s not found", id)
}

func orderedIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (r *Repository) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	result := r.DB.WithContext(ctx).
		Preload("RequiredBeersOrLiquors", orderedIngredients).
		Order("name_normalized asc").
		Find(&recipes)
	if result.Error != nil {
		return nil, r.translateError(result.Error)
	}

	return recipes, nil
}

func (r *Repository) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	recipe := &model.Recipe{}

	result := r.DB.WithContext(ctx).
		Preload("RequiredBeersOrLiquors", orderedIngredients).
		Where("id = ?", id.String()).
		First(recipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, recipeNotFound(id)
		}

		return nil, r.translateError(result.Error)
	}

	return recipe, nil
}

// AddRecipe inserts the recipe and its ingredient rows in one transaction.
func (r *Repository) AddRecipe(ctx context.Context, recipe *model.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(recipe); result.Error != nil {
			return result.Error
		}

		return insertIngredients(tx, recipe)
	})

	return r.translateError(err)
}

// UpdateRecipe replaces the recipe's name and its whole ingredient set in one transaction.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe *model.Recipe) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Recipe{}).Where("id = ?", recipe.ID.String()).
			Updates(map[string]any{
				"name":            recipe.Name,
				"name_normalized": recipe.NameNormalized,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return recipeNotFound(recipe.ID)
		}

		if result := tx.Where("recipe_id = ?", recipe.ID.String()).Delete(&model.RecipeIngredient{}); result.Error != nil {
			return result.Error
		}

		return insertIngredients(tx, recipe)
	})

	return r.translateError(err)
}

// DeleteRecipe deletes the recipe; its ingredient rows go with it through the foreign key.
// Deleting an unknown id is not an error.
func (r *Repository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if result := r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.Recipe{}); result.Error != nil {
		return r.translateError(result.Error)
	}

	return nil
}

func insertIngredients(tx *gorm.DB, recipe *model.Recipe) error {
	if len(recipe.RequiredBeersOrLiquors) == 0 {
		return nil
	}

	for index := range recipe.RequiredBeersOrLiquors {
		recipe.RequiredBeersOrLiquors[index].RecipeID = recipe.ID
		recipe.RequiredBeersOrLiquors[index].Position = index
	}

	return tx.Create(&recipe.RequiredBeersOrLiquors).Error
}
