package rest

import (
	"go.openly.dev/pointy"

	"droscher.com/DrinkMenu/pkg/inventory"
	"droscher.com/DrinkMenu/pkg/model"
)

func BrandsFromModel(brands []*model.Brand) []*BeerOrLiquor {
	dtos := make([]*BeerOrLiquor, 0, len(brands))

	for _, brand := range brands {
		dtos = append(dtos, BrandFromModel(brand))
	}

	return dtos
}

func BrandFromModel(brand *model.Brand) *BeerOrLiquor {
	dto := BeerOrLiquor{
		ID:             brand.ID.String(),
		Name:           brand.Name,
		NameNormalized: brand.NameNormalized,
		Type:           brand.Type,
		InStock:        brand.InStock,
		Price:          brand.Price,
	}

	if brand.AdditionalNotes != nil {
		dto.AdditionalNotes = pointy.String(*brand.AdditionalNotes)
	}

	return &dto
}

func BrandsByTypeFromModel(groups []*model.BrandsForType) []*BeersAndLiquorsForType {
	dtos := make([]*BeersAndLiquorsForType, 0, len(groups))

	for _, group := range groups {
		dtos = append(dtos, &BeersAndLiquorsForType{Type: group.Type, BeersAndLiquors: BrandsFromModel(group.Brands)})
	}

	return dtos
}

func (b *BeerOrLiquorInput) ToInput() inventory.BrandInput {
	return inventory.BrandInput{
		Name:            b.Name,
		Type:            b.Type,
		AdditionalNotes: b.AdditionalNotes,
		InStock:         b.InStock,
		Price:           b.Price,
	}
}

func RecipeFromModel(recipe *model.Recipe) *MixedDrink {
	references := make([]IngredientReference, 0, len(recipe.RequiredBeersOrLiquors))

	for _, ingredient := range recipe.RequiredBeersOrLiquors {
		references = append(references, IngredientReference{ID: ingredient.BrandID.String(), Count: ingredient.Count})
	}

	return &MixedDrink{
		ID:                     recipe.ID.String(),
		Name:                   recipe.Name,
		NameNormalized:         recipe.NameNormalized,
		RequiredBeersOrLiquors: references,
	}
}

func (m *MixedDrinkInput) ToInput() inventory.RecipeInput {
	ingredients := make([]inventory.IngredientInput, 0, len(m.RequiredBeersOrLiquors))

	for _, reference := range m.RequiredBeersOrLiquors {
		ingredients = append(ingredients, inventory.IngredientInput{BrandID: reference.ID, Count: reference.Count})
	}

	return inventory.RecipeInput{Name: m.Name, RequiredBeersOrLiquors: ingredients}
}

func RecipesWithIngredientsFromModel(recipes []*model.RecipeWithIngredients) []*MixedDrinkWithIngredients {
	dtos := make([]*MixedDrinkWithIngredients, 0, len(recipes))

	for _, recipe := range recipes {
		ingredients := make([]Ingredient, 0, len(recipe.RequiredBeersOrLiquors))

		for _, resolved := range recipe.RequiredBeersOrLiquors {
			brand := model.Brand{
				ID:              resolved.BrandID,
				Name:            resolved.Name,
				NameNormalized:  resolved.NameNormalized,
				Type:            resolved.Type,
				AdditionalNotes: resolved.AdditionalNotes,
				InStock:         resolved.InStock,
				Price:           resolved.Price,
			}

			ingredients = append(ingredients, Ingredient{BeerOrLiquor: *BrandFromModel(&brand), Count: resolved.Count})
		}

		dtos = append(dtos, &MixedDrinkWithIngredients{
			ID:                     recipe.ID.String(),
			Name:                   recipe.Name,
			NameNormalized:         recipe.NameNormalized,
			RequiredBeersOrLiquors: ingredients,
			Price:                  recipe.Price,
		})
	}

	return dtos
}

func SuggestionsFromModel(suggestions []model.BrandSuggestion) []*BrandSuggestion {
	dtos := make([]*BrandSuggestion, 0, len(suggestions))

	for _, suggestion := range suggestions {
		dto := BrandSuggestion{
			Name:           suggestion.Name,
			Brewery:        suggestion.Brewery,
			Style:          suggestion.Style,
			Description:    suggestion.Description,
			ImageURL:       suggestion.ImageURL,
			ExternalSource: suggestion.ExternalSource,
		}

		if suggestion.ABV != nil {
			dto.ABV = pointy.Float64(*suggestion.ABV)
		}

		if suggestion.ExternalID != nil {
			dto.ExternalID = pointy.Uint64(*suggestion.ExternalID)
		}

		if suggestion.ExternalRating != nil {
			dto.ExternalRating = pointy.Float64(*suggestion.ExternalRating)
		}

		dtos = append(dtos, &dto)
	}

	return dtos
}
