package inventory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/textfilter"
)

// Prices are summed as decimals and rounded half away from zero.
const centPlaces = 2

type IngredientInput struct {
	BrandID string `validate:"required"`
	Count   int    `validate:"gt=0"`
}

type RecipeInput struct {
	Name                   string            `validate:"required"`
	RequiredBeersOrLiquors []IngredientInput `validate:"dive"`
}

// ListRecipesWithIngredients resolves every recipe against the current brands and prices it.
// References to brands that no longer exist are dropped. With onlyAllInStock, recipes needing any
// out of stock brand are skipped. The text filter matches the recipe name or any ingredient name
// and is applied after pricing.
func (s *Service) ListRecipesWithIngredients(ctx context.Context, onlyAllInStock bool, text string) ([]*model.RecipeWithIngredients, error) {
	recipes, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	brandsByID, err := s.brands.GetBrandsByIDs(ctx, referencedBrandIDs(recipes))
	if err != nil {
		return nil, err
	}

	filter := textfilter.Build(text)
	resolved := make([]*model.RecipeWithIngredients, 0, len(recipes))

	for _, recipe := range recipes {
		withIngredients := resolveRecipe(recipe, brandsByID)

		if onlyAllInStock && !allInStock(withIngredients) {
			continue
		}

		if !matchesRecipe(filter, withIngredients) {
			continue
		}

		resolved = append(resolved, withIngredients)
	}

	slices.SortStableFunc(resolved, func(a, b *model.RecipeWithIngredients) int {
		return strings.Compare(a.NameNormalized, b.NameNormalized)
	})

	return resolved, nil
}

func (s *Service) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	recipeID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return s.recipes.GetRecipe(ctx, recipeID)
}

// SaveRecipe inserts a recipe when id is empty and otherwise replaces the existing one. Ingredient
// brand ids must be well formed but need not exist. Repeated brands collapse into one entry at
// the first position with the last count.
func (s *Service) SaveRecipe(ctx context.Context, id string, input RecipeInput) (string, error) {
	recipeID := uuid.Nil

	if id != "" {
		var err error

		if recipeID, err = parseID(id); err != nil {
			return "", err
		}
	}

	if err := s.validateInput(input); err != nil {
		return "", err
	}

	ingredients, err := collapseIngredients(input.RequiredBeersOrLiquors)
	if err != nil {
		return "", err
	}

	recipe := &model.Recipe{
		ID:                     recipeID,
		Name:                   input.Name,
		NameNormalized:         textfilter.Normalize(input.Name),
		RequiredBeersOrLiquors: ingredients,
	}

	if recipeID == uuid.Nil {
		if err := s.recipes.AddRecipe(ctx, recipe); err != nil {
			return "", err
		}

		s.logger.Info("added recipe", zap.Stringer("id", recipe.ID), zap.String("name", recipe.Name))
	} else if err := s.recipes.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	s.notifier.Broadcast(RecipesPath)

	return recipe.ID.String(), nil
}

// DeleteRecipe removes the recipe. Unknown ids are not an error.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	recipeID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.recipes.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	s.notifier.Broadcast(RecipesPath)

	return nil
}

func collapseIngredients(inputs []IngredientInput) ([]model.RecipeIngredient, error) {
	ingredients := make([]model.RecipeIngredient, 0, len(inputs))
	positions := make(map[uuid.UUID]int, len(inputs))

	for _, input := range inputs {
		brandID, err := parseID(input.BrandID)
		if err != nil {
			return nil, err
		}

		if position, ok := positions[brandID]; ok {
			ingredients[position].Count = input.Count

			continue
		}

		positions[brandID] = len(ingredients)
		ingredients = append(ingredients, model.RecipeIngredient{BrandID: brandID, Count: input.Count})
	}

	return ingredients, nil
}

func referencedBrandIDs(recipes []*model.Recipe) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)

	for _, recipe := range recipes {
		for _, ingredient := range recipe.RequiredBeersOrLiquors {
			if _, ok := seen[ingredient.BrandID]; ok {
				continue
			}

			seen[ingredient.BrandID] = struct{}{}
			ids = append(ids, ingredient.BrandID)
		}
	}

	return ids
}

func resolveRecipe(recipe *model.Recipe, brandsByID map[uuid.UUID]*model.Brand) *model.RecipeWithIngredients {
	resolved := &model.RecipeWithIngredients{
		ID:                     recipe.ID,
		Name:                   recipe.Name,
		NameNormalized:         recipe.NameNormalized,
		RequiredBeersOrLiquors: make([]model.ResolvedIngredient, 0, len(recipe.RequiredBeersOrLiquors)),
	}

	total := decimal.Zero

	for _, ingredient := range recipe.RequiredBeersOrLiquors {
		brand, ok := brandsByID[ingredient.BrandID]
		if !ok {
			continue
		}

		total = total.Add(decimal.NewFromFloat(brand.Price).Mul(decimal.NewFromInt(int64(ingredient.Count))))

		resolved.RequiredBeersOrLiquors = append(resolved.RequiredBeersOrLiquors, model.ResolvedIngredient{
			BrandID:         brand.ID,
			Name:            brand.Name,
			NameNormalized:  brand.NameNormalized,
			Type:            brand.Type,
			AdditionalNotes: brand.AdditionalNotes,
			InStock:         brand.InStock,
			Price:           brand.Price,
			Count:           ingredient.Count,
		})
	}

	resolved.Price = total.Round(centPlaces).InexactFloat64()

	return resolved
}

func allInStock(recipe *model.RecipeWithIngredients) bool {
	for _, ingredient := range recipe.RequiredBeersOrLiquors {
		if !ingredient.InStock {
			return false
		}
	}

	return true
}

func matchesRecipe(filter textfilter.Filter, recipe *model.RecipeWithIngredients) bool {
	names := make([]string, 0, len(recipe.RequiredBeersOrLiquors)+1)
	names = append(names, recipe.NameNormalized)

	for _, ingredient := range recipe.RequiredBeersOrLiquors {
		names = append(names, ingredient.NameNormalized)
	}

	return filter.MatchesAny(names...)
}
