package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/inventory"
	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/server/rest"
)

type RecipeService interface {
	ListRecipesWithIngredients(ctx context.Context, onlyAllInStock bool, text string) ([]*model.RecipeWithIngredients, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	SaveRecipe(ctx context.Context, id string, input inventory.RecipeInput) (string, error)
	DeleteRecipe(ctx context.Context, id string) error
}

type RecipeHandler struct {
	service RecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(service RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{service: service, logger: logger}
}

func (h *RecipeHandler) HandleListRecipes(c *gin.Context) {
	onlyInStock, err := boolQuery(c, "onlyInStock")
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	recipes, err := h.service.ListRecipesWithIngredients(c.Request.Context(), onlyInStock, c.Query("filter"))
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.RecipesWithIngredientsFromModel(recipes))
}

func (h *RecipeHandler) HandleGetRecipe(c *gin.Context) {
	recipe, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.RecipeFromModel(recipe))
}

func (h *RecipeHandler) HandleSaveRecipe(c *gin.Context) {
	var body rest.MixedDrinkInput
	if err := c.ShouldBindJSON(&body); err != nil {
		renderError(c, h.logger, &apperror.Error{Kind: apperror.KindInvalidArgument, Message: apperror.ValidationFailedMessage, Err: err})

		return
	}

	id, err := h.service.SaveRecipe(c.Request.Context(), c.Param("id"), body.ToInput())
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.SavedResponse{ID: id})
}

func (h *RecipeHandler) HandleDeleteRecipe(c *gin.Context) {
	if err := h.service.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
