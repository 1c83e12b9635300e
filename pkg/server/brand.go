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

type BrandService interface {
	ListBrands(ctx context.Context, query inventory.BrandQuery) ([]*model.Brand, error)
	ListBrandsByType(ctx context.Context, query inventory.BrandQuery) ([]*model.BrandsForType, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	SetBrandStock(ctx context.Context, id string, inStock bool) error
	SaveBrand(ctx context.Context, id string, input inventory.BrandInput) (string, error)
	DeleteBrand(ctx context.Context, id string) error
}

type BrandHandler struct {
	service BrandService
	logger  *zap.Logger
}

func NewBrandHandler(service BrandService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{service: service, logger: logger}
}

func (h *BrandHandler) brandQuery(c *gin.Context) (inventory.BrandQuery, error) {
	onlyInStock, err := boolQuery(c, "onlyInStock")
	if err != nil {
		return inventory.BrandQuery{}, err
	}

	onlyOutOfStock, err := boolQuery(c, "onlyOutOfStock")
	if err != nil {
		return inventory.BrandQuery{}, err
	}

	return inventory.BrandQuery{OnlyInStock: onlyInStock, OnlyOutOfStock: onlyOutOfStock, Text: c.Query("filter")}, nil
}

func (h *BrandHandler) HandleListBrands(c *gin.Context) {
	query, err := h.brandQuery(c)
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	brands, err := h.service.ListBrands(c.Request.Context(), query)
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BrandsFromModel(brands))
}

func (h *BrandHandler) HandleListBrandsByType(c *gin.Context) {
	query, err := h.brandQuery(c)
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	groups, err := h.service.ListBrandsByType(c.Request.Context(), query)
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BrandsByTypeFromModel(groups))
}

func (h *BrandHandler) HandleGetBrand(c *gin.Context) {
	brand, err := h.service.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.BrandFromModel(brand))
}

func (h *BrandHandler) HandleSetStock(c *gin.Context) {
	var inStock bool

	switch c.Param("flag") {
	case "true":
		inStock = true
	case "false":
	default:
		renderError(c, h.logger, apperror.InvalidArgument(":flag parameter must be a boolean ('true' or 'false')"))

		return
	}

	if err := h.service.SetBrandStock(c.Request.Context(), c.Param("id"), inStock); err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BrandHandler) HandleSaveBrand(c *gin.Context) {
	var body rest.BeerOrLiquorInput
	if err := c.ShouldBindJSON(&body); err != nil {
		renderError(c, h.logger, &apperror.Error{Kind: apperror.KindInvalidArgument, Message: apperror.ValidationFailedMessage, Err: err})

		return
	}

	id, err := h.service.SaveBrand(c.Request.Context(), c.Param("id"), body.ToInput())
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.JSON(http.StatusOK, rest.SavedResponse{ID: id})
}

func (h *BrandHandler) HandleDeleteBrand(c *gin.Context) {
	if err := h.service.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, h.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
