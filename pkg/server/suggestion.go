package server

import (
	"maps"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/integrations"
	"droscher.com/DrinkMenu/pkg/server/rest"
)

type SuggestionHandler struct {
	integrations map[string]integrations.Integration
	logger       *zap.Logger
}

func NewSuggestionHandler(brandIntegrations map[string]integrations.Integration, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{integrations: brandIntegrations, logger: logger}
}

// HandleFindBrands asks every configured integration for brands matching the query. Integrations
// that fail are logged and skipped.
func (h *SuggestionHandler) HandleFindBrands(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		renderError(c, h.logger, apperror.InvalidArgument("Missing value for param 'query'"))

		return
	}

	suggestions := make([]*rest.BrandSuggestion, 0)

	for _, name := range slices.Sorted(maps.Keys(h.integrations)) {
		found, err := h.integrations[name].FindBrands(query)
		if err != nil {
			h.logger.Error("failed brand search", zap.String("integration", name), zap.Error(err))

			continue
		}

		suggestions = append(suggestions, rest.SuggestionsFromModel(found)...)
	}

	c.JSON(http.StatusOK, suggestions)
}
