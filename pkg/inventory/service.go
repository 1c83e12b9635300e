// Package inventory implements the brand and recipe queries and mutations behind the menu API.
package inventory

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/repository"
)

// Resource paths announced to subscribers after a mutation.
const (
	BrandsPath       = "/beers-and-liquors"
	BrandsByTypePath = "/beers-and-liquors-by-type"
	RecipesPath      = "/mixed-drinks"
)

const invalidIDMessage = "Invalid ID provided"

type Notifier interface {
	Broadcast(resourcePaths ...string)
}

type Service struct {
	brands   repository.BrandRepository
	recipes  repository.RecipeRepository
	notifier Notifier
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(brands repository.BrandRepository, recipes repository.RecipeRepository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		brands:   brands,
		recipes:  recipes,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &apperror.Error{Kind: apperror.KindInvalidArgument, Message: invalidIDMessage, Err: err}
	}

	return parsed, nil
}

func (s *Service) validateInput(input any) error {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Info("rejected invalid input", zap.Error(err))

		return &apperror.Error{Kind: apperror.KindInvalidArgument, Message: apperror.ValidationFailedMessage, Err: err}
	}

	return nil
}
