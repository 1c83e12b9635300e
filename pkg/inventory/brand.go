package inventory

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/repository"
	"droscher.com/DrinkMenu/pkg/textfilter"
)

type BrandQuery struct {
	OnlyInStock    bool
	OnlyOutOfStock bool
	Text           string
}

type BrandInput struct {
	Name            string `validate:"required"`
	Type            string
	AdditionalNotes *string
	InStock         bool
	Price           float64 `validate:"gte=0"`
}

func (q BrandQuery) filter() repository.BrandFilter {
	return repository.BrandFilter{
		OnlyInStock:    q.OnlyInStock,
		OnlyOutOfStock: q.OnlyOutOfStock,
		Text:           textfilter.Build(q.Text),
	}
}

// ListBrands returns the matching brands ordered by normalized name.
func (s *Service) ListBrands(ctx context.Context, query BrandQuery) ([]*model.Brand, error) {
	return s.brands.ListBrands(ctx, query.filter())
}

// ListBrandsByType returns the matching brands grouped by type. Groups are ordered by type and
// keep the name order inside each group.
func (s *Service) ListBrandsByType(ctx context.Context, query BrandQuery) ([]*model.BrandsForType, error) {
	brands, err := s.brands.ListBrands(ctx, query.filter())
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*model.BrandsForType)

	for _, brand := range brands {
		group, ok := groups[brand.Type]
		if !ok {
			group = &model.BrandsForType{Type: brand.Type}
			groups[brand.Type] = group
		}

		group.Brands = append(group.Brands, brand)
	}

	byType := make([]*model.BrandsForType, 0, len(groups))
	for _, group := range groups {
		byType = append(byType, group)
	}

	slices.SortFunc(byType, func(a, b *model.BrandsForType) int {
		return cmp.Compare(a.Type, b.Type)
	})

	return byType, nil
}

func (s *Service) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	brandID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return s.brands.GetBrand(ctx, brandID)
}

func (s *Service) SetBrandStock(ctx context.Context, id string, inStock bool) error {
	brandID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.brands.SetBrandStock(ctx, brandID, inStock); err != nil {
		return err
	}

	s.brandsChanged()

	return nil
}

// SaveBrand inserts a brand when id is empty and otherwise replaces the existing one. The
// normalized name is always derived from the name here.
func (s *Service) SaveBrand(ctx context.Context, id string, input BrandInput) (string, error) {
	brandID := uuid.Nil

	if id != "" {
		var err error

		if brandID, err = parseID(id); err != nil {
			return "", err
		}
	}

	if err := s.validateInput(input); err != nil {
		return "", err
	}

	brand := &model.Brand{
		ID:              brandID,
		Name:            input.Name,
		NameNormalized:  textfilter.Normalize(input.Name),
		Type:            input.Type,
		AdditionalNotes: input.AdditionalNotes,
		InStock:         input.InStock,
		Price:           input.Price,
	}

	if brandID == uuid.Nil {
		if err := s.brands.AddBrand(ctx, brand); err != nil {
			return "", err
		}

		s.logger.Info("added brand", zap.Stringer("id", brand.ID), zap.String("name", brand.Name))
	} else if err := s.brands.UpdateBrand(ctx, brand); err != nil {
		return "", err
	}

	s.brandsChanged()

	return brand.ID.String(), nil
}

// DeleteBrand removes the brand and every recipe reference to it. Unknown ids are not an error.
func (s *Service) DeleteBrand(ctx context.Context, id string) error {
	brandID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.brands.DeleteBrand(ctx, brandID); err != nil {
		return err
	}

	s.brandsChanged()

	return nil
}

// brandsChanged also announces recipes since recipe views embed brand details.
func (s *Service) brandsChanged() {
	s.notifier.Broadcast(BrandsPath, BrandsByTypePath, RecipesPath)
}
