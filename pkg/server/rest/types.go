// Package rest holds the JSON shapes served by the menu API and their conversion from the model.
package rest

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type SavedResponse struct {
	ID string `json:"id"`
}

type BeerOrLiquor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	NameNormalized  string  `json:"nameNormalized"`
	Type            string  `json:"type"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
	InStock         bool    `json:"inStock"`
	Price           float64 `json:"price"`
}

type BeerOrLiquorInput struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	AdditionalNotes *string `json:"additionalNotes"`
	InStock         bool    `json:"inStock"`
	Price           float64 `json:"price"`
}

type BeersAndLiquorsForType struct {
	Type            string          `json:"type"`
	BeersAndLiquors []*BeerOrLiquor `json:"beersAndLiquors"`
}

type IngredientReference struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

type MixedDrink struct {
	ID                     string                `json:"id"`
	Name                   string                `json:"name"`
	NameNormalized         string                `json:"nameNormalized"`
	RequiredBeersOrLiquors []IngredientReference `json:"requiredBeersOrLiquors"`
}

type MixedDrinkInput struct {
	Name                   string                `json:"name"`
	RequiredBeersOrLiquors []IngredientReference `json:"requiredBeersOrLiquors"`
}

type Ingredient struct {
	BeerOrLiquor
	Count int `json:"count"`
}

type MixedDrinkWithIngredients struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	NameNormalized         string       `json:"nameNormalized"`
	RequiredBeersOrLiquors []Ingredient `json:"requiredBeersOrLiquors"`
	Price                  float64      `json:"price"`
}

type BrandSuggestion struct {
	Name           string   `json:"name"`
	Brewery        string   `json:"brewery,omitempty"`
	Style          string   `json:"style,omitempty"`
	Description    string   `json:"description,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	ABV            *float64 `json:"abv,omitempty"`
	ExternalID     *uint64  `json:"externalId,omitempty"`
	ExternalSource string   `json:"externalSource"`
	ExternalRating *float64 `json:"externalRating,omitempty"`
}
