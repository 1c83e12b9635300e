package untappdweb

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"droscher.com/DrinkMenu/pkg/model"
)

type BeerJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku             uint64 `json:"sku"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
}

type BeerScraped struct {
	IDLink  string `attr:"href"          selector:"a.label"`
	Name    string `selector:".name > a"`
	Brewery string `selector:".brewery > a"`
	Style   string `selector:".style"`
	ABV     string `selector:".abv"`
}

// FindBrands searches untappd for beers matching query and fills in each result from its beer
// page. Pages that fail are logged and reported in the returned error alongside the results that
// did load.
func (u *UntappedWebIntegration) FindBrands(query string) ([]model.BrandSuggestion, error) {
	collector := u.newCollector()

	var (
		errs    error
		scraped []BeerScraped
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		item := BeerScraped{}

		if err := element.Unmarshal(&item); multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		u.logger.Debug("scraped item from results", zap.String("link", item.IDLink), zap.String("name", item.Name))

		scraped = append(scraped, item)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", query))

	if err := collector.Visit(u.baseURL + "/search?q=" + url.QueryEscape(query)); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results = make([]model.BrandSuggestion, len(scraped))
		group   errgroup.Group
	)

	group.SetLimit(detailParallelism)

	for index, item := range scraped {
		group.Go(func() error {
			suggestion, err := u.getBeerData(collector.Clone(), item)

			mu.Lock()
			defer mu.Unlock()

			results[index] = suggestion
			errs = multierr.Append(errs, err)

			return nil
		})
	}

	_ = group.Wait()

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (u *UntappedWebIntegration) getBeerData(detailCollector *colly.Collector, scraped BeerScraped) (model.BrandSuggestion, error) {
	suggestion := model.BrandSuggestion{
		Name:           scraped.Name,
		Brewery:        strings.TrimSpace(scraped.Brewery),
		Style:          strings.TrimSpace(scraped.Style),
		ABV:            extractABV(scraped.ABV),
		ExternalSource: IntegrationName,
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var beerJSON BeerJSON
		if err := json.Unmarshal([]byte(element.Text), &beerJSON); err != nil {
			u.logger.Warn("could not decode beer JSON data", zap.Error(err))

			return
		}

		suggestion.Description = beerJSON.Description
		suggestion.ImageURL = beerJSON.Image.ContentURL

		if beerJSON.Sku != 0 {
			suggestion.ExternalID = pointy.Uint64(beerJSON.Sku)
		}

		if beerJSON.AggregateRating.RatingValue > 0 {
			suggestion.ExternalRating = pointy.Float64(beerJSON.AggregateRating.RatingValue)
		}
	})

	idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]
	u.logger.Debug("scraping beer page", zap.String("id", idString))

	err := detailCollector.Visit(u.baseURL + "/beer/" + idString)
	if err == nil && suggestion.ExternalID == nil {
		if externalID, parseErr := strconv.ParseUint(idString, 10, 64); parseErr == nil {
			suggestion.ExternalID = pointy.Uint64(externalID)
		}
	}

	return suggestion, err
}

func extractABV(abv string) *float64 {
	before, _, found := strings.Cut(abv, "%")
	if !found {
		return nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(before), 64)
	if err != nil {
		return nil
	}

	return &value
}
