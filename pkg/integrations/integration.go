package integrations

import (
	"fmt"

	"go.uber.org/zap"

	"droscher.com/DrinkMenu/configs"
	"droscher.com/DrinkMenu/pkg/integrations/untappd-web"
	"droscher.com/DrinkMenu/pkg/model"
)

var ErrUnknownIntegration = fmt.Errorf("%w: unknown integration", configs.ErrConfiguration)

type Integration interface {
	FindBrands(query string) ([]model.BrandSuggestion, error)
}

func GetIntegration(name string, conf *configs.Config, logger *zap.Logger) (Integration, error) {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappedWebIntegration(conf.Integrations.UntappdBaseURL, logger.Named(name))
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownIntegration, name)
}

// GetIntegrations resolves every configured brand integration, keyed by name.
func GetIntegrations(conf *configs.Config, logger *zap.Logger) (map[string]Integration, error) {
	integrations := make(map[string]Integration, len(conf.Integrations.Brand))

	for _, name := range conf.Integrations.Brand {
		integration, err := GetIntegration(name, conf, logger)
		if err != nil {
			return nil, err
		}

		integrations[name] = integration
	}

	return integrations, nil
}
