package untappdweb

import (
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	DefaultBaseURL  = "https://untappd.com"

	userAgent         = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
	detailParallelism = 4
)

type UntappedWebIntegration struct {
	baseURL string
	domain  string
	logger  *zap.Logger
}

func NewUntappedWebIntegration(baseURL string, logger *zap.Logger) (*UntappedWebIntegration, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &UntappedWebIntegration{
		baseURL: strings.TrimSuffix(parsed.String(), "/"),
		domain:  parsed.Hostname(),
		logger:  logger,
	}, nil
}

func (u *UntappedWebIntegration) newCollector() *colly.Collector {
	return colly.NewCollector(
		colly.AllowedDomains(u.domain),
		colly.UserAgent(userAgent),
	)
}
