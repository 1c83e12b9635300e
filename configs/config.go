package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string        `validate:"required"`
	Port               int           `default:"5432"`
	User               string        `default:"postgres"`
	Password           string        `validate:"required"`
	Database           string        `default:"drinkmenu"`
	MaxIdleConnections int           `default:"10"`
	MaxOpenConnections int           `default:"10"`
	ConnectTimeout     time.Duration `default:"5s"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"http://localhost:3000"`
}

type Auth struct {
	SecretKey     string        `validate:"required"`
	LoginPassword string        `validate:"required"`
	CookieName    string        `default:"AUTH_TOKEN"`
	RenewAfter    time.Duration `default:"5m"`
	LoginInterval time.Duration `default:"1s"`
	LoginBurst    int           `default:"5"`
}

type Notifications struct {
	QueueSize      int `default:"64"`
	SubscriberSize int `default:"256"`
}

type Integrations struct {
	Brand          []string `default:"untappd_web"`
	UntappdBaseURL string   `default:"https://untappd.com"`
}

type Config struct {
	DB            DB
	Server        Server
	Auth          Auth
	Notifications Notifications
	Integrations  Integrations
}

const envPrefix = "DRINKMENU" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Auth.RenewAfter <= 0 {
		return nil, errors.Join(ErrConfiguration, errors.New("Auth.RenewAfter must be positive"))
	}

	return &config, nil
}
