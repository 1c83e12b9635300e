package cmd

import (
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/configs"
	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".DrinkMenu.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	err = repo.DB.AutoMigrate(&model.Brand{}, &model.Recipe{}, &model.RecipeIngredient{})
	if err != nil {
		return err
	}

	logger.Info("migrated schema")

	return nil
}
