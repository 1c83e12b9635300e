package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"droscher.com/DrinkMenu/configs"
	"droscher.com/DrinkMenu/pkg/auth"
	"droscher.com/DrinkMenu/pkg/health"
	"droscher.com/DrinkMenu/pkg/integrations"
	"droscher.com/DrinkMenu/pkg/inventory"
	"droscher.com/DrinkMenu/pkg/notify"
	"droscher.com/DrinkMenu/pkg/repository"
	"droscher.com/DrinkMenu/pkg/server"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".DrinkMenu.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	brandIntegrations, err := integrations.GetIntegrations(conf, logger)
	if err != nil {
		logger.Error("error loading integrations", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hub := notify.NewHub(notify.Options{
		QueueSize:      conf.Notifications.QueueSize,
		SubscriberSize: conf.Notifications.SubscriberSize,
		AllowedOrigins: conf.Server.AllowedOrigins,
	}, registry, logger.Named("notify"))

	authManager := auth.NewAuthManager(conf, logger.Named("auth"))
	service := inventory.NewService(repo, repo, hub, logger.Named("inventory"))
	checker := health.NewChecker(repo, logger.Named("health"))

	if !cliCtx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewServer(authManager, hub, checker, registry, logger.Named("http"), server.Handlers{
		Brands:      server.NewBrandHandler(service, logger),
		Recipes:     server.NewRecipeHandler(service, logger),
		Sessions:    server.NewSessionHandler(authManager, logger),
		Suggestions: server.NewSuggestionHandler(brandIntegrations, logger),
	}).Router

	mux := http.NewServeMux()
	mux.Handle("/", router)

	interceptors := connect.WithInterceptors(health.LoggingInterceptor(logger.Named("grpc")))
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	mux.Handle(grpchealth.NewHandler(checker, interceptors))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(corsHandler, &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return hub.Run(groupCtx)
	})

	group.Go(func() error {
		logger.Info("listening", zap.String("address", svr.Addr))

		if err := svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return svr.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-pw",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
