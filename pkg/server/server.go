// Package server mounts the menu API on a gin router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/auth"
	"droscher.com/DrinkMenu/pkg/server/rest"
)

type Subscriptions interface {
	ServeWS(c *gin.Context)
}

type HealthChecker interface {
	Healthcheck(c *gin.Context)
}

type Handlers struct {
	Brands      *BrandHandler
	Recipes     *RecipeHandler
	Sessions    *SessionHandler
	Suggestions *SuggestionHandler
}

type Server struct {
	Router        *gin.Engine
	auth          *auth.Manager
	subscriptions Subscriptions
	health        HealthChecker
	gatherer      prometheus.Gatherer
	logger        *zap.Logger
}

func NewServer(authManager *auth.Manager, subscriptions Subscriptions, health HealthChecker, gatherer prometheus.Gatherer, logger *zap.Logger, handlers Handlers) *Server {
	s := &Server{
		Router:        gin.New(),
		auth:          authManager,
		subscriptions: subscriptions,
		health:        health,
		gatherer:      gatherer,
		logger:        logger,
	}

	s.MountMiddlewares()
	s.MountHandlers(handlers)

	return s
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, rest.ErrorResponse{Status: http.StatusInternalServerError, Message: "Internal server error"})
	}))
	s.Router.Use(requestid.New())
	s.Router.Use(RequestLogger(s.logger))
	s.Router.Use(s.auth.RenewSession())
}

func (s *Server) MountHandlers(handlers Handlers) {
	api := s.Router.Group("/api")
	{
		api.GET("", s.subscriptions.ServeWS)

		api.GET("/login", s.auth.LimitLogins(), handlers.Sessions.HandleLogin)
		api.GET("/logout", handlers.Sessions.HandleLogout)
		api.GET("/verify-token", handlers.Sessions.HandleVerifyToken)

		api.GET("/beers-and-liquors", handlers.Brands.HandleListBrands)
		api.GET("/beers-and-liquors-by-type", handlers.Brands.HandleListBrandsByType)
		api.GET("/beer-or-liquor/:id", handlers.Brands.HandleGetBrand)

		api.GET("/mixed-drinks", handlers.Recipes.HandleListRecipes)
		api.GET("/mixed-drink/:id", handlers.Recipes.HandleGetRecipe)
	}

	secure := s.Router.Group("/api/secure", s.auth.RequireSession())
	{
		secure.POST("/beer-or-liquor/:id/mark-in-stock/:flag", handlers.Brands.HandleSetStock)
		secure.PUT("/beer-or-liquor", handlers.Brands.HandleSaveBrand)
		secure.PUT("/beer-or-liquor/:id", handlers.Brands.HandleSaveBrand)
		secure.DELETE("/beer-or-liquor/:id", handlers.Brands.HandleDeleteBrand)

		secure.PUT("/mixed-drink", handlers.Recipes.HandleSaveRecipe)
		secure.PUT("/mixed-drink/:id", handlers.Recipes.HandleSaveRecipe)
		secure.DELETE("/mixed-drink/:id", handlers.Recipes.HandleDeleteRecipe)

		secure.GET("/brand-suggestions", handlers.Suggestions.HandleFindBrands)
	}

	s.Router.GET("/healthcheck", s.health.Healthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, rest.ErrorResponse{Status: http.StatusNotFound, Message: "Not Found"})
	})
}

// RequestLogger logs every request once it has been served.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("served request",
			zap.String("requestId", requestid.Get(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// renderError writes err as a {status, message} body. Only the client-facing message leaves the
// server; the wrapped cause is logged.
func renderError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := apperror.From(err)
	status := appErr.HTTPStatus()

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	} else {
		logger.Info("request rejected", zap.String("path", c.Request.URL.Path), zap.Int("status", status), zap.Error(err))
	}

	c.AbortWithStatusJSON(status, rest.ErrorResponse{Status: status, Message: appErr.Message})
}

// boolQuery accepts only "true" and "false"; an absent parameter is false.
func boolQuery(c *gin.Context, name string) (bool, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return false, nil
	}

	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, apperror.InvalidArgument("Invalid boolean value for param '%s'", name)
}
