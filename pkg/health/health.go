// Package health reports whether the server can reach its database, both as a plain JSON
// endpoint and over the gRPC health protocol.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Checker struct {
	pinger  Pinger
	started time.Time
	now     func() time.Time
	logger  *zap.Logger
}

func NewChecker(pinger Pinger, logger *zap.Logger) *Checker {
	return &Checker{pinger: pinger, started: time.Now(), now: time.Now, logger: logger}
}

type Status struct {
	Uptime    float64 `json:"uptime"`
	Message   string  `json:"message"`
	Timestamp int64   `json:"timestamp"`
}

// Healthcheck answers with the process uptime in seconds, or 503 when the database is unreachable.
func (h *Checker) Healthcheck(c *gin.Context) {
	now := h.now()
	status := Status{
		Uptime:    now.Sub(h.started).Seconds(),
		Message:   "OK",
		Timestamp: now.UnixMilli(),
	}

	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", zap.Error(err))

		status.Message = apperror.From(err).Message
		c.JSON(http.StatusServiceUnavailable, status)

		return
	}

	c.JSON(http.StatusOK, status)
}

// Check implements grpchealth.Checker. Only the whole server ("") and the health service itself are
// mounted, so any other service name is unknown.
func (h *Checker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" && request.Service != grpchealth.HealthV1ServiceName {
		return nil, connect.NewError(connect.CodeNotFound, nil)
	}

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("database unreachable", zap.String("service", request.Service), zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}

// LoggingInterceptor logs every unary call served over connect together with its outcome.
func LoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(start)),
			}

			if err != nil {
				logger.Warn("rpc failed", append(fields, zap.String("code", connect.CodeOf(err).String()), zap.Error(err))...)
			} else {
				logger.Debug("rpc served", fields...)
			}

			return res, err
		}
	}
}
