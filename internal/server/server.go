package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/inventory-backend/stockroom/internal/config"
	appmw "github.com/inventory-backend/stockroom/internal/middleware"
	"github.com/inventory-backend/stockroom/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const serviceName = "stockroom"

// New はmiddlewareとルートを組み立てたechoを返す
func New(cfg config.Config, logger *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	//順番: recover → request id → trace → metrics → access log → CORS
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.TracingMiddleware(serviceName))
	e.Use(appmw.MetricsMiddleware())
	e.Use(appmw.LoggerMiddleware(logger))
	//全オリジン + credentials。"*"はブラウザに拒否されるのでOriginをそのまま返す
	//AllowHeaders未指定ならリクエストのヘッダをそのまま許可する
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	//メール送信はIPごとに制限
	emailLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.EmailRateLimit)))

	RegisterRoutes(e, h, emailLimiter)
	return e
}

// Run はctxがキャンセルされるまでHTTPを受け付け、終わったらclosersを順に閉じる
func Run(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger, closers ...func() error) error {
	errCh := make(chan error, 1)
	logger.Info("http server starting", zap.String("addr", addr))
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("http server failed", zap.Error(serveErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("http server stopped gracefully")
	}

	for _, c := range closers {
		if err := c(); err != nil {
			logger.Error("close failed", zap.Error(err))
		}
	}
	return serveErr
}
