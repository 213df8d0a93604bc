package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/inventory-backend/stockroom/internal/config"
	"github.com/inventory-backend/stockroom/internal/handler"
	"github.com/inventory-backend/stockroom/internal/infra/cache"
	"github.com/inventory-backend/stockroom/internal/infra/db"
	"github.com/inventory-backend/stockroom/internal/infra/events"
	"github.com/inventory-backend/stockroom/internal/infra/mail"
	"github.com/inventory-backend/stockroom/internal/infra/metrics"
	infraRepo "github.com/inventory-backend/stockroom/internal/infra/repository"
	"github.com/inventory-backend/stockroom/internal/middleware"
	repo "github.com/inventory-backend/stockroom/internal/repository"
	"github.com/inventory-backend/stockroom/internal/server"
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "run table migration before serving")
	return cmd
}

func runServe(cmd *cobra.Command, migrate bool) error {
	loadDotEnv(cmd)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect database", zap.Error(err))
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	closers := []func() error{sqlDB.Close}

	if migrate {
		if err := db.Migrate(gormDB); err != nil {
			logger.Error("migration failed", zap.Error(err))
			return err
		}
	}

	//Repository（GORM実装）
	var productRepo repo.ProductRepository = infraRepo.NewProductGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//商品キャッシュ（REDIS_ADDRがあれば）
	var productCache usecase.ProductCache = cache.NopInvalidator{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword, logger)
		if err != nil {
			logger.Error("failed to initialize redis", zap.Error(err))
			return err
		}
		closers = append(closers, rdb.Close)

		cached := cache.NewProductRepository(productRepo, cache.NewRedisStore(rdb), cfg.ProductCacheTTL, logger)
		productRepo = cached
		productCache = cached
	}

	//在庫イベント（KAFKA_BROKERSがあれば）
	var publisher usecase.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := events.InitProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			logger.Error("failed to initialize kafka producer", zap.Error(err))
			return err
		}
		closers = append(closers, producer.Close)
		publisher = events.NewKafkaPublisher(producer, cfg.KafkaTopic, logger)
	}

	shutdownTracing, err := middleware.InitTracing("stockroom", cfg.JaegerEndpoint)
	if err != nil {
		logger.Error("failed to initialize tracing", zap.Error(err))
		return err
	}
	closers = append(closers, func() error { shutdownTracing(); return nil })

	//Usecase
	mailer := mail.NewSMTPMailer(cfg.Mail, logger)
	domainMetrics := metrics.NewPrometheus()
	productUC := usecase.NewProductUsecase(productRepo, supplierRepo, txm, productCache, publisher, domainMetrics, logger)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, logger)
	notificationUC := usecase.NewNotificationUsecase(productRepo, mailer, cfg.Mail.Letterhead, domainMetrics, logger)

	//Handler
	e := server.New(cfg, logger, server.Handlers{
		Index:    handler.NewIndexHandler(),
		Supplier: handler.NewSupplierHandler(supplierUC),
		Product:  handler.NewProductHandler(productUC),
		Email:    handler.NewEmailHandler(notificationUC),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, e, cfg.Addr(), logger, closers...)
}
