package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/inventory-backend/stockroom/internal/domain/accounting"
	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const tracerName = "stockroom/usecase"

// 在庫イベントの送信先（kafkaなど）
type EventPublisher interface {
	Publish(ctx context.Context, e model.InventoryEvent) error
}

// 売上の計上を記録する（prometheusなど）
type ProductMetrics interface {
	RevenueAccrued(amount decimal.Decimal)
}

// 商品キャッシュの破棄
type ProductCache interface {
	Invalidate(ctx context.Context, productID int64) error
}

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	supplierRepo repo.SupplierRepository
	txm          repo.TransactionManager
	cache        ProductCache
	publisher    EventPublisher
	metrics      ProductMetrics
	logger       *zap.Logger
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	supplierRepo repo.SupplierRepository,
	txm repo.TransactionManager,
	cache ProductCache,
	publisher EventPublisher,
	metrics ProductMetrics,
	logger *zap.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		txm:          txm,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// POST /product/{supplier_id}の入力
type CreateProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	QuantityInStock int64
	QuantitySold    int64
	Revenue         decimal.Decimal
}

// PUT /product/{id}の入力。4項目とも必須
type UpdateProductInput struct {
	Name            string
	Price           decimal.Decimal
	QuantitySold    int64
	QuantityInStock int64
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, supplierID int64, in CreateProductInput) (model.Product, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreateProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("supplier.id", supplierID))

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, newError(ErrValidation, "name required")
	}

	//仕入先が先に存在すること
	if supplierID <= 0 {
		return model.Product{}, newError(ErrNotFound, "supplier not found")
	}
	if _, err := u.supplierRepo.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, newError(ErrNotFound, "supplier not found")
		}
		return model.Product{}, u.storeError("find supplier", err)
	}

	u.warnNegative(0, in.Price, in.QuantitySold)

	p := accounting.ApplyCreate(model.Product{
		Name:            name,
		Description:     in.Description,
		Price:           in.Price,
		QuantityInStock: in.QuantityInStock,
		QuantitySold:    in.QuantitySold,
		Revenue:         in.Revenue,
		SuppliedByID:    supplierID,
	})

	created, err := u.productRepo.Create(ctx, p)
	if errors.Is(err, repo.ErrForeignKey) {
		//検索後に仕入先が消された
		return model.Product{}, newError(ErrNotFound, "supplier not found")
	}
	if err != nil {
		span.RecordError(err)
		return model.Product{}, u.storeError("create product", err)
	}

	accrued := accounting.Accrual(created.Price, created.QuantitySold)
	u.metrics.RevenueAccrued(accrued)
	u.publish(ctx, model.InventoryEvent{
		EventType:         model.InventoryEventProductCreated,
		ProductID:         created.ID,
		SupplierID:        created.SuppliedByID,
		QuantitySoldDelta: created.QuantitySold,
		QuantityInStock:   created.QuantityInStock,
		RevenueAccrued:    accrued,
	})

	return created, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, u.storeError("list products", err)
	}
	return products, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, newError(ErrNotFound, "product not found")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, newError(ErrNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, u.storeError("get product", err)
	}
	return p, nil
}

// 読み込み→計算→保存を1つのTxで行う。行ロックで同じ商品の更新は直列になる
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "UpdateProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", id))

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, newError(ErrValidation, "name required")
	}
	if id <= 0 {
		return model.Product{}, newError(ErrNotFound, "product not found")
	}

	u.warnNegative(id, in.Price, in.QuantitySold)

	var updated model.Product
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Products().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		next, err := accounting.ApplyUpdate(current, accounting.Update{
			Name:            name,
			Price:           in.Price,
			QuantitySold:    in.QuantitySold,
			QuantityInStock: in.QuantityInStock,
		})
		if err != nil {
			return err
		}

		saved, err := r.Products().Update(ctx, next)
		if err != nil {
			return err
		}
		updated = saved
		return nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, newError(ErrNotFound, "product not found")
	}
	if errors.Is(err, accounting.ErrQuantityOverflow) {
		return model.Product{}, newError(ErrValidation, "quantity_sold overflow")
	}
	if err != nil {
		span.RecordError(err)
		return model.Product{}, u.storeError("update product", err)
	}

	u.invalidate(ctx, id)

	accrued := accounting.Accrual(updated.Price, in.QuantitySold)
	u.metrics.RevenueAccrued(accrued)
	u.publish(ctx, model.InventoryEvent{
		EventType:         model.InventoryEventProductUpdated,
		ProductID:         updated.ID,
		SupplierID:        updated.SuppliedByID,
		QuantitySoldDelta: in.QuantitySold,
		QuantityInStock:   updated.QuantityInStock,
		RevenueAccrued:    accrued,
	})

	return updated, nil
}

// 存在しないIDでも成功扱い
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return u.storeError("delete product", err)
	}

	u.invalidate(ctx, id)
	u.publish(ctx, model.InventoryEvent{
		EventType:      model.InventoryEventProductDeleted,
		ProductID:      id,
		RevenueAccrued: decimal.Zero,
	})
	return nil
}

// 負の値は受け付けるが、売上の単調性が崩れるので記録だけ残す
func (u *ProductUsecase) warnNegative(productID int64, price decimal.Decimal, quantitySold int64) {
	if !accounting.HasNegativeInput(price, quantitySold) {
		return
	}
	u.logger.Warn("negative accrual input accepted",
		zap.Int64("product_id", productID),
		zap.String("price", price.String()),
		zap.Int64("quantity_sold", quantitySold),
	)
}

// キャッシュ破棄の失敗はTTLで消えるのでログのみ
func (u *ProductUsecase) invalidate(ctx context.Context, id int64) {
	if err := u.cache.Invalidate(ctx, id); err != nil {
		u.logger.Warn("product cache invalidation failed", zap.Int64("product_id", id), zap.Error(err))
	}
}

// イベント送信は失敗してもリクエストは成功させる
func (u *ProductUsecase) publish(ctx context.Context, e model.InventoryEvent) {
	e.OccurredAt = time.Now().UTC()
	if err := u.publisher.Publish(ctx, e); err != nil {
		u.logger.Warn("inventory event publish failed",
			zap.String("event_type", string(e.EventType)),
			zap.Int64("product_id", e.ProductID),
			zap.Error(err),
		)
	}
}

func (u *ProductUsecase) storeError(op string, err error) error {
	u.logger.Error("product store failure", zap.String("op", op), zap.Error(err))
	return wrapError(ErrStore, "db error", err)
}
