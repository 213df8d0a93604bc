package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"

	"go.uber.org/zap"
)

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// ProductRepository のFindByIDだけをread-throughでキャッシュする。
// 更新・削除はそのまま委譲するので、呼び出し側がInvalidateでキーを消す
type ProductRepository struct {
	repo.ProductRepository

	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewProductRepository(inner repo.ProductRepository, store Store, ttl time.Duration, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		ProductRepository: inner,
		store:             store,
		ttl:               ttl,
		logger:            logger,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	key := productKey(id)

	data, err := r.store.Get(ctx, key)
	if err == nil {
		var p model.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return p, nil
		}
		r.logger.Warn("broken product cache entry", zap.String("key", key))
	} else if !errors.Is(err, ErrMiss) {
		//redisが落ちていてもDBで返す
		r.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}

	p, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return p, nil
}

func (r *ProductRepository) Invalidate(ctx context.Context, id int64) error {
	return r.store.Del(ctx, productKey(id))
}

// キャッシュなしの構成用
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(ctx context.Context, id int64) error { return nil }
