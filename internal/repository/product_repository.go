package repository

import (
	"context"
	"errors"

	"github.com/inventory-backend/stockroom/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	//参照先が存在しない/まだ参照されている（FK違反）
	ErrForeignKey = errors.New("foreign key violation")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//仕入先も一緒に読む
	FindByIDWithSupplier(ctx context.Context, id int64) (model.Product, error)

	//行ロック付きで読む。Tx内で使う
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)

	//存在しなくてもエラーにしない
	Delete(ctx context.Context, id int64) error
}
