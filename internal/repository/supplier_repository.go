package repository

import (
	"context"

	"github.com/inventory-backend/stockroom/internal/domain/model"
)

// 仕入先の部分更新。nilの項目は変更しない
type SupplierPatch struct {
	Name        *string
	Company     *string
	Address     *string
	PhoneNumber *string
	Email       *string
}

func (p SupplierPatch) IsEmpty() bool {
	return p.Name == nil && p.Company == nil && p.Address == nil && p.PhoneNumber == nil && p.Email == nil
}

type SupplierRepository interface {
	List(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, id int64, patch SupplierPatch) (model.Supplier, error)

	//存在しなくてもエラーにしない
	Delete(ctx context.Context, id int64) error
}
