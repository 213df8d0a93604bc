package repository

import (
	"context"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&suppliers).Error; err != nil {
		return []model.Supplier{}, err
	}
	return suppliers, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return model.Supplier{}, translate(err)
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, translate(err)
	}
	return s, nil
}

// 指定された項目だけ更新して、更新後の値を返す
func (r *SupplierGormRepository) Update(ctx context.Context, id int64, patch repo.SupplierPatch) (model.Supplier, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Company != nil {
		values["company"] = *patch.Company
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if patch.PhoneNumber != nil {
		values["phone_number"] = *patch.PhoneNumber
	}
	if patch.Email != nil {
		values["email"] = *patch.Email
	}

	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return model.Supplier{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Supplier{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// 物理削除。商品が残っているとFK違反になる
func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Supplier{}, id).Error; err != nil {
		return translate(err)
	}
	return nil
}
