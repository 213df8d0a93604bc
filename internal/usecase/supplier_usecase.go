package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"

	"go.uber.org/zap"
)

type SupplierUsecase struct {
	supplierRepo repo.SupplierRepository
	logger       *zap.Logger
}

// DI
func NewSupplierUsecase(supplierRepo repo.SupplierRepository, logger *zap.Logger) *SupplierUsecase {
	return &SupplierUsecase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

type SupplierInput struct {
	Name        string
	Company     string
	Address     string
	PhoneNumber string
	Email       string
}

func (u *SupplierUsecase) CreateSupplier(ctx context.Context, in SupplierInput) (model.Supplier, error) {
	s := model.Supplier{
		Name:        strings.TrimSpace(in.Name),
		Company:     strings.TrimSpace(in.Company),
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       strings.TrimSpace(in.Email),
	}
	if err := validateSupplierFields(map[string]*string{
		"name":         &s.Name,
		"company":      &s.Company,
		"address":      &s.Address,
		"phone_number": &s.PhoneNumber,
		"email":        &s.Email,
	}); err != nil {
		return model.Supplier{}, err
	}

	created, err := u.supplierRepo.Create(ctx, s)
	if err != nil {
		return model.Supplier{}, u.storeError("create supplier", err)
	}
	return created, nil
}

func (u *SupplierUsecase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return nil, u.storeError("list suppliers", err)
	}
	return suppliers, nil
}

func (u *SupplierUsecase) GetSupplier(ctx context.Context, id int64) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, newError(ErrNotFound, "supplier not found")
	}

	s, err := u.supplierRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, newError(ErrNotFound, "supplier not found")
	}
	if err != nil {
		return model.Supplier{}, u.storeError("get supplier", err)
	}
	return s, nil
}

// 部分更新。指定された項目は空文字不可
func (u *SupplierUsecase) UpdateSupplier(ctx context.Context, id int64, patch repo.SupplierPatch) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, newError(ErrNotFound, "supplier not found")
	}

	trimmed := repo.SupplierPatch{
		Name:        trimPtr(patch.Name),
		Company:     trimPtr(patch.Company),
		Address:     trimPtr(patch.Address),
		PhoneNumber: trimPtr(patch.PhoneNumber),
		Email:       trimPtr(patch.Email),
	}
	if err := validateSupplierFields(map[string]*string{
		"name":         trimmed.Name,
		"company":      trimmed.Company,
		"address":      trimmed.Address,
		"phone_number": trimmed.PhoneNumber,
		"email":        trimmed.Email,
	}); err != nil {
		return model.Supplier{}, err
	}

	s, err := u.supplierRepo.Update(ctx, id, trimmed)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, newError(ErrNotFound, "supplier not found")
	}
	if err != nil {
		return model.Supplier{}, u.storeError("update supplier", err)
	}
	return s, nil
}

// 存在しないIDでも成功扱い
func (u *SupplierUsecase) DeleteSupplier(ctx context.Context, id int64) error {
	err := u.supplierRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrForeignKey) {
		return wrapError(ErrStore, "supplier still has products", err)
	}
	if err != nil {
		return u.storeError("delete supplier", err)
	}
	return nil
}

func (u *SupplierUsecase) storeError(op string, err error) error {
	u.logger.Error("supplier store failure", zap.String("op", op), zap.Error(err))
	return wrapError(ErrStore, "db error", err)
}

// nilは未指定としてスキップ、空文字はエラー
func validateSupplierFields(fields map[string]*string) error {
	for _, key := range []string{"name", "company", "address", "phone_number", "email"} {
		v := fields[key]
		if v != nil && *v == "" {
			return newError(ErrValidation, key+" required")
		}
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
