package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDWithSupplier(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SupplierRepoMock struct{ mock.Mock }

func (m *SupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Supplier)
	return items, args.Error(1)
}

func (m *SupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Supplier)
	return created, args.Error(1)
}

func (m *SupplierRepoMock) Update(ctx context.Context, id int64, patch repo.SupplierPatch) (model.Supplier, error) {
	args := m.Called(ctx, id, patch)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// WithinTx の中で渡す repos を固定する
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	products  repo.ProductRepository
	suppliers repo.SupplierRepository
}

func (r *TxReposMock) Products() repo.ProductRepository   { return r.products }
func (r *TxReposMock) Suppliers() repo.SupplierRepository { return r.suppliers }

// =====================
// cache / publisher / mailer
// =====================

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, e model.InventoryEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MailerMock struct{ mock.Mock }

func (m *MailerMock) Send(ctx context.Context, mail usecase.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

// 記録された値をそのまま持つ
type MetricsRecorder struct {
	accrued       []decimal.Decimal
	notifications []string
}

func (m *MetricsRecorder) RevenueAccrued(amount decimal.Decimal) {
	m.accrued = append(m.accrued, amount)
}

func (m *MetricsRecorder) NotificationSent(status string) {
	m.notifications = append(m.notifications, status)
}

func assertErrContains(t *testing.T, err error, sub string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), sub), "error=%q want contains %q", err.Error(), sub)
	}
}
