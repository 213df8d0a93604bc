package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	repo "github.com/inventory-backend/stockroom/internal/repository"
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const letterhead = "Ayush Bussines pvt ltd"

func TestNotificationUsecase_SendNotification_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	mailer := new(MailerMock)
	rec := new(MetricsRecorder)
	uc := usecase.NewNotificationUsecase(pRepo, mailer, letterhead, rec, zaptest.NewLogger(t))

	pRepo.On("FindByIDWithSupplier", mock.Anything, int64(7)).Return(model.Product{
		ID:           7,
		SuppliedByID: 1,
		Supplier:     &model.Supplier{ID: 1, Email: "acme@example.com"},
	}, nil)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(m usecase.Mail) bool {
		return len(m.To) == 1 &&
			m.To[0] == "acme@example.com" &&
			m.Subject == "Restock" &&
			strings.Contains(m.HTMLBody, "<h5>"+letterhead+"</h5>") &&
			strings.Contains(m.HTMLBody, "<p>Need 50 units</p>")
	})).Return(nil)

	err := uc.SendNotification(context.Background(), 7, "Restock", "Need 50 units")
	require.NoError(t, err)
	assert.Equal(t, []string{"sent"}, rec.notifications)

	pRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestNotificationUsecase_SendNotification_ProductNotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	mailer := new(MailerMock)
	rec := new(MetricsRecorder)
	uc := usecase.NewNotificationUsecase(pRepo, mailer, letterhead, rec, zaptest.NewLogger(t))

	pRepo.On("FindByIDWithSupplier", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.SendNotification(context.Background(), 99, "Restock", "x")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	assertErrContains(t, err, "product not found")
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotificationUsecase_SendNotification_MissingSupplier(t *testing.T) {
	pRepo := new(ProductRepoMock)
	mailer := new(MailerMock)
	rec := new(MetricsRecorder)
	uc := usecase.NewNotificationUsecase(pRepo, mailer, letterhead, rec, zaptest.NewLogger(t))

	pRepo.On("FindByIDWithSupplier", mock.Anything, int64(7)).Return(model.Product{ID: 7}, nil)

	err := uc.SendNotification(context.Background(), 7, "Restock", "x")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	assertErrContains(t, err, "supplier not found")
}

func TestNotificationUsecase_SendNotification_DeliveryFailure(t *testing.T) {
	pRepo := new(ProductRepoMock)
	mailer := new(MailerMock)
	rec := new(MetricsRecorder)
	uc := usecase.NewNotificationUsecase(pRepo, mailer, letterhead, rec, zaptest.NewLogger(t))

	pRepo.On("FindByIDWithSupplier", mock.Anything, int64(7)).Return(model.Product{
		ID:       7,
		Supplier: &model.Supplier{ID: 1, Email: "acme@example.com"},
	}, nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 authentication failed"))

	err := uc.SendNotification(context.Background(), 7, "Restock", "x")
	assert.ErrorIs(t, err, usecase.ErrDelivery)

	ue, ok := usecase.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "mail delivery failed", ue.Message)
	assert.Equal(t, []string{"failed"}, rec.notifications)
}

func TestRenderMailBody(t *testing.T) {
	out := usecase.RenderMailBody("Letterhead", "<b>bold</b>")
	assert.Contains(t, out, "<h5>Letterhead</h5>")
	assert.Contains(t, out, "<p><b>bold</b></p>")
}
