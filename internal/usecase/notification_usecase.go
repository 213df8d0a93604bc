package usecase

import (
	"context"
	"errors"
	"fmt"

	repo "github.com/inventory-backend/stockroom/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// 送信するメール1通
type Mail struct {
	To       []string
	Subject  string
	HTMLBody string
}

// メール送信の約束（SMTPなど）
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// 送信結果を記録する。statusは"sent"か"failed"
type NotificationMetrics interface {
	NotificationSent(status string)
}

// レターヘッド付きの固定テンプレート。bodyはそのまま埋め込む
const mailTemplate = `
    <h5>%s</h5>
    <br>
    <p>%s</p>
    `

type NotificationUsecase struct {
	productRepo repo.ProductRepository
	mailer      Mailer
	letterhead  string
	metrics     NotificationMetrics
	logger      *zap.Logger
}

func NewNotificationUsecase(productRepo repo.ProductRepository, mailer Mailer, letterhead string, metrics NotificationMetrics, logger *zap.Logger) *NotificationUsecase {
	return &NotificationUsecase{
		productRepo: productRepo,
		mailer:      mailer,
		letterhead:  letterhead,
		metrics:     metrics,
		logger:      logger,
	}
}

// 商品の仕入先へメールを1通送る。リトライなし、送信完了まで待つ
func (u *NotificationUsecase) SendNotification(ctx context.Context, productID int64, subject string, body string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SendNotification")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	if productID <= 0 {
		return newError(ErrNotFound, "product not found")
	}

	p, err := u.productRepo.FindByIDWithSupplier(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return newError(ErrNotFound, "product not found")
	}
	if err != nil {
		u.logger.Error("product store failure", zap.String("op", "find product with supplier"), zap.Error(err))
		return wrapError(ErrStore, "db error", err)
	}
	if p.Supplier == nil {
		return newError(ErrNotFound, "supplier not found")
	}

	m := Mail{
		To:       []string{p.Supplier.Email},
		Subject:  subject,
		HTMLBody: RenderMailBody(u.letterhead, body),
	}
	if err := u.mailer.Send(ctx, m); err != nil {
		span.RecordError(err)
		u.metrics.NotificationSent("failed")
		u.logger.Error("notification delivery failed",
			zap.Int64("product_id", productID),
			zap.Int64("supplier_id", p.SuppliedByID),
			zap.Error(err),
		)
		return wrapError(ErrDelivery, "mail delivery failed", err)
	}

	u.metrics.NotificationSent("sent")
	u.logger.Info("notification sent",
		zap.Int64("product_id", productID),
		zap.Int64("supplier_id", p.SuppliedByID),
	)
	return nil
}

func RenderMailBody(letterhead string, body string) string {
	return fmt.Sprintf(mailTemplate, letterhead, body)
}
