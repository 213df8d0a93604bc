package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var (
	//負の入力を受け付けるのでGauge
	productRevenueAccrued = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_revenue_accrued",
			Help: "Sum of revenue accrued by product create/update since start",
		},
	)

	notificationsSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of supplier notifications by outcome",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(productRevenueAccrued)
	prometheus.MustRegister(notificationsSentTotal)
}

// 在庫まわりの業務メトリクス。/metricsにはHTTPメトリクスと一緒に出る
type Prometheus struct{}

func NewPrometheus() Prometheus {
	return Prometheus{}
}

func (Prometheus) RevenueAccrued(amount decimal.Decimal) {
	productRevenueAccrued.Add(amount.InexactFloat64())
}

func (Prometheus) NotificationSent(status string) {
	notificationsSentTotal.WithLabelValues(status).Inc()
}

// メトリクスを取らない構成・テスト用
type Nop struct{}

func (Nop) RevenueAccrued(amount decimal.Decimal) {}
func (Nop) NotificationSent(status string)        {}
