package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫イベントの種類
type InventoryEventType string

const (
	InventoryEventProductCreated InventoryEventType = "product_created"
	InventoryEventProductUpdated InventoryEventType = "product_updated"
	InventoryEventProductDeleted InventoryEventType = "product_deleted"
)

// 商品の販売数・在庫・売上が変わったときに外部へ流す記録
type InventoryEvent struct {
	EventType         InventoryEventType `json:"event_type"`
	ProductID         int64              `json:"product_id"`
	SupplierID        int64              `json:"supplier_id,omitempty"`
	QuantitySoldDelta int64              `json:"quantity_sold_delta"`
	QuantityInStock   int64              `json:"quantity_in_stock"`
	RevenueAccrued    decimal.Decimal    `json:"revenue_accrued"`
	OccurredAt        time.Time          `json:"occurred_at"`
}
