package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。supplied_byで仕入先に紐づく
type Product struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	QuantityInStock int64           `gorm:"not null;default:0" json:"quantity_in_stock"`
	QuantitySold    int64           `gorm:"not null;default:0" json:"quantity_sold"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Revenue         decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"revenue"`
	SuppliedByID    int64           `gorm:"column:supplied_by;not null;index" json:"supplied_by"`
	Description     string          `gorm:"type:text" json:"description"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	//Eager load用。通常の取得では nil
	Supplier *Supplier `gorm:"foreignKey:SuppliedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Product) TableName() string { return "product" }
