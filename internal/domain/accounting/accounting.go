// Package accounting holds the revenue and stock rules applied when a
// product is created or updated. Nothing here touches storage.
package accounting

import (
	"errors"
	"math"

	"github.com/inventory-backend/stockroom/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 金額は小数2桁
const moneyPlaces = 2

// 累計販売数がint64に収まらない
var ErrQuantityOverflow = errors.New("quantity_sold overflow")

// 更新時の入力。4項目すべて必須
type Update struct {
	Name            string
	Price           decimal.Decimal
	QuantitySold    int64
	QuantityInStock int64
}

// Accrual は1回の操作で加算した売上
func Accrual(price decimal.Decimal, quantitySold int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantitySold)).Round(moneyPlaces)
}

// ApplyCreate は作成時のルール。
// revenue = 入力revenue + price * quantity_sold。在庫はそのまま
func ApplyCreate(p model.Product) model.Product {
	p.Price = p.Price.Round(moneyPlaces)
	p.Revenue = p.Revenue.Add(Accrual(p.Price, p.QuantitySold)).Round(moneyPlaces)
	return p
}

// ApplyUpdate は更新時のルール。
// quantity_soldとrevenueは加算、quantity_in_stockは上書き。
// 売上は新しいpriceと今回の販売数で計算する
func ApplyUpdate(current model.Product, u Update) (model.Product, error) {
	sold, ok := addInt64(current.QuantitySold, u.QuantitySold)
	if !ok {
		return model.Product{}, ErrQuantityOverflow
	}

	next := current
	next.Name = u.Name
	next.Price = u.Price.Round(moneyPlaces)
	next.QuantitySold = sold
	next.Revenue = current.Revenue.Add(Accrual(next.Price, u.QuantitySold)).Round(moneyPlaces)
	next.QuantityInStock = u.QuantityInStock
	return next, nil
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// HasNegativeInput は負の入力を検出する。拒否はしない
func HasNegativeInput(price decimal.Decimal, quantitySold int64) bool {
	return price.IsNegative() || quantitySold < 0
}
