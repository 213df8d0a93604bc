package accounting_test

import (
	"math"
	"testing"

	"github.com/inventory-backend/stockroom/internal/domain/accounting"
	"github.com/inventory-backend/stockroom/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyCreate_AccruesSuppliedPriceTimesSold(t *testing.T) {
	p := accounting.ApplyCreate(model.Product{
		Name:            "Widget",
		Price:           dec("10.00"),
		QuantitySold:    5,
		QuantityInStock: 7,
		Revenue:         decimal.Zero,
	})

	assert.True(t, dec("50.00").Equal(p.Revenue), "revenue=%s", p.Revenue)
	assert.Equal(t, int64(5), p.QuantitySold)
	assert.Equal(t, int64(7), p.QuantityInStock)
}

func TestApplyCreate_AddsToSuppliedRevenue(t *testing.T) {
	p := accounting.ApplyCreate(model.Product{
		Price:        dec("2.50"),
		QuantitySold: 4,
		Revenue:      dec("1.25"),
	})

	assert.True(t, dec("11.25").Equal(p.Revenue), "revenue=%s", p.Revenue)
}

func TestApplyUpdate_AccumulatesSoldAndRevenue(t *testing.T) {
	current := model.Product{
		ID:              1,
		Name:            "Old",
		Price:           dec("10.00"),
		QuantitySold:    5,
		QuantityInStock: 100,
		Revenue:         dec("50.00"),
		SuppliedByID:    3,
	}

	next, err := accounting.ApplyUpdate(current, accounting.Update{
		Name:            "X",
		Price:           dec("12.00"),
		QuantitySold:    3,
		QuantityInStock: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "X", next.Name)
	assert.True(t, dec("12.00").Equal(next.Price))
	assert.True(t, dec("86.00").Equal(next.Revenue), "revenue=%s", next.Revenue)
	assert.Equal(t, int64(8), next.QuantitySold)
	assert.Equal(t, int64(20), next.QuantityInStock)
	assert.Equal(t, int64(3), next.SuppliedByID)
	assert.Equal(t, int64(1), next.ID)

	// 元の値は変えない
	assert.Equal(t, int64(5), current.QuantitySold)
}

func TestApplyUpdate_PriceChangeDoesNotRecomputeHistory(t *testing.T) {
	p := accounting.ApplyCreate(model.Product{Price: dec("1.00"), QuantitySold: 10})
	p, err := accounting.ApplyUpdate(p, accounting.Update{Name: "a", Price: dec("5.00"), QuantitySold: 2, QuantityInStock: 0})
	require.NoError(t, err)
	p, err = accounting.ApplyUpdate(p, accounting.Update{Name: "a", Price: dec("0.50"), QuantitySold: 4, QuantityInStock: 0})
	require.NoError(t, err)

	// 10*1.00 + 2*5.00 + 4*0.50
	assert.True(t, dec("22.00").Equal(p.Revenue), "revenue=%s", p.Revenue)
	assert.Equal(t, int64(16), p.QuantitySold)
}

func TestApplyUpdate_NegativeInputIsNotRejected(t *testing.T) {
	p, err := accounting.ApplyUpdate(model.Product{Revenue: dec("10.00"), QuantitySold: 2}, accounting.Update{
		Name:         "n",
		Price:        dec("5.00"),
		QuantitySold: -3,
	})
	require.NoError(t, err)

	assert.True(t, dec("-5.00").Equal(p.Revenue), "revenue=%s", p.Revenue)
	assert.Equal(t, int64(-1), p.QuantitySold)
	assert.True(t, accounting.HasNegativeInput(dec("5.00"), -3))
	assert.True(t, accounting.HasNegativeInput(dec("-0.01"), 1))
	assert.False(t, accounting.HasNegativeInput(decimal.Zero, 0))
}

func TestAccrual_RoundsToCents(t *testing.T) {
	assert.Equal(t, "3.33", accounting.Accrual(dec("1.111"), 3).StringFixed(2))
}

func TestApplyUpdate_QuantitySoldOverflow(t *testing.T) {
	_, err := accounting.ApplyUpdate(model.Product{QuantitySold: 1}, accounting.Update{
		Name:         "n",
		Price:        dec("1.00"),
		QuantitySold: math.MaxInt64,
	})
	assert.ErrorIs(t, err, accounting.ErrQuantityOverflow)

	_, err = accounting.ApplyUpdate(model.Product{QuantitySold: -1}, accounting.Update{
		Name:         "n",
		Price:        dec("1.00"),
		QuantitySold: math.MinInt64,
	})
	assert.ErrorIs(t, err, accounting.ErrQuantityOverflow)

	//ちょうど上限は通る
	p, err := accounting.ApplyUpdate(model.Product{QuantitySold: 1}, accounting.Update{
		Name:         "n",
		Price:        dec("0"),
		QuantitySold: math.MaxInt64 - 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), p.QuantitySold)
}
