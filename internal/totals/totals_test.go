package totals

import (
	"testing"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, price string) model.LineItem {
	return model.NewLineItem("test item", dec(qty), dec(price))
}

func TestLineAmountInvariant(t *testing.T) {
	cases := []struct {
		qty, price, want string
	}{
		{"1", "10", "10.00"},
		{"3", "10.00", "30.00"},
		{"0", "99.99", "0.00"},
		{"2.5", "1.99", "4.98"}, // 4.975 rounds half-up
		{"7", "0.33", "2.31"},
	}
	for _, c := range cases {
		got := LineAmount(dec(c.qty), dec(c.price))
		assert.True(t, got.Equal(dec(c.want)), "qty=%s price=%s: got %s want %s", c.qty, c.price, got, c.want)
	}
}

func TestLineItemMutationRecomputesAmount(t *testing.T) {
	li := item("3", "10.00")
	require.True(t, li.Amount.Equal(dec("30.00")))

	li.SetQuantity(dec("5"))
	assert.True(t, li.Amount.Equal(dec("50.00")))

	li.SetUnitPrice(dec("2.50"))
	assert.True(t, li.Amount.Equal(dec("12.50")))
}

func TestEmptyItemsAllZero(t *testing.T) {
	got := Calculate(nil, dec("10"), dec("5"))
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestSingleItemTaxOnly(t *testing.T) {
	got := Calculate([]model.LineItem{item("3", "10.00")}, dec("10"), dec("0"))
	assert.True(t, got.Subtotal.Equal(dec("30.00")), "subtotal=%s", got.Subtotal)
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.TaxAmount.Equal(dec("3.00")), "tax=%s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("33.00")), "total=%s", got.Total)
}

// Tax must be computed on the discounted amount, not the raw subtotal:
// 100 − 10% = 90, 20% of 90 = 18, total 108 (not 110).
func TestDiscountAppliesBeforeTax(t *testing.T) {
	got := Calculate([]model.LineItem{item("1", "100.00")}, dec("20"), dec("10"))
	assert.True(t, got.DiscountAmount.Equal(dec("10.00")), "discount=%s", got.DiscountAmount)
	assert.True(t, got.TaxAmount.Equal(dec("18.00")), "tax=%s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("108.00")), "total=%s", got.Total)
}

func TestTotalIdentity(t *testing.T) {
	items := []model.LineItem{item("3", "19.99"), item("2", "4.37"), item("11", "0.09")}
	got := Calculate(items, dec("8.25"), dec("12.5"))

	want := got.Subtotal.Sub(got.DiscountAmount).Add(got.TaxAmount)
	assert.True(t, got.Total.Equal(want), "total=%s identity=%s", got.Total, want)

	// Subtotal is the exact sum of (already rounded) line amounts.
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	assert.True(t, got.Subtotal.Equal(sum))
}

func TestIdempotence(t *testing.T) {
	items := []model.LineItem{item("2", "7.77"), item("5", "3.33")}
	a := Calculate(items, dec("13"), dec("7"))
	b := Calculate(items, dec("13"), dec("7"))

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.DiscountAmount.Equal(b.DiscountAmount))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.Total.Equal(b.Total))
}

// The engine does not clamp rates; callers validate bounds. A negative rate
// simply flows through the same arithmetic.
func TestNegativeRatePassesThrough(t *testing.T) {
	got := Calculate([]model.LineItem{item("1", "100.00")}, dec("0"), dec("-10"))
	assert.True(t, got.DiscountAmount.Equal(dec("-10.00")))
	assert.True(t, got.Total.Equal(dec("110.00")))
}

func TestCentEdgeRounding(t *testing.T) {
	// 3 × 0.335 = 1.005 per line → 1.01 after half-up rounding.
	li := item("3", "0.335")
	require.True(t, li.Amount.Equal(dec("1.01")), "amount=%s", li.Amount)

	// Discount of 1.25% on 1.01 = 0.012625 → 0.01; tax 5% on 1.00 = 0.05.
	got := Calculate([]model.LineItem{li}, dec("5"), dec("1.25"))
	assert.True(t, got.DiscountAmount.Equal(dec("0.01")))
	assert.True(t, got.TaxAmount.Equal(dec("0.05")))
	assert.True(t, got.Total.Equal(dec("1.05")))
}
