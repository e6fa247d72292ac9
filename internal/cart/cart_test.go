// internal/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(productID, variantID string, qty int, price string) Item {
	return Item{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func assertInvariant(t *testing.T, c Cart) {
	t.Helper()
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	assert.True(t, c.Subtotal.Equal(subtotal), "subtotal %s != %s", c.Subtotal, subtotal)

	vat := subtotal.Mul(decimal.NewFromInt(17)).Div(decimal.NewFromInt(100)).Round(2)
	assert.True(t, c.VATAmount.Equal(vat), "vat %s != %s", c.VATAmount, vat)
	assert.True(t, c.Total.Equal(subtotal.Add(vat)), "total %s != %s", c.Total, subtotal.Add(vat))
}

func TestNewCartIsEmpty(t *testing.T) {
	c := New()
	assert.Empty(t, c.Items)
	assert.True(t, c.Subtotal.IsZero())
	assert.True(t, c.VATAmount.IsZero())
	assert.True(t, c.Total.IsZero())
	assert.True(t, c.VATRate.Equal(decimal.NewFromInt(17)))
}

func TestAddAppendsAndRecomputes(t *testing.T) {
	c := Add(New(), item("p1", "", 2, "10.00"))
	c = Add(c, item("p2", "", 1, "5.50"))

	require.Len(t, c.Items, 2)
	assert.True(t, c.Subtotal.Equal(decimal.RequireFromString("25.50")))
	assertInvariant(t, c)
}

func TestAddMergesExistingLine(t *testing.T) {
	c := Add(New(), item("p1", "v1", 2, "10.00"))
	c = Add(c, item("p1", "v1", 3, "10.00"))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assertInvariant(t, c)
}

func TestAddDistinctVariantsAreSeparateLines(t *testing.T) {
	c := Add(New(), item("p1", "v1", 1, "10.00"))
	c = Add(c, item("p1", "v2", 1, "10.00"))

	assert.Len(t, c.Items, 2)
	assertInvariant(t, c)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	c := Add(New(), item("p1", "", 2, "10.00"))
	c = UpdateQuantity(c, "p1", "", 7)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.True(t, c.Subtotal.Equal(decimal.RequireFromString("70.00")))
	assertInvariant(t, c)
}

func TestUpdateQuantityZeroBehavesAsRemove(t *testing.T) {
	c := Add(New(), item("p1", "", 2, "10.00"))
	c = Add(c, item("p2", "", 1, "3.00"))

	byUpdate := UpdateQuantity(c, "p1", "", 0)
	byRemove := Remove(c, "p1", "")

	assert.Equal(t, byRemove.Items, byUpdate.Items)
	assert.True(t, byRemove.Total.Equal(byUpdate.Total))
	assertInvariant(t, byUpdate)
}

func TestUpdateQuantityNegativeBehavesAsRemove(t *testing.T) {
	c := Add(New(), item("p1", "", 2, "10.00"))
	c = UpdateQuantity(c, "p1", "", -1)

	assert.Empty(t, c.Items)
	assert.True(t, c.Total.IsZero())
}

func TestRemoveFiltersMatchingLine(t *testing.T) {
	c := Add(New(), item("p1", "v1", 2, "10.00"))
	c = Add(c, item("p1", "v2", 1, "10.00"))
	c = Remove(c, "p1", "v1")

	require.Len(t, c.Items, 1)
	assert.Equal(t, "v2", c.Items[0].VariantID)
	assertInvariant(t, c)
}

func TestClearEmptiesCart(t *testing.T) {
	c := Add(New(), item("p1", "", 2, "10.00"))
	c = Clear(c)

	assert.Empty(t, c.Items)
	assert.True(t, c.Total.IsZero())
}

func TestMutationsDoNotAliasPreviousCart(t *testing.T) {
	c1 := Add(New(), item("p1", "", 2, "10.00"))
	c2 := UpdateQuantity(c1, "p1", "", 9)

	assert.Equal(t, 2, c1.Items[0].Quantity)
	assert.Equal(t, 9, c2.Items[0].Quantity)
}

func TestWholesaleScenario(t *testing.T) {
	// 100 units at 45.50 from a stock of 1000.
	c := Add(New(), item("p-clear-bags", "", 100, "45.50"))

	assert.True(t, c.Subtotal.Equal(decimal.RequireFromString("4550.00")), "subtotal=%s", c.Subtotal)
	assert.True(t, c.VATAmount.Equal(decimal.RequireFromString("773.50")), "vat=%s", c.VATAmount)
	assert.True(t, c.Total.Equal(decimal.RequireFromString("5323.50")), "total=%s", c.Total)
}

func TestTotalsRounding(t *testing.T) {
	// 3 x 0.33 = 0.99; VAT 17% = 0.1683 -> 0.17
	_, vat, total := Totals([]Item{item("p1", "", 3, "0.33")})
	assert.True(t, vat.Equal(decimal.RequireFromString("0.17")))
	assert.True(t, total.Equal(decimal.RequireFromString("1.16")))
}
