// internal/cart/cart.go
package cart

import (
	"github.com/shopspring/decimal"
)

// VATRate is the flat VAT percentage applied to every cart and order.
var VATRate = decimal.NewFromInt(17)

var oneHundred = decimal.NewFromInt(100)

// Item is one pending line in a buyer's cart.
type Item struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
}

// Cart is a value type: every mutation returns a new cart with totals
// recomputed from scratch. Persistence (local storage on the client) is a
// boundary concern and lives outside this package.
type Cart struct {
	Items     []Item          `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

func New() Cart {
	return recompute(nil)
}

// Add merges on (ProductID, VariantID) by incrementing quantity, otherwise
// appends a new line. Stock is not checked here; availability is enforced
// server-side at order time.
func Add(c Cart, item Item) Cart {
	items := cloneItems(c.Items)
	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].VariantID == item.VariantID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return recompute(items)
}

// UpdateQuantity overwrites the matching line's quantity. A quantity of zero
// or less behaves exactly like Remove.
func UpdateQuantity(c Cart, productID, variantID string, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, productID, variantID)
	}
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].ProductID == productID && items[i].VariantID == variantID {
			items[i].Quantity = quantity
			break
		}
	}
	return recompute(items)
}

func Remove(c Cart, productID, variantID string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			continue
		}
		items = append(items, it)
	}
	return recompute(items)
}

func Clear(Cart) Cart {
	return New()
}

// Totals computes subtotal, VAT amount and total for a set of lines.
// Shared with order intake so both sides agree on the arithmetic.
func Totals(items []Item) (subtotal, vatAmount, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	vatAmount = subtotal.Mul(VATRate).Div(oneHundred).Round(2)
	total = subtotal.Add(vatAmount)
	return subtotal, vatAmount, total
}

func recompute(items []Item) Cart {
	if items == nil {
		items = []Item{}
	}
	subtotal, vatAmount, total := Totals(items)
	return Cart{
		Items:     items,
		Subtotal:  subtotal,
		VATRate:   VATRate,
		VATAmount: vatAmount,
		Total:     total,
	}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
