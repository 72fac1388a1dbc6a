package order

// Default pricing parameters. These mirror the rates the business currently
// charges; override them through PricingConfig when they change.
const (
	DefaultTaxRate     = 0.09
	DefaultShippingFee = 5.00
)

// PricingConfig carries the process-wide pricing parameters as an explicit
// value instead of hidden constants, so rates are testable and swappable.
type PricingConfig struct {
	// TaxRate is applied to the subtotal, e.g. 0.09 for 9%.
	TaxRate float64

	// ShippingFee is a flat charge independent of order size.
	ShippingFee float64
}

// DefaultPricingConfig returns the current business rates:
// 9% tax and a flat 5.00 shipping fee.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:     DefaultTaxRate,
		ShippingFee: DefaultShippingFee,
	}
}

// Totals holds the derived financials of an order. They are computed exactly
// once at creation time and never recomputed on later edits.
type Totals struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Shipping float64
	Total    float64
}

// CalculateTotals derives the order financials from a set of line items.
// Pure function: subtotal is the sum of line totals, tax is subtotal times the
// configured rate, shipping is the flat fee, discount is always zero in the
// current scope, and total = subtotal + tax + shipping - discount.
//
// Malformed items (zero quantity, negative price) must be rejected by the
// caller before invocation; the item constructors enforce this.
func CalculateTotals(items []Item, cfg PricingConfig) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	tax := subtotal * cfg.TaxRate
	totals := Totals{
		Subtotal: subtotal,
		Discount: 0,
		Tax:      tax,
		Shipping: cfg.ShippingFee,
	}
	totals.Total = totals.Subtotal + totals.Tax + totals.Shipping - totals.Discount
	return totals
}
