package catalog

import "errors"

var (
	ErrUnknownItem   = errors.New("unknown item")
	ErrPriceMismatch = errors.New("item price mismatch")
)

// Catalog is an immutable item -> price table fixed at construction time.
type Catalog struct {
	prices map[string]int64
}

// New copies the supplied table so later mutation of the argument
// cannot leak into the catalog.
func New(prices map[string]int64) *Catalog {
	cp := make(map[string]int64, len(prices))
	for name, price := range prices {
		cp[name] = price
	}

	return &Catalog{prices: cp}
}

// Default returns the store's stock merch table.
func Default() *Catalog {
	return New(map[string]int64{
		"t-shirt":    80,
		"cup":        20,
		"book":       50,
		"pen":        10,
		"powerbank":  200,
		"hoody":      300,
		"umbrella":   200,
		"socks":      10,
		"wallet":     50,
		"pink-hoody": 500,
	})
}

func (c *Catalog) Lookup(name string) (int64, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// ValidatePrice checks a claimed price against the catalog. It guards
// record creation from stale or forged prices.
func (c *Catalog) ValidatePrice(name string, claimed int64) error {
	price, ok := c.prices[name]
	if !ok {
		return ErrUnknownItem
	}

	if price != claimed {
		return ErrPriceMismatch
	}

	return nil
}
