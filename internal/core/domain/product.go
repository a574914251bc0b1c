package domain

import "github.com/shopspring/decimal"

// Product is a read-only snapshot of a catalog item. RegularPrice may be
// absent for products that are not priced yet; such products are never
// discounted.
type Product struct {
	ID           int64
	Name         string
	RegularPrice decimal.NullDecimal
	SalePrice    decimal.NullDecimal
	CategoryIDs  []int64
	TagIDs       []int64
}

// OnSaleAlready reports whether the product carries its own sale price.
func (p Product) OnSaleAlready() bool {
	return p.SalePrice.Valid
}

// Savings describes how much a customer saves against the regular price.
// Percent is expressed in the range [0,100].
type Savings struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal
}
