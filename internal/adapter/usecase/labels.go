package usecase

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sales-campaigns/internal/core/domain"
)

// LabelFormatter renders short, localized descriptions of campaigns for
// administrative listings.
type LabelFormatter struct {
	tag  language.Tag
	unit currency.Unit
}

// NewLabelFormatter returns a formatter printing numbers for tag and
// amounts in unit.
func NewLabelFormatter(tag language.Tag, unit currency.Unit) *LabelFormatter {
	return &LabelFormatter{tag: tag, unit: unit}
}

// Discount describes the discount, e.g. "20% off" or "$ 30.00 off",
// followed by free shipping and store notice markers.
func (f *LabelFormatter) Discount(c domain.Campaign) string {
	p := message.NewPrinter(f.tag)
	if !c.DiscountValue.IsPositive() {
		return p.Sprintf("None")
	}

	parts := make([]string, 0, 3)
	value := c.DiscountValue.InexactFloat64()
	if c.DiscountType == domain.DiscountPercent {
		parts = append(parts, p.Sprintf("%v%% off", value))
	} else {
		parts = append(parts, p.Sprintf("%v off", currency.Symbol(f.unit.Amount(value))))
	}
	if c.FreeShipping {
		parts = append(parts, p.Sprintf("Free shipping"))
	}
	if c.StoreNoticeEnabled {
		parts = append(parts, p.Sprintf("Store notice"))
	}
	return strings.Join(parts, " · ")
}
