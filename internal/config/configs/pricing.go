package configs

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Pricing configures how campaign dates are interpreted and how discounts
// are labelled. Timezone is an IANA name, Language a BCP 47 tag and
// Currency an ISO 4217 code.
type Pricing struct {
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
	Language string `env:"LANGUAGE" envDefault:"en-US"`
	Currency string `env:"CURRENCY" envDefault:"USD"`
}

// Location loads the configured time zone.
func (c Pricing) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("pricing timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Tag parses the configured language.
func (c Pricing) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("pricing language %q: %w", c.Language, err)
	}
	return tag, nil
}

// Unit parses the configured currency.
func (c Pricing) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("pricing currency %q: %w", c.Currency, err)
	}
	return unit, nil
}
