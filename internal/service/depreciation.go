package service

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StraightLineAnnualDepreciation returns (purchase - salvage) / usefulLifeYears.
// Returns nil when purchase price or useful life is missing.
func StraightLineAnnualDepreciation(purchase, salvage *decimal.Decimal, usefulLifeYears *int) *decimal.Decimal {
	if purchase == nil || usefulLifeYears == nil || *usefulLifeYears <= 0 {
		return nil
	}
	s := decimal.Zero
	if salvage != nil {
		s = *salvage
	}
	d := purchase.Sub(s).Div(decimal.NewFromInt(int64(*usefulLifeYears)))
	return &d
}

// ReducingBalanceDepreciation returns the accumulated depreciation after
// yearsElapsed whole years at the given annual rate (percent).
func ReducingBalanceDepreciation(purchase, rate *decimal.Decimal, yearsElapsed int) *decimal.Decimal {
	if purchase == nil || rate == nil {
		return nil
	}
	bookValue := *purchase
	for i := 0; i < yearsElapsed; i++ {
		bookValue = bookValue.Sub(bookValue.Mul(*rate).Div(hundred))
	}
	d := purchase.Sub(bookValue)
	return &d
}

// CurrentBookValue computes an asset's book value as of now. The reducing
// balance method is used when a depreciation rate is set, otherwise straight
// line over the useful life. The result never drops below the salvage value.
// Assets without a purchase price or date keep their purchase price as-is.
func CurrentBookValue(purchase, salvage, rate *decimal.Decimal, usefulLifeYears *int, purchaseDate *time.Time, now time.Time) *decimal.Decimal {
	if purchase == nil || purchaseDate == nil {
		return purchase
	}

	yearsElapsed := now.Sub(*purchaseDate).Hours() / 24 / 365.25

	var total *decimal.Decimal
	switch {
	case rate != nil:
		total = ReducingBalanceDepreciation(purchase, rate, int(yearsElapsed))
	case usefulLifeYears != nil:
		annual := StraightLineAnnualDepreciation(purchase, salvage, usefulLifeYears)
		if annual != nil {
			d := annual.Mul(decimal.NewFromFloat(yearsElapsed))
			total = &d
		}
	default:
		return purchase
	}

	s := decimal.Zero
	if salvage != nil {
		s = *salvage
	}
	book := *purchase
	if total != nil {
		book = book.Sub(*total)
	}
	if book.LessThan(s) {
		book = s
	}
	return &book
}
