package entities

import "github.com/shopspring/decimal"

// fallbackBasePrice is charged when a package id does not resolve.
var fallbackBasePrice = decimal.NewFromInt(100)

// PriceBreakdown is the price derived from a BookingConfiguration.
//
// It is never stored: callers recompute it from the configuration on every
// read so it cannot go stale.
type PriceBreakdown struct {
	Base         decimal.Decimal
	Extras       decimal.Decimal
	Subtotal     decimal.Decimal
	DiscountRate decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

// CalculatePrice computes
//
//	total = (package price + bedrooms*35 + bathrooms*25) * (1 - discount(frequency))
func CalculatePrice(cfg BookingConfiguration) PriceBreakdown {
	base := fallbackBasePrice
	if p, err := FindPackage(cfg.PackageID); err == nil {
		base = p.Price
	}

	factors := Pricing()
	extras := factors.Bedroom.Mul(decimal.NewFromInt(int64(cfg.Bedrooms))).
		Add(factors.Bathroom.Mul(decimal.NewFromInt(int64(cfg.Bathrooms))))
	subtotal := base.Add(extras)

	rate := decimal.Zero
	if d, err := FindFrequency(cfg.Frequency); err == nil {
		rate = d.Rate
	}
	discount := subtotal.Mul(rate)

	return PriceBreakdown{
		Base:         base,
		Extras:       extras,
		Subtotal:     subtotal,
		DiscountRate: rate,
		Discount:     discount,
		Total:        subtotal.Sub(discount),
	}
}
