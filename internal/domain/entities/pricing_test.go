package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		cfg      BookingConfiguration
		subtotal string
		total    string
		rate     string
	}{
		{
			name:     "deep weekly scenario",
			cfg:      BookingConfiguration{Bedrooms: 3, Bathrooms: 2, PackageID: PackageDeep, Frequency: FrequencyWeekly},
			subtotal: "395",
			total:    "316.00",
			rate:     "0.2",
		},
		{
			name:     "basic once has no discount",
			cfg:      BookingConfiguration{Bedrooms: 2, Bathrooms: 1, PackageID: PackageBasic, Frequency: FrequencyOnce},
			subtotal: "215",
			total:    "215.00",
			rate:     "0",
		},
		{
			name:     "move biweekly",
			cfg:      BookingConfiguration{Bedrooms: 1, Bathrooms: 1, PackageID: PackageMove, Frequency: FrequencyBiweekly},
			subtotal: "410",
			total:    "348.50",
			rate:     "0.15",
		},
		{
			name:     "empty home monthly",
			cfg:      BookingConfiguration{PackageID: PackageBasic, Frequency: FrequencyMonthly},
			subtotal: "120",
			total:    "108.00",
			rate:     "0.1",
		},
		{
			name:     "unknown package falls back",
			cfg:      BookingConfiguration{PackageID: "nope", Frequency: FrequencyOnce},
			subtotal: "100",
			total:    "100.00",
			rate:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.cfg)
			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal %s", got.Subtotal)
			assert.True(t, got.DiscountRate.Equal(decimal.RequireFromString(tt.rate)), "rate %s", got.DiscountRate)
			assert.Equal(t, tt.total, got.Total.StringFixed(2))
			assert.True(t, got.Total.Equal(got.Subtotal.Sub(got.Discount)))
		})
	}
}

func TestCalculatePrice_Formula(t *testing.T) {
	for _, pkg := range Catalog() {
		for _, freq := range FrequencyDiscounts() {
			for b := 0; b <= 6; b++ {
				for h := 0; h <= 4; h++ {
					cfg := BookingConfiguration{Bedrooms: b, Bathrooms: h, PackageID: pkg.ID, Frequency: freq.Tier}
					want := pkg.Price.
						Add(decimal.NewFromInt(int64(35 * b))).
						Add(decimal.NewFromInt(int64(25 * h))).
						Mul(decimal.NewFromInt(1).Sub(freq.Rate))
					got := CalculatePrice(cfg).Total
					require.True(t, got.Equal(want), "%s/%s b=%d h=%d: got %s want %s", pkg.ID, freq.Tier, b, h, got, want)
				}
			}
		}
	}
}

func TestCatalog(t *testing.T) {
	pkgs := Catalog()
	require.Len(t, pkgs, 3)
	assert.Equal(t, []PackageID{PackageBasic, PackageDeep, PackageMove}, []PackageID{pkgs[0].ID, pkgs[1].ID, pkgs[2].ID})

	pkgs[0].Features[0] = "mutated"
	again, err := FindPackage(PackageBasic)
	require.NoError(t, err)
	assert.Equal(t, "Dusting surfaces", again.Features[0])

	_, err = FindPackage("platinum")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestFrequencyDiscounts(t *testing.T) {
	once, err := FindFrequency(FrequencyOnce)
	require.NoError(t, err)
	assert.True(t, once.Rate.IsZero())

	for _, d := range FrequencyDiscounts() {
		assert.True(t, d.Rate.GreaterThanOrEqual(decimal.Zero) && d.Rate.LessThan(decimal.NewFromInt(1)), "tier %s", d.Tier)
	}

	assert.False(t, FrequencyTier("daily").Valid())
	_, err = FindFrequency("daily")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}
