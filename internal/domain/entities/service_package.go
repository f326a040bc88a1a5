package entities

import (
	"errors"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPackage   = errors.New("unknown service package")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

type PackageID string

const (
	PackageBasic PackageID = "basic"
	PackageDeep  PackageID = "deep"
	PackageMove  PackageID = "move"
)

// ServicePackage is an entry of the fixed cleaning catalog.
type ServicePackage struct {
	ID          PackageID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
}

type FrequencyTier string

const (
	FrequencyOnce     FrequencyTier = "once"
	FrequencyWeekly   FrequencyTier = "weekly"
	FrequencyBiweekly FrequencyTier = "biweekly"
	FrequencyMonthly  FrequencyTier = "monthly"
)

// FrequencyDiscount is the recurring discount granted for a tier.
type FrequencyDiscount struct {
	Tier  FrequencyTier   `json:"tier"`
	Rate  decimal.Decimal `json:"rate"`
	Label string          `json:"label"`
}

// PricingFactors are the per-room surcharges. BaseRate is reserved and not
// part of the price formula.
type PricingFactors struct {
	Bedroom  decimal.Decimal `json:"bedroom"`
	Bathroom decimal.Decimal `json:"bathroom"`
	BaseRate decimal.Decimal `json:"base_rate"`
}

var catalog = []ServicePackage{
	{
		ID:          PackageBasic,
		Name:        "Standard Sparkle",
		Price:       decimal.NewFromInt(120),
		Description: "Perfect for regular upkeep of your home.",
		Features:    []string{"Dusting surfaces", "Vacuuming & Mopping", "Kitchen counters", "Bathroom sanitization"},
	},
	{
		ID:          PackageDeep,
		Name:        "Deep Shine",
		Price:       decimal.NewFromInt(240),
		Description: "A thorough top-to-bottom refresh.",
		Features:    []string{"Everything in Standard", "Baseboards & Trim", "Inside Microwave", "Window sills & Tracks"},
	},
	{
		ID:          PackageMove,
		Name:        "Move In/Out",
		Price:       decimal.NewFromInt(350),
		Description: "Readying a blank canvas for its next chapter.",
		Features:    []string{"Inside all cabinets", "Inside Oven & Fridge", "Wall spot cleaning", "Floor-to-ceiling detail"},
	},
}

var pricingFactors = PricingFactors{
	Bedroom:  decimal.NewFromInt(35),
	Bathroom: decimal.NewFromInt(25),
	BaseRate: decimal.NewFromInt(50),
}

var frequencyDiscounts = []FrequencyDiscount{
	{Tier: FrequencyOnce, Rate: decimal.Zero, Label: "One-time (No discount)"},
	{Tier: FrequencyWeekly, Rate: decimal.RequireFromString("0.20"), Label: "Weekly (20% Off!)"},
	{Tier: FrequencyBiweekly, Rate: decimal.RequireFromString("0.15"), Label: "Every 2 Weeks (15% Off!)"},
	{Tier: FrequencyMonthly, Rate: decimal.RequireFromString("0.10"), Label: "Every 4 Weeks (10% Off!)"},
}

// Catalog returns a copy of the three service packages in display order.
func Catalog() []ServicePackage {
	return lo.Map(catalog, func(p ServicePackage, _ int) ServicePackage {
		p.Features = append([]string(nil), p.Features...)
		return p
	})
}

func FindPackage(id PackageID) (ServicePackage, error) {
	p, ok := lo.Find(catalog, func(p ServicePackage) bool { return p.ID == id })
	if !ok {
		return ServicePackage{}, ErrUnknownPackage
	}
	return p, nil
}

func Pricing() PricingFactors {
	return pricingFactors
}

// FrequencyDiscounts returns the discount table in display order.
func FrequencyDiscounts() []FrequencyDiscount {
	return append([]FrequencyDiscount(nil), frequencyDiscounts...)
}

func FindFrequency(tier FrequencyTier) (FrequencyDiscount, error) {
	d, ok := lo.Find(frequencyDiscounts, func(d FrequencyDiscount) bool { return d.Tier == tier })
	if !ok {
		return FrequencyDiscount{}, ErrInvalidFrequency
	}
	return d, nil
}

func (t FrequencyTier) Valid() bool {
	_, err := FindFrequency(t)
	return err == nil
}
