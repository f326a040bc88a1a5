package response

import (
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Amounts are rendered with two decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type PackageResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

func FromServicePackage(p entities.ServicePackage) PackageResponse {
	return PackageResponse{
		ID:          string(p.ID),
		Name:        p.Name,
		Price:       money(p.Price),
		Description: p.Description,
		Features:    p.Features,
	}
}

func FromServicePackages(ps []entities.ServicePackage) []PackageResponse {
	return lo.Map(ps, func(p entities.ServicePackage, _ int) PackageResponse {
		return FromServicePackage(p)
	})
}

type DiscountResponse struct {
	Tier  string `json:"tier"`
	Rate  string `json:"rate"`
	Label string `json:"label"`
}

func FromFrequencyDiscount(d entities.FrequencyDiscount) DiscountResponse {
	return DiscountResponse{Tier: string(d.Tier), Rate: d.Rate.StringFixed(2), Label: d.Label}
}

type PricingFactorsResponse struct {
	Bedroom  string `json:"bedroom"`
	Bathroom string `json:"bathroom"`
	BaseRate string `json:"base_rate"`
}

type PricingTableResponse struct {
	Factors   PricingFactorsResponse `json:"factors"`
	Discounts []DiscountResponse     `json:"discounts"`
}

func FromPricingTable(t usecase.PricingTable) PricingTableResponse {
	return PricingTableResponse{
		Factors: PricingFactorsResponse{
			Bedroom:  money(t.Factors.Bedroom),
			Bathroom: money(t.Factors.Bathroom),
			BaseRate: money(t.Factors.BaseRate),
		},
		Discounts: lo.Map(t.Discounts, func(d entities.FrequencyDiscount, _ int) DiscountResponse {
			return FromFrequencyDiscount(d)
		}),
	}
}

type PriceBreakdownResponse struct {
	Base         string `json:"base"`
	Extras       string `json:"extras"`
	Subtotal     string `json:"subtotal"`
	DiscountRate string `json:"discount_rate"`
	Discount     string `json:"discount"`
	Total        string `json:"total"`
}

func FromPriceBreakdown(p entities.PriceBreakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		Base:         money(p.Base),
		Extras:       money(p.Extras),
		Subtotal:     money(p.Subtotal),
		DiscountRate: p.DiscountRate.StringFixed(2),
		Discount:     money(p.Discount),
		Total:        money(p.Total),
	}
}

type QuoteResponse struct {
	Package   PackageResponse        `json:"package"`
	Bedrooms  int                    `json:"bedrooms"`
	Bathrooms int                    `json:"bathrooms"`
	Frequency DiscountResponse       `json:"frequency"`
	Price     PriceBreakdownResponse `json:"price"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		Package:   FromServicePackage(q.Package),
		Bedrooms:  q.Bedrooms,
		Bathrooms: q.Bathrooms,
		Frequency: FromFrequencyDiscount(q.Frequency),
		Price:     FromPriceBreakdown(q.Price),
	}
}
