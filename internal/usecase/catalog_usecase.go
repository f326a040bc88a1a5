package usecase

import (
	"context"
	"errors"
	"sparkle_shine/internal/domain/entities"
)

var ErrInvalidRoomCount = errors.New("invalid room count")

// QuoteInput is an ad-hoc configuration priced without a session.
type QuoteInput struct {
	PackageID entities.PackageID
	Bedrooms  int
	Bathrooms int
	Frequency entities.FrequencyTier
}

type PricingTable struct {
	Factors   entities.PricingFactors
	Discounts []entities.FrequencyDiscount
}

type Quote struct {
	Package   entities.ServicePackage
	Bedrooms  int
	Bathrooms int
	Frequency entities.FrequencyDiscount
	Price     entities.PriceBreakdown
}

// ICatalogUseCase exposes the fixed service catalog and stateless pricing.

type ICatalogUseCase interface {
	ListPackages(ctx context.Context) ([]entities.ServicePackage, error)
	PricingTable(ctx context.Context) (PricingTable, error)
	Quote(ctx context.Context, in QuoteInput) (Quote, error)
}

type CatalogUseCase struct{}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

func (u *CatalogUseCase) ListPackages(_ context.Context) ([]entities.ServicePackage, error) {
	return entities.Catalog(), nil
}

func (u *CatalogUseCase) PricingTable(_ context.Context) (PricingTable, error) {
	return PricingTable{
		Factors:   entities.Pricing(),
		Discounts: entities.FrequencyDiscounts(),
	}, nil
}

// Quote prices the configuration without storing it. An empty frequency means a
// one-time cleaning.
func (u *CatalogUseCase) Quote(_ context.Context, in QuoteInput) (Quote, error) {
	if in.Bedrooms < 0 || in.Bathrooms < 0 {
		return Quote{}, ErrInvalidRoomCount
	}
	if in.Frequency == "" {
		in.Frequency = entities.FrequencyOnce
	}

	pkg, err := entities.FindPackage(in.PackageID)
	if err != nil {
		return Quote{}, err
	}
	tier, err := entities.FindFrequency(in.Frequency)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Package:   pkg,
		Bedrooms:  in.Bedrooms,
		Bathrooms: in.Bathrooms,
		Frequency: tier,
		Price: entities.CalculatePrice(entities.BookingConfiguration{
			Bedrooms:  in.Bedrooms,
			Bathrooms: in.Bathrooms,
			PackageID: pkg.ID,
			Frequency: tier.Tier,
		}),
	}, nil
}
