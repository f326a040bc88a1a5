package request

import (
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"
	"strings"
)

// QuoteRequest prices an ad-hoc configuration. An empty frequency is a
// one-time cleaning.
type QuoteRequest struct {
	PackageID string `json:"package_id" binding:"required"`
	Bedrooms  int    `json:"bedrooms" binding:"gte=0"`
	Bathrooms int    `json:"bathrooms" binding:"gte=0"`
	Frequency string `json:"frequency"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	return usecase.QuoteInput{
		PackageID: entities.PackageID(strings.TrimSpace(r.PackageID)),
		Bedrooms:  r.Bedrooms,
		Bathrooms: r.Bathrooms,
		Frequency: entities.FrequencyTier(strings.TrimSpace(r.Frequency)),
	}
}

type SetPackageRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

func (r SetPackageRequest) ResolvePackageID() entities.PackageID {
	return entities.PackageID(strings.TrimSpace(r.PackageID))
}

// AdjustRoomsRequest changes a room count by delta; counts never go below
// zero.
type AdjustRoomsRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=bedroom bathroom"`
	Delta int    `json:"delta" binding:"required,min=-100,max=100"`
}

type SetFrequencyRequest struct {
	Frequency string `json:"frequency" binding:"required"`
}

func (r SetFrequencyRequest) ResolveFrequency() entities.FrequencyTier {
	return entities.FrequencyTier(strings.TrimSpace(r.Frequency))
}

type NavigateCalendarRequest struct {
	Direction string `json:"direction" binding:"required,oneof=prev next"`
}

// SelectDayRequest picks a day of the month currently displayed.
type SelectDayRequest struct {
	Day int `json:"day" binding:"required,min=1,max=31"`
}
