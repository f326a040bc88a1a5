package response

import (
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"
	"time"

	"github.com/samber/lo"
)

type ConfigurationResponse struct {
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	PackageID    string  `json:"package_id"`
	Frequency    string  `json:"frequency"`
	SelectedDate *string `json:"selected_date"`
}

type DayResponse struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Selected bool   `json:"selected"`
	Today    bool   `json:"today"`
	Past     bool   `json:"past"`
	Disabled bool   `json:"disabled"`
}

type CalendarResponse struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	MonthName     string        `json:"month_name"`
	Weekdays      [7]string     `json:"weekdays"`
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []DayResponse `json:"days"`
}

type ConfirmationResponse struct {
	PackageID   string                 `json:"package_id"`
	PackageName string                 `json:"package_name"`
	Date        string                 `json:"date"`
	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   int                    `json:"bathrooms"`
	Frequency   string                 `json:"frequency"`
	Price       PriceBreakdownResponse `json:"price"`
	ConfirmedAt time.Time              `json:"confirmed_at"`
}

// EstimatorSessionResponse carries the calendar only while editing and the
// confirmation only once confirmed.
type EstimatorSessionResponse struct {
	ID            string                 `json:"id"`
	State         string                 `json:"state"`
	Configuration ConfigurationResponse  `json:"configuration"`
	Price         PriceBreakdownResponse `json:"price"`
	Calendar      *CalendarResponse      `json:"calendar,omitempty"`
	Confirmation  *ConfirmationResponse  `json:"confirmation,omitempty"`
	Today         string                 `json:"today"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromEstimatorSessionView(v usecase.EstimatorSessionView) EstimatorSessionResponse {
	s := v.Session
	res := EstimatorSessionResponse{
		ID:    s.ID,
		State: string(s.State),
		Configuration: ConfigurationResponse{
			Bedrooms:  s.Config.Bedrooms,
			Bathrooms: s.Config.Bathrooms,
			PackageID: string(s.Config.PackageID),
			Frequency: string(s.Config.Frequency),
		},
		Price:     FromPriceBreakdown(v.Price),
		Today:     v.Today.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Config.SelectedDate != nil {
		res.Configuration.SelectedDate = lo.ToPtr(s.Config.SelectedDate.String())
	}
	if v.Grid != nil {
		res.Calendar = fromMonthGrid(*v.Grid)
	}
	if s.Confirmation != nil {
		res.Confirmation = fromBookingSnapshot(*s.Confirmation)
	}
	return res
}

func fromMonthGrid(g entities.MonthGrid) *CalendarResponse {
	return &CalendarResponse{
		Year:          g.View.Year,
		Month:         int(g.View.Month),
		MonthName:     g.MonthName,
		Weekdays:      g.Weekdays,
		LeadingBlanks: g.LeadingBlanks,
		Days: lo.Map(g.Days, func(d entities.DayCell, _ int) DayResponse {
			return DayResponse{
				Day:      d.Day,
				Date:     d.Date.String(),
				Selected: d.Selected,
				Today:    d.Today,
				Past:     d.Past,
				Disabled: d.Disabled,
			}
		}),
	}
}

func fromBookingSnapshot(b entities.BookingSnapshot) *ConfirmationResponse {
	return &ConfirmationResponse{
		PackageID:   string(b.PackageID),
		PackageName: b.PackageName,
		Date:        b.Date.String(),
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		Frequency:   string(b.Frequency),
		Price:       FromPriceBreakdown(b.Price),
		ConfirmedAt: b.ConfirmedAt,
	}
}
