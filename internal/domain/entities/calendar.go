package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrPastDate         = errors.New("date is in the past")
	ErrDayOutOfRange    = errors.New("day out of range for displayed month")
	ErrInvalidDirection = errors.New("invalid navigation direction")
)

const dateLayout = "2006-01-02"

// Weekdays are the grid column headers, Sunday first.
var Weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Date is a calendar day with no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDayOfMonth returns the weekday of day 1 (Sunday = 0).
func FirstDayOfMonth(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// ViewMonth is the month a DateSelector displays.
type ViewMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func ViewMonthOf(d Date) ViewMonth {
	return ViewMonth{Year: d.Year, Month: d.Month}
}

// Shift moves the view by n calendar months.
func (v ViewMonth) Shift(n int) ViewMonth {
	t := time.Date(v.Year, v.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return ViewMonth{Year: t.Year(), Month: t.Month()}
}

type NavigationDirection string

const (
	NavigatePrev NavigationDirection = "prev"
	NavigateNext NavigationDirection = "next"
)

// DayCell is one day of the rendered month grid.
type DayCell struct {
	Day      int
	Date     Date
	Selected bool
	Today    bool
	Past     bool
	Disabled bool
}

// MonthGrid is the rendered state of a DateSelector: LeadingBlanks empty
// cells followed by one cell per day of the month, laid out in 7 columns.
type MonthGrid struct {
	View          ViewMonth
	MonthName     string
	Weekdays      [7]string
	LeadingBlanks int
	Days          []DayCell
}

// DateSelector is a navigable month grid reporting one chosen date.
//
// The displayed month and the selected date are independent: navigating
// never changes the selection and selecting never moves the view.
type DateSelector struct {
	View ViewMonth `json:"view"`
}

// NewDateSelector opens the selector on the month containing today.
func NewDateSelector(today Date) DateSelector {
	return DateSelector{View: ViewMonthOf(today)}
}

func (s *DateSelector) Navigate(dir NavigationDirection) error {
	switch dir {
	case NavigatePrev:
		s.View = s.View.Shift(-1)
	case NavigateNext:
		s.View = s.View.Shift(1)
	default:
		return ErrInvalidDirection
	}
	return nil
}

// SelectDay resolves day against the displayed month and reports it through
// onSelect. Past days are disabled and never reach the callback.
func (s DateSelector) SelectDay(day int, today Date, onSelect func(Date)) error {
	if day < 1 || day > DaysInMonth(s.View.Year, s.View.Month) {
		return ErrDayOutOfRange
	}
	d := Date{Year: s.View.Year, Month: s.View.Month, Day: day}
	if d.Before(today) {
		return ErrPastDate
	}
	onSelect(d)
	return nil
}

func (s DateSelector) Grid(selected *Date, today Date) MonthGrid {
	total := DaysInMonth(s.View.Year, s.View.Month)
	days := make([]DayCell, 0, total)
	for day := 1; day <= total; day++ {
		d := Date{Year: s.View.Year, Month: s.View.Month, Day: day}
		past := d.Before(today)
		days = append(days, DayCell{
			Day:      day,
			Date:     d,
			Selected: selected != nil && *selected == d,
			Today:    d == today,
			Past:     past,
			Disabled: past,
		})
	}
	return MonthGrid{
		View:          s.View,
		MonthName:     s.View.Month.String(),
		Weekdays:      Weekdays,
		LeadingBlanks: int(FirstDayOfMonth(s.View.Year, s.View.Month)),
		Days:          days,
	}
}
