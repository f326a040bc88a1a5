package entities

import (
	"errors"
	"math"
	"time"
)

var (
	ErrDateRequired     = errors.New("date required")
	ErrBookingConfirmed = errors.New("booking already confirmed")
	ErrInvalidRoomKind  = errors.New("invalid room kind")
)

// DateRequiredNotice is shown to the visitor when submitting without a date.
const DateRequiredNotice = "Please select a preferred date for your cleaning! ✨"

// EstimatorState is the presentation state of an estimator session.
//
//	editing --submit (date set)--> confirmed --reset--> editing
type EstimatorState string

const (
	EstimatorStateEditing   EstimatorState = "editing"
	EstimatorStateConfirmed EstimatorState = "confirmed"
)

type RoomKind string

const (
	RoomBedroom  RoomKind = "bedroom"
	RoomBathroom RoomKind = "bathroom"
)

const (
	defaultBedrooms  = 2
	defaultBathrooms = 1
)

// BookingConfiguration is the visitor's in-progress selection.
type BookingConfiguration struct {
	Bedrooms     int
	Bathrooms    int
	PackageID    PackageID
	Frequency    FrequencyTier
	SelectedDate *Date
}

func DefaultBookingConfiguration() BookingConfiguration {
	return BookingConfiguration{
		Bedrooms:  defaultBedrooms,
		Bathrooms: defaultBathrooms,
		PackageID: PackageBasic,
		Frequency: FrequencyOnce,
	}
}

// BookingSnapshot is the configuration frozen at submission.
type BookingSnapshot struct {
	PackageID   PackageID
	PackageName string
	Date        Date
	Bedrooms    int
	Bathrooms   int
	Frequency   FrequencyTier
	Price       PriceBreakdown
	ConfirmedAt time.Time
}

// EstimatorSession owns one visitor's booking configuration, its date
// selector and the editing/confirmed state machine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - TTL attribute: expires_at
type EstimatorSession struct {
	ID           string
	State        EstimatorState
	Config       BookingConfiguration
	Calendar     DateSelector
	Confirmation *BookingSnapshot
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewEstimatorSession(id string, today Date, now time.Time) EstimatorSession {
	return EstimatorSession{
		ID:        id,
		State:     EstimatorStateEditing,
		Config:    DefaultBookingConfiguration(),
		Calendar:  NewDateSelector(today),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy that shares no pointers with s.
func (s EstimatorSession) Clone() EstimatorSession {
	if s.Config.SelectedDate != nil {
		d := *s.Config.SelectedDate
		s.Config.SelectedDate = &d
	}
	if s.Confirmation != nil {
		c := *s.Confirmation
		s.Confirmation = &c
	}
	return s
}

func (s *EstimatorSession) Price() PriceBreakdown {
	return CalculatePrice(s.Config)
}

func (s *EstimatorSession) Confirmed() bool {
	return s.State == EstimatorStateConfirmed
}

func (s *EstimatorSession) ensureEditing() error {
	if s.Confirmed() {
		return ErrBookingConfirmed
	}
	return nil
}

func (s *EstimatorSession) SetPackage(id PackageID) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	if _, err := FindPackage(id); err != nil {
		return err
	}
	s.Config.PackageID = id
	return nil
}

// AdjustRoomCount adds delta to the room count, clamping at zero.
func (s *EstimatorSession) AdjustRoomCount(kind RoomKind, delta int) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	switch kind {
	case RoomBedroom:
		s.Config.Bedrooms = addRooms(s.Config.Bedrooms, delta)
	case RoomBathroom:
		s.Config.Bathrooms = addRooms(s.Config.Bathrooms, delta)
	default:
		return ErrInvalidRoomKind
	}
	return nil
}

// addRooms clamps at zero and saturates instead of wrapping.
func addRooms(count, delta int) int {
	if delta > 0 && count > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, count+delta)
}

func (s *EstimatorSession) SetFrequency(tier FrequencyTier) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	if !tier.Valid() {
		return ErrInvalidFrequency
	}
	s.Config.Frequency = tier
	return nil
}

// ReceiveDateSelection is the DateSelector callback. It overwrites any
// previous selection.
func (s *EstimatorSession) ReceiveDateSelection(d Date) {
	s.Config.SelectedDate = &d
}

func (s *EstimatorSession) NavigateCalendar(dir NavigationDirection) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	return s.Calendar.Navigate(dir)
}

func (s *EstimatorSession) SelectDay(day int, today Date) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	return s.Calendar.SelectDay(day, today, s.ReceiveDateSelection)
}

// Submit confirms the booking. Without a selected date it fails with
// ErrDateRequired and leaves the session untouched.
func (s *EstimatorSession) Submit(now time.Time) error {
	if err := s.ensureEditing(); err != nil {
		return err
	}
	if s.Config.SelectedDate == nil {
		return ErrDateRequired
	}

	pkg, err := FindPackage(s.Config.PackageID)
	if err != nil {
		return err
	}
	s.Confirmation = &BookingSnapshot{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		Date:        *s.Config.SelectedDate,
		Bedrooms:    s.Config.Bedrooms,
		Bathrooms:   s.Config.Bathrooms,
		Frequency:   s.Config.Frequency,
		Price:       s.Price(),
		ConfirmedAt: now,
	}
	s.State = EstimatorStateConfirmed
	return nil
}

// Reset returns to editing. The configuration is kept; the date selector
// starts over on the current month.
func (s *EstimatorSession) Reset(today Date) {
	if !s.Confirmed() {
		return
	}
	s.State = EstimatorStateEditing
	s.Confirmation = nil
	s.Calendar = NewDateSelector(today)
}
