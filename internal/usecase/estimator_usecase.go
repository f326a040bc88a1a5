package usecase

import (
	"context"
	"errors"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("estimator session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// EstimatorSessionView is a session plus everything derived from it at read
// time: the price breakdown and, while editing, the rendered month grid.
type EstimatorSessionView struct {
	Session entities.EstimatorSession
	Price   entities.PriceBreakdown
	Grid    *entities.MonthGrid
	Today   entities.Date
}

// IEstimatorUseCase drives the interactive estimator.
//
// Every operation loads the visitor's session, applies one domain step and
// saves it back. A failed step stores nothing.

type IEstimatorUseCase interface {
	StartSession(ctx context.Context) (EstimatorSessionView, error)
	GetSession(ctx context.Context, id string) (EstimatorSessionView, error)
	SetPackage(ctx context.Context, id string, pkg entities.PackageID) (EstimatorSessionView, error)
	AdjustRoomCount(ctx context.Context, id string, kind entities.RoomKind, delta int) (EstimatorSessionView, error)
	SetFrequency(ctx context.Context, id string, tier entities.FrequencyTier) (EstimatorSessionView, error)
	NavigateCalendar(ctx context.Context, id string, dir entities.NavigationDirection) (EstimatorSessionView, error)
	SelectDay(ctx context.Context, id string, day int) (EstimatorSessionView, error)
	Submit(ctx context.Context, id string) (EstimatorSessionView, error)
	Reset(ctx context.Context, id string) (EstimatorSessionView, error)
}

type EstimatorUseCase struct {
	repo interfaces.IEstimatorSessionRepository
	loc  *time.Location
	log  *zap.SugaredLogger
	now  func() time.Time
}

var _ IEstimatorUseCase = (*EstimatorUseCase)(nil)

// NewEstimatorUseCase computes "today" in loc, the business time zone.
func NewEstimatorUseCase(repo interfaces.IEstimatorSessionRepository, loc *time.Location, log *zap.SugaredLogger) *EstimatorUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EstimatorUseCase{repo: repo, loc: loc, log: log, now: time.Now}
}

func (u *EstimatorUseCase) today() entities.Date {
	return entities.DateOf(u.now().In(u.loc))
}

func (u *EstimatorUseCase) StartSession(ctx context.Context) (EstimatorSessionView, error) {
	today := u.today()
	s := entities.NewEstimatorSession(uuid.NewString(), today, u.now().UTC())

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.log.Errorw("[estimator][usecase] create session failed", "error", err)
		return EstimatorSessionView{}, err
	}
	u.log.Infow("[estimator][usecase] session started", "session_id", created.ID)
	return u.view(created, today), nil
}

func (u *EstimatorUseCase) GetSession(ctx context.Context, id string) (EstimatorSessionView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return EstimatorSessionView{}, err
	}
	return u.view(s, u.today()), nil
}

func (u *EstimatorUseCase) SetPackage(ctx context.Context, id string, pkg entities.PackageID) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "set package", func(s *entities.EstimatorSession, _ entities.Date) error {
		return s.SetPackage(pkg)
	})
}

func (u *EstimatorUseCase) AdjustRoomCount(ctx context.Context, id string, kind entities.RoomKind, delta int) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "adjust rooms", func(s *entities.EstimatorSession, _ entities.Date) error {
		return s.AdjustRoomCount(kind, delta)
	})
}

func (u *EstimatorUseCase) SetFrequency(ctx context.Context, id string, tier entities.FrequencyTier) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "set frequency", func(s *entities.EstimatorSession, _ entities.Date) error {
		return s.SetFrequency(tier)
	})
}

func (u *EstimatorUseCase) NavigateCalendar(ctx context.Context, id string, dir entities.NavigationDirection) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "navigate calendar", func(s *entities.EstimatorSession, _ entities.Date) error {
		return s.NavigateCalendar(dir)
	})
}

func (u *EstimatorUseCase) SelectDay(ctx context.Context, id string, day int) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "select day", func(s *entities.EstimatorSession, today entities.Date) error {
		return s.SelectDay(day, today)
	})
}

func (u *EstimatorUseCase) Submit(ctx context.Context, id string) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "submit", func(s *entities.EstimatorSession, _ entities.Date) error {
		return s.Submit(u.now().UTC())
	})
}

func (u *EstimatorUseCase) Reset(ctx context.Context, id string) (EstimatorSessionView, error) {
	return u.mutate(ctx, id, "reset", func(s *entities.EstimatorSession, today entities.Date) error {
		s.Reset(today)
		return nil
	})
}

func (u *EstimatorUseCase) load(ctx context.Context, id string) (entities.EstimatorSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimatorSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.ID == "" {
		return entities.EstimatorSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *EstimatorUseCase) mutate(ctx context.Context, id, action string, fn func(s *entities.EstimatorSession, today entities.Date) error) (EstimatorSessionView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return EstimatorSessionView{}, err
	}

	today := u.today()
	if err := fn(&s, today); err != nil {
		u.log.Debugw("[estimator][usecase] "+action+" rejected", "session_id", s.ID, "error", err)
		return EstimatorSessionView{}, err
	}
	s.UpdatedAt = u.now().UTC()

	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		u.log.Errorw("[estimator][usecase] "+action+" save failed", "session_id", s.ID, "error", err)
		return EstimatorSessionView{}, err
	}
	// expired between load and save
	if saved.ID == "" {
		u.log.Warnw("[estimator][usecase] "+action+" on expired session", "session_id", s.ID)
		return EstimatorSessionView{}, ErrSessionNotFound
	}
	if saved.State == entities.EstimatorStateConfirmed && action == "submit" {
		u.log.Infow("[estimator][usecase] booking confirmed",
			"session_id", saved.ID,
			"package", saved.Config.PackageID,
			"date", saved.Config.SelectedDate,
		)
	}
	return u.view(saved, today), nil
}

func (u *EstimatorUseCase) view(s entities.EstimatorSession, today entities.Date) EstimatorSessionView {
	v := EstimatorSessionView{
		Session: s,
		Price:   s.Price(),
		Today:   today,
	}
	if !s.Confirmed() {
		grid := s.Calendar.Grid(s.Config.SelectedDate, today)
		v.Grid = &grid
	}
	return v
}
