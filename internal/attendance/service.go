package attendance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-management/internal"
)

// Repository is the data access contract for attendance rows. Lookups return
// (nil, nil) when no row exists for the requested day.
type Repository interface {
	GetByUserAndDate(userID int64, date string) (*Record, error)
	Create(rec *Record) error
	Update(rec *Record) error
	CountPresent(userID int64, from, to string) (int64, error)
}

// Service handles check-in/out and the monthly aggregate.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

const timeLayout = "15:04:05"

// CheckIn records the first entry of the day. A row created beforehand by an
// administrator (status set, no check-in) is completed instead of rejected.
// The create path is where two concurrent check-ins race; the unique
// (user_id, date) index turns the loser into ErrAlreadyCheckedIn.
func (s *Service) CheckIn(userID int64) (*Record, error) {
	today := s.now().Format(time.DateOnly)

	rec, err := s.repo.GetByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}

	if rec != nil && rec.CheckIn != nil {
		return nil, internal.ErrAlreadyCheckedIn
	}

	checkIn := s.now().Format(timeLayout)

	if rec == nil {
		rec = &Record{
			UserID:  userID,
			Date:    today,
			Status:  StatusPresent,
			CheckIn: &checkIn,
		}
		if err := s.repo.Create(rec); err != nil {
			s.logger.Error("check-in create failed", "error", err, "user_id", userID)
			return nil, err
		}
	} else {
		rec.CheckIn = &checkIn
		rec.Status = StatusPresent
		if err := s.repo.Update(rec); err != nil {
			s.logger.Error("check-in update failed", "error", err, "user_id", userID)
			return nil, err
		}
	}

	s.logger.Info("check-in recorded", "user_id", userID, "date", today, "time", checkIn)
	return rec, nil
}

// CheckOut closes today's record.
func (s *Service) CheckOut(userID int64) (*Record, error) {
	today := s.now().Format(time.DateOnly)

	rec, err := s.repo.GetByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, internal.ErrNoCheckInToday
	}
	if rec.CheckOut != nil {
		return nil, internal.ErrAlreadyCheckedOut
	}

	checkOut := s.now().Format(timeLayout)
	rec.CheckOut = &checkOut
	if err := s.repo.Update(rec); err != nil {
		s.logger.Error("check-out update failed", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("check-out recorded", "user_id", userID, "date", today, "time", checkOut)
	return rec, nil
}

// TodayRecord returns today's record, or nil when the user has none yet.
func (s *Service) TodayRecord(userID int64) (*Record, error) {
	today := s.now().Format(time.DateOnly)
	return s.repo.GetByUserAndDate(userID, today)
}

// Monthly computes the attendance aggregate for the given month. Zero year
// or month defaults to the current one.
func (s *Service) Monthly(userID int64, year, month int) (*MonthlySummary, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	first := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	last := lastDay.Format(time.DateOnly)

	presentCount, err := s.repo.CountPresent(userID, first, last)
	if err != nil {
		s.logger.Error("monthly summary count failed", "error", err, "user_id", userID)
		return nil, err
	}

	expected := ExpectedWorkDays(year, time.Month(month))

	return &MonthlySummary{
		Year:             year,
		Month:            month,
		ExpectedWorkDays: expected,
		PresentCount:     presentCount,
		Percentage:       Percentage(presentCount, expected),
	}, nil
}
