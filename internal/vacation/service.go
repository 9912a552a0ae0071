package vacation

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-management/internal"
)

type Repository interface {
	GetEmployee(userID int64) (*Employee, error)
	GetRequestsByUser(userID int64) ([]*Request, error)
	Create(req *Request) error
	GetAllWithRequester() ([]*RequestWithRequester, error)
}

// Service handles balance queries and request submission.
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

// GetBalance returns the caller's current balance with the name fields the
// balance endpoint exposes.
func (s *Service) GetBalance(userID int64) (*BalanceView, error) {
	emp, err := s.repo.GetEmployee(userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &BalanceView{
		Name:            emp.Name,
		Surname:         emp.Surname,
		DiasDisponibles: Balance(emp.StartDate, s.now(), requests),
	}, nil
}

// Request submits a pending vacation request after checking balance
// sufficiency. The balance read and the insert are not one atomic unit, so
// two concurrent submissions can overdraw; keeping the whole sequence here
// localizes a future transactional fix.
func (s *Service) Request(userID int64, dto RequestVacationDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	start, err := time.Parse(time.DateOnly, dto.StartDate)
	if err != nil {
		return nil, internal.NewValidationError("startDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	end, err := time.Parse(time.DateOnly, dto.EndDate)
	if err != nil {
		return nil, internal.NewValidationError("endDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	if end.Before(start) {
		return nil, internal.NewValidationError("endDate must not be before startDate", internal.ErrCodeInvalidDateRange)
	}

	days := DaysRequested(start, end)

	emp, err := s.repo.GetEmployee(userID)
	if err != nil {
		return nil, err
	}
	requests, err := s.repo.GetRequestsByUser(userID)
	if err != nil {
		return nil, err
	}

	balance := Balance(emp.StartDate, s.now(), requests)
	if balance < float64(days) {
		s.logger.Warn("vacation request rejected: insufficient balance",
			"user_id", userID,
			"balance", balance,
			"days_requested", days)
		return nil, internal.ErrInsufficientBalance
	}

	req := &Request{
		UserID:        userID,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		DaysRequested: days,
		Status:        StatusPending,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create vacation request", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("vacation request submitted",
		"request_id", req.ID,
		"user_id", userID,
		"days_requested", days)

	return req, nil
}

// AllRequests returns every request joined with the requester's public
// profile. Role gating happens at the route; this just loads.
func (s *Service) AllRequests() ([]*RequestWithRequester, error) {
	requests, err := s.repo.GetAllWithRequester()
	if err != nil {
		s.logger.Error("failed to list vacation requests", "error", err)
		return nil, err
	}
	return requests, nil
}
