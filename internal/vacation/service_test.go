package vacation

import (
	"errors"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
)

type mockVacationRepo struct {
	employee      *Employee
	employeeErr   error
	requests      []*Request
	requestsErr   error
	created       []*Request
	createErr     error
	allRequesters []*RequestWithRequester
}

func (m *mockVacationRepo) GetEmployee(userID int64) (*Employee, error) {
	if m.employeeErr != nil {
		return nil, m.employeeErr
	}
	return m.employee, nil
}

func (m *mockVacationRepo) GetRequestsByUser(userID int64) ([]*Request, error) {
	if m.requestsErr != nil {
		return nil, m.requestsErr
	}
	return m.requests, nil
}

func (m *mockVacationRepo) Create(req *Request) error {
	if m.createErr != nil {
		return m.createErr
	}
	req.ID = int64(len(m.created) + 1)
	m.created = append(m.created, req)
	return nil
}

func (m *mockVacationRepo) GetAllWithRequester() ([]*RequestWithRequester, error) {
	return m.allRequesters, nil
}

var _ = Describe("Vacation Service", func() {
	var (
		repo    *mockVacationRepo
		service *Service
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		repo = &mockVacationRepo{
			employee: &Employee{
				ID:        1,
				Name:      "Maria",
				Surname:   "Lopez",
				StartDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
			},
		}
		service = NewService(repo, testLogger)
		service.now = func() time.Time {
			return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) // 12 months in, 15 days accrued
		}
	})

	Describe("GetBalance", func() {
		It("returns the accrued balance with the employee's name", func() {
			view, err := service.GetBalance(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Name).To(Equal("Maria"))
			Expect(view.Surname).To(Equal("Lopez"))
			Expect(view.DiasDisponibles).To(Equal(15.0))
		})

		It("subtracts approved requests from the balance", func() {
			repo.requests = []*Request{
				{DaysRequested: 4, Status: StatusApproved},
				{DaysRequested: 3, Status: StatusPending},
			}
			view, err := service.GetBalance(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.DiasDisponibles).To(Equal(11.0))
		})

		It("propagates employee lookup errors", func() {
			repo.employeeErr = internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
			_, err := service.GetBalance(1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Request", func() {
		It("creates a pending request when balance covers the span", func() {
			req, err := service.Request(1, RequestVacationDTO{
				StartDate: "2024-03-01",
				EndDate:   "2024-03-05",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(req.DaysRequested).To(Equal(5))
			Expect(req.Status).To(Equal(StatusPending))
			Expect(req.UserID).To(Equal(int64(1)))
			Expect(repo.created).To(HaveLen(1))
		})

		It("rejects the request and persists nothing when balance is short", func() {
			repo.requests = []*Request{
				{DaysRequested: 12, Status: StatusApproved}, // leaves 3 days
			}
			_, err := service.Request(1, RequestVacationDTO{
				StartDate: "2024-03-01",
				EndDate:   "2024-03-05",
			})
			Expect(errors.Is(err, internal.ErrInsufficientBalance)).To(BeTrue())
			Expect(repo.created).To(BeEmpty())
		})

		It("allows a request that consumes the balance exactly", func() {
			service.now = func() time.Time {
				return time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC) // 4 months, 5 days accrued
			}
			req, err := service.Request(1, RequestVacationDTO{
				StartDate: "2023-06-01",
				EndDate:   "2023-06-05",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(req.DaysRequested).To(Equal(5))
		})

		It("rejects missing dates", func() {
			_, err := service.Request(1, RequestVacationDTO{StartDate: "2024-03-01"})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(repo.created).To(BeEmpty())
		})

		It("rejects a range that ends before it starts", func() {
			_, err := service.Request(1, RequestVacationDTO{
				StartDate: "2024-03-05",
				EndDate:   "2024-03-01",
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDateRange))
			Expect(repo.created).To(BeEmpty())
		})

		It("rejects malformed dates", func() {
			_, err := service.Request(1, RequestVacationDTO{
				StartDate: "01-03-2024",
				EndDate:   "05-03-2024",
			})
			Expect(err).To(HaveOccurred())
			Expect(repo.created).To(BeEmpty())
		})

		It("propagates repository create failures", func() {
			repo.createErr = errors.New("db down")
			_, err := service.Request(1, RequestVacationDTO{
				StartDate: "2024-03-01",
				EndDate:   "2024-03-02",
			})
			Expect(err).To(MatchError("db down"))
		})
	})

	Describe("AllRequests", func() {
		It("returns requests joined with requester profiles", func() {
			repo.allRequesters = []*RequestWithRequester{
				{
					Request: Request{ID: 1, UserID: 2, DaysRequested: 3, Status: StatusPending},
					User:    RequesterProfile{Name: "Carlos", Surname: "Perez", Email: "carlos@example.com"},
				},
			}
			all, err := service.AllRequests()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].User.Name).To(Equal("Carlos"))
		})
	})
})
