package attendance

import (
	"errors"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
)

type mockAttendanceRepo struct {
	records      map[string]*Record // keyed by date
	createErr    error
	updateErr    error
	presentCount int64
	countedFrom  string
	countedTo    string
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*Record)}
}

func (m *mockAttendanceRepo) GetByUserAndDate(userID int64, date string) (*Record, error) {
	return m.records[date], nil
}

func (m *mockAttendanceRepo) Create(rec *Record) error {
	if m.createErr != nil {
		return m.createErr
	}
	rec.ID = int64(len(m.records) + 1)
	m.records[rec.Date] = rec
	return nil
}

func (m *mockAttendanceRepo) Update(rec *Record) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.records[rec.Date] = rec
	return nil
}

func (m *mockAttendanceRepo) CountPresent(userID int64, from, to string) (int64, error) {
	m.countedFrom = from
	m.countedTo = to
	return m.presentCount, nil
}

var _ = Describe("Attendance Service", func() {
	var (
		repo    *mockAttendanceRepo
		service *Service
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		repo = newMockAttendanceRepo()
		service = NewService(repo, testLogger)
		service.now = func() time.Time {
			return time.Date(2024, 6, 3, 9, 15, 30, 0, time.UTC)
		}
	})

	Describe("CheckIn", func() {
		It("creates today's record with present status and the current time", func() {
			rec, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Date).To(Equal("2024-06-03"))
			Expect(rec.Status).To(Equal(StatusPresent))
			Expect(rec.CheckIn).NotTo(BeNil())
			Expect(*rec.CheckIn).To(Equal("09:15:30"))
			Expect(rec.CheckOut).To(BeNil())
		})

		It("rejects a second check-in on the same day", func() {
			_, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CheckIn(1)
			Expect(errors.Is(err, internal.ErrAlreadyCheckedIn)).To(BeTrue())
		})

		It("completes a pre-created row instead of rejecting it", func() {
			repo.records["2024-06-03"] = &Record{
				ID:     7,
				UserID: 1,
				Date:   "2024-06-03",
				Status: StatusRemote,
			}

			rec, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.ID).To(Equal(int64(7)))
			Expect(rec.CheckIn).NotTo(BeNil())
			Expect(rec.Status).To(Equal(StatusPresent))
		})

		It("surfaces the duplicate-key error from a lost create race", func() {
			repo.createErr = internal.ErrAlreadyCheckedIn
			_, err := service.CheckIn(1)
			Expect(errors.Is(err, internal.ErrAlreadyCheckedIn)).To(BeTrue())
		})
	})

	Describe("CheckOut", func() {
		It("fails when there is no record for today", func() {
			_, err := service.CheckOut(1)
			Expect(errors.Is(err, internal.ErrNoCheckInToday)).To(BeTrue())
		})

		It("closes today's record", func() {
			_, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())

			service.now = func() time.Time {
				return time.Date(2024, 6, 3, 17, 45, 0, 0, time.UTC)
			}
			rec, err := service.CheckOut(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.CheckOut).NotTo(BeNil())
			Expect(*rec.CheckOut).To(Equal("17:45:00"))
		})

		It("rejects a second check-out", func() {
			_, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CheckOut(1)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CheckOut(1)
			Expect(errors.Is(err, internal.ErrAlreadyCheckedOut)).To(BeTrue())
		})
	})

	Describe("TodayRecord", func() {
		It("returns nil without error when nothing was recorded", func() {
			rec, err := service.TodayRecord(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})

		It("returns today's record after check-in", func() {
			_, err := service.CheckIn(1)
			Expect(err).NotTo(HaveOccurred())

			rec, err := service.TodayRecord(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).NotTo(BeNil())
			Expect(rec.Date).To(Equal("2024-06-03"))
		})
	})

	Describe("Monthly", func() {
		It("builds the summary over the requested month", func() {
			repo.presentCount = 10
			summary, err := service.Monthly(1, 2024, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Year).To(Equal(2024))
			Expect(summary.Month).To(Equal(2))
			Expect(summary.ExpectedWorkDays).To(Equal(21))
			Expect(summary.PresentCount).To(Equal(int64(10)))
			Expect(summary.Percentage).To(Equal(47.62))
			Expect(repo.countedFrom).To(Equal("2024-02-01"))
			Expect(repo.countedTo).To(Equal("2024-02-29"))
		})

		It("defaults zero year and month to the current ones", func() {
			repo.presentCount = 5
			summary, err := service.Monthly(1, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Year).To(Equal(2024))
			Expect(summary.Month).To(Equal(6))
			Expect(repo.countedFrom).To(Equal("2024-06-01"))
			Expect(repo.countedTo).To(Equal("2024-06-30"))
		})
	})
})
