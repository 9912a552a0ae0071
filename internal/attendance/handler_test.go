package attendance_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-management/internal/attendance"
	attendancePostgres "github.com/frahmantamala/hr-management/internal/attendance/postgres"
	"github.com/frahmantamala/hr-management/internal/auth"
)

// SQLiteAttendance is a SQLite-compatible model for testing
type SQLiteAttendance struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_attendances_user_date"`
	Date      string    `gorm:"column:date;not null;uniqueIndex:idx_attendances_user_date"`
	Status    string    `gorm:"column:status;not null;default:present"`
	CheckIn   *string   `gorm:"column:check_in"`
	CheckOut  *string   `gorm:"column:check_out"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SQLiteAttendance) TableName() string {
	return "attendances"
}

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db      *gorm.DB
		service *attendance.Service
		handler *attendance.Handler
	)

	identity := &auth.Identity{ID: 1, Email: "maria@example.com", Role: auth.RoleUser}

	request := func(method, target string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		return req.WithContext(auth.ContextWithIdentity(req.Context(), identity))
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteAttendance{})
		Expect(err).NotTo(HaveOccurred())

		repo := attendancePostgres.NewAttendanceRepository(db)
		service = attendance.NewService(repo, slogger)
		handler = attendance.NewHandler(service)
	})

	It("records a check-in and returns the created record", func() {
		w := httptest.NewRecorder()
		handler.CheckIn(w, request(http.MethodPost, "/attendance/checkin"))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response struct {
			Msg    string             `json:"msg"`
			Record *attendance.Record `json:"record"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Record).NotTo(BeNil())
		Expect(response.Record.Status).To(Equal(attendance.StatusPresent))
		Expect(response.Record.CheckIn).NotTo(BeNil())
	})

	It("rejects a double check-in with a 400 conflict body", func() {
		w := httptest.NewRecorder()
		handler.CheckIn(w, request(http.MethodPost, "/attendance/checkin"))
		Expect(w.Code).To(Equal(http.StatusOK))

		w = httptest.NewRecorder()
		handler.CheckIn(w, request(http.MethodPost, "/attendance/checkin"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var response struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Error.Code).To(Equal("ALREADY_CHECKED_IN"))
	})

	It("rejects a check-out without a prior check-in", func() {
		w := httptest.NewRecorder()
		handler.CheckOut(w, request(http.MethodPost, "/attendance/checkout"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("completes the check-in then check-out round trip", func() {
		w := httptest.NewRecorder()
		handler.CheckIn(w, request(http.MethodPost, "/attendance/checkin"))
		Expect(w.Code).To(Equal(http.StatusOK))

		w = httptest.NewRecorder()
		handler.CheckOut(w, request(http.MethodPost, "/attendance/checkout"))
		Expect(w.Code).To(Equal(http.StatusOK))

		var response struct {
			Record *attendance.Record `json:"record"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Record.CheckOut).NotTo(BeNil())
	})

	It("returns a null record for a day without activity", func() {
		w := httptest.NewRecorder()
		handler.Today(w, request(http.MethodGet, "/attendance/today"))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"record":null`))
	})

	It("returns the monthly summary for query parameters", func() {
		w := httptest.NewRecorder()
		handler.Monthly(w, request(http.MethodGet, "/attendance/monthly?year=2024&month=2"))

		Expect(w.Code).To(Equal(http.StatusOK))

		var summary attendance.MonthlySummary
		Expect(json.NewDecoder(w.Body).Decode(&summary)).To(Succeed())
		Expect(summary.Year).To(Equal(2024))
		Expect(summary.Month).To(Equal(2))
		Expect(summary.ExpectedWorkDays).To(Equal(21))
	})

	It("requires an authenticated identity", func() {
		w := httptest.NewRecorder()
		handler.CheckIn(w, httptest.NewRequest(http.MethodPost, "/attendance/checkin", nil))
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
