package attendance

import (
	"time"

	attendanceDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/types"
)

// Record is one attendance row per user per calendar day. Dates are plain
// YYYY-MM-DD strings and times HH:MM:SS, the same shapes the API exposes.
type Record struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CheckIn   *string   `json:"checkIn,omitempty"`
	CheckOut  *string   `json:"checkOut,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusPermission = "permission"
	StatusRemote     = "remote"
)

// MonthlySummary is the aggregate returned by GET /attendance/monthly.
type MonthlySummary struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	ExpectedWorkDays int     `json:"expectedWorkDays"`
	PresentCount     int64   `json:"presentCount"`
	Percentage       float64 `json:"percentage"`
}

func FromDataModel(r *attendanceDatamodel.Record) *Record {
	return &Record{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      string(r.Date),
		Status:    r.Status,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToDataModel(r *Record) *attendanceDatamodel.Record {
	return &attendanceDatamodel.Record{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      types.DateString(r.Date),
		Status:    r.Status,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
