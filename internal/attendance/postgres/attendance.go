package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/attendance"
)

// AttendanceRepository implements the attendance.Repository interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetByUserAndDate(userID int64, date string) (*attendance.Record, error) {
	var rec attendanceDatamodel.Record
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewInternalError("failed to load attendance record", err)
	}
	return attendance.FromDataModel(&rec), nil
}

// Create inserts a new daily row. A duplicate key here means another request
// for the same user and day won the race; report it as a double check-in.
func (r *AttendanceRepository) Create(rec *attendance.Record) error {
	dm := attendance.ToDataModel(rec)
	if err := r.db.Create(dm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrAlreadyCheckedIn
		}
		return internal.NewInternalError("failed to create attendance record", err)
	}
	rec.ID = dm.ID
	rec.CreatedAt = dm.CreatedAt
	rec.UpdatedAt = dm.UpdatedAt
	return nil
}

func (r *AttendanceRepository) Update(rec *attendance.Record) error {
	rec.UpdatedAt = time.Now()
	if err := r.db.Save(attendance.ToDataModel(rec)).Error; err != nil {
		return internal.NewInternalError("failed to update attendance record", err)
	}
	return nil
}

// CountPresent counts the user's present and remote days in [from, to].
func (r *AttendanceRepository) CountPresent(userID int64, from, to string) (int64, error) {
	var count int64
	err := r.db.Model(&attendanceDatamodel.Record{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Where("status IN ?", []string{attendance.StatusPresent, attendance.StatusRemote}).
		Count(&count).Error
	if err != nil {
		return 0, internal.NewInternalError("failed to count attendance records", err)
	}
	return count, nil
}
