package vacation

import (
	"time"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/types"
)

type Request struct {
	ID            int64            `gorm:"primaryKey"`
	UserID        int64            `gorm:"column:user_id;not null;index"`
	StartDate     types.DateString `gorm:"column:start_date;type:date;not null"`
	EndDate       types.DateString `gorm:"column:end_date;type:date;not null"`
	DaysRequested int              `gorm:"column:days_requested;not null"`
	Status        string           `gorm:"column:status;default:pending"`
	CreatedAt     time.Time        `gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;default:now()"`
}

func (Request) TableName() string {
	return "vacations"
}
