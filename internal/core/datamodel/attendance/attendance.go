package attendance

import (
	"time"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/types"
)

// Record holds one attendance row per user per calendar day. The composite
// unique index is what ultimately guards against concurrent double check-in;
// application code only gives the friendly error message.
type Record struct {
	ID        int64            `gorm:"primaryKey"`
	UserID    int64            `gorm:"column:user_id;not null;uniqueIndex:idx_attendances_user_date"`
	Date      types.DateString `gorm:"column:date;type:date;not null;uniqueIndex:idx_attendances_user_date"`
	Status    string           `gorm:"column:status;default:present"`
	CheckIn   *string          `gorm:"column:check_in;type:time"`
	CheckOut  *string          `gorm:"column:check_out;type:time"`
	CreatedAt time.Time        `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time        `gorm:"column:updated_at;default:now()"`
}

func (Record) TableName() string {
	return "attendances"
}
