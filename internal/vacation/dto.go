package vacation

import (
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

// RequestVacationDTO carries the requested date range, both YYYY-MM-DD.
type RequestVacationDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (d RequestVacationDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("startDate", d.StartDate).Required().DateOnly()
	v.Field("endDate", d.EndDate).Required().DateOnly()
	return v.Validate()
}
