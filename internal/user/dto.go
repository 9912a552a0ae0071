package user

import (
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

// UpdateProfileDTO carries the optional profile fields; only supplied fields
// overwrite the stored ones.
type UpdateProfileDTO struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email,omitempty"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (d UpdateProfileDTO) Validate() error {
	v := validation.NewValidator()
	if d.Email != "" {
		v.Field("email", d.Email).Email()
	}
	return v.Validate()
}

func (d ChangePasswordDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("oldPassword", d.OldPassword).Required()
	v.Field("newPassword", d.NewPassword).Required().MinLength(8)
	return v.Validate()
}
