package auth

import (
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

// RegisterDTO is the transport shape for account registration.
type RegisterDTO struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and returns an AppError on failure.
func (d RegisterDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("surname", d.Surname).Required()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	if d.Role != "" && !Role(d.Role).Valid() {
		v.AddError("role", "role must be user or admin", "INVALID_ROLE")
	}
	return v.Validate()
}

func (d LoginDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required()
	v.Field("password", d.Password).Required()
	return v.Validate()
}
