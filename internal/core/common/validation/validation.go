package validation

import (
	"fmt"
	"net/mail"
	"time"

	errors "github.com/frahmantamala/hr-management/internal"
)

type ValidatorFunc func(interface{}) *errors.ValidationError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
	errors []errors.ValidationError
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
		errors: make([]errors.ValidationError, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// AddError records a failure discovered outside the chained validators.
func (v *ValidationBuilder) AddError(field, message, code string) {
	v.errors = append(v.errors, errors.ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		if s, ok := value.(string); ok && s == "" {
			return &errors.ValidationError{
				Field:   fv.FieldName,
				Message: fmt.Sprintf("%s is required", fv.FieldName),
				Code:    string(errors.ErrCodeValidationFailed),
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		if _, err := mail.ParseAddress(s); err != nil {
			return &errors.ValidationError{
				Field:   fv.FieldName,
				Message: fmt.Sprintf("%s must be a valid email address", fv.FieldName),
				Code:    string(errors.ErrCodeInvalidEmail),
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		if len(s) < min {
			return &errors.ValidationError{
				Field:   fv.FieldName,
				Message: fmt.Sprintf("%s must be at least %d characters", fv.FieldName, min),
				Code:    string(errors.ErrCodeValidationFailed),
			}
		}
		return nil
	})
	return fv
}

// DateOnly requires a YYYY-MM-DD value.
func (fv *FieldValidator) DateOnly() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		if _, err := time.Parse(time.DateOnly, s); err != nil {
			return &errors.ValidationError{
				Field:   fv.FieldName,
				Message: fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fv.FieldName),
				Code:    string(errors.ErrCodeInvalidDate),
			}
		}
		return nil
	})
	return fv
}

// Validate runs every chained validator and returns a single AppError with
// all collected field errors, or nil when everything passed.
func (v *ValidationBuilder) Validate() error {
	collected := append([]errors.ValidationError{}, v.errors...)

	for _, field := range v.fields {
		for _, validate := range field.Validators {
			if ferr := validate(field.Value); ferr != nil {
				collected = append(collected, *ferr)
			}
		}
	}

	if len(collected) == 0 {
		return nil
	}

	return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
		WithDetails(errors.ValidationErrors{Errors: collected})
}
