package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/JoyasAPI_Go/internal/query"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report query-string names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("query"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})

	_ = v.RegisterValidation("sortspec", validateSortSpec)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field → message map.
// It returns nil when err is not a validation error.
func FormatValidationError(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = ErrMsgFieldRequired
		case "min":
			errs[field] = fmt.Sprintf(ErrMsgFieldMin, e.Param())
		case "sortspec":
			errs[field] = ErrMsgFieldSortSpec
		default:
			errs[field] = ErrMsgFieldInvalid
		}
	}
	return errs
}

// validateSortSpec accepts order_by values the query builder can allow-list
func validateSortSpec(fl validator.FieldLevel) bool {
	_, err := query.ParseSort(fl.Field().String())
	return err == nil
}
