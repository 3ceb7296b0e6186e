// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the shared custom rules registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", notBlank)
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// FirstFieldError returns the JSON name and tag of the first failing field, if err is
// a validation error.
func FirstFieldError(err error) (field, tag string, ok bool) {
	errs, isValidation := err.(validator.ValidationErrors)
	if !isValidation || len(errs) == 0 {
		return "", "", false
	}
	return errs[0].Field(), errs[0].Tag(), true
}

// notBlank rejects strings that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
