package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Error codes attached to field-level validation failures.
const (
	CodeRequired      = "required"
	CodeBlank         = "blank"
	CodeInvalid       = "invalid"
	CodeInvalidChoice = "invalid_choice"
)

// FieldError is a single validation failure on one field.
type FieldError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FieldErrors maps a wire field name to the failures recorded for it.
type FieldErrors map[string][]FieldError

// HasInvalidStatus reports whether the "status" field carries an invalid
// choice error. Request types in this package deliberately leave status
// unconstrained so batch callers can report a bad status per item instead of
// failing the whole request; callers that do apply a choice constraint use
// this to recognise that error class after validation.
func HasInvalidStatus(errs FieldErrors) bool {
	for _, fe := range errs["status"] {
		if fe.Code == CodeInvalidChoice {
			return true
		}
	}
	return false
}

// NewValidator returns a validator configured for inbound request shaping:
// field names are reported by their JSON tag and the non-standard notblank
// validator is registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrorsFrom converts validator failures into the structured per-field
// report. Non-field errors (nil pointers, bad types) surface under a single
// request-level key so they are never silently dropped.
func fieldErrorsFrom(err error) FieldErrors {
	if err == nil {
		return nil
	}
	errs := FieldErrors{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["non_field_errors"] = append(errs["non_field_errors"], FieldError{Message: err.Error(), Code: CodeInvalid})
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		code := codeForError(fe)
		errs[field] = append(errs[field], FieldError{Message: messageFor(field, fe.Tag(), code), Code: code})
	}
	return errs
}

// codeForError classifies a validator failure. The required tag fires for
// both a missing field and an empty string (the validator dereferences
// pointer fields before checking), so an empty present value is reclassified
// as blank.
func codeForError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if s, ok := fe.Value().(string); ok && s == "" {
			return CodeBlank
		}
		return CodeRequired
	case "notblank":
		return CodeBlank
	case "oneof":
		return CodeInvalidChoice
	default:
		return CodeInvalid
	}
}

func messageFor(field, tag, code string) string {
	switch code {
	case CodeRequired:
		return field + " is required"
	case CodeBlank:
		return field + " may not be blank"
	case CodeInvalidChoice:
		return field + " is not a valid choice"
	}
	if tag == "uuid_rfc4122" {
		return field + " must be a valid UUID"
	}
	return field + " is invalid"
}
