package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/program-enrollments-api/internal/models"
)

// ProgramEnrollmentCreateRequest is one item of a batch program enrollment
// create payload. Fields are pointers so a missing field and a blank field
// report distinct error codes.
//
// Status could carry a oneof constraint on the known enrollment statuses; it
// deliberately does not. The write collaborator checks statuses instead,
// reporting invalid-status for individual bad items rather than failing the
// whole batch.
type ProgramEnrollmentCreateRequest struct {
	StudentKey     *string `json:"student_key" validate:"required,notblank"`
	Status         *string `json:"status" validate:"required,notblank"`
	CurriculumUUID *string `json:"curriculum_uuid" validate:"required,uuid_rfc4122"`
}

// Validate checks field-level constraints and returns the per-field report.
// An empty report means the request is ready for Record.
func (r ProgramEnrollmentCreateRequest) Validate(v *validator.Validate) FieldErrors {
	return fieldErrorsFrom(v.Struct(r))
}

// Record converts the validated request into a write record. Call only after
// Validate returned an empty report.
func (r ProgramEnrollmentCreateRequest) Record() models.ProgramEnrollmentWriteRecord {
	curriculum, _ := uuid.Parse(deref(r.CurriculumUUID))
	return models.ProgramEnrollmentWriteRecord{
		ExternalUserKey: deref(r.StudentKey),
		Status:          deref(r.Status),
		CurriculumUUID:  curriculum,
	}
}

// ProgramEnrollmentUpdateRequest is one item of a batch program enrollment
// update payload. Updates never move an enrollment between curricula, so no
// curriculum field exists.
type ProgramEnrollmentUpdateRequest struct {
	StudentKey *string `json:"student_key" validate:"required,notblank"`
	Status     *string `json:"status" validate:"required,notblank"`
}

// Validate checks field-level constraints and returns the per-field report.
func (r ProgramEnrollmentUpdateRequest) Validate(v *validator.Validate) FieldErrors {
	return fieldErrorsFrom(v.Struct(r))
}

// Record converts the validated request into a write record.
func (r ProgramEnrollmentUpdateRequest) Record() models.ProgramEnrollmentWriteRecord {
	return models.ProgramEnrollmentWriteRecord{
		ExternalUserKey: deref(r.StudentKey),
		Status:          deref(r.Status),
	}
}

// ProgramCourseEnrollmentRequest is one item of a batch course enrollment
// write payload. The same shape serves create and update. Status is left
// unconstrained for the same reason as on the program enrollment requests.
type ProgramCourseEnrollmentRequest struct {
	StudentKey *string `json:"student_key" validate:"required,notblank"`
	Status     *string `json:"status" validate:"required,notblank"`
}

// Validate checks field-level constraints and returns the per-field report.
func (r ProgramCourseEnrollmentRequest) Validate(v *validator.Validate) FieldErrors {
	return fieldErrorsFrom(v.Struct(r))
}

// Record converts the validated request into a write record.
func (r ProgramCourseEnrollmentRequest) Record() models.ProgramCourseEnrollmentWriteRecord {
	return models.ProgramCourseEnrollmentWriteRecord{
		ExternalUserKey: deref(r.StudentKey),
		Status:          deref(r.Status),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
