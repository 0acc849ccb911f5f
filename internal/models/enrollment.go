package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgramEnrollmentStatus represents the lifecycle of a program enrollment.
type ProgramEnrollmentStatus string

// Possible program enrollment statuses.
const (
	ProgramEnrollmentStatusEnrolled  ProgramEnrollmentStatus = "enrolled"
	ProgramEnrollmentStatusPending   ProgramEnrollmentStatus = "pending"
	ProgramEnrollmentStatusSuspended ProgramEnrollmentStatus = "suspended"
	ProgramEnrollmentStatusCanceled  ProgramEnrollmentStatus = "canceled"
	ProgramEnrollmentStatusEnded     ProgramEnrollmentStatus = "ended"
)

// IsValid reports whether the status is one of the known program enrollment statuses.
func (s ProgramEnrollmentStatus) IsValid() bool {
	switch s {
	case ProgramEnrollmentStatusEnrolled, ProgramEnrollmentStatusPending,
		ProgramEnrollmentStatusSuspended, ProgramEnrollmentStatusCanceled,
		ProgramEnrollmentStatusEnded:
		return true
	}
	return false
}

// ProgramCourseEnrollmentStatus represents the lifecycle of a course enrollment within a program.
type ProgramCourseEnrollmentStatus string

// Possible program course enrollment statuses.
const (
	ProgramCourseEnrollmentStatusActive   ProgramCourseEnrollmentStatus = "active"
	ProgramCourseEnrollmentStatusInactive ProgramCourseEnrollmentStatus = "inactive"
)

// IsValid reports whether the status is one of the known course enrollment statuses.
func (s ProgramCourseEnrollmentStatus) IsValid() bool {
	return s == ProgramCourseEnrollmentStatusActive || s == ProgramCourseEnrollmentStatusInactive
}

// ProgramEnrollment captures a learner's registration to a program curriculum.
// UserID is set once the learner's platform account has been linked to the
// enrollment; until then only the partner-provided external user key exists.
type ProgramEnrollment struct {
	ID              string                  `json:"id"`
	ProgramUUID     uuid.UUID               `json:"program_uuid"`
	CurriculumUUID  uuid.UUID               `json:"curriculum_uuid"`
	ExternalUserKey string                  `json:"external_user_key"`
	UserID          *string                 `json:"user_id,omitempty"`
	Status          ProgramEnrollmentStatus `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// AccountLinked reports whether a platform account is linked to the enrollment.
func (e *ProgramEnrollment) AccountLinked() bool {
	return e != nil && e.UserID != nil
}

// ProgramCourseEnrollment captures a learner's registration to a course run
// inside a program. The parent program enrollment is always attached.
type ProgramCourseEnrollment struct {
	ID                string                        `json:"id"`
	ProgramEnrollment *ProgramEnrollment            `json:"program_enrollment"`
	CourseKey         string                        `json:"course_key"`
	Status            ProgramCourseEnrollmentStatus `json:"status"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

// ProgramEnrollmentWriteRecord is a validated program enrollment write item
// ready for the write collaborator.
type ProgramEnrollmentWriteRecord struct {
	ExternalUserKey string
	Status          string
	CurriculumUUID  uuid.UUID
}

// ProgramCourseEnrollmentWriteRecord is a validated course enrollment write item.
type ProgramCourseEnrollmentWriteRecord struct {
	ExternalUserKey string
	Status          string
}

// Per-item outcomes reported for batch enrollment writes. Successful items
// carry the resulting enrollment status instead.
const (
	WriteStatusConflict      = "conflict"
	WriteStatusDuplicated    = "duplicated"
	WriteStatusInvalidStatus = "invalid-status"
	WriteStatusNotInProgram  = "not-in-program"
	WriteStatusInternalError = "internal-error"
)

// IsWriteErrorStatus reports whether a per-item outcome denotes a failure.
func IsWriteErrorStatus(status string) bool {
	switch status {
	case WriteStatusConflict, WriteStatusDuplicated, WriteStatusInvalidStatus,
		WriteStatusNotInProgram, WriteStatusInternalError:
		return true
	}
	return false
}
