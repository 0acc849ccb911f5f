package dto

import "github.com/noah-isme/program-enrollments-api/internal/models"

// ProgramEnrollmentView is the wire shape of one program enrollment.
type ProgramEnrollmentView struct {
	StudentKey     string `json:"student_key"`
	Status         string `json:"status"`
	AccountExists  bool   `json:"account_exists"`
	CurriculumUUID string `json:"curriculum_uuid"`
}

// NewProgramEnrollmentView shapes a program enrollment record. account_exists
// is derived from the presence of a linked platform account; the curriculum
// UUID is rendered in its canonical string form.
func NewProgramEnrollmentView(e *models.ProgramEnrollment) ProgramEnrollmentView {
	return ProgramEnrollmentView{
		StudentKey:     e.ExternalUserKey,
		Status:         string(e.Status),
		AccountExists:  e.AccountLinked(),
		CurriculumUUID: e.CurriculumUUID.String(),
	}
}

// NewProgramEnrollmentViews shapes a list of enrollments, preserving order.
// An empty input yields an empty slice, never nil, so the field serialises
// as [] rather than null.
func NewProgramEnrollmentViews(enrollments []models.ProgramEnrollment) []ProgramEnrollmentView {
	views := make([]ProgramEnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, NewProgramEnrollmentView(&enrollments[i]))
	}
	return views
}

// ProgramCourseEnrollmentView is the wire shape of one course enrollment
// within a program. Every field except status is derived by traversing the
// parent program enrollment.
type ProgramCourseEnrollmentView struct {
	StudentKey     string `json:"student_key"`
	Status         string `json:"status"`
	AccountExists  bool   `json:"account_exists"`
	CurriculumUUID string `json:"curriculum_uuid"`
}

// NewProgramCourseEnrollmentView shapes a course enrollment record.
func NewProgramCourseEnrollmentView(e *models.ProgramCourseEnrollment) ProgramCourseEnrollmentView {
	parent := e.ProgramEnrollment
	return ProgramCourseEnrollmentView{
		StudentKey:     parent.ExternalUserKey,
		Status:         string(e.Status),
		AccountExists:  parent.AccountLinked(),
		CurriculumUUID: parent.CurriculumUUID.String(),
	}
}

// NewProgramCourseEnrollmentViews shapes a list of course enrollments.
func NewProgramCourseEnrollmentViews(enrollments []models.ProgramCourseEnrollment) []ProgramCourseEnrollmentView {
	views := make([]ProgramCourseEnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, NewProgramCourseEnrollmentView(&enrollments[i]))
	}
	return views
}
