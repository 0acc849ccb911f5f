package dto

import "github.com/noah-isme/program-enrollments-api/internal/models"

// ProgramCourseGradeView is the wire shape of one learner's grade in a
// program course run. student_key is always present; the remaining fields
// split into two mutually exclusive subsets selected by the grade variant.
// Unused fields are omitted entirely rather than rendered as null.
type ProgramCourseGradeView struct {
	StudentKey  string   `json:"student_key"`
	Passed      *bool    `json:"passed,omitempty"`
	Percent     *float64 `json:"percent,omitempty"`
	LetterGrade *string  `json:"letter_grade,omitempty"`
	Error       *string  `json:"error,omitempty"`
}

// NewProgramCourseGradeView shapes a grade result. The Ok variant emits
// passed/percent/letter_grade, the Error variant emits error; student_key is
// derived through the parent program enrollment in both cases.
func NewProgramCourseGradeView(grade models.ProgramCourseGrade) ProgramCourseGradeView {
	view := ProgramCourseGradeView{
		StudentKey: grade.CourseEnrollment().ProgramEnrollment.ExternalUserKey,
	}
	switch g := grade.(type) {
	case models.ProgramCourseGradeOk:
		view.Passed = &g.Passed
		view.Percent = &g.Percent
		view.LetterGrade = &g.LetterGrade
	case models.ProgramCourseGradeError:
		view.Error = &g.Message
	}
	return view
}

// NewProgramCourseGradeViews shapes a list of grade results, preserving order.
func NewProgramCourseGradeViews(grades []models.ProgramCourseGrade) []ProgramCourseGradeView {
	views := make([]ProgramCourseGradeView, 0, len(grades))
	for _, grade := range grades {
		views = append(views, NewProgramCourseGradeView(grade))
	}
	return views
}
