package models

// ProgramCourseGrade is the result of grading one course enrollment. It has
// exactly two variants: ProgramCourseGradeOk when the grade could be read and
// ProgramCourseGradeError when grading failed for that learner. The unexported
// method seals the set of variants.
type ProgramCourseGrade interface {
	// CourseEnrollment returns the enrollment the grade belongs to.
	CourseEnrollment() *ProgramCourseEnrollment

	isProgramCourseGrade()
}

// ProgramCourseGradeOk carries a successfully loaded grade.
type ProgramCourseGradeOk struct {
	Enrollment  *ProgramCourseEnrollment
	Passed      bool
	Percent     float64
	LetterGrade string
}

// CourseEnrollment returns the graded enrollment.
func (g ProgramCourseGradeOk) CourseEnrollment() *ProgramCourseEnrollment { return g.Enrollment }

func (ProgramCourseGradeOk) isProgramCourseGrade() {}

// ProgramCourseGradeError carries the failure for one learner, leaving the
// rest of the batch unaffected.
type ProgramCourseGradeError struct {
	Enrollment *ProgramCourseEnrollment
	Message    string
}

// CourseEnrollment returns the enrollment grading failed for.
func (g ProgramCourseGradeError) CourseEnrollment() *ProgramCourseEnrollment { return g.Enrollment }

func (ProgramCourseGradeError) isProgramCourseGrade() {}
