package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/program-enrollments-api/internal/models"
)

func gradedEnrollment(studentKey string) *models.ProgramCourseEnrollment {
	return &models.ProgramCourseEnrollment{
		ProgramEnrollment: &models.ProgramEnrollment{ExternalUserKey: studentKey},
		CourseKey:         "course-v1:Acme+CS101+2026",
		Status:            models.ProgramCourseEnrollmentStatusActive,
	}
}

func TestNewProgramCourseGradeViewOkVariant(t *testing.T) {
	grade := models.ProgramCourseGradeOk{
		Enrollment:  gradedEnrollment("student-1"),
		Passed:      true,
		Percent:     0.95,
		LetterGrade: "A",
	}

	view := NewProgramCourseGradeView(grade)

	assert.Equal(t, "student-1", view.StudentKey)
	require.NotNil(t, view.Passed)
	assert.True(t, *view.Passed)
	require.NotNil(t, view.Percent)
	assert.Equal(t, 0.95, *view.Percent)
	require.NotNil(t, view.LetterGrade)
	assert.Equal(t, "A", *view.LetterGrade)
	assert.Nil(t, view.Error)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.ElementsMatch(t, []string{"student_key", "passed", "percent", "letter_grade"}, keysOf(fields))
}

func TestNewProgramCourseGradeViewErrorVariant(t *testing.T) {
	grade := models.ProgramCourseGradeError{
		Enrollment: gradedEnrollment("student-2"),
		Message:    "course grade unavailable",
	}

	view := NewProgramCourseGradeView(grade)

	assert.Equal(t, "student-2", view.StudentKey)
	require.NotNil(t, view.Error)
	assert.Equal(t, "course grade unavailable", *view.Error)
	assert.Nil(t, view.Passed)
	assert.Nil(t, view.Percent)
	assert.Nil(t, view.LetterGrade)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.ElementsMatch(t, []string{"student_key", "error"}, keysOf(fields))
}

// A failed run still uses the Ok variant; passed=false must survive the
// omitempty handling on the wire.
func TestNewProgramCourseGradeViewFailedRun(t *testing.T) {
	grade := models.ProgramCourseGradeOk{
		Enrollment:  gradedEnrollment("student-3"),
		Passed:      false,
		Percent:     0.31,
		LetterGrade: "F",
	}

	payload, err := json.Marshal(NewProgramCourseGradeView(grade))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, false, fields["passed"])
}

func keysOf(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
