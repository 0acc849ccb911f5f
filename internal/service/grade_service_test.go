package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/program-enrollments-api/internal/models"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
)

type fakeGradeReader struct {
	grades []models.ProgramCourseGrade
	err    error
}

func (f *fakeGradeReader) CourseGrades(_ context.Context, _ uuid.UUID, _ string) ([]models.ProgramCourseGrade, error) {
	return f.grades, f.err
}

func gradeEnrollment(studentKey string) *models.ProgramCourseEnrollment {
	return &models.ProgramCourseEnrollment{
		ProgramEnrollment: &models.ProgramEnrollment{ExternalUserKey: studentKey},
		CourseKey:         "course-v1:Acme+CS101+2026",
		Status:            models.ProgramCourseEnrollmentStatusActive,
	}
}

func TestListCourseGradesSplitsOkAndError(t *testing.T) {
	reader := &fakeGradeReader{grades: []models.ProgramCourseGrade{
		models.ProgramCourseGradeOk{Enrollment: gradeEnrollment("s1"), Passed: true, Percent: 0.92, LetterGrade: "A"},
		models.ProgramCourseGradeError{Enrollment: gradeEnrollment("s2"), Message: "course grade unavailable"},
		models.ProgramCourseGradeOk{Enrollment: gradeEnrollment("s3"), Passed: false, Percent: 0.4, LetterGrade: "F"},
	}}
	svc := NewGradeService(reader, nil)

	batch, err := svc.ListCourseGrades(context.Background(), uuid.New(), "course-v1:Acme+CS101+2026")

	require.NoError(t, err)
	assert.Equal(t, 2, batch.OK)
	assert.Equal(t, 1, batch.Err)
	require.Len(t, batch.Views, 3)
	assert.Equal(t, http.StatusMultiStatus, batch.StatusCode(http.StatusOK))
}

func TestListCourseGradesAllOk(t *testing.T) {
	reader := &fakeGradeReader{grades: []models.ProgramCourseGrade{
		models.ProgramCourseGradeOk{Enrollment: gradeEnrollment("s1"), Passed: true, Percent: 0.92, LetterGrade: "A"},
	}}
	svc := NewGradeService(reader, nil)

	batch, err := svc.ListCourseGrades(context.Background(), uuid.New(), "course-v1:Acme+CS101+2026")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, batch.StatusCode(http.StatusOK))
}

func TestListCourseGradesAllFailed(t *testing.T) {
	reader := &fakeGradeReader{grades: []models.ProgramCourseGrade{
		models.ProgramCourseGradeError{Enrollment: gradeEnrollment("s1"), Message: "grading backend timeout"},
		models.ProgramCourseGradeError{Enrollment: gradeEnrollment("s2"), Message: "grading backend timeout"},
	}}
	svc := NewGradeService(reader, nil)

	batch, err := svc.ListCourseGrades(context.Background(), uuid.New(), "course-v1:Acme+CS101+2026")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, batch.StatusCode(http.StatusOK))
}

func TestListCourseGradesNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "unknown program", err: models.ErrProgramNotFound},
		{name: "unknown course run", err: models.ErrCourseNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewGradeService(&fakeGradeReader{err: tc.err}, nil)

			_, err := svc.ListCourseGrades(context.Background(), uuid.New(), "course-v1:Acme+CS101+2026")

			require.Error(t, err)
			assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
		})
	}
}
