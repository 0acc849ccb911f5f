package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/program-enrollments-api/internal/models"
)

const testCourseKey = "course-v1:Acme+CS101+2026"

func seededStore(t *testing.T) (*MemoryStore, uuid.UUID) {
	t.Helper()
	store := NewMemoryStore()
	programUUID := uuid.New()
	store.AddProgram(programUUID)
	return store, programUUID
}

func writeRecord(key, status string) models.ProgramEnrollmentWriteRecord {
	return models.ProgramEnrollmentWriteRecord{
		ExternalUserKey: key,
		Status:          status,
		CurriculumUUID:  uuid.New(),
	}
}

func TestCreateProgramEnrollments(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	results, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
		writeRecord("s2", "pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"s1": "enrolled", "s2": "pending"}, results)

	enrollments, err := store.ProgramEnrollments(ctx, programUUID)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, "s1", enrollments[0].ExternalUserKey)
	assert.Equal(t, models.ProgramEnrollmentStatusEnrolled, enrollments[0].Status)
	assert.False(t, enrollments[0].AccountLinked())
}

func TestCreateProgramEnrollmentsConflictAndInvalidStatus(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
	})
	require.NoError(t, err)

	results, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "pending"),
		writeRecord("s2", "graduated"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.WriteStatusConflict, results["s1"])
	assert.Equal(t, models.WriteStatusInvalidStatus, results["s2"])

	// the conflicting write must not move s1 off its original status
	enrollments, err := store.ProgramEnrollments(ctx, programUUID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.ProgramEnrollmentStatusEnrolled, enrollments[0].Status)
}

func TestUpdateProgramEnrollments(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
	})
	require.NoError(t, err)

	results, err := store.UpdateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "suspended"),
		writeRecord("s2", "canceled"),
		writeRecord("s3", "graduated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "suspended", results["s1"])
	assert.Equal(t, models.WriteStatusNotInProgram, results["s2"])
	assert.Equal(t, models.WriteStatusInvalidStatus, results["s3"])

	enrollments, err := store.ProgramEnrollments(ctx, programUUID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.ProgramEnrollmentStatusSuspended, enrollments[0].Status)
}

func TestWriteCourseEnrollmentsCreate(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
	})
	require.NoError(t, err)

	// duplicate student keys never reach the writer; the batch service marks
	// them duplicated beforehand, so every record here has a distinct key
	results, err := store.WriteCourseEnrollments(ctx, programUUID, testCourseKey, []models.ProgramCourseEnrollmentWriteRecord{
		{ExternalUserKey: "s1", Status: "active"},
		{ExternalUserKey: "s2", Status: "active"},
		{ExternalUserKey: "s3", Status: "banana"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "active", results["s1"])
	assert.Equal(t, models.WriteStatusNotInProgram, results["s2"])
	assert.Equal(t, models.WriteStatusInvalidStatus, results["s3"])

	enrollments, err := store.CourseEnrollments(ctx, programUUID, testCourseKey)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.ProgramCourseEnrollmentStatusActive, enrollments[0].Status)
	require.NotNil(t, enrollments[0].ProgramEnrollment)
	assert.Equal(t, "s1", enrollments[0].ProgramEnrollment.ExternalUserKey)
}

func TestWriteCourseEnrollmentsCreateConflict(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
	})
	require.NoError(t, err)

	_, err = store.WriteCourseEnrollments(ctx, programUUID, testCourseKey, []models.ProgramCourseEnrollmentWriteRecord{
		{ExternalUserKey: "s1", Status: "active"},
	}, true)
	require.NoError(t, err)

	results, err := store.WriteCourseEnrollments(ctx, programUUID, testCourseKey, []models.ProgramCourseEnrollmentWriteRecord{
		{ExternalUserKey: "s1", Status: "inactive"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, models.WriteStatusConflict, results["s1"])
}

func TestWriteCourseEnrollmentsUpdate(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
		writeRecord("s2", "enrolled"),
	})
	require.NoError(t, err)
	_, err = store.WriteCourseEnrollments(ctx, programUUID, testCourseKey, []models.ProgramCourseEnrollmentWriteRecord{
		{ExternalUserKey: "s1", Status: "active"},
	}, true)
	require.NoError(t, err)

	results, err := store.WriteCourseEnrollments(ctx, programUUID, testCourseKey, []models.ProgramCourseEnrollmentWriteRecord{
		{ExternalUserKey: "s1", Status: "inactive"},
		{ExternalUserKey: "s2", Status: "inactive"},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "inactive", results["s1"])
	// in the program but never enrolled in the course run
	assert.Equal(t, models.WriteStatusNotInProgram, results["s2"])

	enrollments, err := store.CourseEnrollments(ctx, programUUID, testCourseKey)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.ProgramCourseEnrollmentStatusInactive, enrollments[0].Status)
}

func TestUnknownProgramAndCourse(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	unknown := uuid.New()

	_, err := store.ProgramEnrollments(ctx, unknown)
	assert.ErrorIs(t, err, models.ErrProgramNotFound)

	_, err = store.CreateProgramEnrollments(ctx, unknown, nil)
	assert.ErrorIs(t, err, models.ErrProgramNotFound)

	store.AddProgram(unknown)
	_, err = store.CourseEnrollments(ctx, unknown, testCourseKey)
	assert.ErrorIs(t, err, models.ErrCourseNotFound)

	_, err = store.CourseGrades(ctx, unknown, testCourseKey)
	assert.ErrorIs(t, err, models.ErrCourseNotFound)
}

func TestLinkAccount(t *testing.T) {
	store, programUUID := seededStore(t)
	ctx := context.Background()

	_, err := store.CreateProgramEnrollments(ctx, programUUID, []models.ProgramEnrollmentWriteRecord{
		writeRecord("s1", "enrolled"),
	})
	require.NoError(t, err)

	assert.False(t, store.LinkAccount(programUUID, "missing", "user-1"))
	assert.True(t, store.LinkAccount(programUUID, "s1", "user-1"))

	enrollments, err := store.ProgramEnrollments(ctx, programUUID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.True(t, enrollments[0].AccountLinked())
}

func TestSeededGradesAndCourseRuns(t *testing.T) {
	store := NewMemoryStore()
	programUUID := uuid.New()
	ctx := context.Background()

	store.SeedCourseGrades(programUUID, testCourseKey, []models.ProgramCourseGrade{
		models.ProgramCourseGradeOk{
			Enrollment: &models.ProgramCourseEnrollment{
				ProgramEnrollment: &models.ProgramEnrollment{ExternalUserKey: "s1"},
				CourseKey:         testCourseKey,
			},
			Passed: true, Percent: 0.9, LetterGrade: "A",
		},
	})
	store.SeedCourseRuns(programUUID, "s1", []models.CourseRun{
		{CourseRunID: testCourseKey, StartDate: time.Now().UTC(), EndDate: time.Now().UTC().AddDate(0, 4, 0)},
	})

	grades, err := store.CourseGrades(ctx, programUUID, testCourseKey)
	require.NoError(t, err)
	assert.Len(t, grades, 1)

	runs, err := store.CourseRuns(ctx, programUUID, "s1")
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	runs, err = store.CourseRuns(ctx, programUUID, "s2")
	require.NoError(t, err)
	assert.Len(t, runs, 0)
}
