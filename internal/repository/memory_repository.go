package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/program-enrollments-api/internal/models"
)

// MemoryStore is an in-memory implementation of the enrollment data-access
// collaborators. It backs the API in development and tests; it applies the
// status-choice check the shaping layer defers, reporting invalid-status per
// item instead of failing a batch.
type MemoryStore struct {
	mu       sync.RWMutex
	programs map[uuid.UUID]*programState
}

type programState struct {
	enrollments map[string]*models.ProgramEnrollment
	// courseKey -> studentKey -> enrollment
	courses    map[string]map[string]*models.ProgramCourseEnrollment
	grades     map[string][]models.ProgramCourseGrade
	courseRuns map[string][]models.CourseRun
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{programs: make(map[uuid.UUID]*programState)}
}

// AddProgram registers a program so enrollments can be written to it.
func (s *MemoryStore) AddProgram(programUUID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.programs[programUUID]; !ok {
		s.programs[programUUID] = newProgramState()
	}
}

func newProgramState() *programState {
	return &programState{
		enrollments: make(map[string]*models.ProgramEnrollment),
		courses:     make(map[string]map[string]*models.ProgramCourseEnrollment),
		grades:      make(map[string][]models.ProgramCourseGrade),
		courseRuns:  make(map[string][]models.CourseRun),
	}
}

// ProgramEnrollments lists the enrollments of a program in insertion-stable
// order by external user key.
func (s *MemoryStore) ProgramEnrollments(_ context.Context, programUUID uuid.UUID) ([]models.ProgramEnrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	enrollments := make([]models.ProgramEnrollment, 0, len(state.enrollments))
	for _, key := range sortedKeys(state.enrollments) {
		enrollments = append(enrollments, *state.enrollments[key])
	}
	return enrollments, nil
}

// CourseEnrollments lists the course enrollments of a program course run.
func (s *MemoryStore) CourseEnrollments(_ context.Context, programUUID uuid.UUID, courseKey string) ([]models.ProgramCourseEnrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	course, ok := state.courses[courseKey]
	if !ok {
		return nil, models.ErrCourseNotFound
	}
	enrollments := make([]models.ProgramCourseEnrollment, 0, len(course))
	for _, key := range sortedKeys(course) {
		enrollments = append(enrollments, *course[key])
	}
	return enrollments, nil
}

// CreateProgramEnrollments writes new enrollments and reports a per-item
// outcome keyed by external user key. Records must carry distinct keys;
// the batch service filters in-batch duplicates before calling the writer.
func (s *MemoryStore) CreateProgramEnrollments(_ context.Context, programUUID uuid.UUID, records []models.ProgramEnrollmentWriteRecord) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	results := make(map[string]string, len(records))
	now := time.Now().UTC()
	for _, rec := range records {
		status := models.ProgramEnrollmentStatus(rec.Status)
		if !status.IsValid() {
			results[rec.ExternalUserKey] = models.WriteStatusInvalidStatus
			continue
		}
		if _, exists := state.enrollments[rec.ExternalUserKey]; exists {
			results[rec.ExternalUserKey] = models.WriteStatusConflict
			continue
		}
		state.enrollments[rec.ExternalUserKey] = &models.ProgramEnrollment{
			ID:              uuid.NewString(),
			ProgramUUID:     programUUID,
			CurriculumUUID:  rec.CurriculumUUID,
			ExternalUserKey: rec.ExternalUserKey,
			Status:          status,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		results[rec.ExternalUserKey] = rec.Status
	}
	return results, nil
}

// UpdateProgramEnrollments moves existing enrollments to new statuses and
// reports a per-item outcome keyed by external user key.
func (s *MemoryStore) UpdateProgramEnrollments(_ context.Context, programUUID uuid.UUID, records []models.ProgramEnrollmentWriteRecord) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	results := make(map[string]string, len(records))
	for _, rec := range records {
		status := models.ProgramEnrollmentStatus(rec.Status)
		if !status.IsValid() {
			results[rec.ExternalUserKey] = models.WriteStatusInvalidStatus
			continue
		}
		enrollment, exists := state.enrollments[rec.ExternalUserKey]
		if !exists {
			results[rec.ExternalUserKey] = models.WriteStatusNotInProgram
			continue
		}
		enrollment.Status = status
		enrollment.UpdatedAt = time.Now().UTC()
		results[rec.ExternalUserKey] = rec.Status
	}
	return results, nil
}

// WriteCourseEnrollments writes course enrollments for a program course run.
// create selects between enrolling learners and moving existing course
// enrollments to new statuses. Records must carry distinct keys, as on the
// program enrollment writers.
func (s *MemoryStore) WriteCourseEnrollments(_ context.Context, programUUID uuid.UUID, courseKey string, records []models.ProgramCourseEnrollmentWriteRecord, create bool) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	course, ok := state.courses[courseKey]
	if !ok {
		course = make(map[string]*models.ProgramCourseEnrollment)
		state.courses[courseKey] = course
	}
	results := make(map[string]string, len(records))
	now := time.Now().UTC()
	for _, rec := range records {
		status := models.ProgramCourseEnrollmentStatus(rec.Status)
		if !status.IsValid() {
			results[rec.ExternalUserKey] = models.WriteStatusInvalidStatus
			continue
		}
		parent, inProgram := state.enrollments[rec.ExternalUserKey]
		if !inProgram {
			results[rec.ExternalUserKey] = models.WriteStatusNotInProgram
			continue
		}
		existing, exists := course[rec.ExternalUserKey]
		if create {
			if exists {
				results[rec.ExternalUserKey] = models.WriteStatusConflict
				continue
			}
			course[rec.ExternalUserKey] = &models.ProgramCourseEnrollment{
				ID:                uuid.NewString(),
				ProgramEnrollment: parent,
				CourseKey:         courseKey,
				Status:            status,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			results[rec.ExternalUserKey] = rec.Status
			continue
		}
		if !exists {
			results[rec.ExternalUserKey] = models.WriteStatusNotInProgram
			continue
		}
		existing.Status = status
		existing.UpdatedAt = now
		results[rec.ExternalUserKey] = rec.Status
	}
	return results, nil
}

// CourseGrades returns the seeded grade results for a program course run.
func (s *MemoryStore) CourseGrades(_ context.Context, programUUID uuid.UUID, courseKey string) ([]models.ProgramCourseGrade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	grades, ok := state.grades[courseKey]
	if !ok {
		return nil, models.ErrCourseNotFound
	}
	out := make([]models.ProgramCourseGrade, len(grades))
	copy(out, grades)
	return out, nil
}

// CourseRuns returns the seeded course run records for one learner.
func (s *MemoryStore) CourseRuns(_ context.Context, programUUID uuid.UUID, studentKey string) ([]models.CourseRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return nil, models.ErrProgramNotFound
	}
	runs := state.courseRuns[studentKey]
	out := make([]models.CourseRun, len(runs))
	copy(out, runs)
	return out, nil
}

// SeedCourseGrades installs grade results for a course run. Intended for
// development fixtures and tests.
func (s *MemoryStore) SeedCourseGrades(programUUID uuid.UUID, courseKey string, grades []models.ProgramCourseGrade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		state = newProgramState()
		s.programs[programUUID] = state
	}
	state.grades[courseKey] = grades
}

// SeedCourseRuns installs course run records for one learner.
func (s *MemoryStore) SeedCourseRuns(programUUID uuid.UUID, studentKey string, runs []models.CourseRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		state = newProgramState()
		s.programs[programUUID] = state
	}
	state.courseRuns[studentKey] = runs
}

// LinkAccount attaches a platform user to an existing enrollment.
func (s *MemoryStore) LinkAccount(programUUID uuid.UUID, studentKey, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.programs[programUUID]
	if !ok {
		return false
	}
	enrollment, ok := state.enrollments[studentKey]
	if !ok {
		return false
	}
	enrollment.UserID = &userID
	enrollment.UpdatedAt = time.Now().UTC()
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
