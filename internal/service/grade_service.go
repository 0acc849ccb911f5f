package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/program-enrollments-api/internal/dto"
	"github.com/noah-isme/program-enrollments-api/internal/models"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
)

type gradeReader interface {
	CourseGrades(ctx context.Context, programUUID uuid.UUID, courseKey string) ([]models.ProgramCourseGrade, error)
}

// GradeBatch carries the shaped grade views and the ok/error split so
// handlers can pick between 200, 207 and 422.
type GradeBatch struct {
	Views []dto.ProgramCourseGradeView
	OK    int
	Err   int
}

// StatusCode maps the ok/error split onto the response status.
func (b GradeBatch) StatusCode(successStatus int) int {
	return BatchResult{Good: b.OK, Bad: b.Err}.StatusCode(successStatus)
}

// GradeService shapes learner grades for program course runs.
type GradeService struct {
	reader gradeReader
	logger *zap.Logger
}

// NewGradeService constructs GradeService.
func NewGradeService(reader gradeReader, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{reader: reader, logger: logger}
}

// ListCourseGrades fetches and shapes the grades of a program course run.
// Per-learner grading failures stay in the batch as error views.
func (s *GradeService) ListCourseGrades(ctx context.Context, programUUID uuid.UUID, courseKey string) (GradeBatch, error) {
	grades, err := s.reader.CourseGrades(ctx, programUUID, courseKey)
	if err != nil {
		if errors.Is(err, models.ErrProgramNotFound) {
			return GradeBatch{}, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		if errors.Is(err, models.ErrCourseNotFound) {
			return GradeBatch{}, appErrors.Clone(appErrors.ErrNotFound, "course run not found in program")
		}
		return GradeBatch{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course grades")
	}

	batch := GradeBatch{Views: dto.NewProgramCourseGradeViews(grades)}
	for _, grade := range grades {
		if _, failed := grade.(models.ProgramCourseGradeError); failed {
			batch.Err++
		} else {
			batch.OK++
		}
	}
	return batch, nil
}
