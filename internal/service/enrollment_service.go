package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/program-enrollments-api/internal/dto"
	"github.com/noah-isme/program-enrollments-api/internal/models"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
)

type enrollmentReader interface {
	ProgramEnrollments(ctx context.Context, programUUID uuid.UUID) ([]models.ProgramEnrollment, error)
	CourseEnrollments(ctx context.Context, programUUID uuid.UUID, courseKey string) ([]models.ProgramCourseEnrollment, error)
}

type enrollmentWriter interface {
	CreateProgramEnrollments(ctx context.Context, programUUID uuid.UUID, records []models.ProgramEnrollmentWriteRecord) (map[string]string, error)
	UpdateProgramEnrollments(ctx context.Context, programUUID uuid.UUID, records []models.ProgramEnrollmentWriteRecord) (map[string]string, error)
	WriteCourseEnrollments(ctx context.Context, programUUID uuid.UUID, courseKey string, records []models.ProgramCourseEnrollmentWriteRecord, create bool) (map[string]string, error)
}

// BatchResult aggregates the per-item outcomes of one batch enrollment write.
type BatchResult struct {
	Results map[string]string
	Good    int
	Bad     int
}

// StatusCode maps the good/bad split onto the response status: successStatus
// when every item succeeded, 422 when none did, 207 for a mix.
func (r BatchResult) StatusCode(successStatus int) int {
	switch {
	case r.Bad == 0:
		return successStatus
	case r.Good == 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusMultiStatus
	}
}

// EnrollmentService shapes enrollment reads and orchestrates batch writes.
type EnrollmentService struct {
	reader     enrollmentReader
	writer     enrollmentWriter
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
	batchLimit int
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(reader enrollmentReader, writer enrollmentWriter, cache *CacheService, validate *validator.Validate, logger *zap.Logger, batchLimit int) *EnrollmentService {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchLimit <= 0 {
		batchLimit = 25
	}
	return &EnrollmentService{reader: reader, writer: writer, cache: cache, validator: validate, logger: logger, batchLimit: batchLimit}
}

// ListProgramEnrollments returns the shaped enrollments of a program.
func (s *EnrollmentService) ListProgramEnrollments(ctx context.Context, programUUID uuid.UUID) ([]dto.ProgramEnrollmentView, error) {
	enrollments, err := s.reader.ProgramEnrollments(ctx, programUUID)
	if err != nil {
		return nil, s.readError(err, "failed to list program enrollments")
	}
	return dto.NewProgramEnrollmentViews(enrollments), nil
}

// ListCourseEnrollments returns the shaped course enrollments of a program
// course run.
func (s *EnrollmentService) ListCourseEnrollments(ctx context.Context, programUUID uuid.UUID, courseKey string) ([]dto.ProgramCourseEnrollmentView, error) {
	enrollments, err := s.reader.CourseEnrollments(ctx, programUUID, courseKey)
	if err != nil {
		return nil, s.readError(err, "failed to list course enrollments")
	}
	return dto.NewProgramCourseEnrollmentViews(enrollments), nil
}

// CreateProgramEnrollments validates and writes a batch of new program
// enrollments, reporting a per-student-key outcome map.
func (s *EnrollmentService) CreateProgramEnrollments(ctx context.Context, programUUID uuid.UUID, reqs []dto.ProgramEnrollmentCreateRequest) (BatchResult, error) {
	results, records, err := prepareBatch(s.batchLimit, len(reqs), func(i int) (string, dto.FieldErrors, models.ProgramEnrollmentWriteRecord) {
		errs := reqs[i].Validate(s.validator)
		return keyOf(reqs[i].StudentKey), errs, reqs[i].Record()
	})
	if err != nil {
		return BatchResult{}, err
	}
	if len(records) > 0 {
		written, err := s.writer.CreateProgramEnrollments(ctx, programUUID, records)
		if err != nil {
			return BatchResult{}, s.readError(err, "failed to write program enrollments")
		}
		mergeResults(results, written)
	}
	return s.finishBatch(ctx, programUUID, results), nil
}

// UpdateProgramEnrollments validates and writes a batch of status changes.
func (s *EnrollmentService) UpdateProgramEnrollments(ctx context.Context, programUUID uuid.UUID, reqs []dto.ProgramEnrollmentUpdateRequest) (BatchResult, error) {
	results, records, err := prepareBatch(s.batchLimit, len(reqs), func(i int) (string, dto.FieldErrors, models.ProgramEnrollmentWriteRecord) {
		errs := reqs[i].Validate(s.validator)
		return keyOf(reqs[i].StudentKey), errs, reqs[i].Record()
	})
	if err != nil {
		return BatchResult{}, err
	}
	if len(records) > 0 {
		written, err := s.writer.UpdateProgramEnrollments(ctx, programUUID, records)
		if err != nil {
			return BatchResult{}, s.readError(err, "failed to write program enrollments")
		}
		mergeResults(results, written)
	}
	return s.finishBatch(ctx, programUUID, results), nil
}

// WriteCourseEnrollments validates and writes a batch of course enrollments;
// create selects between enrolling and updating.
func (s *EnrollmentService) WriteCourseEnrollments(ctx context.Context, programUUID uuid.UUID, courseKey string, reqs []dto.ProgramCourseEnrollmentRequest, create bool) (BatchResult, error) {
	results, records, err := prepareBatch(s.batchLimit, len(reqs), func(i int) (string, dto.FieldErrors, models.ProgramCourseEnrollmentWriteRecord) {
		errs := reqs[i].Validate(s.validator)
		return keyOf(reqs[i].StudentKey), errs, reqs[i].Record()
	})
	if err != nil {
		return BatchResult{}, err
	}
	if len(records) > 0 {
		written, err := s.writer.WriteCourseEnrollments(ctx, programUUID, courseKey, records, create)
		if err != nil {
			return BatchResult{}, s.readError(err, "failed to write course enrollments")
		}
		mergeResults(results, written)
	}
	return s.finishBatch(ctx, programUUID, results), nil
}

// prepareBatch runs the shared batch front half: size limits, per-item
// validation, invalid-status isolation and duplicate detection. It returns
// the pre-filled outcome map and the records that should reach the writer.
//
// An item whose only defect is an invalid status choice is recorded as an
// invalid-status outcome instead of failing the request; any other field
// error fails the whole batch with a per-index report.
func prepareBatch[R any](limit, total int, item func(i int) (string, dto.FieldErrors, R)) (map[string]string, []R, error) {
	if total == 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrUnprocessable, "no enrollment records provided")
	}
	if total > limit {
		return nil, nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("enrollment limit %d exceeded", limit))
	}

	results := make(map[string]string, total)
	itemErrors := map[string]dto.FieldErrors{}
	keyCounts := make(map[string]int, total)
	type pending struct {
		key    string
		record R
	}
	var valid []pending

	for i := 0; i < total; i++ {
		key, errs, record := item(i)
		if key != "" {
			keyCounts[key]++
		}
		if len(errs) > 0 {
			if dto.HasInvalidStatus(errs) && len(errs) == 1 {
				results[key] = models.WriteStatusInvalidStatus
				continue
			}
			itemErrors[strconv.Itoa(i)] = errs
			continue
		}
		valid = append(valid, pending{key: key, record: record})
	}

	if len(itemErrors) > 0 {
		return nil, nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrUnprocessable, "invalid enrollment records"), itemErrors)
	}

	records := make([]R, 0, len(valid))
	for _, p := range valid {
		if keyCounts[p.key] > 1 {
			results[p.key] = models.WriteStatusDuplicated
			continue
		}
		records = append(records, p.record)
	}
	return results, records, nil
}

func (s *EnrollmentService) finishBatch(ctx context.Context, programUUID uuid.UUID, results map[string]string) BatchResult {
	batch := BatchResult{Results: results}
	for _, status := range results {
		if models.IsWriteErrorStatus(status) {
			batch.Bad++
		} else {
			batch.Good++
		}
	}
	if batch.Good > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx, overviewCachePattern(programUUID)); err != nil {
			s.logger.Warn("overview cache invalidation failed", zap.String("program_uuid", programUUID.String()), zap.Error(err))
		}
	}
	return batch
}

func (s *EnrollmentService) readError(err error, message string) error {
	if errors.Is(err, models.ErrProgramNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "program not found")
	}
	if errors.Is(err, models.ErrCourseNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "course run not found in program")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func mergeResults(results, written map[string]string) {
	for key, status := range written {
		results[key] = status
	}
}

func keyOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
