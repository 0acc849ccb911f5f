package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/program-enrollments-api/internal/dto"
	"github.com/noah-isme/program-enrollments-api/internal/models"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
)

type courseRunReader interface {
	CourseRuns(ctx context.Context, programUUID uuid.UUID, studentKey string) ([]models.CourseRun, error)
}

// OverviewService shapes a learner's course run overview and caches the
// shaped payload.
type OverviewService struct {
	reader   courseRunReader
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewOverviewService constructs OverviewService.
func NewOverviewService(reader courseRunReader, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *OverviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverviewService{reader: reader, cache: cache, cacheTTL: cacheTTL, logger: logger, now: time.Now}
}

// CourseRunOverviews returns the shaped overview list for one learner in a
// program. The second return reports whether the payload came from cache.
func (s *OverviewService) CourseRunOverviews(ctx context.Context, programUUID uuid.UUID, studentKey string) (dto.CourseRunOverviewList, bool, error) {
	key := overviewCacheKey(programUUID, studentKey)

	var cached dto.CourseRunOverviewList
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	runs, err := s.reader.CourseRuns(ctx, programUUID, studentKey)
	if err != nil {
		if errors.Is(err, models.ErrProgramNotFound) {
			return dto.CourseRunOverviewList{}, false, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		return dto.CourseRunOverviewList{}, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course runs")
	}

	now := s.now().UTC()
	overviews := make([]dto.CourseRunOverview, 0, len(runs))
	for _, run := range runs {
		overviews = append(overviews, dto.NewCourseRunOverview(run, courseRunStatus(run, now)))
	}
	list := dto.CourseRunOverviewList{CourseRuns: overviews}

	if err := s.cache.Set(ctx, key, list, s.cacheTTL); err != nil {
		s.logger.Warn("overview cache set failed", zap.String("key", key), zap.Error(err))
	}
	return list, false, nil
}

// courseRunStatus derives where the learner stands in a course run: completed
// once the run has ended or a certificate is available, upcoming before the
// start date, in progress otherwise.
func courseRunStatus(run models.CourseRun, now time.Time) models.CourseRunProgressStatus {
	if run.CertificateDownloadURL != nil || now.After(run.EndDate) {
		return models.CourseRunStatusCompleted
	}
	if now.Before(run.StartDate) {
		return models.CourseRunStatusUpcoming
	}
	return models.CourseRunStatusInProgress
}

func overviewCacheKey(programUUID uuid.UUID, studentKey string) string {
	return fmt.Sprintf("overview:%s:%s", programUUID, studentKey)
}

func overviewCachePattern(programUUID uuid.UUID) string {
	return fmt.Sprintf("overview:%s:*", programUUID)
}
