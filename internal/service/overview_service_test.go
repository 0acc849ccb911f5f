package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/program-enrollments-api/internal/models"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
)

type fakeCourseRunReader struct {
	runs  []models.CourseRun
	err   error
	calls int
}

func (f *fakeCourseRunReader) CourseRuns(_ context.Context, _ uuid.UUID, _ string) ([]models.CourseRun, error) {
	f.calls++
	return f.runs, f.err
}

func overviewRun(start, end time.Time) models.CourseRun {
	return models.CourseRun{
		CourseRunID:  "course-v1:Acme+CS101+2026",
		DisplayName:  "Intro to Computer Science",
		CourseRunURL: "https://learn.example.com/courses/cs101",
		StartDate:    start,
		EndDate:      end,
	}
}

func newOverviewService(reader courseRunReader, repo CacheRepository, now time.Time) *OverviewService {
	var cache *CacheService
	if repo != nil {
		cache = NewCacheService(repo, nil, time.Minute, nil, true)
	}
	svc := NewOverviewService(reader, cache, time.Minute, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCourseRunStatusDerivation(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cert := "https://learn.example.com/certificates/abc"

	upcoming := overviewRun(now.AddDate(0, 1, 0), now.AddDate(0, 5, 0))
	inProgress := overviewRun(now.AddDate(0, -1, 0), now.AddDate(0, 3, 0))
	ended := overviewRun(now.AddDate(0, -6, 0), now.AddDate(0, -1, 0))
	certified := overviewRun(now.AddDate(0, -1, 0), now.AddDate(0, 3, 0))
	certified.CertificateDownloadURL = &cert

	cases := []struct {
		name string
		run  models.CourseRun
		want models.CourseRunProgressStatus
	}{
		{name: "before start", run: upcoming, want: models.CourseRunStatusUpcoming},
		{name: "between start and end", run: inProgress, want: models.CourseRunStatusInProgress},
		{name: "after end", run: ended, want: models.CourseRunStatusCompleted},
		{name: "certificate before end", run: certified, want: models.CourseRunStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, courseRunStatus(tc.run, now))
		})
	}
}

func TestCourseRunOverviewsShapesAndCaches(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	reader := &fakeCourseRunReader{runs: []models.CourseRun{
		overviewRun(now.AddDate(0, -1, 0), now.AddDate(0, 3, 0)),
	}}
	repo := &fakeCacheRepo{}
	svc := newOverviewService(reader, repo, now)
	programUUID := uuid.New()

	list, cacheHit, err := svc.CourseRunOverviews(context.Background(), programUUID, "s1")

	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.Len(t, list.CourseRuns, 1)
	assert.Equal(t, models.CourseRunStatusInProgress, list.CourseRuns[0].CourseRunStatus)
	assert.Contains(t, repo.entries, "overview:"+programUUID.String()+":s1")

	// second read is served from cache without touching the reader
	cached, cacheHit, err := svc.CourseRunOverviews(context.Background(), programUUID, "s1")
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, list, cached)
	assert.Equal(t, 1, reader.calls)
}

func TestCourseRunOverviewsEmptyRuns(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := newOverviewService(&fakeCourseRunReader{}, nil, now)

	list, cacheHit, err := svc.CourseRunOverviews(context.Background(), uuid.New(), "s1")

	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.NotNil(t, list.CourseRuns)
	assert.Len(t, list.CourseRuns, 0)
}

func TestCourseRunOverviewsProgramNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := newOverviewService(&fakeCourseRunReader{err: models.ErrProgramNotFound}, nil, now)

	_, _, err := svc.CourseRunOverviews(context.Background(), uuid.New(), "s1")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
