package dto

import (
	"time"

	"github.com/noah-isme/program-enrollments-api/internal/models"
)

// DueDateView is the wire shape of one due date inside a course run overview.
type DueDateView struct {
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Date time.Time `json:"date"`
}

// CourseRunOverview is the wire shape of one course run in a learner's
// program overview. course_run_status is derived from dates and certificate
// availability before shaping; optional fields are absent when unset.
type CourseRunOverview struct {
	CourseRunID            string                         `json:"course_run_id"`
	DisplayName            string                         `json:"display_name"`
	ResumeCourseRunURL     *string                        `json:"resume_course_run_url,omitempty"`
	CourseRunURL           string                         `json:"course_run_url"`
	StartDate              time.Time                      `json:"start_date"`
	EndDate                time.Time                      `json:"end_date"`
	CourseRunStatus        models.CourseRunProgressStatus `json:"course_run_status"`
	EmailsEnabled          *bool                          `json:"emails_enabled,omitempty"`
	DueDates               []DueDateView                  `json:"due_dates"`
	MicromastersTitle      *string                        `json:"micromasters_title,omitempty"`
	CertificateDownloadURL *string                        `json:"certificate_download_url,omitempty"`
}

// CourseRunOverviewList is the top-level overview envelope.
type CourseRunOverviewList struct {
	CourseRuns []CourseRunOverview `json:"course_runs"`
}

// NewCourseRunOverview shapes a course run record with its derived progress
// status.
func NewCourseRunOverview(run models.CourseRun, status models.CourseRunProgressStatus) CourseRunOverview {
	dueDates := make([]DueDateView, 0, len(run.DueDates))
	for _, due := range run.DueDates {
		dueDates = append(dueDates, DueDateView{Name: due.Name, URL: due.URL, Date: due.Date})
	}
	return CourseRunOverview{
		CourseRunID:            run.CourseRunID,
		DisplayName:            run.DisplayName,
		ResumeCourseRunURL:     run.ResumeCourseRunURL,
		CourseRunURL:           run.CourseRunURL,
		StartDate:              run.StartDate,
		EndDate:                run.EndDate,
		CourseRunStatus:        status,
		EmailsEnabled:          run.EmailsEnabled,
		DueDates:               dueDates,
		MicromastersTitle:      run.MicromastersTitle,
		CertificateDownloadURL: run.CertificateDownloadURL,
	}
}
