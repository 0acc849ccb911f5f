package models

import "time"

// CourseRunProgressStatus classifies where a learner stands in a course run.
type CourseRunProgressStatus string

// Possible course run progress statuses.
const (
	CourseRunStatusInProgress CourseRunProgressStatus = "in_progress"
	CourseRunStatusUpcoming   CourseRunProgressStatus = "upcoming"
	CourseRunStatusCompleted  CourseRunProgressStatus = "completed"
)

// DueDate is a single upcoming assignment deadline within a course run.
type DueDate struct {
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Date time.Time `json:"date"`
}

// CourseRun aggregates everything needed to render a learner's course run
// overview. Optional fields are nil when the upstream record has no value,
// e.g. no certificate has been issued or the learner never set an email
// preference.
type CourseRun struct {
	CourseRunID            string    `json:"course_run_id"`
	DisplayName            string    `json:"display_name"`
	CourseRunURL           string    `json:"course_run_url"`
	StartDate              time.Time `json:"start_date"`
	EndDate                time.Time `json:"end_date"`
	ResumeCourseRunURL     *string   `json:"resume_course_run_url,omitempty"`
	EmailsEnabled          *bool     `json:"emails_enabled,omitempty"`
	MicromastersTitle      *string   `json:"micromasters_title,omitempty"`
	CertificateDownloadURL *string   `json:"certificate_download_url,omitempty"`
	DueDates               []DueDate `json:"due_dates"`
}
