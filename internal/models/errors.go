package models

import "errors"

// Sentinel errors returned by data-access collaborators.
var (
	ErrProgramNotFound = errors.New("program not found")
	ErrCourseNotFound  = errors.New("course run not found in program")
)
