package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Program Enrollments API",
        "description": "Program and course enrollment management for partner registrars",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Program Enrollments", "description": "Learner enrollment in a program curriculum"},
        {"name": "Course Enrollments", "description": "Learner enrollment in program course runs"},
        {"name": "Grades", "description": "Learner grades per course run"},
        {"name": "Overview", "description": "Learner-facing course run overview"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/programs/{program_uuid}/enrollments": {
            "get": {
                "tags": ["Program Enrollments"],
                "summary": "List program enrollments",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Program Enrollments"],
                "summary": "Create program enrollments",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/ProgramEnrollmentCreateRequest"}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "207": {"description": "Partial success", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No item written", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Program Enrollments"],
                "summary": "Update program enrollment statuses",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/ProgramEnrollmentUpdateRequest"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "207": {"description": "Partial success", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No item written", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/programs/{program_uuid}/courses/{course_id}/enrollments": {
            "get": {
                "tags": ["Course Enrollments"],
                "summary": "List course enrollments",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "course_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Course Enrollments"],
                "summary": "Enroll learners into a course run",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "course_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/ProgramCourseEnrollmentRequest"}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "207": {"description": "Partial success", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No item written", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Course Enrollments"],
                "summary": "Update course enrollment statuses",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "course_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/ProgramCourseEnrollmentRequest"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "207": {"description": "Partial success", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No item written", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/programs/{program_uuid}/courses/{course_id}/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "List learner grades for a course run",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "course_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "207": {"description": "Partial success", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "All grades errored", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/programs/{program_uuid}/overview": {
            "get": {
                "tags": ["Overview"],
                "summary": "Course run overview for one learner",
                "parameters": [
                    {"name": "program_uuid", "in": "path", "required": true, "type": "string"},
                    {"name": "student_key", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ProgramEnrollmentView": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "status": {"type": "string"},
                "account_exists": {"type": "boolean"},
                "curriculum_uuid": {"type": "string"}
            }
        },
        "ProgramCourseGradeView": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "passed": {"type": "boolean"},
                "percent": {"type": "number"},
                "letter_grade": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "DueDateView": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "CourseRunOverview": {
            "type": "object",
            "properties": {
                "course_run_id": {"type": "string"},
                "display_name": {"type": "string"},
                "resume_course_run_url": {"type": "string"},
                "course_run_url": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "course_run_status": {"type": "string", "enum": ["in_progress", "upcoming", "completed"]},
                "emails_enabled": {"type": "boolean"},
                "due_dates": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DueDateView"}
                },
                "micromasters_title": {"type": "string"},
                "certificate_download_url": {"type": "string"}
            }
        },
        "CourseRunOverviewList": {
            "type": "object",
            "properties": {
                "course_runs": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseRunOverview"}
                }
            }
        },
        "ProgramEnrollmentCreateRequest": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "status": {"type": "string"},
                "curriculum_uuid": {"type": "string"}
            },
            "required": ["student_key", "status", "curriculum_uuid"]
        },
        "ProgramEnrollmentUpdateRequest": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["student_key", "status"]
        },
        "ProgramCourseEnrollmentRequest": {
            "type": "object",
            "properties": {
                "student_key": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["student_key", "status"]
        },
        "FieldError": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
