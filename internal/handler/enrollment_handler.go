package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noah-isme/program-enrollments-api/internal/dto"
	"github.com/noah-isme/program-enrollments-api/internal/service"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
	"github.com/noah-isme/program-enrollments-api/pkg/response"
)

// EnrollmentHandler exposes program and course enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List program enrollments
// @Tags Program Enrollments
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Success 200 {object} response.Envelope
// @Router /programs/{program_uuid}/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	views, err := h.enrollments.ListProgramEnrollments(c.Request.Context(), programUUID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views)
}

// Create godoc
// @Summary Create program enrollments
// @Tags Program Enrollments
// @Accept json
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param payload body []dto.ProgramEnrollmentCreateRequest true "Enrollment batch"
// @Success 201 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Router /programs/{program_uuid}/enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	var reqs []dto.ProgramEnrollmentCreateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.enrollments.CreateProgramEnrollments(c.Request.Context(), programUUID, reqs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, batch.StatusCode(http.StatusCreated), batch.Results)
}

// Update godoc
// @Summary Update program enrollment statuses
// @Tags Program Enrollments
// @Accept json
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param payload body []dto.ProgramEnrollmentUpdateRequest true "Enrollment batch"
// @Success 200 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Router /programs/{program_uuid}/enrollments [patch]
func (h *EnrollmentHandler) Update(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	var reqs []dto.ProgramEnrollmentUpdateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.enrollments.UpdateProgramEnrollments(c.Request.Context(), programUUID, reqs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, batch.StatusCode(http.StatusOK), batch.Results)
}

// ListCourse godoc
// @Summary List course enrollments in a program
// @Tags Course Enrollments
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param course_id path string true "Course run key"
// @Success 200 {object} response.Envelope
// @Router /programs/{program_uuid}/courses/{course_id}/enrollments [get]
func (h *EnrollmentHandler) ListCourse(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	views, err := h.enrollments.ListCourseEnrollments(c.Request.Context(), programUUID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views)
}

// CreateCourse godoc
// @Summary Enroll learners into a program course run
// @Tags Course Enrollments
// @Accept json
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param course_id path string true "Course run key"
// @Param payload body []dto.ProgramCourseEnrollmentRequest true "Enrollment batch"
// @Success 201 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Router /programs/{program_uuid}/courses/{course_id}/enrollments [post]
func (h *EnrollmentHandler) CreateCourse(c *gin.Context) {
	h.writeCourse(c, true, http.StatusCreated)
}

// UpdateCourse godoc
// @Summary Update course enrollment statuses
// @Tags Course Enrollments
// @Accept json
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param course_id path string true "Course run key"
// @Param payload body []dto.ProgramCourseEnrollmentRequest true "Enrollment batch"
// @Success 200 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Router /programs/{program_uuid}/courses/{course_id}/enrollments [patch]
func (h *EnrollmentHandler) UpdateCourse(c *gin.Context) {
	h.writeCourse(c, false, http.StatusOK)
}

func (h *EnrollmentHandler) writeCourse(c *gin.Context, create bool, successStatus int) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	var reqs []dto.ProgramCourseEnrollmentRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.enrollments.WriteCourseEnrollments(c.Request.Context(), programUUID, c.Param("course_id"), reqs, create)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, batch.StatusCode(successStatus), batch.Results)
}

// programUUIDParam parses the program_uuid path parameter, answering the
// request itself when the value is not a UUID.
func programUUIDParam(c *gin.Context) (uuid.UUID, bool) {
	programUUID, err := uuid.Parse(c.Param("program_uuid"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "program_uuid must be a valid UUID"))
		return uuid.UUID{}, false
	}
	return programUUID, true
}
