package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/program-enrollments-api/internal/service"
	"github.com/noah-isme/program-enrollments-api/pkg/response"
)

// GradeHandler exposes grade read endpoints.
type GradeHandler struct {
	grades *service.GradeService
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades *service.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// ListCourse godoc
// @Summary List learner grades for a program course run
// @Tags Grades
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param course_id path string true "Course run key"
// @Success 200 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Router /programs/{program_uuid}/courses/{course_id}/grades [get]
func (h *GradeHandler) ListCourse(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	batch, err := h.grades.ListCourseGrades(c.Request.Context(), programUUID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, batch.StatusCode(http.StatusOK), batch.Views)
}
