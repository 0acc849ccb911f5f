package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/program-enrollments-api/internal/service"
	appErrors "github.com/noah-isme/program-enrollments-api/pkg/errors"
	"github.com/noah-isme/program-enrollments-api/pkg/response"
)

// OverviewHandler exposes the learner course run overview endpoint.
type OverviewHandler struct {
	overviews *service.OverviewService
}

// NewOverviewHandler constructs OverviewHandler.
func NewOverviewHandler(overviews *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviews: overviews}
}

// Get godoc
// @Summary Course run overview for one learner in a program
// @Tags Overview
// @Produce json
// @Param program_uuid path string true "Program UUID"
// @Param student_key query string true "Learner external user key"
// @Success 200 {object} response.Envelope
// @Router /programs/{program_uuid}/overview [get]
func (h *OverviewHandler) Get(c *gin.Context) {
	programUUID, ok := programUUIDParam(c)
	if !ok {
		return
	}
	studentKey := c.Query("student_key")
	if studentKey == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student_key is required"))
		return
	}
	list, cacheHit, err := h.overviews.CourseRunOverviews(c.Request.Context(), programUUID, studentKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, map[string]interface{}{"cache_hit": cacheHit})
}
