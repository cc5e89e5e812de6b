package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GenerateWeeklyReportHandler godoc
// @Summary Generate a weekly performance report
// @Description Aggregate the last seven days of attempts into a narrative report and persist it
// @Tags reports
// @Produce json
// @Param user_id path string true "User ID"
// @Success 201 {object} dto.WeeklyReportDTO
// @Failure 422 {object} dto.ErrorResponse "No attempts in the last week"
// @Router /reports/{user_id}/weekly [post]
func (ctrl *Controller) GenerateWeeklyReportHandler(c *gin.Context) {
	userID := c.Param("user_id")

	report, err := ctrl.reportSvc.GenerateWeeklyReport(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to generate weekly report")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ReportHistoryHandler godoc
// @Summary List the user's past weekly reports
// @Tags reports
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Maximum number of reports"
// @Success 200 {array} dto.ReportSummaryDTO
// @Router /reports/{user_id} [get]
func (ctrl *Controller) ReportHistoryHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	reports, err := ctrl.reportSvc.ReportHistory(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
