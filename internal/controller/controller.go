package controller

import (
	"errors"
	"net/http"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/service"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	generationSvc  service.QuizGenerationService
	submissionSvc  service.QuizSubmissionService
	performanceSvc service.PerformanceService
	agentSvc       service.LearningAgentService
	reportSvc      service.ReportService
}

func NewController(
	generationSvc service.QuizGenerationService,
	submissionSvc service.QuizSubmissionService,
	performanceSvc service.PerformanceService,
	agentSvc service.LearningAgentService,
	reportSvc service.ReportService,
) *Controller {
	return &Controller{
		generationSvc:  generationSvc,
		submissionSvc:  submissionSvc,
		performanceSvc: performanceSvc,
		agentSvc:       agentSvc,
		reportSvc:      reportSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		quiz := apiV1.Group("/quiz")
		quiz.POST("/auto", ctrl.GenerateAutoQuizHandler)
		quiz.POST("/generate", ctrl.GenerateQuizHandler)
		quiz.POST("/submit", ctrl.SubmitAnswersHandler)
		quiz.GET("/:quiz_id/result", ctrl.QuizResultHandler)
		quiz.GET("/availability/:user_id", ctrl.AvailabilityHandler)
		quiz.GET("/history/:user_id", ctrl.QuizHistoryHandler)

		performance := apiV1.Group("/performance")
		performance.GET("/:user_id", ctrl.PerformanceHandler)
		performance.GET("/:user_id/dashboard", ctrl.DashboardHandler)
		performance.GET("/:user_id/weak-topics", ctrl.WeakTopicsHandler)
		performance.GET("/:user_id/level", ctrl.UserLevelHandler)

		learning := apiV1.Group("/learning")
		learning.GET("/domains", ctrl.DomainsHandler)
		learning.GET("/curriculum/:domain", ctrl.CurriculumHandler)

		reports := apiV1.Group("/reports")
		reports.POST("/:user_id/weekly", ctrl.GenerateWeeklyReportHandler)
		reports.GET("/:user_id", ctrl.ReportHistoryHandler)
	}
}

// respondError translates the service error taxonomy to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrInsufficientData):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, dto.ErrorResponse{Message: err.Error()})
}
