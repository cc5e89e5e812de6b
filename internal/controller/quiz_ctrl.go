package controller

import (
	"net/http"
	"strconv"

	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GenerateAutoQuizHandler godoc
// @Summary Generate an adaptive quiz
// @Description Let the learning agent pick the next topic and difficulty for the user, then assemble a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AutoQuizRequest true "User and domain"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Daily quiz limit reached"
// @Router /quiz/auto [post]
func (ctrl *Controller) GenerateAutoQuizHandler(c *gin.Context) {
	var req dto.AutoQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AutoQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.GenerateAutoQuiz(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to generate adaptive quiz")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GenerateQuizHandler godoc
// @Summary Generate a quiz with explicit topic and difficulty
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz parameters"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown topic"
// @Failure 409 {object} dto.ErrorResponse "Daily quiz limit reached"
// @Router /quiz/generate [post]
func (ctrl *Controller) GenerateQuizHandler(c *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.generationSvc.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Str("topic", req.Topic).Msg("Failed to generate quiz")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitAnswersHandler godoc
// @Summary Submit quiz answers
// @Description Grade a submission, record the attempt and update performance aggregates. A quiz accepts exactly one submission.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AnswerSubmissionDTO true "Answers"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Quiz belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz already completed"
// @Router /quiz/submit [post]
func (ctrl *Controller) SubmitAnswersHandler(c *gin.Context) {
	var req dto.AnswerSubmissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AnswerSubmissionDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	result, err := ctrl.submissionSvc.SubmitAnswers(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", req.QuizID).Str("user_id", req.UserID).Msg("Failed to submit answers")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// QuizResultHandler godoc
// @Summary Get the result of a completed quiz
// @Tags quiz
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 403 {object} dto.ErrorResponse "Quiz belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Quiz or result not found"
// @Router /quiz/{quiz_id}/result [get]
func (ctrl *Controller) QuizResultHandler(c *gin.Context) {
	quizID := c.Param("quiz_id")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return
	}

	result, err := ctrl.submissionSvc.Result(c.Request.Context(), quizID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailabilityHandler godoc
// @Summary Check whether the user can take a quiz now
// @Tags quiz
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.QuizAvailabilityDTO
// @Router /quiz/availability/{user_id} [get]
func (ctrl *Controller) AvailabilityHandler(c *gin.Context) {
	availability, err := ctrl.generationSvc.Availability(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// QuizHistoryHandler godoc
// @Summary Get the user's quiz history
// @Tags quiz
// @Produce json
// @Param user_id path string true "User ID"
// @Param days query int false "Lookback window in days"
// @Param limit query int false "Maximum number of quizzes"
// @Success 200 {object} dto.QuizHistoryDTO
// @Router /quiz/history/{user_id} [get]
func (ctrl *Controller) QuizHistoryHandler(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	history, err := ctrl.generationSvc.History(c.Request.Context(), c.Param("user_id"), days, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// PerformanceHandler godoc
// @Summary Get aggregate performance stats for a user
// @Tags performance
// @Produce json
// @Param user_id path string true "User ID"
// @Param days query int false "Lookback window in days"
// @Success 200 {object} dto.PerformanceStatsDTO
// @Failure 422 {object} dto.ErrorResponse "No attempts in the window"
// @Router /performance/{user_id} [get]
func (ctrl *Controller) PerformanceHandler(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	stats, err := ctrl.performanceSvc.AnalyzePerformance(c.Request.Context(), c.Param("user_id"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DashboardHandler godoc
// @Summary Get the user's dashboard
// @Tags performance
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.DashboardDTO
// @Router /performance/{user_id}/dashboard [get]
func (ctrl *Controller) DashboardHandler(c *gin.Context) {
	dashboard, err := ctrl.performanceSvc.Dashboard(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// WeakTopicsHandler godoc
// @Summary Get topics the user struggles with
// @Tags performance
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.WeakTopicDTO
// @Router /performance/{user_id}/weak-topics [get]
func (ctrl *Controller) WeakTopicsHandler(c *gin.Context) {
	topics, err := ctrl.performanceSvc.WeakTopics(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// UserLevelHandler godoc
// @Summary Get the user's current mastery assessment
// @Tags performance
// @Produce json
// @Param user_id path string true "User ID"
// @Param days query int false "Lookback window in days"
// @Success 200 {object} dto.LevelAssessmentDTO
// @Router /performance/{user_id}/level [get]
func (ctrl *Controller) UserLevelHandler(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	stats, err := ctrl.performanceSvc.AnalyzePerformance(c.Request.Context(), c.Param("user_id"), days)
	if err != nil {
		// No attempts yet still yields a valid assessment: the user is new.
		stats = nil
	}
	c.JSON(http.StatusOK, ctrl.agentSvc.AnalyzeUserLevel(stats))
}

// DomainsHandler godoc
// @Summary List the available learning domains
// @Tags learning
// @Produce json
// @Success 200 {array} string
// @Router /learning/domains [get]
func (ctrl *Controller) DomainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.agentSvc.Domains())
}

// CurriculumHandler godoc
// @Summary Get the ordered curriculum of a domain
// @Tags learning
// @Produce json
// @Param domain path string true "Domain name"
// @Success 200 {array} dto.CurriculumTopicDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown domain"
// @Router /learning/curriculum/{domain} [get]
func (ctrl *Controller) CurriculumHandler(c *gin.Context) {
	domain := c.Param("domain")
	curriculum, ok := ctrl.agentSvc.Curriculum(domain)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "unknown domain: " + domain})
		return
	}
	c.JSON(http.StatusOK, curriculum)
}
