package dto

import "time"

// HiddenAnswer replaces the correct option key in any question representation
// sent to the quiz taker.
const HiddenAnswer = "hidden"

// QuizQuestionDTO is the user-facing projection of a stored question. The
// correct answer is always the HiddenAnswer sentinel.
type QuizQuestionDTO struct {
	QID           string            `json:"q_id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Topic         string            `json:"topic"`
	SubTopic      string            `json:"sub_topic,omitempty"`
	Difficulty    string            `json:"difficulty"`
}

// AutoQuizRequest asks the learning agent to pick topic and difficulty.
type AutoQuizRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Domain       string `json:"domain" binding:"required"`
	NumQuestions int    `json:"num_questions"`
}

// GenerateQuizRequest is the manual-mode request with explicit topic choice.
type GenerateQuizRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	NumQuestions int    `json:"num_questions"`
}

type QuizResponseDTO struct {
	QuizID           string            `json:"quiz_id"`
	Subject          string            `json:"subject"`
	Topic            string            `json:"topic"`
	Difficulty       string            `json:"difficulty"`
	Questions        []QuizQuestionDTO `json:"questions"`
	TotalQuestions   int               `json:"total_questions"`
	TimeLimitMinutes int               `json:"time_limit_minutes"`
	Reason           string            `json:"reason,omitempty"`
	IsNewTopic       bool              `json:"is_new_topic,omitempty"`
	IsWeakArea       bool              `json:"is_weak_area,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// SingleAnswerDTO is one submitted answer keyed by per-quiz question id.
type SingleAnswerDTO struct {
	QID              string `json:"q_id" binding:"required"`
	SelectedOption   string `json:"selected_option" binding:"required"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

type AnswerSubmissionDTO struct {
	QuizID           string            `json:"quiz_id" binding:"required"`
	UserID           string            `json:"user_id" binding:"required"`
	Answers          []SingleAnswerDTO `json:"answers" binding:"required,dive"`
	TotalTimeSeconds int               `json:"total_time_seconds"`
}

type QuestionResultDTO struct {
	QID            string `json:"q_id"`
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	Topic          string `json:"topic"`
	Explanation    string `json:"explanation,omitempty"`
}

type QuizResultDTO struct {
	QuizID           string                   `json:"quiz_id"`
	UserID           string                   `json:"user_id"`
	Score            int                      `json:"score"`
	Total            int                      `json:"total"`
	Percentage       float64                  `json:"percentage"`
	TimeTakenSeconds int                      `json:"time_taken_seconds"`
	Results          []QuestionResultDTO      `json:"results"`
	TopicBreakdown   map[string]TopicTallyDTO `json:"topic_breakdown"`
	CompletedAt      time.Time                `json:"completed_at"`
}

type QuizHistoryItemDTO struct {
	QuizID      string     `json:"quiz_id"`
	Subject     string     `json:"subject"`
	Topic       string     `json:"topic"`
	Difficulty  string     `json:"difficulty"`
	CreatedAt   time.Time  `json:"created_at"`
	Score       int        `json:"score"`
	Total       int        `json:"total"`
	Percentage  float64    `json:"percentage"`
	TimeTaken   int        `json:"time_taken"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type QuizHistoryDTO struct {
	UserID       string               `json:"user_id"`
	PeriodDays   int                  `json:"period_days"`
	TotalQuizzes int                  `json:"total_quizzes"`
	Quizzes      []QuizHistoryItemDTO `json:"quizzes"`
}

type QuizAvailabilityDTO struct {
	CanTakeQuiz       bool       `json:"can_take_quiz"`
	HasTakenToday     bool       `json:"has_taken_today"`
	NextQuizAvailable *time.Time `json:"next_quiz_available,omitempty"`
	Message           string     `json:"message"`
}
