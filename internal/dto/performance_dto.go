package dto

import "time"

// TopicTallyDTO mirrors the per-topic correct/total accumulator.
type TopicTallyDTO struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// PerformanceStatsDTO is the aggregator output over one lookback window.
// Services return it only when at least one attempt exists in the window; the
// no-data case surfaces as apperr.ErrInsufficientData so callers can never
// confuse "0% accuracy" with "no attempts".
type PerformanceStatsDTO struct {
	UserID          string                   `json:"user_id"`
	PeriodDays      int                      `json:"period_days"`
	TotalQuizzes    int                      `json:"total_quizzes"`
	TotalQuestions  int                      `json:"total_questions"`
	TotalCorrect    int                      `json:"total_correct"`
	OverallAccuracy float64                  `json:"overall_accuracy"`
	Topics          map[string]TopicTallyDTO `json:"topics"`
	TopicAccuracies map[string]float64       `json:"topic_accuracies"`
	WeakTopics      []string                 `json:"weak_topics"`
	StrongTopics    []string                 `json:"strong_topics"`
	CurrentStreak   int                      `json:"current_streak"`
	AnalyzedAt      time.Time                `json:"analyzed_at"`
}

// LevelAssessmentDTO is the mastery classifier output.
type LevelAssessmentDTO struct {
	Status     string  `json:"status"` // new, struggling, learning, proficient, mastering
	Level      int     `json:"level"`
	Difficulty string  `json:"difficulty"`
	Accuracy   float64 `json:"accuracy"`
	Message    string  `json:"message"`
}

// TopicDecisionDTO is the topic selector output.
type TopicDecisionDTO struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Reason     string `json:"reason"`
	IsNewTopic bool   `json:"is_new_topic"`
	IsWeakArea bool   `json:"is_weak_area"`
}

// QuizPlanDTO is a full personalized quiz plan: selector decision plus the
// level assessment that informed it.
type QuizPlanDTO struct {
	Domain       string             `json:"domain"`
	Topic        string             `json:"topic"`
	Difficulty   string             `json:"difficulty"`
	NumQuestions int                `json:"num_questions"`
	Reason       string             `json:"reason"`
	UserLevel    LevelAssessmentDTO `json:"user_level"`
	IsNewTopic   bool               `json:"is_new_topic"`
	IsWeakArea   bool               `json:"is_weak_area"`
}

type CurriculumTopicDTO struct {
	Topic string `json:"topic"`
	Level int    `json:"level"`
}

type WeakTopicDTO struct {
	Topic          string  `json:"topic"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Accuracy       float64 `json:"accuracy"`
	Status         string  `json:"status"`
}

type DailyAccuracyDTO struct {
	Date     string  `json:"date"`
	Accuracy float64 `json:"accuracy"`
}

type TopicPerformanceItemDTO struct {
	Topic    string  `json:"topic"`
	Accuracy float64 `json:"accuracy"`
}

type RecentQuizDTO struct {
	Topic       string    `json:"topic"`
	Difficulty  string    `json:"difficulty"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percentage  float64   `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

type DashboardDTO struct {
	UserID            string                    `json:"user_id"`
	TotalQuizzes      int                       `json:"total_quizzes"`
	CurrentStreak     int                       `json:"current_streak"`
	OverallAccuracy   float64                   `json:"overall_accuracy"`
	QuizzesThisWeek   int                       `json:"quizzes_this_week"`
	WeeklyAccuracy    []DailyAccuracyDTO        `json:"weekly_accuracy"`
	TopicPerformance  []TopicPerformanceItemDTO `json:"topic_performance"`
	RecentQuizzes     []RecentQuizDTO           `json:"recent_quizzes"`
	RecommendedTopics []string                  `json:"recommended_topics"`
}
