package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TopicTally accumulates correct/total counts for one topic.
type TopicTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// SubmittedAnswer is one answer inside an attempt's JSON answers column.
type SubmittedAnswer struct {
	QID            string `json:"q_id"`
	SelectedOption string `json:"selected_option"`
	TimeTaken      int    `json:"time_taken_seconds"`
}

// QuizAttempt is the immutable record of one graded submission. Append-only:
// never updated, never deleted. The unique index on QuizID is the store-level
// guard against double submission; the second insert for the same quiz fails.
type QuizAttempt struct {
	ID             string         `gorm:"primarykey" json:"id"`
	QuizID         string         `json:"quiz_id" gorm:"not null;uniqueIndex"`
	UserID         string         `json:"user_id" gorm:"not null;index:idx_attempt_user_completed"`
	Answers        datatypes.JSON `json:"answers"`
	Score          int            `json:"score" gorm:"not null"`
	Total          int            `json:"total" gorm:"not null"`
	TimeTaken      int            `json:"time_taken" gorm:"not null;default:0"` // seconds
	TopicBreakdown datatypes.JSON `json:"topic_breakdown"`
	CompletedAt    time.Time      `json:"completed_at" gorm:"not null;index:idx_attempt_user_completed"`
	CreatedAt      time.Time      `json:"created_at"`
}

// DecodeTopicBreakdown unmarshals the per-topic correct/total map.
func (a *QuizAttempt) DecodeTopicBreakdown() (map[string]TopicTally, error) {
	breakdown := make(map[string]TopicTally)
	if len(a.TopicBreakdown) == 0 {
		return breakdown, nil
	}
	if err := json.Unmarshal(a.TopicBreakdown, &breakdown); err != nil {
		return nil, err
	}
	return breakdown, nil
}

func EncodeTopicBreakdown(breakdown map[string]TopicTally) (datatypes.JSON, error) {
	raw, err := json.Marshal(breakdown)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeAnswers unmarshals the submitted answers column.
func (a *QuizAttempt) DecodeAnswers() ([]SubmittedAnswer, error) {
	var answers []SubmittedAnswer
	if len(a.Answers) == 0 {
		return answers, nil
	}
	if err := json.Unmarshal(a.Answers, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func EncodeAnswers(answers []SubmittedAnswer) (datatypes.JSON, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
