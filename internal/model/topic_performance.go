package model

import "time"

// TopicPerformance is the mutable per-(user, topic) aggregate, upserted on
// every attempt. Accuracy is always recomputed from the cumulative counts in
// the same statement that increments them, so it cannot drift.
type TopicPerformance struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	Topic          string    `json:"topic" gorm:"not null;uniqueIndex:idx_user_topic"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	Accuracy       float64   `json:"accuracy" gorm:"not null"` // percentage, 0-100
	LastUpdated    time.Time `json:"last_updated" gorm:"not null"`
}
