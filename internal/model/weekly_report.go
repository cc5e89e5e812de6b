package model

import (
	"time"

	"gorm.io/datatypes"
)

// WeeklyReport is a persisted performance report over one week.
type WeeklyReport struct {
	ID              string         `gorm:"primarykey" json:"id"`
	UserID          string         `json:"user_id" gorm:"not null;index"`
	WeekStart       time.Time      `json:"week_start" gorm:"not null"`
	WeekEnd         time.Time      `json:"week_end" gorm:"not null"`
	Summary         string         `json:"summary"`
	OverallAccuracy float64        `json:"overall_accuracy"`
	StrongTopics    datatypes.JSON `json:"strong_topics"`
	WeakTopics      datatypes.JSON `json:"weak_topics"`
	FocusTopics     datatypes.JSON `json:"focus_topics"`
	FullReport      string         `json:"full_report" gorm:"type:text"`
	GeneratedAt     time.Time      `json:"generated_at" gorm:"not null;index"`
}
