package model

import (
	"time"

	"gorm.io/gorm"
)

// User carries the aggregate counters the learning loop reads. Registration
// and credentials live outside this service; rows here are created lazily on
// first quiz activity.
type User struct {
	ID            string         `gorm:"primarykey" json:"id"`
	Name          string         `json:"name"`
	TotalQuizzes  int            `json:"total_quizzes" gorm:"not null;default:0"`
	CurrentStreak int            `json:"current_streak" gorm:"not null;default:0"`
	LastQuizAt    *time.Time     `json:"last_quiz_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
