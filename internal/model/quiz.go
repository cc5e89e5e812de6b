package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Difficulty values accepted across the quiz pipeline.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties lists the valid values in ascending order. The assembler
// backfills in this order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}

// QuizQuestion is one question inside a generated quiz. It is persisted as
// part of the quiz's JSON questions column; the stored copy keeps the correct
// answer, the user-facing projection hides it.
type QuizQuestion struct {
	QID           string            `json:"q_id"`     // q1..qN, unique within one quiz only
	BankRef       string            `json:"bank_ref"` // stable question bank id, used for exclusion
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"` // keys A-D
	CorrectAnswer string            `json:"correct_answer"`
	Topic         string            `json:"topic"`
	SubTopic      string            `json:"sub_topic,omitempty"`
	Difficulty    string            `json:"difficulty"`
	Explanation   string            `json:"explanation,omitempty"`
}

// Quiz is one generated quiz instance. IsCompleted flips false→true exactly
// once, when an attempt is recorded against it.
type Quiz struct {
	ID          string         `gorm:"primarykey" json:"id"`
	UserID      string         `json:"user_id" gorm:"not null;index"`
	Subject     string         `json:"subject" gorm:"not null"`
	Topic       string         `json:"topic" gorm:"not null;index"`
	Difficulty  string         `json:"difficulty" gorm:"not null"`
	Questions   datatypes.JSON `json:"questions" gorm:"not null"`
	IsCompleted bool           `json:"is_completed" gorm:"not null;default:false"`
	Score       *int           `json:"score,omitempty"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// DecodeQuestions unmarshals the JSON questions column.
func (q *Quiz) DecodeQuestions() ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// EncodeQuestions marshals questions for storage in the JSON column.
func EncodeQuestions(questions []QuizQuestion) (datatypes.JSON, error) {
	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
