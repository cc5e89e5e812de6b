package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	// GetCounters returns the user's aggregate counters. Unknown users get a
	// zero-valued row back, not an error: a user may submit a first quiz
	// before any counter row exists.
	GetCounters(ctx context.Context, userID string) (*model.User, error)
	SetCounters(ctx context.Context, userID string, totalQuizzes, currentStreak int, lastQuizAt time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetCounters(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.User{ID: userID}, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetCounters(ctx context.Context, userID string, totalQuizzes, currentStreak int, lastQuizAt time.Time) error {
	user := model.User{
		ID:            userID,
		TotalQuizzes:  totalQuizzes,
		CurrentStreak: currentStreak,
		LastQuizAt:    &lastQuizAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_quizzes", "current_streak", "last_quiz_at", "updated_at",
		}),
	}).Create(&user).Error
}
