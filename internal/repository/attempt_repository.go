package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	// RecordWithCompletion writes the immutable attempt record and flips the
	// quiz's completion flag in one transaction. Exactly one submission per
	// quiz can win: the completion update is conditional on the flag still
	// being false, and the attempts table carries a unique index on quiz_id.
	// The loser observes apperr.ErrConflict.
	RecordWithCompletion(ctx context.Context, attempt *model.QuizAttempt) error
	FindByUserSince(ctx context.Context, userID string, since time.Time) ([]model.QuizAttempt, error)
	FindByQuizID(ctx context.Context, quizID string) (*model.QuizAttempt, error)
	FindByQuizIDs(ctx context.Context, quizIDs []string) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) RecordWithCompletion(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Quiz{}).
			Where("id = ? AND is_completed = ?", attempt.QuizID, false).
			Updates(map[string]interface{}{"is_completed": true, "score": attempt.Score})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Conflictf("quiz %s already completed", attempt.QuizID)
		}
		if err := tx.Create(attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflictf("attempt already recorded for quiz %s", attempt.QuizID)
			}
			return err
		}
		return nil
	})
}

func (r *attemptRepository) FindByUserSince(ctx context.Context, userID string, since time.Time) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByQuizID(ctx context.Context, quizID string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.WithContext(ctx).First(&attempt, "quiz_id = ?", quizID).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByQuizIDs(ctx context.Context, quizIDs []string) ([]model.QuizAttempt, error) {
	if len(quizIDs) == 0 {
		return nil, nil
	}
	var attempts []model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Find(&attempts).Error
	return attempts, err
}
