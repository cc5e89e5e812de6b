package repository

import (
	"context"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *model.Quiz) error
	FindByID(ctx context.Context, id string) (*model.Quiz, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Quiz, error)
	// FindRecentByUserAndTopic returns the latest quizzes a user took on a
	// topic, newest first. Used to collect previously-seen question refs.
	FindRecentByUserAndTopic(ctx context.Context, userID, topic string, limit int) ([]model.Quiz, error)
	FindCompletedSince(ctx context.Context, userID string, since time.Time) ([]model.Quiz, error)
	LastCompletedAt(ctx context.Context, userID string) (*time.Time, error)
	FindHistorySince(ctx context.Context, userID string, since time.Time, limit int) ([]model.Quiz, error)
	CountCompleted(ctx context.Context, userID string) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepository) FindByID(ctx context.Context, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Quiz, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindRecentByUserAndTopic(ctx context.Context, userID, topic string, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND topic = ?", userID, topic).
		Order("created_at DESC").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindCompletedSince(ctx context.Context, userID string, since time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ? AND created_at >= ?", userID, true, since).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) LastCompletedAt(ctx context.Context, userID string) (*time.Time, error) {
	var quiz model.Quiz
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("created_at DESC").
		First(&quiz).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &quiz.CreatedAt, nil
}

func (r *quizRepository) FindHistorySince(ctx context.Context, userID string, since time.Time, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) CountCompleted(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Quiz{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
