package repository

import (
	"context"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicPerformanceRepository interface {
	// IncrementCounts upserts the (user, topic) aggregate with atomic SQL
	// increments. Accuracy is recomputed from the cumulative counts inside the
	// same statement, so concurrent attempts on the same topic cannot lose
	// updates or leave accuracy drifting from the counts.
	IncrementCounts(ctx context.Context, userID, topic string, deltaCorrect, deltaTotal int) error
	FindByUser(ctx context.Context, userID string) ([]model.TopicPerformance, error)
	FindWeakByUser(ctx context.Context, userID string, threshold float64) ([]model.TopicPerformance, error)
	FindWorstByUser(ctx context.Context, userID string, limit int) ([]model.TopicPerformance, error)
}

type topicPerformanceRepository struct {
	db *gorm.DB
}

func NewTopicPerformanceRepository(db *gorm.DB) TopicPerformanceRepository {
	return &topicPerformanceRepository{db: db}
}

func (r *topicPerformanceRepository) IncrementCounts(ctx context.Context, userID, topic string, deltaCorrect, deltaTotal int) error {
	now := time.Now().UTC()
	accuracy := 0.0
	if deltaTotal > 0 {
		accuracy = float64(deltaCorrect) / float64(deltaTotal) * 100
	}
	record := model.TopicPerformance{
		UserID:         userID,
		Topic:          topic,
		TotalQuestions: deltaTotal,
		CorrectAnswers: deltaCorrect,
		Accuracy:       accuracy,
		LastUpdated:    now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_questions": gorm.Expr("topic_performances.total_questions + ?", deltaTotal),
			"correct_answers": gorm.Expr("topic_performances.correct_answers + ?", deltaCorrect),
			"accuracy": gorm.Expr(
				"CASE WHEN topic_performances.total_questions + ? > 0 THEN (topic_performances.correct_answers + ?) * 100.0 / (topic_performances.total_questions + ?) ELSE 0 END",
				deltaTotal, deltaCorrect, deltaTotal,
			),
			"last_updated": now,
		}),
	}).Create(&record).Error
}

func (r *topicPerformanceRepository) FindByUser(ctx context.Context, userID string) ([]model.TopicPerformance, error) {
	var records []model.TopicPerformance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("accuracy ASC").
		Find(&records).Error
	return records, err
}

func (r *topicPerformanceRepository) FindWeakByUser(ctx context.Context, userID string, threshold float64) ([]model.TopicPerformance, error) {
	var records []model.TopicPerformance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND accuracy < ?", userID, threshold).
		Order("accuracy ASC").
		Find(&records).Error
	return records, err
}

func (r *topicPerformanceRepository) FindWorstByUser(ctx context.Context, userID string, limit int) ([]model.TopicPerformance, error) {
	var records []model.TopicPerformance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("accuracy ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
