package repository

import (
	"context"

	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *model.WeeklyReport) error
	FindByUser(ctx context.Context, userID string, limit int) ([]model.WeeklyReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.WeeklyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByUser(ctx context.Context, userID string, limit int) ([]model.WeeklyReport, error) {
	var reports []model.WeeklyReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}
