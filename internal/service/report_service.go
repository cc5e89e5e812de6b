package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// reportWindowDays is the lookback of one weekly report.
const reportWindowDays = 7

// maxFocusTopics bounds the next-week focus list.
const maxFocusTopics = 3

// ReportService builds and stores weekly performance reports.
type ReportService interface {
	// GenerateWeeklyReport aggregates the last week and writes a report. The
	// narrative comes from the LLM when configured, otherwise from a plain
	// template. Returns apperr.ErrInsufficientData when the week holds no
	// attempts.
	GenerateWeeklyReport(ctx context.Context, userID string) (*dto.WeeklyReportDTO, error)
	ReportHistory(ctx context.Context, userID string, limit int) ([]dto.ReportSummaryDTO, error)
}

type reportService struct {
	reportRepo  repository.ReportRepository
	performance PerformanceService
	llm         GeminiLLMService
}

func NewReportService(reportRepo repository.ReportRepository, performance PerformanceService, llm GeminiLLMService) ReportService {
	return &reportService{reportRepo: reportRepo, performance: performance, llm: llm}
}

func (s *reportService) GenerateWeeklyReport(ctx context.Context, userID string) (*dto.WeeklyReportDTO, error) {
	stats, err := s.performance.AnalyzePerformance(ctx, userID, reportWindowDays)
	if err != nil {
		return nil, err
	}

	focusTopics := stats.WeakTopics
	if len(focusTopics) > maxFocusTopics {
		focusTopics = focusTopics[:maxFocusTopics]
	}

	narrative, err := s.llm.GenerateReportNarrative(ctx, stats, focusTopics)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Falling back to template report narrative")
		narrative = templateNarrative(stats, focusTopics)
	}

	now := time.Now().UTC()
	report := &model.WeeklyReport{
		ID:              uuid.NewString(),
		UserID:          userID,
		WeekStart:       now.AddDate(0, 0, -reportWindowDays),
		WeekEnd:         now,
		Summary:         summaryLine(stats),
		OverallAccuracy: stats.OverallAccuracy,
		FullReport:      narrative,
		GeneratedAt:     now,
	}
	if report.StrongTopics, err = encodeTopics(stats.StrongTopics); err != nil {
		return nil, fmt.Errorf("encode strong topics: %w", err)
	}
	if report.WeakTopics, err = encodeTopics(stats.WeakTopics); err != nil {
		return nil, fmt.Errorf("encode weak topics: %w", err)
	}
	if report.FocusTopics, err = encodeTopics(focusTopics); err != nil {
		return nil, fmt.Errorf("encode focus topics: %w", err)
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, apperr.Upstream("persist weekly report", err)
	}

	log.Info().Str("report_id", report.ID).Str("user_id", userID).
		Float64("accuracy", stats.OverallAccuracy).Msg("Weekly report generated")

	return &dto.WeeklyReportDTO{
		ReportID:        report.ID,
		UserID:          userID,
		WeekStart:       report.WeekStart,
		WeekEnd:         report.WeekEnd,
		Summary:         report.Summary,
		OverallAccuracy: report.OverallAccuracy,
		StrongTopics:    stats.StrongTopics,
		WeakTopics:      stats.WeakTopics,
		FocusTopics:     focusTopics,
		FullReport:      narrative,
		GeneratedAt:     report.GeneratedAt,
	}, nil
}

func (s *reportService) ReportHistory(ctx context.Context, userID string, limit int) ([]dto.ReportSummaryDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	reports, err := s.reportRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Upstream("load report history", err)
	}
	out := make([]dto.ReportSummaryDTO, 0, len(reports))
	for _, report := range reports {
		out = append(out, dto.ReportSummaryDTO{
			ReportID:        report.ID,
			WeekStart:       report.WeekStart,
			WeekEnd:         report.WeekEnd,
			Summary:         report.Summary,
			OverallAccuracy: report.OverallAccuracy,
			GeneratedAt:     report.GeneratedAt,
		})
	}
	return out, nil
}

func summaryLine(stats *dto.PerformanceStatsDTO) string {
	return fmt.Sprintf("%d quizzes, %.1f%% accuracy over the last %d days",
		stats.TotalQuizzes, stats.OverallAccuracy, stats.PeriodDays)
}

// templateNarrative is the LLM-free report body.
func templateNarrative(stats *dto.PerformanceStatsDTO, focusTopics []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("This week you completed %d quizzes and answered %d of %d questions correctly, for an overall accuracy of %.1f%%.\n\n",
		stats.TotalQuizzes, stats.TotalCorrect, stats.TotalQuestions, stats.OverallAccuracy))
	if len(stats.StrongTopics) > 0 {
		b.WriteString(fmt.Sprintf("You are doing well in: %s.\n", strings.Join(stats.StrongTopics, ", ")))
	}
	if len(stats.WeakTopics) > 0 {
		b.WriteString(fmt.Sprintf("Topics that need more practice: %s.\n", strings.Join(stats.WeakTopics, ", ")))
	}
	if len(focusTopics) > 0 {
		b.WriteString(fmt.Sprintf("\nNext week, try to focus on %s. A few targeted quizzes there will make the biggest difference.", strings.Join(focusTopics, ", ")))
	} else {
		b.WriteString("\nKeep up the steady pace next week!")
	}
	return b.String()
}

func encodeTopics(topics []string) (datatypes.JSON, error) {
	if topics == nil {
		topics = []string{}
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
