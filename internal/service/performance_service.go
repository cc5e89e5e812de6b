package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/repository"
	"github.com/rs/zerolog/log"
)

// PerformanceService aggregates attempt history into the stats the learning
// agent and the dashboard consume.
type PerformanceService interface {
	// AnalyzePerformance folds all attempts inside the lookback window into
	// window-wide and per-topic tallies. Returns apperr.ErrInsufficientData
	// when the window holds no attempts.
	AnalyzePerformance(ctx context.Context, userID string, periodDays int) (*dto.PerformanceStatsDTO, error)
	// TopicAccuracies returns the lifetime per-topic accuracy map used by the
	// topic selector. Empty map for unknown users.
	TopicAccuracies(ctx context.Context, userID string) (map[string]float64, error)
	Dashboard(ctx context.Context, userID string) (*dto.DashboardDTO, error)
	WeakTopics(ctx context.Context, userID string) ([]dto.WeakTopicDTO, error)
}

type performanceService struct {
	cfg         *config.Config
	attemptRepo repository.AttemptRepository
	topicRepo   repository.TopicPerformanceRepository
	userRepo    repository.UserRepository
	quizRepo    repository.QuizRepository
}

func NewPerformanceService(
	cfg *config.Config,
	attemptRepo repository.AttemptRepository,
	topicRepo repository.TopicPerformanceRepository,
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
) PerformanceService {
	return &performanceService{
		cfg:         cfg,
		attemptRepo: attemptRepo,
		topicRepo:   topicRepo,
		userRepo:    userRepo,
		quizRepo:    quizRepo,
	}
}

func (s *performanceService) AnalyzePerformance(ctx context.Context, userID string, periodDays int) (*dto.PerformanceStatsDTO, error) {
	if periodDays <= 0 || periodDays > s.cfg.Learning.WindowDays {
		periodDays = s.cfg.Learning.WindowDays
	}
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -periodDays)

	attempts, err := s.attemptRepo.FindByUserSince(ctx, userID, since)
	if err != nil {
		return nil, apperr.Upstream("load attempts", err)
	}
	if len(attempts) == 0 {
		return nil, apperr.ErrInsufficientData
	}

	stats := &dto.PerformanceStatsDTO{
		UserID:          userID,
		PeriodDays:      periodDays,
		TotalQuizzes:    len(attempts),
		Topics:          make(map[string]dto.TopicTallyDTO),
		TopicAccuracies: make(map[string]float64),
		AnalyzedAt:      now,
	}

	for _, attempt := range attempts {
		stats.TotalQuestions += attempt.Total
		stats.TotalCorrect += attempt.Score

		breakdown, err := attempt.DecodeTopicBreakdown()
		if err != nil {
			log.Warn().Err(err).Str("attempt_id", attempt.ID).Msg("Skipping attempt with unreadable topic breakdown")
			continue
		}
		for topic, tally := range breakdown {
			acc := stats.Topics[topic]
			acc.Correct += tally.Correct
			acc.Total += tally.Total
			stats.Topics[topic] = acc
		}
	}

	if stats.TotalQuestions > 0 {
		stats.OverallAccuracy = round1(float64(stats.TotalCorrect) / float64(stats.TotalQuestions) * 100)
	}

	for topic, tally := range stats.Topics {
		if tally.Total == 0 {
			continue
		}
		accuracy := round1(float64(tally.Correct) / float64(tally.Total) * 100)
		stats.TopicAccuracies[topic] = accuracy
		if accuracy < s.cfg.Learning.WeakThreshold {
			stats.WeakTopics = append(stats.WeakTopics, topic)
		} else if accuracy >= s.cfg.Learning.StrongThreshold {
			stats.StrongTopics = append(stats.StrongTopics, topic)
		}
	}
	sort.Strings(stats.WeakTopics)
	sort.Strings(stats.StrongTopics)

	// Streak is intentionally coarse: 1 when any attempt fell in the window.
	stats.CurrentStreak = 1

	return stats, nil
}

func (s *performanceService) TopicAccuracies(ctx context.Context, userID string) (map[string]float64, error) {
	records, err := s.topicRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Upstream("load topic performance", err)
	}
	accuracies := make(map[string]float64, len(records))
	for _, rec := range records {
		accuracies[rec.Topic] = rec.Accuracy
	}
	return accuracies, nil
}

func (s *performanceService) Dashboard(ctx context.Context, userID string) (*dto.DashboardDTO, error) {
	user, err := s.userRepo.GetCounters(ctx, userID)
	if err != nil {
		return nil, apperr.Upstream("load user counters", err)
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	attempts, err := s.attemptRepo.FindByUserSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, apperr.Upstream("load attempts", err)
	}

	dashboard := &dto.DashboardDTO{
		UserID:          userID,
		TotalQuizzes:    user.TotalQuizzes,
		CurrentStreak:   user.CurrentStreak,
		QuizzesThisWeek: len(attempts),
	}

	// Daily accuracy buckets, oldest day first.
	type dayTally struct{ correct, total int }
	days := make(map[string]dayTally)
	var weekCorrect, weekTotal int
	for _, attempt := range attempts {
		key := attempt.CompletedAt.UTC().Format("2006-01-02")
		t := days[key]
		t.correct += attempt.Score
		t.total += attempt.Total
		days[key] = t
		weekCorrect += attempt.Score
		weekTotal += attempt.Total
	}
	if weekTotal > 0 {
		dashboard.OverallAccuracy = round1(float64(weekCorrect) / float64(weekTotal) * 100)
	}
	for offset := 6; offset >= 0; offset-- {
		key := now.AddDate(0, 0, -offset).Format("2006-01-02")
		entry := dto.DailyAccuracyDTO{Date: key}
		if t, ok := days[key]; ok && t.total > 0 {
			entry.Accuracy = round1(float64(t.correct) / float64(t.total) * 100)
		}
		dashboard.WeeklyAccuracy = append(dashboard.WeeklyAccuracy, entry)
	}

	topics, err := s.topicRepo.FindWorstByUser(ctx, userID, 10)
	if err != nil {
		return nil, apperr.Upstream("load topic performance", err)
	}
	for _, rec := range topics {
		dashboard.TopicPerformance = append(dashboard.TopicPerformance, dto.TopicPerformanceItemDTO{
			Topic:    rec.Topic,
			Accuracy: round1(rec.Accuracy),
		})
		if rec.Accuracy < s.cfg.Learning.WeakThreshold && len(dashboard.RecommendedTopics) < 3 {
			dashboard.RecommendedTopics = append(dashboard.RecommendedTopics, rec.Topic)
		}
	}

	recent := attempts
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) > 0 {
		quizIDs := make([]string, len(recent))
		for i, attempt := range recent {
			quizIDs[i] = attempt.QuizID
		}
		quizzes, err := s.quizRepo.FindByIDs(ctx, quizIDs)
		if err != nil {
			return nil, apperr.Upstream("load recent quizzes", err)
		}
		byID := make(map[string]model.Quiz, len(quizzes))
		for _, quiz := range quizzes {
			byID[quiz.ID] = quiz
		}
		for _, attempt := range recent {
			item := dto.RecentQuizDTO{
				Score:       attempt.Score,
				Total:       attempt.Total,
				CompletedAt: attempt.CompletedAt,
			}
			if attempt.Total > 0 {
				item.Percentage = round1(float64(attempt.Score) / float64(attempt.Total) * 100)
			}
			if quiz, ok := byID[attempt.QuizID]; ok {
				item.Topic = quiz.Topic
				item.Difficulty = quiz.Difficulty
			}
			dashboard.RecentQuizzes = append(dashboard.RecentQuizzes, item)
		}
	}

	return dashboard, nil
}

func (s *performanceService) WeakTopics(ctx context.Context, userID string) ([]dto.WeakTopicDTO, error) {
	records, err := s.topicRepo.FindWeakByUser(ctx, userID, s.cfg.Learning.WeakThreshold)
	if err != nil {
		return nil, apperr.Upstream("load weak topics", err)
	}
	out := make([]dto.WeakTopicDTO, 0, len(records))
	for _, rec := range records {
		status := "needs_practice"
		if rec.Accuracy < 40 {
			status = "critical"
		}
		out = append(out, dto.WeakTopicDTO{
			Topic:          rec.Topic,
			TotalQuestions: rec.TotalQuestions,
			CorrectAnswers: rec.CorrectAnswers,
			Accuracy:       round1(rec.Accuracy),
			Status:         status,
		})
	}
	return out, nil
}

// round1 rounds to one decimal place, matching the percentages shown to users.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
