package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerformanceFixture(t *testing.T) (PerformanceService, *fakeQuizRepo, *fakeAttemptRepo, *fakeTopicRepo, *fakeUserRepo) {
	t.Helper()
	quizzes := newFakeQuizRepo()
	attempts := newFakeAttemptRepo(quizzes)
	topics := newFakeTopicRepo()
	users := newFakeUserRepo()
	svc := NewPerformanceService(testConfig(), attempts, topics, users, quizzes)
	return svc, quizzes, attempts, topics, users
}

func addAttempt(t *testing.T, attempts *fakeAttemptRepo, userID string, completedAt time.Time, score, total int, breakdown map[string]model.TopicTally) {
	t.Helper()
	encoded, err := model.EncodeTopicBreakdown(breakdown)
	require.NoError(t, err)
	attempts.attempts = append(attempts.attempts, model.QuizAttempt{
		ID:             "attempt-" + completedAt.Format("150405.000"),
		QuizID:         "quiz-" + completedAt.Format("150405.000"),
		UserID:         userID,
		Score:          score,
		Total:          total,
		TopicBreakdown: encoded,
		CompletedAt:    completedAt,
	})
}

func TestAnalyzePerformance_NoAttempts(t *testing.T) {
	svc, _, _, _, _ := newPerformanceFixture(t)

	_, err := svc.AnalyzePerformance(context.Background(), "user-1", 30)
	assert.ErrorIs(t, err, apperr.ErrInsufficientData)
}

func TestAnalyzePerformance_AggregatesWindow(t *testing.T) {
	svc, _, attempts, _, _ := newPerformanceFixture(t)
	now := time.Now().UTC()

	addAttempt(t, attempts, "user-1", now.AddDate(0, 0, -1), 8, 10, map[string]model.TopicTally{
		"Functions": {Correct: 8, Total: 10},
	})
	addAttempt(t, attempts, "user-1", now.AddDate(0, 0, -2), 3, 10, map[string]model.TopicTally{
		"Loops": {Correct: 3, Total: 10},
	})
	// Outside the window, must be ignored.
	addAttempt(t, attempts, "user-1", now.AddDate(0, 0, -40), 0, 10, map[string]model.TopicTally{
		"Strings": {Correct: 0, Total: 10},
	})

	stats, err := svc.AnalyzePerformance(context.Background(), "user-1", 30)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.Equal(t, 20, stats.TotalQuestions)
	assert.Equal(t, 11, stats.TotalCorrect)
	assert.Equal(t, 55.0, stats.OverallAccuracy)
	assert.Equal(t, 80.0, stats.TopicAccuracies["Functions"])
	assert.Equal(t, 30.0, stats.TopicAccuracies["Loops"])
	assert.NotContains(t, stats.TopicAccuracies, "Strings")
	assert.Equal(t, []string{"Loops"}, stats.WeakTopics)
	assert.Equal(t, []string{"Functions"}, stats.StrongTopics)
	assert.Equal(t, 1, stats.CurrentStreak)
}

func TestAnalyzePerformance_DefaultWindow(t *testing.T) {
	svc, _, attempts, _, _ := newPerformanceFixture(t)
	addAttempt(t, attempts, "user-1", time.Now().UTC(), 5, 5, map[string]model.TopicTally{
		"Loops": {Correct: 5, Total: 5},
	})

	stats, err := svc.AnalyzePerformance(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, testConfig().Learning.WindowDays, stats.PeriodDays)
}

func TestTopicAccuracies(t *testing.T) {
	svc, _, _, topics, _ := newPerformanceFixture(t)
	ctx := context.Background()

	require.NoError(t, topics.IncrementCounts(ctx, "user-1", "Loops", 3, 10))
	require.NoError(t, topics.IncrementCounts(ctx, "user-1", "Functions", 9, 10))

	accuracies, err := svc.TopicAccuracies(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, accuracies["Loops"])
	assert.Equal(t, 90.0, accuracies["Functions"])
}

func TestWeakTopics(t *testing.T) {
	svc, _, _, topics, _ := newPerformanceFixture(t)
	ctx := context.Background()

	require.NoError(t, topics.IncrementCounts(ctx, "user-1", "Loops", 3, 10))
	require.NoError(t, topics.IncrementCounts(ctx, "user-1", "Functions", 9, 10))
	require.NoError(t, topics.IncrementCounts(ctx, "user-1", "Strings", 5, 10))

	weak, err := svc.WeakTopics(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, weak, 2)

	byTopic := make(map[string]string)
	for _, w := range weak {
		byTopic[w.Topic] = w.Status
	}
	assert.Equal(t, "critical", byTopic["Loops"])
	assert.Equal(t, "needs_practice", byTopic["Strings"])
}

func TestDashboard_CountsAndRecentQuizzes(t *testing.T) {
	svc, quizzes, attempts, _, users := newPerformanceFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, users.SetCounters(ctx, "user-1", 7, 1, now))
	quiz := seedQuiz(t, quizzes, "user-1")
	addAttempt(t, attempts, "user-1", now.AddDate(0, 0, -1), 4, 5, map[string]model.TopicTally{
		"Loops": {Correct: 4, Total: 5},
	})
	attempts.attempts[len(attempts.attempts)-1].QuizID = quiz.ID

	dashboard, err := svc.Dashboard(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 7, dashboard.TotalQuizzes)
	assert.Equal(t, 1, dashboard.QuizzesThisWeek)
	assert.Equal(t, 80.0, dashboard.OverallAccuracy)
	assert.Len(t, dashboard.WeeklyAccuracy, 7)
	require.Len(t, dashboard.RecentQuizzes, 1)
	assert.Equal(t, "Loops", dashboard.RecentQuizzes[0].Topic)
	assert.Equal(t, 80.0, dashboard.RecentQuizzes[0].Percentage)
}
