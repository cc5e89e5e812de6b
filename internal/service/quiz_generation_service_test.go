package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/questionbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerationFixture(t *testing.T) (QuizGenerationService, *fakeQuizRepo, *fakeAttemptRepo, *fakeTopicRepo) {
	t.Helper()
	cfg := testConfig()
	quizzes := newFakeQuizRepo()
	attempts := newFakeAttemptRepo(quizzes)
	topics := newFakeTopicRepo()
	users := newFakeUserRepo()
	performance := NewPerformanceService(cfg, attempts, topics, users, quizzes)
	agent := newLearningAgentService(cfg, func() float64 { return 0.9 }, func(n int) int { return 0 })
	assembly := newQuizAssemblyService(cfg, questionbank.New(), noShuffle)
	svc := NewQuizGenerationService(cfg, quizzes, attempts, performance, agent, assembly)
	return svc, quizzes, attempts, topics
}

func TestGenerateAutoQuiz_NewUserStartsAtBasics(t *testing.T) {
	svc, quizzes, _, _ := newGenerationFixture(t)

	resp, err := svc.GenerateAutoQuiz(context.Background(), dto.AutoQuizRequest{
		UserID: "user-1",
		Domain: "Python Programming",
	})
	require.NoError(t, err)

	assert.Equal(t, "Variables and Data Types", resp.Topic)
	assert.Equal(t, "easy", resp.Difficulty)
	assert.True(t, resp.IsNewTopic)
	assert.Len(t, resp.Questions, testConfig().Quiz.DefaultQuestions)
	assert.Equal(t, 10, resp.TimeLimitMinutes)

	// The quiz was persisted with the real answers.
	stored, err := quizzes.FindByID(context.Background(), resp.QuizID)
	require.NoError(t, err)
	questions, err := stored.DecodeQuestions()
	require.NoError(t, err)
	assert.NotEqual(t, dto.HiddenAnswer, questions[0].CorrectAnswer)
}

func TestGenerateAutoQuiz_HidesCorrectAnswers(t *testing.T) {
	svc, _, _, _ := newGenerationFixture(t)

	resp, err := svc.GenerateAutoQuiz(context.Background(), dto.AutoQuizRequest{
		UserID: "user-1",
		Domain: "Python Programming",
	})
	require.NoError(t, err)

	for _, q := range resp.Questions {
		assert.Equal(t, dto.HiddenAnswer, q.CorrectAnswer)
		assert.NotEmpty(t, q.QID)
	}
}

func TestGenerateQuiz_Manual(t *testing.T) {
	svc, _, _, _ := newGenerationFixture(t)

	resp, err := svc.GenerateQuiz(context.Background(), dto.GenerateQuizRequest{
		UserID:       "user-1",
		Subject:      "Python Programming",
		Topic:        "Loops",
		Difficulty:   "medium",
		NumQuestions: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Loops", resp.Topic)
	assert.Equal(t, "medium", resp.Difficulty)
	assert.Len(t, resp.Questions, 3)
	assert.Empty(t, resp.Reason)
}

func TestGenerateQuiz_DailyLimit(t *testing.T) {
	svc, quizzes, _, _ := newGenerationFixture(t)

	// A quiz completed moments ago blocks new generation.
	quizzes.quizzes["done"] = &model.Quiz{
		ID:          "done",
		UserID:      "user-1",
		IsCompleted: true,
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
	}

	_, err := svc.GenerateQuiz(context.Background(), dto.GenerateQuizRequest{
		UserID:     "user-1",
		Subject:    "Python Programming",
		Topic:      "Loops",
		Difficulty: "easy",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	availability, err := svc.Availability(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, availability.CanTakeQuiz)
	assert.True(t, availability.HasTakenToday)
	assert.NotNil(t, availability.NextQuizAvailable)
}

func TestGenerateQuiz_AvoidsRecentQuestions(t *testing.T) {
	svc, _, _, _ := newGenerationFixture(t)
	ctx := context.Background()

	first, err := svc.GenerateQuiz(ctx, dto.GenerateQuizRequest{
		UserID:       "user-1",
		Subject:      "Python Programming",
		Topic:        "Loops",
		Difficulty:   "easy",
		NumQuestions: 3,
	})
	require.NoError(t, err)

	second, err := svc.GenerateQuiz(ctx, dto.GenerateQuizRequest{
		UserID:       "user-1",
		Subject:      "Python Programming",
		Topic:        "Loops",
		Difficulty:   "easy",
		NumQuestions: 2,
	})
	require.NoError(t, err)

	// With noShuffle the first quiz took easy 1-3; the second must not repeat
	// them. QIDs restart at q1 per quiz, so compare question text instead.
	firstTexts := make(map[string]bool)
	for _, q := range first.Questions {
		firstTexts[q.Question] = true
	}
	for _, q := range second.Questions {
		assert.False(t, firstTexts[q.Question], "question repeated across quizzes: %s", q.Question)
	}
}

func TestHistory_MergesAttempts(t *testing.T) {
	svc, quizzes, attempts, _ := newGenerationFixture(t)
	ctx := context.Background()

	quiz := seedQuiz(t, quizzes, "user-1")
	encoded, err := model.EncodeTopicBreakdown(map[string]model.TopicTally{"Loops": {Correct: 4, Total: 5}})
	require.NoError(t, err)
	require.NoError(t, attempts.RecordWithCompletion(ctx, &model.QuizAttempt{
		ID:             "attempt-1",
		QuizID:         quiz.ID,
		UserID:         "user-1",
		Score:          4,
		Total:          5,
		TopicBreakdown: encoded,
		CompletedAt:    time.Now().UTC(),
	}))

	history, err := svc.History(ctx, "user-1", 30, 10)
	require.NoError(t, err)
	require.Len(t, history.Quizzes, 1)

	item := history.Quizzes[0]
	assert.Equal(t, quiz.ID, item.QuizID)
	assert.Equal(t, 4, item.Score)
	assert.Equal(t, 80.0, item.Percentage)
	assert.NotNil(t, item.CompletedAt)
}
