package service

import (
	"context"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Quiz: config.Quiz{
			MinQuestions:     3,
			MaxQuestions:     20,
			DefaultQuestions: 5,
			DailyLimitHours:  24,
		},
		Learning: config.Learning{
			WeakThreshold:        60,
			StrongThreshold:      80,
			WeakFocusProbability: 0.7,
			DefaultDomain:        "Python Programming",
			WindowDays:           30,
		},
	}
}

type fakeQuizRepo struct {
	quizzes map[string]*model.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[string]*model.Quiz)}
}

func (f *fakeQuizRepo) Create(_ context.Context, quiz *model.Quiz) error {
	quiz.CreatedAt = time.Now().UTC()
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizRepo) FindByID(_ context.Context, id string) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *quiz
	return &copied, nil
}

func (f *fakeQuizRepo) FindByIDs(_ context.Context, ids []string) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, id := range ids {
		if quiz, ok := f.quizzes[id]; ok {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) FindRecentByUserAndTopic(_ context.Context, userID, topic string, limit int) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, quiz := range f.quizzes {
		if quiz.UserID == userID && quiz.Topic == topic && len(out) < limit {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) FindCompletedSince(_ context.Context, userID string, since time.Time) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, quiz := range f.quizzes {
		if quiz.UserID == userID && quiz.IsCompleted && !quiz.CreatedAt.Before(since) {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) LastCompletedAt(_ context.Context, userID string) (*time.Time, error) {
	var last *time.Time
	for _, quiz := range f.quizzes {
		if quiz.UserID == userID && quiz.IsCompleted {
			t := quiz.CreatedAt
			if last == nil || t.After(*last) {
				last = &t
			}
		}
	}
	return last, nil
}

func (f *fakeQuizRepo) FindHistorySince(_ context.Context, userID string, since time.Time, limit int) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, quiz := range f.quizzes {
		if quiz.UserID == userID && !quiz.CreatedAt.Before(since) && len(out) < limit {
			out = append(out, *quiz)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) CountCompleted(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, quiz := range f.quizzes {
		if quiz.UserID == userID && quiz.IsCompleted {
			n++
		}
	}
	return n, nil
}

type fakeAttemptRepo struct {
	attempts []model.QuizAttempt
	quizzes  *fakeQuizRepo
}

func newFakeAttemptRepo(quizzes *fakeQuizRepo) *fakeAttemptRepo {
	return &fakeAttemptRepo{quizzes: quizzes}
}

func (f *fakeAttemptRepo) RecordWithCompletion(_ context.Context, attempt *model.QuizAttempt) error {
	quiz, ok := f.quizzes.quizzes[attempt.QuizID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if quiz.IsCompleted {
		return apperr.Conflictf("quiz %s already completed", attempt.QuizID)
	}
	quiz.IsCompleted = true
	score := attempt.Score
	quiz.Score = &score
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByUserSince(_ context.Context, userID string, since time.Time) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for i := len(f.attempts) - 1; i >= 0; i-- {
		a := f.attempts[i]
		if a.UserID == userID && !a.CompletedAt.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) FindByQuizID(_ context.Context, quizID string) (*model.QuizAttempt, error) {
	for _, a := range f.attempts {
		if a.QuizID == quizID {
			copied := a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindByQuizIDs(_ context.Context, quizIDs []string) ([]model.QuizAttempt, error) {
	wanted := make(map[string]bool, len(quizIDs))
	for _, id := range quizIDs {
		wanted[id] = true
	}
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if wanted[a.QuizID] {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTopicRepo struct {
	records map[string]*model.TopicPerformance // keyed by userID+"/"+topic
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{records: make(map[string]*model.TopicPerformance)}
}

func (f *fakeTopicRepo) IncrementCounts(_ context.Context, userID, topic string, deltaCorrect, deltaTotal int) error {
	key := userID + "/" + topic
	rec, ok := f.records[key]
	if !ok {
		rec = &model.TopicPerformance{UserID: userID, Topic: topic}
		f.records[key] = rec
	}
	rec.CorrectAnswers += deltaCorrect
	rec.TotalQuestions += deltaTotal
	if rec.TotalQuestions > 0 {
		rec.Accuracy = float64(rec.CorrectAnswers) / float64(rec.TotalQuestions) * 100
	}
	rec.LastUpdated = time.Now().UTC()
	return nil
}

func (f *fakeTopicRepo) FindByUser(_ context.Context, userID string) ([]model.TopicPerformance, error) {
	var out []model.TopicPerformance
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) FindWeakByUser(_ context.Context, userID string, threshold float64) ([]model.TopicPerformance, error) {
	var out []model.TopicPerformance
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Accuracy < threshold {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) FindWorstByUser(_ context.Context, userID string, limit int) ([]model.TopicPerformance, error) {
	out, _ := f.FindByUser(context.Background(), userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) GetCounters(_ context.Context, userID string) (*model.User, error) {
	if user, ok := f.users[userID]; ok {
		copied := *user
		return &copied, nil
	}
	return &model.User{ID: userID}, nil
}

func (f *fakeUserRepo) SetCounters(_ context.Context, userID string, totalQuizzes, currentStreak int, lastQuizAt time.Time) error {
	f.users[userID] = &model.User{
		ID:            userID,
		TotalQuizzes:  totalQuizzes,
		CurrentStreak: currentStreak,
		LastQuizAt:    &lastQuizAt,
	}
	return nil
}

type fakeReportRepo struct {
	reports []model.WeeklyReport
}

func (f *fakeReportRepo) Create(_ context.Context, report *model.WeeklyReport) error {
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportRepo) FindByUser(_ context.Context, userID string, limit int) ([]model.WeeklyReport, error) {
	var out []model.WeeklyReport
	for _, rec := range f.reports {
		if rec.UserID == userID && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}
