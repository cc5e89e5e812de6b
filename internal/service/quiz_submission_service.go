package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// missingAnswer is the stored placeholder for a question the user skipped.
const missingAnswer = "none"

// QuizSubmissionService grades submissions and records their outcome.
type QuizSubmissionService interface {
	// SubmitAnswers grades a submission against the stored quiz and records
	// the attempt. Exactly one submission per quiz succeeds; later ones get
	// apperr.ErrConflict. Unanswered questions count as incorrect.
	SubmitAnswers(ctx context.Context, sub dto.AnswerSubmissionDTO) (*dto.QuizResultDTO, error)
	// Result returns the stored outcome of a completed quiz.
	Result(ctx context.Context, quizID, userID string) (*dto.QuizResultDTO, error)
}

type quizSubmissionService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	topicRepo   repository.TopicPerformanceRepository
	userRepo    repository.UserRepository
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	topicRepo repository.TopicPerformanceRepository,
	userRepo repository.UserRepository,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		topicRepo:   topicRepo,
		userRepo:    userRepo,
	}
}

func (s *quizSubmissionService) SubmitAnswers(ctx context.Context, sub dto.AnswerSubmissionDTO) (*dto.QuizResultDTO, error) {
	quiz, err := s.quizRepo.FindByID(ctx, sub.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("quiz %s", sub.QuizID)
		}
		return nil, apperr.Upstream("load quiz", err)
	}
	if quiz.UserID != sub.UserID {
		return nil, apperr.Forbiddenf("quiz %s does not belong to user %s", sub.QuizID, sub.UserID)
	}
	if quiz.IsCompleted {
		return nil, apperr.Conflictf("quiz %s already completed", sub.QuizID)
	}

	questions, err := quiz.DecodeQuestions()
	if err != nil {
		return nil, apperr.Upstream("decode quiz questions", err)
	}

	answered := make(map[string]dto.SingleAnswerDTO, len(sub.Answers))
	for _, answer := range sub.Answers {
		answered[answer.QID] = answer
	}

	now := time.Now().UTC()
	score := 0
	breakdown := make(map[string]model.TopicTally)
	stored := make([]model.SubmittedAnswer, 0, len(questions))
	results := make([]dto.QuestionResultDTO, 0, len(questions))

	for _, question := range questions {
		selected := missingAnswer
		timeTaken := 0
		if answer, ok := answered[question.QID]; ok {
			selected = answer.SelectedOption
			timeTaken = answer.TimeTakenSeconds
		}

		correct := selected != missingAnswer && strings.EqualFold(selected, question.CorrectAnswer)
		if correct {
			score++
		}

		tally := breakdown[question.Topic]
		tally.Total++
		if correct {
			tally.Correct++
		}
		breakdown[question.Topic] = tally

		stored = append(stored, model.SubmittedAnswer{
			QID:            question.QID,
			SelectedOption: selected,
			TimeTaken:      timeTaken,
		})
		results = append(results, dto.QuestionResultDTO{
			QID:            question.QID,
			Question:       question.Question,
			SelectedOption: selected,
			CorrectOption:  question.CorrectAnswer,
			IsCorrect:      correct,
			Topic:          question.Topic,
			Explanation:    question.Explanation,
		})
	}

	encodedAnswers, err := model.EncodeAnswers(stored)
	if err != nil {
		return nil, apperr.Upstream("encode answers", err)
	}
	encodedBreakdown, err := model.EncodeTopicBreakdown(breakdown)
	if err != nil {
		return nil, apperr.Upstream("encode topic breakdown", err)
	}

	attempt := &model.QuizAttempt{
		ID:             uuid.NewString(),
		QuizID:         quiz.ID,
		UserID:         sub.UserID,
		Answers:        encodedAnswers,
		Score:          score,
		Total:          len(questions),
		TimeTaken:      sub.TotalTimeSeconds,
		TopicBreakdown: encodedBreakdown,
		CompletedAt:    now,
	}
	if err := s.attemptRepo.RecordWithCompletion(ctx, attempt); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, err
		}
		return nil, apperr.Upstream("record attempt", err)
	}

	// Aggregate updates happen after the attempt is durably recorded. A crash
	// here leaves the counters behind by one quiz, never ahead.
	for topic, tally := range breakdown {
		if err := s.topicRepo.IncrementCounts(ctx, sub.UserID, topic, tally.Correct, tally.Total); err != nil {
			log.Error().Err(err).Str("user_id", sub.UserID).Str("topic", topic).
				Msg("Failed to update topic performance")
		}
	}
	if err := s.updateUserCounters(ctx, sub.UserID, now); err != nil {
		log.Error().Err(err).Str("user_id", sub.UserID).Msg("Failed to update user counters")
	}

	log.Info().Str("quiz_id", quiz.ID).Str("user_id", sub.UserID).
		Int("score", score).Int("total", len(questions)).Msg("Quiz submitted")

	return s.toResult(quiz.ID, attempt, results, breakdown), nil
}

func (s *quizSubmissionService) Result(ctx context.Context, quizID, userID string) (*dto.QuizResultDTO, error) {
	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("quiz %s", quizID)
		}
		return nil, apperr.Upstream("load quiz", err)
	}
	if quiz.UserID != userID {
		return nil, apperr.Forbiddenf("quiz %s does not belong to user %s", quizID, userID)
	}
	if !quiz.IsCompleted {
		return nil, apperr.NotFoundf("no result for quiz %s", quizID)
	}

	attempt, err := s.attemptRepo.FindByQuizID(ctx, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A completed quiz must have an attempt on file.
			log.Error().Str("quiz_id", quizID).Msg("Quiz marked completed but no attempt record exists")
			return nil, apperr.NotFoundf("no result for quiz %s", quizID)
		}
		return nil, apperr.Upstream("load attempt", err)
	}

	questions, err := quiz.DecodeQuestions()
	if err != nil {
		return nil, apperr.Upstream("decode quiz questions", err)
	}
	stored, err := attempt.DecodeAnswers()
	if err != nil {
		return nil, apperr.Upstream("decode answers", err)
	}
	answerByQID := make(map[string]model.SubmittedAnswer, len(stored))
	for _, answer := range stored {
		answerByQID[answer.QID] = answer
	}

	results := make([]dto.QuestionResultDTO, 0, len(questions))
	for _, question := range questions {
		selected := missingAnswer
		if answer, ok := answerByQID[question.QID]; ok {
			selected = answer.SelectedOption
		}
		results = append(results, dto.QuestionResultDTO{
			QID:            question.QID,
			Question:       question.Question,
			SelectedOption: selected,
			CorrectOption:  question.CorrectAnswer,
			IsCorrect:      selected != missingAnswer && strings.EqualFold(selected, question.CorrectAnswer),
			Topic:          question.Topic,
			Explanation:    question.Explanation,
		})
	}

	breakdown, err := attempt.DecodeTopicBreakdown()
	if err != nil {
		return nil, apperr.Upstream("decode topic breakdown", err)
	}
	return s.toResult(quiz.ID, attempt, results, breakdown), nil
}

// updateUserCounters bumps the quiz count and refreshes the streak. The streak
// is coarse by design of the product: 1 while the user stays active, reset to
// 0 by inactivity windows elsewhere.
func (s *quizSubmissionService) updateUserCounters(ctx context.Context, userID string, completedAt time.Time) error {
	user, err := s.userRepo.GetCounters(ctx, userID)
	if err != nil {
		return err
	}
	return s.userRepo.SetCounters(ctx, userID, user.TotalQuizzes+1, 1, completedAt)
}

func (s *quizSubmissionService) toResult(quizID string, attempt *model.QuizAttempt, results []dto.QuestionResultDTO, breakdown map[string]model.TopicTally) *dto.QuizResultDTO {
	percentage := 0.0
	if attempt.Total > 0 {
		percentage = round1(float64(attempt.Score) / float64(attempt.Total) * 100)
	}
	breakdownDTO := make(map[string]dto.TopicTallyDTO, len(breakdown))
	for topic, tally := range breakdown {
		breakdownDTO[topic] = dto.TopicTallyDTO{Correct: tally.Correct, Total: tally.Total}
	}
	return &dto.QuizResultDTO{
		QuizID:           quizID,
		UserID:           attempt.UserID,
		Score:            attempt.Score,
		Total:            attempt.Total,
		Percentage:       percentage,
		TimeTakenSeconds: attempt.TimeTaken,
		Results:          results,
		TopicBreakdown:   breakdownDTO,
		CompletedAt:      attempt.CompletedAt,
	}
}
