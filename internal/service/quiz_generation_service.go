package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// recentQuizLookback bounds how many past quizzes feed the repeat-avoidance
// exclusion set.
const recentQuizLookback = 5

// QuizGenerationService creates quizzes, either fully adaptive (the learning
// agent picks topic and difficulty) or manual (the caller picks both).
type QuizGenerationService interface {
	GenerateAutoQuiz(ctx context.Context, req dto.AutoQuizRequest) (*dto.QuizResponseDTO, error)
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.QuizResponseDTO, error)
	History(ctx context.Context, userID string, periodDays, limit int) (*dto.QuizHistoryDTO, error)
	Availability(ctx context.Context, userID string) (*dto.QuizAvailabilityDTO, error)
}

type quizGenerationService struct {
	cfg         *config.Config
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	performance PerformanceService
	agent       LearningAgentService
	assembly    QuizAssemblyService
}

func NewQuizGenerationService(
	cfg *config.Config,
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	performance PerformanceService,
	agent LearningAgentService,
	assembly QuizAssemblyService,
) QuizGenerationService {
	return &quizGenerationService{
		cfg:         cfg,
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		performance: performance,
		agent:       agent,
		assembly:    assembly,
	}
}

func (s *quizGenerationService) GenerateAutoQuiz(ctx context.Context, req dto.AutoQuizRequest) (*dto.QuizResponseDTO, error) {
	if err := s.checkDailyLimit(ctx, req.UserID); err != nil {
		return nil, err
	}

	stats, err := s.performance.AnalyzePerformance(ctx, req.UserID, s.cfg.Learning.WindowDays)
	if err != nil && !errors.Is(err, apperr.ErrInsufficientData) {
		return nil, err
	}

	topicAccuracy, err := s.performance.TopicAccuracies(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	plan, err := s.agent.PlanQuiz(req.Domain, stats, topicAccuracy, req.NumQuestions)
	if err != nil {
		return nil, err
	}

	exclude, err := s.recentBankRefs(ctx, req.UserID, plan.Topic)
	if err != nil {
		return nil, err
	}

	questions, err := s.assembly.Assemble(plan.Topic, plan.Difficulty, plan.NumQuestions, exclude)
	if err != nil {
		return nil, err
	}

	quiz, err := s.persistQuiz(ctx, req.UserID, req.Domain, plan.Topic, plan.Difficulty, questions)
	if err != nil {
		return nil, err
	}

	log.Info().Str("quiz_id", quiz.ID).Str("user_id", req.UserID).Str("topic", plan.Topic).
		Str("difficulty", plan.Difficulty).Str("reason", plan.Reason).Msg("Adaptive quiz generated")

	resp := s.toResponse(quiz, questions)
	resp.Reason = plan.Reason
	resp.IsNewTopic = plan.IsNewTopic
	resp.IsWeakArea = plan.IsWeakArea
	return resp, nil
}

func (s *quizGenerationService) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.QuizResponseDTO, error) {
	if err := s.checkDailyLimit(ctx, req.UserID); err != nil {
		return nil, err
	}

	exclude, err := s.recentBankRefs(ctx, req.UserID, req.Topic)
	if err != nil {
		return nil, err
	}

	questions, err := s.assembly.Assemble(req.Topic, req.Difficulty, req.NumQuestions, exclude)
	if err != nil {
		return nil, err
	}

	quiz, err := s.persistQuiz(ctx, req.UserID, req.Subject, req.Topic, req.Difficulty, questions)
	if err != nil {
		return nil, err
	}

	log.Info().Str("quiz_id", quiz.ID).Str("user_id", req.UserID).Str("topic", req.Topic).
		Msg("Manual quiz generated")

	return s.toResponse(quiz, questions), nil
}

func (s *quizGenerationService) History(ctx context.Context, userID string, periodDays, limit int) (*dto.QuizHistoryDTO, error) {
	if periodDays <= 0 {
		periodDays = s.cfg.Learning.WindowDays
	}
	if limit <= 0 {
		limit = 50
	}
	since := time.Now().UTC().AddDate(0, 0, -periodDays)

	quizzes, err := s.quizRepo.FindHistorySince(ctx, userID, since, limit)
	if err != nil {
		return nil, apperr.Upstream("load quiz history", err)
	}

	quizIDs := make([]string, len(quizzes))
	for i, quiz := range quizzes {
		quizIDs[i] = quiz.ID
	}
	attempts, err := s.attemptRepo.FindByQuizIDs(ctx, quizIDs)
	if err != nil {
		return nil, apperr.Upstream("load attempts", err)
	}
	attemptByQuiz := make(map[string]model.QuizAttempt, len(attempts))
	for _, attempt := range attempts {
		attemptByQuiz[attempt.QuizID] = attempt
	}

	history := &dto.QuizHistoryDTO{
		UserID:     userID,
		PeriodDays: periodDays,
		Quizzes:    make([]dto.QuizHistoryItemDTO, 0, len(quizzes)),
	}
	for _, quiz := range quizzes {
		item := dto.QuizHistoryItemDTO{
			QuizID:     quiz.ID,
			Subject:    quiz.Subject,
			Topic:      quiz.Topic,
			Difficulty: quiz.Difficulty,
			CreatedAt:  quiz.CreatedAt,
		}
		if attempt, ok := attemptByQuiz[quiz.ID]; ok {
			item.Score = attempt.Score
			item.Total = attempt.Total
			item.TimeTaken = attempt.TimeTaken
			completedAt := attempt.CompletedAt
			item.CompletedAt = &completedAt
			if attempt.Total > 0 {
				item.Percentage = round1(float64(attempt.Score) / float64(attempt.Total) * 100)
			}
		}
		history.Quizzes = append(history.Quizzes, item)
	}
	history.TotalQuizzes = len(history.Quizzes)
	return history, nil
}

func (s *quizGenerationService) Availability(ctx context.Context, userID string) (*dto.QuizAvailabilityDTO, error) {
	last, err := s.quizRepo.LastCompletedAt(ctx, userID)
	if err != nil {
		return nil, apperr.Upstream("load last completed quiz", err)
	}
	if last == nil {
		return &dto.QuizAvailabilityDTO{
			CanTakeQuiz: true,
			Message:     "You can take a quiz now!",
		}, nil
	}

	next := last.Add(time.Duration(s.cfg.Quiz.DailyLimitHours) * time.Hour)
	if time.Now().UTC().Before(next) {
		return &dto.QuizAvailabilityDTO{
			CanTakeQuiz:       false,
			HasTakenToday:     true,
			NextQuizAvailable: &next,
			Message:           "You've already taken your quiz today. Come back tomorrow!",
		}, nil
	}
	return &dto.QuizAvailabilityDTO{
		CanTakeQuiz: true,
		Message:     "You can take a quiz now!",
	}, nil
}

func (s *quizGenerationService) checkDailyLimit(ctx context.Context, userID string) error {
	availability, err := s.Availability(ctx, userID)
	if err != nil {
		return err
	}
	if !availability.CanTakeQuiz {
		return apperr.Conflictf("daily quiz limit reached for user %s", userID)
	}
	return nil
}

// recentBankRefs collects the bank ids of questions the user saw in their last
// few quizzes on the topic.
func (s *quizGenerationService) recentBankRefs(ctx context.Context, userID, topic string) (map[string]bool, error) {
	recent, err := s.quizRepo.FindRecentByUserAndTopic(ctx, userID, topic, recentQuizLookback)
	if err != nil {
		return nil, apperr.Upstream("load recent quizzes", err)
	}
	refs := make(map[string]bool)
	for _, quiz := range recent {
		questions, err := quiz.DecodeQuestions()
		if err != nil {
			log.Warn().Err(err).Str("quiz_id", quiz.ID).Msg("Skipping quiz with unreadable questions")
			continue
		}
		for _, q := range questions {
			if q.BankRef != "" {
				refs[q.BankRef] = true
			}
		}
	}
	return refs, nil
}

func (s *quizGenerationService) persistQuiz(ctx context.Context, userID, subject, topic, difficulty string, questions []model.QuizQuestion) (*model.Quiz, error) {
	encoded, err := model.EncodeQuestions(questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	quiz := &model.Quiz{
		ID:         uuid.NewString(),
		UserID:     userID,
		Subject:    subject,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  encoded,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, apperr.Upstream("persist quiz", err)
	}
	return quiz, nil
}

func (s *quizGenerationService) toResponse(quiz *model.Quiz, questions []model.QuizQuestion) *dto.QuizResponseDTO {
	questionDTOs := make([]dto.QuizQuestionDTO, len(questions))
	for i, q := range questions {
		var item dto.QuizQuestionDTO
		if err := copier.Copy(&item, &q); err != nil {
			log.Warn().Err(err).Str("q_id", q.QID).Msg("Failed to map question")
		}
		item.CorrectAnswer = dto.HiddenAnswer
		questionDTOs[i] = item
	}
	return &dto.QuizResponseDTO{
		QuizID:           quiz.ID,
		Subject:          quiz.Subject,
		Topic:            quiz.Topic,
		Difficulty:       quiz.Difficulty,
		Questions:        questionDTOs,
		TotalQuestions:   len(questionDTOs),
		TimeLimitMinutes: 2 * len(questionDTOs),
		CreatedAt:        quiz.CreatedAt,
	}
}
