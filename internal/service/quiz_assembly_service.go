package service

import (
	"fmt"
	"math/rand"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/model"
	"github.com/Nithishkumar647397/quizsense-ai/internal/questionbank"
	"github.com/rs/zerolog/log"
)

// QuizAssemblyService turns a (topic, difficulty, count) plan into a concrete
// question list drawn from the bank.
type QuizAssemblyService interface {
	// Assemble picks numQuestions questions for the topic, preferring the
	// requested difficulty and excluding bank refs the user has already seen.
	// When the preferred pool runs short it backfills from the topic's other
	// difficulties in ascending order, then from the whole bank, and finally
	// relaxes the exclusion. Never returns duplicate questions within one
	// quiz; comes up short only when the entire bank holds fewer questions
	// than requested.
	Assemble(topic, difficulty string, numQuestions int, excludeRefs map[string]bool) ([]model.QuizQuestion, error)
}

type quizAssemblyService struct {
	cfg     *config.Config
	bank    *questionbank.Bank
	shuffle func(n int, swap func(i, j int))
}

func NewQuizAssemblyService(cfg *config.Config, bank *questionbank.Bank) QuizAssemblyService {
	return newQuizAssemblyService(cfg, bank, rand.Shuffle)
}

// newQuizAssemblyService lets tests pin the shuffle order.
func newQuizAssemblyService(cfg *config.Config, bank *questionbank.Bank, shuffle func(int, func(int, int))) *quizAssemblyService {
	return &quizAssemblyService{cfg: cfg, bank: bank, shuffle: shuffle}
}

func (s *quizAssemblyService) Assemble(topic, difficulty string, numQuestions int, excludeRefs map[string]bool) ([]model.QuizQuestion, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, apperr.InvalidInputf("unknown difficulty %q", difficulty)
	}
	if numQuestions == 0 {
		numQuestions = s.cfg.Quiz.DefaultQuestions
	}
	if numQuestions < s.cfg.Quiz.MinQuestions || numQuestions > s.cfg.Quiz.MaxQuestions {
		return nil, apperr.InvalidInputf("num_questions %d outside [%d, %d]", numQuestions, s.cfg.Quiz.MinQuestions, s.cfg.Quiz.MaxQuestions)
	}
	if !s.bank.HasTopic(topic) {
		return nil, apperr.NotFoundf("topic %q", topic)
	}

	picked := make([]questionbank.Question, 0, numQuestions)
	seen := make(map[string]bool)

	take := func(pool []questionbank.Question, skipExcluded bool) {
		s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, q := range pool {
			if len(picked) == numQuestions {
				return
			}
			if seen[q.ID] {
				continue
			}
			if skipExcluded && excludeRefs[q.ID] {
				continue
			}
			seen[q.ID] = true
			picked = append(picked, q)
		}
	}

	take(s.bank.Questions(topic, difficulty), true)

	// Backfill from the topic's other difficulties, easiest first.
	for _, d := range model.Difficulties {
		if len(picked) == numQuestions {
			break
		}
		if d == difficulty {
			continue
		}
		take(s.bank.Questions(topic, d), true)
	}

	// Topic exhausted: draw from the whole bank, fresh questions first, then
	// repeat seen ones rather than come up short.
	if len(picked) < numQuestions {
		take(s.bank.All(), true)
	}
	if len(picked) < numQuestions {
		take(s.bank.All(), false)
	}

	if len(picked) < numQuestions {
		log.Warn().Str("topic", topic).Int("requested", numQuestions).Int("available", len(picked)).
			Msg("Question bank smaller than requested quiz size")
	}

	s.shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	questions := make([]model.QuizQuestion, len(picked))
	for i, q := range picked {
		options := make(map[string]string, len(q.Options))
		for k, v := range q.Options {
			options[k] = v
		}
		questions[i] = model.QuizQuestion{
			QID:           fmt.Sprintf("q%d", i+1),
			BankRef:       q.ID,
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
			Explanation:   q.Explanation,
		}
	}
	return questions, nil
}
