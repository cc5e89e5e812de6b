package service

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/rs/zerolog/log"
)

// Mastery statuses produced by AnalyzeUserLevel.
const (
	StatusNew        = "new"
	StatusStruggling = "struggling"
	StatusLearning   = "learning"
	StatusProficient = "proficient"
	StatusMastering  = "mastering"
)

// maxLevel caps the quiz-count progression.
const maxLevel = 6

// CurriculumTopic is one entry of a domain's ordered learning path.
type CurriculumTopic struct {
	Topic string
	Level int
}

// learningPaths maps each domain to its curriculum, basic to advanced. Built
// once at startup and never mutated; the agent itself holds no per-user state.
var learningPaths = map[string][]CurriculumTopic{
	"Python Programming": {
		{"Variables and Data Types", 1},
		{"Operators", 1},
		{"Control Flow", 2},
		{"Loops", 2},
		{"Strings", 2},
		{"Lists and Tuples", 3},
		{"Dictionaries", 3},
		{"Functions", 4},
		{"File Handling", 4},
		{"Exception Handling", 5},
		{"OOP Basics", 5},
		{"Recursion", 6},
	},
	"Web Development": {
		{"HTML Basics", 1},
		{"CSS Fundamentals", 2},
		{"JavaScript Basics", 3},
		{"DOM Manipulation", 4},
		{"APIs and REST", 5},
	},
	"Data Structures": {
		{"Arrays", 1},
		{"Linked Lists", 2},
		{"Stacks", 2},
		{"Queues", 2},
		{"Trees", 3},
		{"Graphs", 4},
		{"Hash Tables", 4},
	},
	"Algorithms": {
		{"Searching", 1},
		{"Sorting", 2},
		{"Recursion", 3},
		{"Dynamic Programming", 4},
		{"Greedy Algorithms", 5},
	},
}

// LearningAgentService decides what to teach next. AnalyzeUserLevel is a pure
// function; DecideNextTopic is deterministic except for the weighted
// weak-focus draw and the review pick, both fed by the injected random source.
type LearningAgentService interface {
	Domains() []string
	Curriculum(domain string) ([]dto.CurriculumTopicDTO, bool)
	AnalyzeUserLevel(stats *dto.PerformanceStatsDTO) dto.LevelAssessmentDTO
	DecideNextTopic(domain string, stats *dto.PerformanceStatsDTO, topicAccuracy map[string]float64) (dto.TopicDecisionDTO, error)
	PlanQuiz(domain string, stats *dto.PerformanceStatsDTO, topicAccuracy map[string]float64, numQuestions int) (dto.QuizPlanDTO, error)
}

type learningAgentService struct {
	cfg       *config.Config
	paths     map[string][]CurriculumTopic
	randFloat func() float64
	randIntn  func(n int) int
}

func NewLearningAgentService(cfg *config.Config) LearningAgentService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newLearningAgentService(cfg, rng.Float64, rng.Intn)
}

// newLearningAgentService lets tests pin the random source.
func newLearningAgentService(cfg *config.Config, randFloat func() float64, randIntn func(int) int) *learningAgentService {
	return &learningAgentService{
		cfg:       cfg,
		paths:     learningPaths,
		randFloat: randFloat,
		randIntn:  randIntn,
	}
}

func (s *learningAgentService) Domains() []string {
	domains := make([]string, 0, len(s.paths))
	for domain := range s.paths {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

func (s *learningAgentService) Curriculum(domain string) ([]dto.CurriculumTopicDTO, bool) {
	path, ok := s.paths[domain]
	if !ok {
		return nil, false
	}
	out := make([]dto.CurriculumTopicDTO, len(path))
	for i, t := range path {
		out[i] = dto.CurriculumTopicDTO{Topic: t.Topic, Level: t.Level}
	}
	return out, true
}

// AnalyzeUserLevel maps aggregate stats to a mastery tier. A nil stats value
// means no attempts exist in the window and always classifies as new.
func (s *learningAgentService) AnalyzeUserLevel(stats *dto.PerformanceStatsDTO) dto.LevelAssessmentDTO {
	if stats == nil || stats.TotalQuizzes == 0 {
		return dto.LevelAssessmentDTO{
			Status:     StatusNew,
			Level:      1,
			Difficulty: "easy",
			Message:    "Welcome! Let's start from the basics.",
		}
	}

	accuracy := stats.OverallAccuracy
	var status, difficulty, message string
	switch {
	case accuracy < 50:
		status, difficulty = StatusStruggling, "easy"
		message = "Let's practice more on the fundamentals!"
	case accuracy < 70:
		status, difficulty = StatusLearning, "medium"
		message = "Good progress! Keep practicing."
	case accuracy < 85:
		status, difficulty = StatusProficient, "medium"
		message = "Great work! Ready for more challenges."
	default:
		status, difficulty = StatusMastering, "hard"
		message = "Excellent! You're mastering this!"
	}

	// Every 3 quizzes earns a level, capped.
	level := 1 + stats.TotalQuizzes/3
	if level > maxLevel {
		level = maxLevel
	}

	return dto.LevelAssessmentDTO{
		Status:     status,
		Level:      level,
		Difficulty: difficulty,
		Accuracy:   accuracy,
		Message:    message,
	}
}

// DecideNextTopic picks the next (topic, difficulty) for the user in a domain.
// Policy: new users start at the head of the curriculum; otherwise a weighted
// draw sends the user to their weakest topic with the configured probability,
// else to the first unseen topic within reach of their level, else to a random
// review topic.
func (s *learningAgentService) DecideNextTopic(domain string, stats *dto.PerformanceStatsDTO, topicAccuracy map[string]float64) (dto.TopicDecisionDTO, error) {
	path, ok := s.paths[domain]
	if !ok {
		log.Warn().Str("domain", domain).Str("fallback", s.cfg.Learning.DefaultDomain).
			Msg("Unknown domain requested, falling back to default")
		path, ok = s.paths[s.cfg.Learning.DefaultDomain]
		if !ok {
			return dto.TopicDecisionDTO{}, apperr.InvalidInputf("unknown domain %q and default domain %q has no curriculum", domain, s.cfg.Learning.DefaultDomain)
		}
	}

	level := s.AnalyzeUserLevel(stats)

	// New users always start from the first topic; no randomness on this path.
	if level.Status == StatusNew {
		return dto.TopicDecisionDTO{
			Topic:      path[0].Topic,
			Difficulty: "easy",
			Reason:     "Starting your learning journey from the basics.",
			IsNewTopic: true,
		}, nil
	}

	type weakTopic struct {
		topic    string
		accuracy float64
	}
	var weak []weakTopic
	for topic, accuracy := range topicAccuracy {
		if accuracy < s.cfg.Learning.WeakThreshold {
			weak = append(weak, weakTopic{topic: topic, accuracy: accuracy})
		}
	}
	// Weakest first; name tie-break keeps the pick deterministic.
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].accuracy != weak[j].accuracy {
			return weak[i].accuracy < weak[j].accuracy
		}
		return weak[i].topic < weak[j].topic
	})

	draw := s.randFloat()
	if len(weak) > 0 && draw < s.cfg.Learning.WeakFocusProbability {
		weakest := weak[0]
		return dto.TopicDecisionDTO{
			Topic:      weakest.topic,
			Difficulty: level.Difficulty,
			Reason:     fmt.Sprintf("Focusing on weak area: %s (%.0f%% accuracy).", weakest.topic, weakest.accuracy),
			IsWeakArea: true,
		}, nil
	}

	// Progress to the first unseen topic within reach of the user's level.
	for _, t := range path {
		if _, seen := topicAccuracy[t.Topic]; seen {
			continue
		}
		if t.Level <= level.Level+1 {
			return dto.TopicDecisionDTO{
				Topic:      t.Topic,
				Difficulty: level.Difficulty,
				Reason:     fmt.Sprintf("Introducing new topic: %s.", t.Topic),
				IsNewTopic: true,
			}, nil
		}
	}

	// Whole reachable curriculum covered: review a random topic.
	pick := path[s.randIntn(len(path))]
	return dto.TopicDecisionDTO{
		Topic:      pick.Topic,
		Difficulty: level.Difficulty,
		Reason:     "Reviewing previously learned concepts.",
	}, nil
}

// PlanQuiz bundles the topic decision with the level assessment behind it.
func (s *learningAgentService) PlanQuiz(domain string, stats *dto.PerformanceStatsDTO, topicAccuracy map[string]float64, numQuestions int) (dto.QuizPlanDTO, error) {
	decision, err := s.DecideNextTopic(domain, stats, topicAccuracy)
	if err != nil {
		return dto.QuizPlanDTO{}, err
	}
	level := s.AnalyzeUserLevel(stats)
	return dto.QuizPlanDTO{
		Domain:       domain,
		Topic:        decision.Topic,
		Difficulty:   decision.Difficulty,
		NumQuestions: numQuestions,
		Reason:       decision.Reason,
		UserLevel:    level,
		IsNewTopic:   decision.IsNewTopic,
		IsWeakArea:   decision.IsWeakArea,
	}, nil
}
