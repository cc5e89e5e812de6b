package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nithishkumar647397/quizsense-ai/config"
	"github.com/Nithishkumar647397/quizsense-ai/internal/dto"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService turns weekly performance stats into a learner-facing
// narrative. When no API key is configured the service stays non-functional
// and callers fall back to a template.
type GeminiLLMService interface {
	GenerateReportNarrative(ctx context.Context, stats *dto.PerformanceStatsDTO, focusTopics []string) (string, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

func (s *geminiLLMService) GenerateReportNarrative(ctx context.Context, stats *dto.PerformanceStatsDTO, focusTopics []string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are a friendly programming tutor writing a short weekly progress report for a learner.\n")
	prompt.WriteString("Write 3-4 encouraging paragraphs in plain prose, no markdown headings.\n\n")
	prompt.WriteString("This week's numbers:\n")
	prompt.WriteString(fmt.Sprintf("- Quizzes taken: %d\n", stats.TotalQuizzes))
	prompt.WriteString(fmt.Sprintf("- Questions answered: %d, correct: %d\n", stats.TotalQuestions, stats.TotalCorrect))
	prompt.WriteString(fmt.Sprintf("- Overall accuracy: %.1f%%\n", stats.OverallAccuracy))
	for topic, accuracy := range stats.TopicAccuracies {
		prompt.WriteString(fmt.Sprintf("- %s: %.1f%%\n", topic, accuracy))
	}
	if len(stats.StrongTopics) > 0 {
		prompt.WriteString(fmt.Sprintf("\nStrong topics: %s\n", strings.Join(stats.StrongTopics, ", ")))
	}
	if len(stats.WeakTopics) > 0 {
		prompt.WriteString(fmt.Sprintf("Topics needing work: %s\n", strings.Join(stats.WeakTopics, ", ")))
	}
	if len(focusTopics) > 0 {
		prompt.WriteString(fmt.Sprintf("Suggested focus for next week: %s\n", strings.Join(focusTopics, ", ")))
	}
	prompt.WriteString("\nMention the strongest topic by name, name the areas to practice, and end with one concrete suggestion for next week.\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("user_id", stats.UserID).Msg("Gemini API error during report generation")
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(fullResponseText), nil
}
