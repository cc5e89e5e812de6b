package service

import (
	"testing"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/Nithishkumar647397/quizsense-ai/internal/questionbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noShuffle keeps pools in their deterministic bank order.
func noShuffle(int, func(int, int)) {}

func fixedAssembler() *quizAssemblyService {
	return newQuizAssemblyService(testConfig(), questionbank.New(), noShuffle)
}

func TestAssemble_RequestedDifficultyFirst(t *testing.T) {
	svc := fixedAssembler()

	questions, err := svc.Assemble("Loops", "easy", 5, nil)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	for i, q := range questions {
		assert.Equal(t, "easy", q.Difficulty)
		assert.Equal(t, "Loops", q.Topic)
		assert.NotEmpty(t, q.BankRef)
		assert.Equal(t, []string{"q1", "q2", "q3", "q4", "q5"}[i], q.QID)
	}
}

func TestAssemble_NoDuplicateQuestions(t *testing.T) {
	svc := fixedAssembler()

	// Loops has 10 questions total; asking for 10 forces full backfill.
	questions, err := svc.Assemble("Loops", "hard", 10, nil)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.BankRef], "duplicate bank ref %s", q.BankRef)
		seen[q.BankRef] = true
	}
}

func TestAssemble_BackfillOrderIsAscendingDifficulty(t *testing.T) {
	svc := fixedAssembler()

	// Loops hard has 2 questions; the next 3 must come from easy before medium.
	questions, err := svc.Assemble("Loops", "hard", 5, nil)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	assert.Equal(t, "hard", questions[0].Difficulty)
	assert.Equal(t, "hard", questions[1].Difficulty)
	for _, q := range questions[2:] {
		assert.Equal(t, "easy", q.Difficulty)
	}
}

func TestAssemble_ExcludesSeenQuestions(t *testing.T) {
	svc := fixedAssembler()

	first, err := svc.Assemble("Loops", "easy", 3, nil)
	require.NoError(t, err)

	exclude := make(map[string]bool)
	for _, q := range first {
		exclude[q.BankRef] = true
	}

	second, err := svc.Assemble("Loops", "easy", 3, exclude)
	require.NoError(t, err)
	for _, q := range second {
		assert.False(t, exclude[q.BankRef], "question %s was repeated", q.BankRef)
	}
}

func TestAssemble_RelaxesExclusionWhenBankExhausted(t *testing.T) {
	svc := fixedAssembler()

	// Exclude the whole Loops pool; the assembler must still fill the quiz.
	exclude := make(map[string]bool)
	bank := questionbank.New()
	for _, q := range bank.All() {
		if q.Topic == "Loops" {
			exclude[q.ID] = true
		}
	}

	questions, err := svc.Assemble("Loops", "easy", 5, exclude)
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestAssemble_CrossTopicBackfillWhenTopicTooSmall(t *testing.T) {
	svc := fixedAssembler()

	// Control Flow has 7 questions; the rest must come from other topics.
	questions, err := svc.Assemble("Control Flow", "easy", 10, nil)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	otherTopics := 0
	for _, q := range questions {
		if q.Topic != "Control Flow" {
			otherTopics++
		}
	}
	assert.Equal(t, 3, otherTopics)
}

func TestAssemble_DefaultCount(t *testing.T) {
	svc := fixedAssembler()

	questions, err := svc.Assemble("Loops", "easy", 0, nil)
	require.NoError(t, err)
	assert.Len(t, questions, testConfig().Quiz.DefaultQuestions)
}

func TestAssemble_InvalidInputs(t *testing.T) {
	svc := fixedAssembler()

	_, err := svc.Assemble("Loops", "impossible", 5, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Assemble("Loops", "easy", 2, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Assemble("Loops", "easy", 21, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Assemble("Quantum Knitting", "easy", 5, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAssemble_CorrectAnswerPreserved(t *testing.T) {
	svc := fixedAssembler()

	questions, err := svc.Assemble("Loops", "easy", 3, nil)
	require.NoError(t, err)
	for _, q := range questions {
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}
