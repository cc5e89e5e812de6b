package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AssignsStableIDs(t *testing.T) {
	bank := New()

	pool := bank.Questions("Loops", "easy")
	require.NotEmpty(t, pool)
	assert.Equal(t, "loops-easy-1", pool[0].ID)
	assert.Equal(t, "Loops", pool[0].Topic)
	assert.Equal(t, "easy", pool[0].Difficulty)

	// Two builds produce identical ids.
	again := New().Questions("Loops", "easy")
	for i := range pool {
		assert.Equal(t, pool[i].ID, again[i].ID)
	}
}

func TestBank_UniqueIDs(t *testing.T) {
	bank := New()

	seen := make(map[string]bool)
	for _, q := range bank.All() {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestBank_EveryQuestionIsAnswerable(t *testing.T) {
	bank := New()

	for _, q := range bank.All() {
		assert.NotEmpty(t, q.Question, "id %s", q.ID)
		assert.NotEmpty(t, q.Options, "id %s", q.ID)
		assert.Contains(t, q.Options, q.CorrectAnswer, "id %s", q.ID)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	bank := New()

	pool := bank.Questions("Loops", "easy")
	require.NotEmpty(t, pool)
	original := pool[0].Question
	pool[0].Question = "mutated"

	assert.Equal(t, original, bank.Questions("Loops", "easy")[0].Question)
}

func TestTopics(t *testing.T) {
	bank := New()

	topics := bank.Topics()
	assert.True(t, bank.HasTopic("Variables and Data Types"))
	assert.False(t, bank.HasTopic("Quantum Knitting"))
	assert.Len(t, topics, 10)
	assert.Positive(t, bank.Size())
	assert.Equal(t, 10, bank.TopicSize("Loops"))
}
