package questionbank

import (
	"fmt"
	"sort"
	"strings"
)

// Question is one entry of the static bank. ID is a stable reference
// (topic-difficulty-index) so previously-seen questions can be excluded from
// later quizzes.
type Question struct {
	ID            string
	Question      string
	Options       map[string]string // keys A-D
	CorrectAnswer string
	Explanation   string
	Topic         string
	Difficulty    string
}

// Bank is the read-only in-process question bank. Built once at startup and
// shared across requests; never mutated afterwards.
type Bank struct {
	byTopic map[string]map[string][]Question
	all     []Question
	topics  []string
}

// New builds the bank from the embedded seed content.
func New() *Bank {
	b := &Bank{byTopic: make(map[string]map[string][]Question)}
	for topic, byDifficulty := range seedQuestions {
		b.byTopic[topic] = make(map[string][]Question)
		for difficulty, entries := range byDifficulty {
			questions := make([]Question, 0, len(entries))
			for i, e := range entries {
				q := e
				q.Topic = topic
				q.Difficulty = difficulty
				q.ID = fmt.Sprintf("%s-%s-%d", slug(topic), difficulty, i+1)
				questions = append(questions, q)
			}
			b.byTopic[topic][difficulty] = questions
			b.all = append(b.all, questions...)
		}
		b.topics = append(b.topics, topic)
	}
	sort.Strings(b.topics)
	// Deterministic global order so callers can shuffle with their own source.
	sort.Slice(b.all, func(i, j int) bool { return b.all[i].ID < b.all[j].ID })
	return b
}

// Questions returns the pool for (topic, difficulty). The returned slice is a
// copy; callers may shuffle it freely.
func (b *Bank) Questions(topic, difficulty string) []Question {
	byDifficulty, ok := b.byTopic[topic]
	if !ok {
		return nil
	}
	pool := byDifficulty[difficulty]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// All returns a copy of every question in the bank.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.all))
	copy(out, b.all)
	return out
}

// Topics returns the sorted topic names present in the bank.
func (b *Bank) Topics() []string {
	out := make([]string, len(b.topics))
	copy(out, b.topics)
	return out
}

// HasTopic reports whether the bank carries any questions for topic.
func (b *Bank) HasTopic(topic string) bool {
	_, ok := b.byTopic[topic]
	return ok
}

// Size returns the total number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.all)
}

// TopicSize returns the number of questions for topic across all difficulties.
func (b *Bank) TopicSize(topic string) int {
	n := 0
	for _, pool := range b.byTopic[topic] {
		n += len(pool)
	}
	return n
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
