package generation_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// sampleQuestion returns a schema-valid question whose text embeds n so
// tests can produce distinct questions.
func sampleQuestion(n int) domain.Question {
	return domain.Question{
		Question:      fmt.Sprintf("Question %d about the album?", n),
		Options:       []string{"Answer one", "Answer two", "Answer three", "Answer four"},
		CorrectAnswer: "Answer two",
		Trivia:        fmt.Sprintf("Trivia text %d with verifiable context about the album.", n),
	}
}

// sampleSet returns a complete, valid nine-question set.
func sampleSet() domain.QuestionSet {
	tier := func(base int) []domain.Question {
		return []domain.Question{sampleQuestion(base), sampleQuestion(base + 1), sampleQuestion(base + 2)}
	}
	return domain.QuestionSet{Easy: tier(0), Medium: tier(10), Hard: tier(20)}
}

// sampleSetJSON marshals sampleSet into provider wire format.
func sampleSetJSON(t *testing.T) string {
	t.Helper()
	set := sampleSet()
	data, err := json.Marshal(&set)
	if err != nil {
		t.Fatalf("marshal sample set: %v", err)
	}
	return string(data)
}
