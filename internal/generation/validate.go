package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// ValidateResponse parses the raw provider response and checks it against
// the question-set schema. On success the decoded set is returned exactly
// as the provider produced it; validation never normalizes or rewrites
// content. The check is a pure function of its input.
//
// Providers tend to wrap the JSON object in prose or markdown fences, so
// the decode step works on the outermost {...} region of the text.
//
// Duplicate question text across tiers passes validation. That is a
// deliberate relaxed policy inherited from the original data set, not an
// oversight; see domain.QuestionSet.Validate.
func ValidateResponse(raw string) (*domain.QuestionSet, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var tiers map[string]json.RawMessage
	if err := json.Unmarshal(payload, &tiers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := checkTierKeys(tiers); err != nil {
		return nil, err
	}

	set := &domain.QuestionSet{}
	for _, d := range domain.Difficulties() {
		questions, err := decodeTier(d, tiers[string(d)])
		if err != nil {
			return nil, err
		}

		switch d {
		case domain.DifficultyEasy:
			set.Easy = questions
		case domain.DifficultyMedium:
			set.Medium = questions
		case domain.DifficultyHard:
			set.Hard = questions
		}
	}

	return set, nil
}

// extractJSONObject returns the outermost {...} region of the text, which
// tolerates prose before and after the JSON object.
func extractJSONObject(raw string) ([]byte, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}
	return []byte(raw[start : end+1]), nil
}

// checkTierKeys verifies that the object carries exactly the three
// difficulty keys and nothing else.
func checkTierKeys(tiers map[string]json.RawMessage) error {
	for _, d := range domain.Difficulties() {
		if _, ok := tiers[string(d)]; !ok {
			return fmt.Errorf("%w: wrong shape: missing %q tier", ErrSchemaViolation, d)
		}
	}

	if len(tiers) != len(domain.Difficulties()) {
		for key := range tiers {
			if domain.Difficulty(key) != domain.DifficultyEasy &&
				domain.Difficulty(key) != domain.DifficultyMedium &&
				domain.Difficulty(key) != domain.DifficultyHard {
				return fmt.Errorf("%w: wrong shape: unexpected key %q", ErrSchemaViolation, key)
			}
		}
	}

	return nil
}

// decodeTier decodes one tier's question array and validates every entry.
func decodeTier(d domain.Difficulty, raw json.RawMessage) ([]domain.Question, error) {
	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: wrong shape: %q tier is not a question array: %v",
			ErrSchemaViolation, d, err)
	}

	if len(questions) != domain.QuestionsPerTier {
		return nil, fmt.Errorf("%w: wrong shape: %q tier has %d questions, want %d",
			ErrSchemaViolation, d, len(questions), domain.QuestionsPerTier)
	}

	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %q tier, question %d: %v", ErrSchemaViolation, d, i, err)
		}
	}

	return questions, nil
}
