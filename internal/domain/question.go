package domain

import "errors"

// Question-specific validation errors
var (
	// ErrQuestionTextEmpty is returned when a question has no text.
	ErrQuestionTextEmpty = errors.New("question text cannot be empty")

	// ErrOptionCount is returned when a question does not have exactly four options.
	ErrOptionCount = errors.New("question must have exactly 4 options")

	// ErrOptionEmpty is returned when one of a question's options is empty.
	ErrOptionEmpty = errors.New("question options cannot be empty")

	// ErrOptionsNotDistinct is returned when two options carry the same text.
	ErrOptionsNotDistinct = errors.New("question options must be distinct")

	// ErrCorrectAnswerNotInOptions is returned when the correct answer does not
	// textually match any of the options. The match is case-sensitive.
	ErrCorrectAnswerNotInOptions = errors.New("correctAnswer must equal one of the options")

	// ErrTriviaEmpty is returned when a question has no trivia explanation.
	ErrTriviaEmpty = errors.New("trivia cannot be empty")

	// ErrTierLength is returned when a difficulty tier does not hold exactly
	// three questions.
	ErrTierLength = errors.New("each difficulty tier must hold exactly 3 questions")
)

// QuestionsPerTier is the number of questions generated for every
// difficulty tier of an album.
const QuestionsPerTier = 3

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// Difficulty identifies one of the three question tiers.
type Difficulty string

// The three difficulty tiers, in ascending order.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns the tiers in their canonical order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Question represents a single multiple-choice trivia question.
// The correct answer is identified by textual membership in the options,
// not by index.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Trivia        string   `json:"trivia"`
}

// Validate checks if the Question has valid data.
// Returns an error if any field fails validation.
func (q *Question) Validate() error {
	if q.Question == "" {
		return ErrQuestionTextEmpty
	}

	if len(q.Options) != OptionsPerQuestion {
		return ErrOptionCount
	}

	seen := make(map[string]struct{}, OptionsPerQuestion)
	for _, opt := range q.Options {
		if opt == "" {
			return ErrOptionEmpty
		}
		if _, dup := seen[opt]; dup {
			return ErrOptionsNotDistinct
		}
		seen[opt] = struct{}{}
	}

	if _, ok := seen[q.CorrectAnswer]; !ok {
		return ErrCorrectAnswerNotInOptions
	}

	if q.Trivia == "" {
		return ErrTriviaEmpty
	}

	return nil
}

// QuestionSet holds the full question batch for one album: exactly three
// questions per difficulty tier. The JSON field names match the wire format
// of the generated output files.
type QuestionSet struct {
	Easy   []Question `json:"easy"`
	Medium []Question `json:"medium"`
	Hard   []Question `json:"hard"`
}

// Tier returns the questions of the given difficulty tier.
func (s *QuestionSet) Tier(d Difficulty) []Question {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	}
	return nil
}

// Validate checks that every tier holds exactly QuestionsPerTier valid
// questions. Duplicate question text across tiers is tolerated; the
// generative provider occasionally repeats itself and the quiz frontend
// copes with that.
func (s *QuestionSet) Validate() error {
	for _, d := range Difficulties() {
		tier := s.Tier(d)
		if len(tier) != QuestionsPerTier {
			return ErrTierLength
		}
		for i := range tier {
			if err := tier[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
