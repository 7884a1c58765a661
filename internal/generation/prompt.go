package generation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// DefaultPromptTemplate asks the provider for the complete nine-question
// batch of one album in a single exchange. The schema constraints that
// ValidateResponse later enforces are spelled out in the request itself so
// that well-behaved providers rarely trigger a retry.
const DefaultPromptTemplate = `Create realistic, well-researched trivia questions in {{.Language}} about the album "{{.Album}}" by {{.Artist}}, released in {{.Year}}.

Return EXACTLY 3 easy, 3 medium and 3 hard questions.

Difficulty guidance:
- easy: basic, easily researched facts (singles, chart positions, well-known songs)
- medium: more detailed information (recording process, contributing musicians, musical particulars)
- hard: specific expert knowledge (technical details, historical context, cultural significance)

Tie each question to its assigned category:
- easy: {{join .EasyCategories}}
- medium: {{join .MediumCategories}}
- hard: {{join .HardCategories}}

Every question MUST:
1. Mention the artist "{{.Artist}}" and the album "{{.Album}}" explicitly in the question and in the trivia text
2. Be based on real, verifiable facts
3. Offer EXACTLY 4 answer options, all plausible, none absurd
4. Not prefix options with letters (A, B, C...) or numbers
5. Have "correctAnswer" textually identical to exactly one entry of "options"
6. Carry a non-empty "trivia" explanation of 3 to 5 sentences that confirms the correct answer and adds verifiable context

Respond with ONLY a JSON object in exactly this shape, no surrounding prose:
{
  "easy":   [{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "...", "trivia": "..."}, ...],
  "medium": [...],
  "hard":   [...]
}`

// promptData is the data passed to the prompt template.
type promptData struct {
	Artist           string
	Album            string
	Year             string
	Language         string
	EasyCategories   []domain.Category
	MediumCategories []domain.Category
	HardCategories   []domain.Category
}

// PromptBuilder renders the generation prompt for one album. Building a
// prompt has no side effects; identical inputs produce identical prompts.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the given template text, falling back to
// DefaultPromptTemplate when text is empty.
func NewPromptBuilder(text string) (*PromptBuilder, error) {
	if text == "" {
		text = DefaultPromptTemplate
	}

	tmpl, err := template.New("trivia").Funcs(template.FuncMap{
		"join": joinCategories,
	}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for the album in the given language, with the
// pre-selected categories per difficulty tier.
func (b *PromptBuilder) Build(
	album domain.Album,
	language string,
	categories map[domain.Difficulty][]domain.Category,
) (string, error) {
	if err := album.Validate(); err != nil {
		return "", err
	}
	if language == "" {
		return "", fmt.Errorf("%w: language cannot be empty", ErrInvalidConfig)
	}

	data := promptData{
		Artist:           album.Artist,
		Album:            album.Title,
		Year:             album.Year,
		Language:         language,
		EasyCategories:   categories[domain.DifficultyEasy],
		MediumCategories: categories[domain.DifficultyMedium],
		HardCategories:   categories[domain.DifficultyHard],
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

func joinCategories(categories []domain.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, "; ")
}
