// Package generation implements the content-generation pipeline: prompt
// construction, response validation and normalization, and idempotent
// persistence of the generated artifact.
package generation

import "time"

// Kind selects the generation mode and with it the prompt and output schema.
type Kind string

const (
	KindQuiz       Kind = "quiz"
	KindFlashcards Kind = "flashcards"
)

const (
	DefaultQuizTitle      = "Generated Quiz"
	DefaultFlashcardTitle = "Generated Flashcards"
)

// QuizQuestion is one multiple-choice question with exactly four options.
type QuizQuestion struct {
	ID            int      `json:"id" yaml:"id"`
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correctAnswer" yaml:"correct_answer"`
}

// Flashcard is one front/back card with a category grouping.
type Flashcard struct {
	ID       int    `json:"id" yaml:"id"`
	Front    string `json:"front" yaml:"front"`
	Back     string `json:"back" yaml:"back"`
	Category string `json:"category" yaml:"category"`
}

// Request describes one generation call. UserID is empty for anonymous
// requests, which skip persistence but still return the artifact.
type Request struct {
	Notes  string
	Kind   Kind
	Title  string
	UserID string
}

// Artifact is a validated, normalized quiz or flashcard set. Exactly one of
// Questions or Flashcards is populated, matching Kind.
type Artifact struct {
	Kind       Kind           `json:"kind" yaml:"kind"`
	Title      string         `json:"title" yaml:"title"`
	Questions  []QuizQuestion `json:"questions,omitempty" yaml:"questions,omitempty"`
	Flashcards []Flashcard    `json:"flashcards,omitempty" yaml:"flashcards,omitempty"`
	CreatedAt  time.Time      `json:"createdAt" yaml:"created_at"`
}

// ItemCount returns the number of items for the artifact's kind.
func (a Artifact) ItemCount() int {
	if a.Kind == KindQuiz {
		return len(a.Questions)
	}
	return len(a.Flashcards)
}

// DefaultTitle returns the fallback title for a kind when the caller gave none.
func DefaultTitle(kind Kind) string {
	if kind == KindFlashcards {
		return DefaultFlashcardTitle
	}
	return DefaultQuizTitle
}
