// Package artifact provides persisted quiz and flashcard set models and their
// MySQL repository.
package artifact

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
)

// QuestionList stores quiz questions as a JSON column.
type QuestionList []generation.QuizQuestion

func (q QuestionList) Value() (driver.Value, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(questions) > %w", err)
	}
	return data, nil
}

func (q *QuestionList) Scan(src any) error {
	data, err := jsonColumnBytes(src)
	if err != nil {
		return fmt.Errorf("questions column: %w", err)
	}
	return json.Unmarshal(data, q)
}

// FlashcardList stores flashcards as a JSON column.
type FlashcardList []generation.Flashcard

func (f FlashcardList) Value() (driver.Value, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(flashcards) > %w", err)
	}
	return data, nil
}

func (f *FlashcardList) Scan(src any) error {
	data, err := jsonColumnBytes(src)
	if err != nil {
		return fmt.Errorf("flashcard_data column: %w", err)
	}
	return json.Unmarshal(data, f)
}

func jsonColumnBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", src)
	}
}

// Quiz is a persisted generated quiz. Score and CompletedAt are set exactly
// once when a session finishes; every other column is immutable after insert.
type Quiz struct {
	ID             string       `db:"id"`
	UserID         string       `db:"user_id"`
	Title          string       `db:"title"`
	NotesContent   string       `db:"notes_content"`
	Questions      QuestionList `db:"questions"`
	TotalQuestions int          `db:"total_questions"`
	Score          *int         `db:"score"`
	CompletedAt    *time.Time   `db:"completed_at"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// FlashcardSet is a persisted generated flashcard set.
type FlashcardSet struct {
	ID            string        `db:"id"`
	UserID        string        `db:"user_id"`
	Title         string        `db:"title"`
	NotesContent  string        `db:"notes_content"`
	FlashcardData FlashcardList `db:"flashcard_data"`
	TotalCards    int           `db:"total_cards"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
