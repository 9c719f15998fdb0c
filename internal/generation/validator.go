package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// rawQuestion mirrors the schema the quiz prompt contracts. Model-provided ids
// are ignored; the validator reassigns them.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

type rawFlashcard struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

// ParseArtifact validates the raw model output against the schema for kind and
// returns a normalized artifact. It is a pure transformation: no network, no
// store. Quiz violations abort the whole artifact because a partial quiz
// breaks the scoring model; flashcard category is the only repairable field.
func ParseArtifact(raw string, kind Kind, title string, createdAt time.Time) (Artifact, error) {
	if title == "" {
		title = DefaultTitle(kind)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payload); err != nil {
		return Artifact{}, fmt.Errorf("%w: json.Unmarshal > %v", ErrMalformedResponse, err)
	}

	artifact := Artifact{Kind: kind, Title: title, CreatedAt: createdAt}
	switch kind {
	case KindFlashcards:
		flashcards, err := parseFlashcards(payload)
		if err != nil {
			return Artifact{}, err
		}
		artifact.Flashcards = flashcards
	default:
		questions, err := parseQuestions(payload)
		if err != nil {
			return Artifact{}, err
		}
		artifact.Questions = questions
	}
	return artifact, nil
}

func parseQuestions(payload map[string]json.RawMessage) ([]QuizQuestion, error) {
	collection, ok := payload["questions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing top-level \"questions\"", ErrSchemaMismatch)
	}

	var rawQuestions []rawQuestion
	if err := json.Unmarshal(collection, &rawQuestions); err != nil {
		return nil, fmt.Errorf("%w: \"questions\" is not a valid question array: %v", ErrSchemaMismatch, err)
	}
	if len(rawQuestions) < QuizQuestionCount {
		return nil, fmt.Errorf("%w: got %d questions, contracted %d", ErrSchemaMismatch, len(rawQuestions), QuizQuestionCount)
	}

	questions := make([]QuizQuestion, 0, len(rawQuestions))
	for i, q := range rawQuestions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has empty text", ErrSchemaMismatch, i+1)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, expected 4", ErrSchemaMismatch, i+1, len(q.Options))
		}
		for _, option := range q.Options {
			if strings.TrimSpace(option) == "" {
				return nil, fmt.Errorf("%w: question %d has an empty option", ErrSchemaMismatch, i+1)
			}
		}
		if q.CorrectAnswer == nil || *q.CorrectAnswer < 0 || *q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("%w: question %d has an invalid correctAnswer", ErrSchemaMismatch, i+1)
		}

		questions = append(questions, QuizQuestion{
			ID:            i + 1,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
		})
	}
	return questions, nil
}

func parseFlashcards(payload map[string]json.RawMessage) ([]Flashcard, error) {
	collection, ok := payload["flashcards"]
	if !ok {
		return nil, fmt.Errorf("%w: missing top-level \"flashcards\"", ErrSchemaMismatch)
	}

	var rawFlashcards []rawFlashcard
	if err := json.Unmarshal(collection, &rawFlashcards); err != nil {
		return nil, fmt.Errorf("%w: \"flashcards\" is not a valid flashcard array: %v", ErrSchemaMismatch, err)
	}
	if len(rawFlashcards) == 0 {
		return nil, fmt.Errorf("%w: empty flashcard array", ErrSchemaMismatch)
	}

	flashcards := make([]Flashcard, 0, len(rawFlashcards))
	for i, card := range rawFlashcards {
		if strings.TrimSpace(card.Front) == "" {
			return nil, fmt.Errorf("%w: flashcard %d has an empty front", ErrSchemaMismatch, i+1)
		}
		if strings.TrimSpace(card.Back) == "" {
			return nil, fmt.Errorf("%w: flashcard %d has an empty back", ErrSchemaMismatch, i+1)
		}

		category := card.Category
		if strings.TrimSpace(category) == "" {
			category = "General"
		}

		flashcards = append(flashcards, Flashcard{
			ID:       i + 1,
			Front:    card.Front,
			Back:     card.Back,
			Category: category,
		})
	}
	return flashcards, nil
}

// extractJSON returns the first complete top-level JSON object in content,
// skipping any prose the model wrapped around it. Braces inside strings are
// not counted.
func extractJSON(content string) string {
	firstBrace := -1
	braceCount := 0
	inString := false
	escapeNext := false

	for i, ch := range content {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}

		if !inString {
			switch ch {
			case '{':
				if firstBrace == -1 {
					firstBrace = i
				}
				braceCount++
			case '}':
				braceCount--
				if braceCount == 0 && firstBrace != -1 {
					return content[firstBrace : i+1]
				}
			}
		}
	}

	return content
}
