package artifact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
)

var (
	// ErrNotFound reports a quiz id that does not exist for the user.
	ErrNotFound = errors.New("quiz not found")

	// ErrAlreadyCompleted reports a second completion attempt on a quiz whose
	// score has already been recorded.
	ErrAlreadyCompleted = errors.New("quiz already completed")
)

// Repository persists generated artifacts in MySQL. Every method is a single
// row operation; deduplication of retried inserts is left to the store's
// uniqueness constraint.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// SaveArtifact implements generation.Store, dispatching on the artifact kind.
func (r *Repository) SaveArtifact(ctx context.Context, userID, notes string, a generation.Artifact) error {
	if a.Kind == generation.KindFlashcards {
		return r.CreateFlashcardSet(ctx, userID, notes, a)
	}
	_, err := r.CreateQuiz(ctx, userID, notes, a)
	return err
}

// CreateQuiz inserts one quiz row and returns its id.
func (r *Repository) CreateQuiz(ctx context.Context, userID, notes string, a generation.Artifact) (string, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, user_id, title, notes_content, questions, total_questions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, a.Title, notes, QuestionList(a.Questions), len(a.Questions), a.CreatedAt, a.CreatedAt); err != nil {
		return "", fmt.Errorf("db.ExecContext(insert quiz) > %w", err)
	}
	return id, nil
}

// CreateFlashcardSet inserts one flashcard set row.
func (r *Repository) CreateFlashcardSet(ctx context.Context, userID, notes string, a generation.Artifact) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO flashcard_sets (id, user_id, title, notes_content, flashcard_data, total_cards, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, a.Title, notes, FlashcardList(a.Flashcards), len(a.Flashcards), a.CreatedAt, a.CreatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert flashcard set) > %w", err)
	}
	return nil
}

// GetQuiz returns the user's quiz by id, or ErrNotFound.
func (r *Repository) GetQuiz(ctx context.Context, id, userID string) (*Quiz, error) {
	var quiz Quiz
	err := r.db.GetContext(ctx, &quiz,
		"SELECT * FROM quizzes WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(quiz) > %w", err)
	}
	return &quiz, nil
}

// GetFlashcardSet returns the user's flashcard set by id, or ErrNotFound.
func (r *Repository) GetFlashcardSet(ctx context.Context, id, userID string) (*FlashcardSet, error) {
	var set FlashcardSet
	err := r.db.GetContext(ctx, &set,
		"SELECT * FROM flashcard_sets WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(flashcard set) > %w", err)
	}
	return &set, nil
}

// CompleteQuiz records the score for a finished session. The score and
// completion time are mutable exactly once: a second attempt returns
// ErrAlreadyCompleted.
func (r *Repository) CompleteQuiz(ctx context.Context, id, userID string, score int, completedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET score = ?, completed_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND completed_at IS NULL`,
		score, completedAt, completedAt, id, userID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(complete quiz) > %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		quiz, getErr := r.GetQuiz(ctx, id, userID)
		if getErr != nil {
			return getErr
		}
		if quiz.CompletedAt != nil {
			return ErrAlreadyCompleted
		}
		return ErrNotFound
	}
	return nil
}

// ListRecentQuizzes returns the user's newest quizzes.
func (r *Repository) ListRecentQuizzes(ctx context.Context, userID string, limit int) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.SelectContext(ctx, &quizzes,
		"SELECT * FROM quizzes WHERE user_id = ? ORDER BY created_at DESC LIMIT ?",
		userID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent quizzes) > %w", err)
	}
	return quizzes, nil
}

// ListRecentFlashcardSets returns the user's newest flashcard sets.
func (r *Repository) ListRecentFlashcardSets(ctx context.Context, userID string, limit int) ([]FlashcardSet, error) {
	var sets []FlashcardSet
	if err := r.db.SelectContext(ctx, &sets,
		"SELECT * FROM flashcard_sets WHERE user_id = ? ORDER BY created_at DESC LIMIT ?",
		userID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent flashcard sets) > %w", err)
	}
	return sets, nil
}
