package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
)

//go:generate mockgen -source=service.go -destination=../mocks/progress/mock_stores.go -package=mock_progress

// QuizStore is the slice of the artifact repository the completion flow needs.
type QuizStore interface {
	GetQuiz(ctx context.Context, id, userID string) (*artifact.Quiz, error)
	CompleteQuiz(ctx context.Context, id, userID string, score int, completedAt time.Time) error
}

// AggregateStore reads and upserts progress aggregates.
type AggregateStore interface {
	Get(ctx context.Context, userID string) (*Aggregate, error)
	Upsert(ctx context.Context, agg Aggregate) error
}

// Result is the acknowledgement for a recorded completion.
type Result struct {
	Score         int
	TotalSessions int
	AverageScore  float64
}

// Service folds completed quiz sessions into the user's aggregate.
type Service struct {
	quizzes    QuizStore
	aggregates AggregateStore
	now        func() time.Time
}

func NewService(quizzes QuizStore, aggregates AggregateStore) *Service {
	return &Service{
		quizzes:    quizzes,
		aggregates: aggregates,
		now:        time.Now,
	}
}

// RecordCompletion scores the session against the originating quiz, marks the
// quiz completed, and folds the score into the user's aggregate. Unlike
// artifact persistence, a store failure here is surfaced: silently losing a
// score update would break the statistic the user sees.
func (s *Service) RecordCompletion(ctx context.Context, userID, quizID string, answers []int) (Result, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID, userID)
	if err != nil {
		return Result{}, fmt.Errorf("quizzes.GetQuiz > %w", err)
	}

	completedAt := s.now()
	score := Score(quiz.Questions, answers)
	if err := s.quizzes.CompleteQuiz(ctx, quizID, userID, score, completedAt); err != nil {
		return Result{}, fmt.Errorf("quizzes.CompleteQuiz > %w", err)
	}

	existing, err := s.aggregates.Get(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("aggregates.Get > %w", err)
	}
	if existing == nil {
		existing = &Aggregate{UserID: userID}
	}

	folded := Fold(*existing, score, completedAt)
	if err := s.aggregates.Upsert(ctx, folded); err != nil {
		return Result{}, fmt.Errorf("aggregates.Upsert > %w", err)
	}

	return Result{
		Score:         score,
		TotalSessions: folded.TotalSessions,
		AverageScore:  folded.AverageScore,
	}, nil
}

// Overview returns the user's aggregate, zero-valued when no session has been
// recorded yet.
func (s *Service) Overview(ctx context.Context, userID string) (Aggregate, error) {
	existing, err := s.aggregates.Get(ctx, userID)
	if err != nil {
		return Aggregate{}, fmt.Errorf("aggregates.Get > %w", err)
	}
	if existing == nil {
		return Aggregate{UserID: userID}, nil
	}
	return *existing, nil
}
