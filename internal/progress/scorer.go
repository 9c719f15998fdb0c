// Package progress computes session scores and maintains the per-user
// running statistic over completed sessions.
package progress

import (
	"math"
	"time"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
)

// Unanswered marks a question the user skipped; it never counts as correct.
const Unanswered = -1

// Aggregate is the per-user running statistic. AverageScore is the exact
// arithmetic mean of every session score folded in so far.
type Aggregate struct {
	UserID        string    `db:"user_id"`
	TotalSessions int       `db:"total_sessions"`
	AverageScore  float64   `db:"average_score"`
	LastActiveAt  time.Time `db:"last_active_at"`
}

// Score computes the completion score for a quiz session. A question is
// correct iff the selected option index equals its CorrectAnswer. The result
// is 100*correct/total rounded half-up to the nearest integer.
func Score(questions []generation.QuizQuestion, answers []int) int {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, question := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	return int(math.Round(100 * float64(correct) / float64(len(questions))))
}

// Fold adds one session score to the aggregate using the incremental-mean
// closed form newAvg = (avg*n + s) / (n+1). Reading total and average from
// storage and folding with this form avoids drift; never keep a separate
// running sum.
func Fold(agg Aggregate, score int, completedAt time.Time) Aggregate {
	n := float64(agg.TotalSessions)
	agg.AverageScore = (agg.AverageScore*n + float64(score)) / (n + 1)
	agg.TotalSessions++
	agg.LastActiveAt = completedAt
	return agg
}
