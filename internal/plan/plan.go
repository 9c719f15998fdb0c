// Package plan provides subscription tiers and the word-budget check that
// gates generation requests before any provider call is made.
package plan

import (
	"fmt"
	"strings"
)

// Tier is a subscription level controlling the word budget for notes input.
type Tier string

const (
	TierFree    Tier = "free"
	TierStudent Tier = "student"
	TierPremium Tier = "premium"
)

// Unlimited marks a tier without a word budget.
const Unlimited = -1

// ParseTier maps a stored plan string to a Tier. Unknown values fall back to
// the free tier so a corrupted or missing plan never unlocks a larger budget.
func ParseTier(s string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierStudent:
		return TierStudent
	case TierPremium:
		return TierPremium
	default:
		return TierFree
	}
}

// WordLimit returns the maximum number of words the tier accepts, or Unlimited.
func (t Tier) WordLimit() int {
	switch t {
	case TierStudent:
		return 2000
	case TierPremium:
		return Unlimited
	default:
		return 500
	}
}

// CountWords counts whitespace-delimited non-empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// BudgetExceededError reports a notes input over the tier's word budget.
type BudgetExceededError struct {
	Tier      Tier
	WordCount int
	Limit     int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("notes contain %d words but the %s plan allows only %d", e.WordCount, e.Tier, e.Limit)
}

// CheckBudget returns a BudgetExceededError when the notes exceed the tier's
// word limit. It performs no I/O and must run before the generation request.
func CheckBudget(notes string, tier Tier) error {
	limit := tier.WordLimit()
	if limit == Unlimited {
		return nil
	}
	count := CountWords(notes)
	if count > limit {
		return &BudgetExceededError{Tier: tier, WordCount: count, Limit: limit}
	}
	return nil
}
