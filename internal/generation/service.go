package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/plan"
)

//go:generate mockgen -source=service.go -destination=../mocks/generation/mock_store.go -package=mock_generation

// Sampling parameters per kind. Flashcards get a larger token budget because
// the contract asks for more items.
const (
	defaultTemperature = 0.7
	quizMaxTokens      = 2000
	flashcardMaxTokens = 3000
)

// Store persists generated artifacts. Implementations own a single-row insert;
// the pipeline never assumes transactional linkage with anything else.
type Store interface {
	SaveArtifact(ctx context.Context, userID, notes string, artifact Artifact) error
}

// Generator runs the full pipeline: word budget, prompt, provider call,
// validation, persistence. It holds no state between requests, so any number
// of generations may run concurrently.
type Generator struct {
	client inference.Client
	store  Store
	now    func() time.Time
}

func NewGenerator(client inference.Client, store Store) *Generator {
	return &Generator{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// Generate produces a validated artifact for the request. The word budget is
// re-checked here even when the caller already checked it, so a provider call
// is never issued for an over-budget input. A store failure after a successful
// generation is logged and swallowed: the caller still gets the content it
// paid for.
func (g *Generator) Generate(ctx context.Context, req Request, tier plan.Tier) (Artifact, error) {
	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		return Artifact{}, ErrEmptyNotes
	}
	if err := plan.CheckBudget(notes, tier); err != nil {
		return Artifact{}, fmt.Errorf("plan.CheckBudget > %w", err)
	}

	systemPrompt, userPrompt := BuildPrompt(req.Kind, notes)
	maxTokens := quizMaxTokens
	if req.Kind == KindFlashcards {
		maxTokens = flashcardMaxTokens
	}

	raw, err := g.client.Complete(ctx, inference.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  defaultTemperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("client.Complete > %w", err)
	}

	artifact, err := ParseArtifact(raw, req.Kind, req.Title, g.now())
	if err != nil {
		return Artifact{}, fmt.Errorf("ParseArtifact > %w", err)
	}

	if req.UserID != "" {
		if err := g.store.SaveArtifact(ctx, req.UserID, notes, artifact); err != nil {
			slog.Default().Error("failed to save generated artifact, returning it anyway",
				"userId", req.UserID,
				"kind", artifact.Kind,
				"error", err)
		}
	}

	return artifact, nil
}
