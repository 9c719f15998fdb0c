package cli

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/plan"
)

//go:generate mockgen -source=generate.go -destination=../mocks/cli/mock_generator.go -package=mock_cli

// Generator runs one generation request end to end.
type Generator interface {
	Generate(ctx context.Context, req generation.Request, tier plan.Tier) (generation.Artifact, error)
}

// GenerateRunner retries whole generation requests. Provider outages and
// unusable model responses are worth another attempt; input errors are not.
type GenerateRunner struct {
	generator        Generator
	maxRetryAttempts uint
}

func NewGenerateRunner(generator Generator) *GenerateRunner {
	return &GenerateRunner{
		generator:        generator,
		maxRetryAttempts: 2,
	}
}

func (r *GenerateRunner) Run(ctx context.Context, req generation.Request, tier plan.Tier) (generation.Artifact, error) {
	var result generation.Artifact
	if err := retry.Do(
		func() error {
			a, err := r.generator.Generate(ctx, req, tier)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = a
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return generation.Artifact{}, err
	}
	return result, nil
}

func isRetryableError(err error) bool {
	return errors.Is(err, inference.ErrUnavailable) ||
		errors.Is(err, generation.ErrMalformedResponse) ||
		errors.Is(err, generation.ErrSchemaMismatch)
}
