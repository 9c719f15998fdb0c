package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/cli"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/export"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference/openai"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/plan"
)

func newGenerateCommand() *cobra.Command {
	generateCommand := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz or flashcards from study notes",
	}

	generateCommand.AddCommand(newGenerateKindCommand(generation.KindQuiz))
	generateCommand.AddCommand(newGenerateKindCommand(generation.KindFlashcards))

	return generateCommand
}

func newGenerateKindCommand(kind generation.Kind) *cobra.Command {
	var (
		title    string
		userID   string
		tierName string
	)

	command := &cobra.Command{
		Use:   fmt.Sprintf("%s [notes file]", kind),
		Short: fmt.Sprintf("Generate %s from a notes file or stdin", kind),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable is required")
			}

			notes, err := readNotes(args)
			if err != nil {
				return err
			}

			fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)
			openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
			defer func() {
				_ = openaiClient.Close()
			}()

			var store generation.Store
			if userID != "" {
				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				defer func() {
					_ = db.Close()
				}()
				store = artifact.NewRepository(db)
			}

			runner := cli.NewGenerateRunner(generation.NewGenerator(openaiClient, store))
			a, err := runner.Run(cmd.Context(), generation.Request{
				Notes:  notes,
				Kind:   kind,
				Title:  title,
				UserID: userID,
			}, plan.ParseTier(tierName))
			if err != nil {
				return err
			}

			printArtifact(os.Stdout, a)
			return nil
		},
	}

	command.Flags().StringVar(&title, "title", "", "title for the generated artifact")
	command.Flags().StringVar(&userID, "user", "", "user id to store the artifact for")
	command.Flags().StringVar(&tierName, "tier", "free", "plan tier for the word budget (free, student, premium)")

	return command
}

// readNotes reads the notes from the file argument, or stdin when no file is
// given.
func readNotes(args []string) (string, error) {
	if len(args) == 0 {
		notes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read notes from stdin: %w", err)
		}
		return string(notes), nil
	}

	notes, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read notes file: %w", err)
	}
	return string(notes), nil
}

func printArtifact(w io.Writer, a generation.Artifact) {
	switch a.Kind {
	case generation.KindQuiz:
		quiz := &artifact.Quiz{
			Title:          a.Title,
			Questions:      a.Questions,
			TotalQuestions: len(a.Questions),
			CreatedAt:      a.CreatedAt,
		}
		fmt.Fprint(w, export.RenderQuizMarkdown(quiz))
	case generation.KindFlashcards:
		cli.RenderFlashcards(w, a)
	}
}
