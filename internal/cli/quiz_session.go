// Package cli implements the interactive terminal session for generated
// quizzes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
)

// errEnd signals the natural end of an interactive session.
var errEnd = errors.New("end of session")

//go:generate mockgen -source=quiz_session.go -destination=../mocks/cli/mock_completer.go -package=mock_cli

// Completer records a finished quiz session.
type Completer interface {
	RecordCompletion(ctx context.Context, userID, quizID string, answers []int) (progress.Result, error)
}

// QuizSessionCLI asks one stored quiz question at a time, grades the answer
// immediately, and records the completed session.
type QuizSessionCLI struct {
	quiz      *artifact.Quiz
	userID    string
	completer Completer

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	correct      *color.Color
	wrong        *color.Color

	current int
	answers []int
}

func NewQuizSessionCLI(quiz *artifact.Quiz, userID string, completer Completer) *QuizSessionCLI {
	return &QuizSessionCLI{
		quiz:         quiz,
		userID:       userID,
		completer:    completer,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
}

// Run drives Session until the quiz is finished or the user interrupts.
func (cli *QuizSessionCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session asks the next question. After the last question it records the
// completion and returns errEnd.
func (cli *QuizSessionCLI) Session(ctx context.Context) error {
	if cli.current >= len(cli.quiz.Questions) {
		return cli.finish(ctx)
	}

	question := cli.quiz.Questions[cli.current]
	fmt.Fprintf(cli.stdoutWriter, "\nQuestion %d of %d\n", cli.current+1, len(cli.quiz.Questions))
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s\n", question.Question)
	for i, option := range question.Options {
		fmt.Fprintf(cli.stdoutWriter, "  %s. %s\n", optionLabel(i), option)
	}

	answer, err := cli.readAnswer(len(question.Options))
	if err != nil {
		return err
	}

	cli.answers = append(cli.answers, answer)
	cli.current++

	switch {
	case answer == progress.Unanswered:
		fmt.Fprintf(cli.stdoutWriter, "Skipped. The answer was %s. %s\n",
			optionLabel(question.CorrectAnswer), question.Options[question.CorrectAnswer])
	case answer == question.CorrectAnswer:
		_, _ = cli.correct.Fprintln(cli.stdoutWriter, "Correct!")
	default:
		_, _ = cli.wrong.Fprintf(cli.stdoutWriter, "Wrong. The answer was %s. %s\n",
			optionLabel(question.CorrectAnswer), question.Options[question.CorrectAnswer])
	}
	return nil
}

// readAnswer prompts until the user enters an option letter or skips.
func (cli *QuizSessionCLI) readAnswer(optionCount int) (int, error) {
	for {
		fmt.Fprintf(cli.stdoutWriter, "Your answer (A-%s, or S to skip): ", optionLabel(optionCount-1))

		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errEnd
			}
			return 0, fmt.Errorf("error reading input: %w", err)
		}

		input := strings.ToUpper(strings.TrimSpace(line))
		if input == "S" || input == "SKIP" {
			return progress.Unanswered, nil
		}
		if len(input) == 1 {
			if i := int(input[0] - 'A'); i >= 0 && i < optionCount {
				return i, nil
			}
		}
		fmt.Fprintln(cli.stdoutWriter, "Please answer with an option letter.")
	}
}

func (cli *QuizSessionCLI) finish(ctx context.Context) error {
	if cli.completer == nil || cli.userID == "" {
		score := progress.Score(cli.quiz.Questions, cli.answers)
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "\nYou scored %d%%.\n", score)
		return errEnd
	}

	result, err := cli.completer.RecordCompletion(ctx, cli.userID, cli.quiz.ID, cli.answers)
	if err != nil {
		return fmt.Errorf("completer.RecordCompletion > %w", err)
	}

	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "\nYou scored %d%%.\n", result.Score)
	fmt.Fprintf(cli.stdoutWriter, "Sessions completed: %d, average score: %.1f%%\n",
		result.TotalSessions, result.AverageScore)
	return errEnd
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}

// RenderFlashcards prints a generated flashcard set for terminal review.
func RenderFlashcards(w io.Writer, a generation.Artifact) {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)

	_, _ = bold.Fprintf(w, "%s\n", a.Title)
	for _, card := range a.Flashcards {
		fmt.Fprintf(w, "\n[%s]\n", card.Category)
		_, _ = bold.Fprintf(w, "%s\n", card.Front)
		_, _ = italic.Fprintf(w, "%s\n", card.Back)
	}
}
