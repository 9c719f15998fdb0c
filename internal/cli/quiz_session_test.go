package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	mock_cli "github.com/CJSBLACKPEARL/quizify-note-genie/internal/mocks/cli"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
)

func storedQuiz() *artifact.Quiz {
	return &artifact.Quiz{
		ID:    "quiz-1",
		Title: "Cell Biology",
		Questions: artifact.QuestionList{
			{
				ID:            1,
				Question:      "What organelle produces ATP?",
				Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi"},
				CorrectAnswer: 1,
			},
			{
				ID:            2,
				Question:      "Where does photosynthesis happen?",
				Options:       []string{"Chloroplast", "Vacuole", "Lysosome", "Cytosol"},
				CorrectAnswer: 0,
			},
		},
		TotalQuestions: 2,
	}
}

func newScriptedSession(t *testing.T, input string, completer Completer) (*QuizSessionCLI, *bytes.Buffer) {
	t.Helper()

	// Keep test output free of ANSI escapes.
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	session := NewQuizSessionCLI(storedQuiz(), "user-1", completer)
	output := &bytes.Buffer{}
	session.stdinReader = bufio.NewReader(strings.NewReader(input))
	session.stdoutWriter = output
	return session, output
}

func TestQuizSessionCLI_Session(t *testing.T) {
	t.Run("grades answers and records the completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		completer := mock_cli.NewMockCompleter(ctrl)
		completer.EXPECT().
			RecordCompletion(gomock.Any(), "user-1", "quiz-1", []int{1, 2}).
			Return(progress.Result{Score: 50, TotalSessions: 2, AverageScore: 75}, nil)

		session, output := newScriptedSession(t, "b\nc\n", completer)

		require.NoError(t, session.Session(context.Background()))
		require.NoError(t, session.Session(context.Background()))
		assert.ErrorIs(t, session.Session(context.Background()), errEnd)

		got := output.String()
		assert.Contains(t, got, "Question 1 of 2")
		assert.Contains(t, got, "Correct!")
		assert.Contains(t, got, "Wrong. The answer was A. Chloroplast")
		assert.Contains(t, got, "You scored 50%.")
		assert.Contains(t, got, "Sessions completed: 2, average score: 75.0%")
	})

	t.Run("skipping leaves the question unanswered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		completer := mock_cli.NewMockCompleter(ctrl)
		completer.EXPECT().
			RecordCompletion(gomock.Any(), "user-1", "quiz-1", []int{progress.Unanswered, 0}).
			Return(progress.Result{Score: 50, TotalSessions: 1, AverageScore: 50}, nil)

		session, output := newScriptedSession(t, "s\na\n", completer)

		require.NoError(t, session.Session(context.Background()))
		require.NoError(t, session.Session(context.Background()))
		assert.ErrorIs(t, session.Session(context.Background()), errEnd)

		assert.Contains(t, output.String(), "Skipped. The answer was B. Mitochondria")
	})

	t.Run("reprompts on invalid input", func(t *testing.T) {
		session, output := newScriptedSession(t, "z\n7\nb\n", nil)

		require.NoError(t, session.Session(context.Background()))

		got := output.String()
		assert.Equal(t, 2, strings.Count(got, "Please answer with an option letter."))
		assert.Contains(t, got, "Correct!")
	})

	t.Run("anonymous sessions score locally without recording", func(t *testing.T) {
		previous := color.NoColor
		color.NoColor = true
		t.Cleanup(func() { color.NoColor = previous })

		session := NewQuizSessionCLI(storedQuiz(), "", nil)
		output := &bytes.Buffer{}
		session.stdinReader = bufio.NewReader(strings.NewReader("b\na\n"))
		session.stdoutWriter = output

		require.NoError(t, session.Session(context.Background()))
		require.NoError(t, session.Session(context.Background()))
		assert.ErrorIs(t, session.Session(context.Background()), errEnd)

		assert.Contains(t, output.String(), "You scored 100%.")
	})

	t.Run("end of input ends the session", func(t *testing.T) {
		session, _ := newScriptedSession(t, "", nil)
		assert.ErrorIs(t, session.Session(context.Background()), errEnd)
	})
}

func TestRenderFlashcards(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	output := &bytes.Buffer{}
	RenderFlashcards(output, generation.Artifact{
		Kind:  generation.KindFlashcards,
		Title: "Generated Flashcards",
		Flashcards: []generation.Flashcard{
			{ID: 1, Front: "ATP", Back: "Adenosine triphosphate", Category: "Energy"},
			{ID: 2, Front: "Osmosis", Back: "Diffusion of water", Category: "General"},
		},
	})

	got := output.String()
	assert.Contains(t, got, "Generated Flashcards")
	assert.Contains(t, got, "[Energy]")
	assert.Contains(t, got, "ATP")
	assert.Contains(t, got, "Diffusion of water")
}
