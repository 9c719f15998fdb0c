package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
)

func sampleQuiz() *artifact.Quiz {
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
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleFlashcardSet() *artifact.FlashcardSet {
	return &artifact.FlashcardSet{
		ID:    "set-1",
		Title: "Cell Biology Cards",
		FlashcardData: artifact.FlashcardList{
			{ID: 1, Front: "ATP", Back: "Adenosine triphosphate", Category: "Energy"},
			{ID: 2, Front: "Chloroplast", Back: "Site of photosynthesis", Category: "Organelles"},
			{ID: 3, Front: "Mitochondria", Back: "Site of respiration", Category: "Organelles"},
		},
		TotalCards: 3,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "markdown", want: FormatMarkdown},
		{input: "md", want: FormatMarkdown},
		{input: "PDF", want: FormatPDF},
		{input: " yaml ", want: FormatYAML},
		{input: "yml", want: FormatYAML},
		{input: "docx", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderQuizMarkdown(t *testing.T) {
	got := RenderQuizMarkdown(sampleQuiz())

	assert.Contains(t, got, "# Cell Biology")
	assert.Contains(t, got, "## Question 1")
	assert.Contains(t, got, "- B. Mitochondria")
	assert.Contains(t, got, "**Answer:** B. Mitochondria")
	assert.Contains(t, got, "**Answer:** A. Chloroplast")
}

func TestRenderFlashcardSetMarkdown(t *testing.T) {
	got := RenderFlashcardSetMarkdown(sampleFlashcardSet())

	assert.Contains(t, got, "# Cell Biology Cards")
	assert.Contains(t, got, "## Energy")
	assert.Contains(t, got, "## Organelles")
	assert.Contains(t, got, "### ATP")
	// Categories appear once even when several cards share one.
	assert.Equal(t, 1, strings.Count(got, "## Organelles"))
}

func TestWriteQuiz(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		dir := t.TempDir()
		path, err := WriteQuiz(dir, sampleQuiz(), FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "quiz-quiz-1.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Cell Biology")
	})

	t.Run("yaml round-trips", func(t *testing.T) {
		dir := t.TempDir()
		path, err := WriteQuiz(dir, sampleQuiz(), FormatYAML)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var doc quizDocument
		require.NoError(t, yaml.Unmarshal(content, &doc))
		assert.Equal(t, "quiz-1", doc.ID)
		require.Len(t, doc.Questions, 2)
		assert.Equal(t, 1, doc.Questions[0].CorrectAnswer)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := WriteQuiz(t.TempDir(), sampleQuiz(), Format("docx"))
		assert.Error(t, err)
	})
}

func TestWriteFlashcardSet(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFlashcardSet(dir, sampleFlashcardSet(), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flashcards-set-1.yml"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc flashcardSetDocument
	require.NoError(t, yaml.Unmarshal(content, &doc))
	require.Len(t, doc.Cards, 3)
	assert.Equal(t, "Energy", doc.Cards[0].Category)
}
