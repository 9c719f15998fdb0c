package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
	"gopkg.in/yaml.v3"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
)

// Format selects the output file type of an export.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format: %q", s)
}

type quizDocument struct {
	ID        string             `yaml:"id"`
	Title     string             `yaml:"title"`
	CreatedAt string             `yaml:"created_at"`
	Questions []questionDocument `yaml:"questions"`
}

type questionDocument struct {
	ID            int      `yaml:"id"`
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
}

type flashcardSetDocument struct {
	ID        string              `yaml:"id"`
	Title     string              `yaml:"title"`
	CreatedAt string              `yaml:"created_at"`
	Cards     []flashcardDocument `yaml:"cards"`
}

type flashcardDocument struct {
	ID       int    `yaml:"id"`
	Front    string `yaml:"front"`
	Back     string `yaml:"back"`
	Category string `yaml:"category"`
}

// WriteQuiz exports the quiz into dir and returns the written file's path.
// The PDF format writes a markdown file first and converts it in place.
func WriteQuiz(dir string, quiz *artifact.Quiz, format Format) (string, error) {
	base := fmt.Sprintf("quiz-%s", quiz.ID)

	switch format {
	case FormatMarkdown:
		return writeFile(dir, base+".md", []byte(RenderQuizMarkdown(quiz)))
	case FormatPDF:
		markdownPath, err := writeFile(dir, base+".md", []byte(RenderQuizMarkdown(quiz)))
		if err != nil {
			return "", err
		}
		return convertMarkdownToPDF(markdownPath)
	case FormatYAML:
		doc := quizDocument{
			ID:        quiz.ID,
			Title:     quiz.Title,
			CreatedAt: quiz.CreatedAt.Format("2006-01-02"),
		}
		for _, q := range quiz.Questions {
			doc.Questions = append(doc.Questions, questionDocument{
				ID:            q.ID,
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			})
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("yaml.Marshal > %w", err)
		}
		return writeFile(dir, base+".yml", data)
	}
	return "", fmt.Errorf("unsupported export format: %q", format)
}

// WriteFlashcardSet exports the flashcard set into dir and returns the
// written file's path.
func WriteFlashcardSet(dir string, set *artifact.FlashcardSet, format Format) (string, error) {
	base := fmt.Sprintf("flashcards-%s", set.ID)

	switch format {
	case FormatMarkdown:
		return writeFile(dir, base+".md", []byte(RenderFlashcardSetMarkdown(set)))
	case FormatPDF:
		markdownPath, err := writeFile(dir, base+".md", []byte(RenderFlashcardSetMarkdown(set)))
		if err != nil {
			return "", err
		}
		return convertMarkdownToPDF(markdownPath)
	case FormatYAML:
		doc := flashcardSetDocument{
			ID:        set.ID,
			Title:     set.Title,
			CreatedAt: set.CreatedAt.Format("2006-01-02"),
		}
		for _, card := range set.FlashcardData {
			doc.Cards = append(doc.Cards, flashcardDocument{
				ID:       card.ID,
				Front:    card.Front,
				Back:     card.Back,
				Category: card.Category,
			})
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("yaml.Marshal > %w", err)
		}
		return writeFile(dir, base+".yml", data)
	}
	return "", fmt.Errorf("unsupported export format: %q", format)
}

func writeFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// convertMarkdownToPDF converts a markdown file to PDF next to the source file.
func convertMarkdownToPDF(markdownPath string) (string, error) {
	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
