// Package export renders stored artifacts to files for offline study.
package export

import (
	"fmt"
	"strings"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
)

// optionLabels maps option indexes to the letters shown in rendered output.
var optionLabels = []string{"A", "B", "C", "D"}

// RenderQuizMarkdown renders a quiz with its answer key as a markdown document.
func RenderQuizMarkdown(quiz *artifact.Quiz) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", quiz.Title)
	fmt.Fprintf(&sb, "Created: %s\n\n", quiz.CreatedAt.Format("2006-01-02"))

	for _, question := range quiz.Questions {
		fmt.Fprintf(&sb, "## Question %d\n\n%s\n\n", question.ID, question.Question)
		for i, option := range question.Options {
			fmt.Fprintf(&sb, "- %s. %s\n", optionLabel(i), option)
		}
		if question.CorrectAnswer >= 0 && question.CorrectAnswer < len(question.Options) {
			fmt.Fprintf(&sb, "\n**Answer:** %s. %s\n\n",
				optionLabel(question.CorrectAnswer), question.Options[question.CorrectAnswer])
		}
	}
	return sb.String()
}

// RenderFlashcardSetMarkdown renders a flashcard set grouped by category.
func RenderFlashcardSetMarkdown(set *artifact.FlashcardSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", set.Title)
	fmt.Fprintf(&sb, "Created: %s\n\n", set.CreatedAt.Format("2006-01-02"))

	// Preserve card order inside each category.
	var categories []string
	grouped := map[string][]int{}
	for i, card := range set.FlashcardData {
		if _, ok := grouped[card.Category]; !ok {
			categories = append(categories, card.Category)
		}
		grouped[card.Category] = append(grouped[card.Category], i)
	}

	for _, category := range categories {
		fmt.Fprintf(&sb, "## %s\n\n", category)
		for _, i := range grouped[category] {
			card := set.FlashcardData[i]
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", card.Front, card.Back)
		}
	}
	return sb.String()
}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}
