package generation

import "fmt"

// Count contracts the prompts impose on the model. The validator checks the
// quiz count, so the two must stay in lockstep with the schema text below.
const (
	QuizQuestionCount = 5
	FlashcardMinCount = 10
)

const (
	quizSystemPrompt      = "You are a helpful assistant that creates educational quizzes. Always respond with valid JSON."
	flashcardSystemPrompt = "You are a helpful assistant that creates educational flashcards. Always respond with valid JSON. Focus on extracting the most important and memorable concepts."
)

const quizPromptFormat = `Based on the following notes, create a quiz with exactly %d multiple-choice questions. Each question should have 4 options (A, B, C, D) with only one correct answer.

Notes:
%s

Please respond with a JSON object in this exact format:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0
    }
  ]
}

Make sure:
- Questions test understanding of key concepts from the notes
- Options are plausible but only one is clearly correct
- correctAnswer is the index (0-3) of the correct option
- Questions are clear and concise`

const flashcardPromptFormat = `Based on the following notes, create flashcards for the most important concepts, terms, definitions, and key points. Generate at least %d flashcards.

Notes:
%s

Please respond with a JSON object in this exact format:
{
  "flashcards": [
    {
      "front": "Term or concept or question",
      "back": "Definition, explanation, or answer",
      "category": "Category name (e.g., 'Definitions', 'Concepts', 'Facts', 'Processes')"
    }
  ]
}

Make sure:
- Front side contains key terms, concepts, or questions
- Back side contains clear definitions, explanations, or answers
- Categories help organize the flashcards by topic
- Focus on the most important and testable information
- Include various types: definitions, explanations, examples, and key facts`

// BuildPrompt returns the system and user prompts for a kind. Deterministic:
// the same notes always produce the same prompt.
func BuildPrompt(kind Kind, notes string) (systemPrompt, userPrompt string) {
	if kind == KindFlashcards {
		return flashcardSystemPrompt, fmt.Sprintf(flashcardPromptFormat, FlashcardMinCount, notes)
	}
	return quizSystemPrompt, fmt.Sprintf(quizPromptFormat, QuizQuestionCount, notes)
}
