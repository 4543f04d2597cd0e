package generation

import (
	"fmt"
	"strings"

	"study-service/internal/models"
)

var difficultyDescriptions = map[models.Difficulty]string{
	models.DifficultyEasy:   "basic, fundamental concepts that test understanding of simple ideas",
	models.DifficultyMedium: "intermediate concepts that require application of knowledge and some critical thinking",
	models.DifficultyHard:   "advanced concepts that require deep understanding, analysis, and complex reasoning",
}

var questionTypeInstructions = map[models.QuestionType]string{
	models.TypeMultipleChoice: "multiple choice questions with 4 options (A, B, C, D)",
	models.TypeTrueFalse:      "true/false questions",
	models.TypeShortAnswer:    "short answer questions that require a brief written response",
	models.TypeFillBlank:      "fill-in-the-blank questions with one or two blanks",
}

var complexityInstructions = map[models.Complexity]string{
	models.ComplexityBeginner:     "Explain in very simple language with short sentences and relatable everyday examples. Assume no prior knowledge.",
	models.ComplexityIntermediate: "Provide a clear, comprehensive explanation for a general audience. Use proper terminology but keep it accessible.",
	models.ComplexityAdvanced:     "Give an in-depth, thorough explanation with examples, context, and related concepts for someone who wants real depth.",
}

const quizSystemPrompt = "You are an expert educator who creates high-quality educational quizzes. Generate questions that are clear, accurate, and educational. Return ONLY valid JSON."

func quizPrompt(topic string, difficulty models.Difficulty, count int, types []models.QuestionType) string {
	instructions := make([]string, 0, len(types))
	for _, t := range types {
		instructions = append(instructions, questionTypeInstructions[t])
	}
	return fmt.Sprintf(`Create a %s level quiz with %d questions about "%s". The difficulty should focus on %s.

Question types to include: %s

Rules:
1. Distribute question types evenly across the quiz
2. For multiple choice: provide exactly 4 options labelled "A. ...", "B. ...", "C. ...", "D. ...", with only ONE correct answer; correct_answer is the letter
3. For true/false: correct_answer is "True" or "False"
4. For fill-in-the-blank: use ___ to indicate blanks
5. Every question MUST include an explanation that teaches the concept, not just states the answer
6. Avoid trick questions or ambiguous wording

Return ONLY valid JSON in this exact format:
{"questions":[{"type":"multiple-choice","prompt":"...","options":["A. ...","B. ...","C. ...","D. ..."],"correct_answer":"B","explanation":"..."},{"type":"true-false","prompt":"...","correct_answer":"False","explanation":"..."}]}

Generate exactly %d questions.`,
		difficulty, count, topic, difficultyDescriptions[difficulty], strings.Join(instructions, ", "), count)
}

const flashcardSystemPrompt = "You are an expert educator who creates flashcards for studying and memorization. Return ONLY valid JSON."

func flashcardsPrompt(topic string, count int) string {
	return fmt.Sprintf(`Create %d high-quality flashcards covering the most important concepts, terms, and ideas about "%s".

Rules:
1. Front of card: a term, concept, or question (concise, 1-10 words)
2. Back of card: definition, explanation, or answer (clear, 1-3 sentences)
3. Each card is atomic - one concept only
4. Order cards logically, foundational concepts first
5. Ensure variety, do not repeat the same information

Return ONLY valid JSON in this exact format:
{"cards":[{"front":"Photosynthesis","back":"The process by which plants convert light energy into chemical energy."}]}

Generate exactly %d flashcards.`, count, topic, count)
}

const explainSystemPrompt = "You are a knowledgeable tutor helping a student understand a concept. Keep explanations engaging, accurate, and educational."

func explanationPrompt(topic string, complexity models.Complexity, context string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the following topic: %s\n\n%s\n", topic, complexityInstructions[complexity])
	if context != "" {
		fmt.Fprintf(&b, "\nAdditional context from the student: %s\n", context)
	}
	b.WriteString("\nInclude key concepts, examples where appropriate, and finish with 2-3 related topics worth exploring.")
	return b.String()
}
