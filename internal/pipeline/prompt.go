package pipeline

import "fmt"

const summaryPrompt = "Summarize this entire video. Include specific examples from the video. " +
	"Then create a quiz with answer key based on the information in the video."

const quizPromptTemplate = "Summarize the entire video, and create a quiz with exactly %d multiple choice questions. " +
	"The questions should be based entirely on the content of the video and should not include outside information. " +
	"Each question should be distinct, based on key moments, facts, and events from the video, and include timestamps " +
	"in the format HH:MM:SS for each question. " +
	"Ensure the quiz covers the video in chronological order, starting with the introduction and moving through key " +
	"scenes and actions until the conclusion. " +
	"Provide an answer key as well, listing the timestamp for each answer. " +
	"Questions should be evenly spread out throughout the entire video (ie don't just ask all questions in the first few minutes). " +
	"There should be questions covering the beginning, middle, and end of the video. " +
	"Please make sure the quiz contains exactly %d multiple choice questions."

// BuildQuizPrompt returns the instruction text for a quiz of n questions
func BuildQuizPrompt(n int) string {
	return fmt.Sprintf(quizPromptTemplate, n, n)
}

// BuildSummaryPrompt returns the instruction text for a summary with answer-keyed quiz
func BuildSummaryPrompt() string {
	return summaryPrompt
}
