package summarizer

import (
	"fmt"
	"smartsummarizer/internal/domain"
)

const (
	summarySystemPrompt   = "You are a helpful assistant that summarizes text clearly and concisely."
	sentimentSystemPrompt = "You are a sentiment analysis assistant. Reply with Positive, Neutral, or Negative."

	shortInstruction    = "Provide a brief summary in 2-3 sentences."
	detailedInstruction = "Provide a detailed summary that covers all of the key points."
	bulletInstruction   = "Provide the summary as a list of concise bullet points."
	kidInstruction      = "Explain the text in simple words that a 10-year-old child can understand."
)

// StyleInstruction returns the fixed instruction for t. Unknown types get the short one.
func StyleInstruction(t domain.SummaryType) string {
	switch t {
	case domain.SummaryTypeDetailed:
		return detailedInstruction
	case domain.SummaryTypeBullet:
		return bulletInstruction
	case domain.SummaryTypeKid:
		return kidInstruction
	case domain.SummaryTypeShort:
		return shortInstruction
	default:
		return shortInstruction
	}
}

// SummaryPrompt builds the user content of a summary request.
// targetLanguage is interpolated as given.
func SummaryPrompt(t domain.SummaryType, targetLanguage string, text string) string {
	return fmt.Sprintf(
		"Summarize the following text. %s Output the summary in %s. Text:\n%s",
		StyleInstruction(t),
		targetLanguage,
		text,
	)
}

func SentimentPrompt(text string) string {
	return "Determine sentiment of:\n" + text
}
