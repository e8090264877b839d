package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt fixes the output format of every summary.
const SystemPrompt = "You are an AI assistant that creates clear, actionable meeting summaries. " +
	"Format your response as HTML with proper headings, bullet points, and structure."

// DefaultDirective is used when the caller gives no custom instruction.
const DefaultDirective = "Please create a standard meeting summary with key decisions, action items, and next steps."

// BuildUserPrompt embeds the transcript and the formatting directive.
// A blank instruction falls back to DefaultDirective.
func BuildUserPrompt(transcript, instruction string) string {
	directive := DefaultDirective
	if strings.TrimSpace(instruction) != "" {
		directive = "Additional instructions: " + instruction
	}
	return fmt.Sprintf("Please summarize this meeting transcript:\n\n%s\n\n%s", transcript, directive)
}
