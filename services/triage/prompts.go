package triage

import (
	"fmt"
	"strings"

	"github.com/mailwise/triagestack/internal/enum"
)

const classifySystemPrompt = `You are an AI assistant specialized in classifying emails.
Your task is to classify the following email into exactly one of these predefined categories:
%s

Respond ONLY with the category name. Do not add explanations, punctuation, or any other text.`

const draftSystemPrompt = `You are a friendly and helpful AI assistant specialized in drafting email replies.
Your goal is to produce a professional and polite response adapted to the category of the email.
Keep the response concise, clear and direct.
Do not include generic greetings or sign-offs ("Dear", "Best regards").
Write only the body of the message.`

// Near-deterministic for classification, freer for drafting.
const (
	classifyTemperature = 0.0
	draftTemperature    = 0.7
)

func buildClassifySystemPrompt() string {
	var list strings.Builder
	for _, category := range enum.Categories() {
		if category == enum.CategoryOther {
			list.WriteString(fmt.Sprintf("- %s (if it does not fit any other category)\n", category))
			continue
		}
		list.WriteString(fmt.Sprintf("- %s\n", category))
	}
	return fmt.Sprintf(classifySystemPrompt, strings.TrimRight(list.String(), "\n"))
}

func buildClassifyPrompt(subject, body string) string {
	return fmt.Sprintf("Subject: %s\n\nBody: %s", subject, body)
}

func buildDraftPrompt(subject, body string, category enum.Category) string {
	return fmt.Sprintf("Original email subject: %s\n\nOriginal email body: %s\n\nCategory: %s", subject, body, category)
}
