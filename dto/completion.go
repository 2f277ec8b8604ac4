package dto

// CompletionRequest is a provider-agnostic prompt. SystemPrompt carries the
// task instructions, Prompt carries the email content, Temperature controls
// sampling (near zero for classification, higher for drafting).
type CompletionRequest struct {
	SystemPrompt string  `json:"systemPrompt"`
	Prompt       string  `json:"prompt"`
	Temperature  float64 `json:"temperature"`
}
