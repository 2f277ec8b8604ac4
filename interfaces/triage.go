package interfaces

import (
	"golang.org/x/net/context"

	"github.com/mailwise/triagestack/internal/enum"
)

// ClassificationResult is what the classifier hands back to the API layer.
// Degraded is set when the provider failed and the category is the fallback,
// so the caller can log/trace the failure while still routing the email.
type ClassificationResult struct {
	Category enum.Category
	Degraded bool
	Err      error
}

type TriageService interface {
	Classify(ctx context.Context, subject, body string) ClassificationResult
	Draft(ctx context.Context, subject, body string, category enum.Category) (string, error)
}
