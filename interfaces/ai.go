package interfaces

import (
	"golang.org/x/net/context"

	"github.com/mailwise/triagestack/dto"
)

type AIService interface {
	Complete(ctx context.Context, request dto.CompletionRequest) (string, error)
}
