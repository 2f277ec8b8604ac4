package errors

import "github.com/pkg/errors"

var (
	// common errors
	ErrProviderTimeout     = errors.New("model provider timed out")
	ErrProviderUnavailable = errors.New("model provider request failed")
	ErrEmptyCompletion     = errors.New("model provider returned an empty completion")

	// triage errors
	ErrUnknownCategory = errors.New("category is not in the known set")
	ErrEmptyBody       = errors.New("email body is empty")
)
