package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailwise/triagestack/config"
	"github.com/mailwise/triagestack/dto"
	"github.com/mailwise/triagestack/interfaces"
	internal_err "github.com/mailwise/triagestack/internal/errors"
	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/internal/tracing"
)

type geminiService struct {
	log          logger.Logger
	geminiConfig *config.GeminiConfig
	httpClient   *http.Client
}

func NewGeminiService(log logger.Logger, geminiConfig *config.GeminiConfig) interfaces.AIService {
	return &geminiService{
		log:          log,
		geminiConfig: geminiConfig,
		httpClient: &http.Client{
			Timeout: time.Duration(geminiConfig.TimeoutSeconds) * time.Second,
		},
	}
}

// generateContent wire types, per the Gemini v1beta REST API
type generateContentRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

func (s *geminiService) Complete(ctx context.Context, request dto.CompletionRequest) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "geminiService.Complete")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.LogKV("model", s.geminiConfig.Model, "temperature", request.Temperature)

	payload, err := json.Marshal(generateContentRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: request.SystemPrompt}},
		},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: request.Prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature: request.Temperature,
		},
	})
	if err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to marshal payload")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.geminiConfig.Url, s.geminiConfig.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.geminiConfig.ApiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		tracing.TraceErr(span, err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Wrap(internal_err.ErrProviderTimeout, err.Error())
		}
		return "", errors.Wrap(internal_err.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "unable to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errors.Wrapf(internal_err.ErrProviderUnavailable, "status code %d: %s", resp.StatusCode, string(body))
		tracing.TraceErr(span, err)
		return "", err
	}

	var response generateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to unmarshal response")
	}

	text := flattenCandidateText(response)
	if text == "" {
		err := internal_err.ErrEmptyCompletion
		tracing.TraceErr(span, err)
		return "", err
	}

	return text, nil
}

func flattenCandidateText(response generateContentResponse) string {
	if len(response.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
