package triage

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailwise/triagestack/config"
	"github.com/mailwise/triagestack/dto"
	"github.com/mailwise/triagestack/interfaces"
	"github.com/mailwise/triagestack/internal/enum"
	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/internal/tracing"
	"github.com/mailwise/triagestack/internal/utils"
)

type triageService struct {
	log          logger.Logger
	triageConfig *config.TriageConfig
	aiService    interfaces.AIService
}

func NewTriageService(log logger.Logger, triageConfig *config.TriageConfig, aiService interfaces.AIService) interfaces.TriageService {
	return &triageService{
		log:          log,
		triageConfig: triageConfig,
		aiService:    aiService,
	}
}

// normalizeEmail turns a raw, possibly HTML body into a prompt-ready
// subject/body pair. It never fails: when the heuristics find nothing the
// cleaned raw text is the body and the subject stays as provided.
func (s *triageService) normalizeEmail(subject, rawBody string) (string, string) {
	body := utils.HTMLToPlainText(rawBody)

	if subject == "" {
		subject, body = utils.ExtractSubjectFromBody(body, s.triageConfig.SubjectMarkers)
	}
	subject = utils.NormalizeSubject(subject)

	body = utils.TruncateText(body, s.triageConfig.MaxBodyRunes)
	return subject, body
}

func (s *triageService) Classify(ctx context.Context, subject, body string) interfaces.ClassificationResult {
	span, ctx := opentracing.StartSpanFromContext(ctx, "triageService.Classify")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	subject, body = s.normalizeEmail(subject, body)

	raw, err := s.aiService.Complete(ctx, dto.CompletionRequest{
		SystemPrompt: buildClassifySystemPrompt(),
		Prompt:       buildClassifyPrompt(subject, body),
		Temperature:  classifyTemperature,
	})
	if err != nil {
		// Downstream routing depends on a category always being present, so
		// provider failures degrade to the fallback instead of failing the call.
		tracing.TraceErr(span, err)
		s.log.Errorf("classification degraded to fallback category: %v", err)
		return interfaces.ClassificationResult{
			Category: enum.CategoryOther,
			Degraded: true,
			Err:      err,
		}
	}

	category := enum.DecodeCategory(raw)
	tracing.TagCategory(span, category.String())
	return interfaces.ClassificationResult{Category: category}
}

func (s *triageService) Draft(ctx context.Context, subject, body string, category enum.Category) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "triageService.Draft")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagCategory(span, category.String())

	subject, body = s.normalizeEmail(subject, body)

	draft, err := s.aiService.Complete(ctx, dto.CompletionRequest{
		SystemPrompt: draftSystemPrompt,
		Prompt:       buildDraftPrompt(subject, body, category),
		Temperature:  draftTemperature,
	})
	if err != nil {
		// No safe fallback text exists for a reply, surface the failure.
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "failed to draft response")
	}

	return draft, nil
}
