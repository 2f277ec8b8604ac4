package triage

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	custom_err "github.com/mailwise/triagestack/api/errors"
	"github.com/mailwise/triagestack/dto"
	"github.com/mailwise/triagestack/internal/tracing"
)

// Classify handles POST /classify_email/. It always answers with a category
// from the closed set: provider failures degrade to the fallback instead of
// surfacing as a 5xx, because downstream routing needs a category to act on.
func (h *TriageHandler) Classify() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TriageHandler.Classify", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		requestId := uuid.New().String()
		tracing.TagRequestId(span, requestId)

		payload, err := h.parseEmailPayload(c)
		if err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Unable to read request body", err)
			return
		}

		errs := custom_err.NewMultiErrors()
		if payload.Body == "" {
			errs.Add("body", "please provide a non-empty email body", errors.New("body is empty"))
		}
		if errs.HasErrors() {
			tracing.TraceErr(span, errs)
			c.JSON(http.StatusBadRequest, gin.H{"error": errs.Error()})
			return
		}

		result := h.triageService.Classify(ctx, payload.Subject, payload.Body)
		if result.Degraded {
			h.log.Warnf("classification %s degraded to %s: %v", requestId, result.Category, result.Err)
			span.SetTag("degraded", true)
		}
		tracing.TagCategory(span, result.Category.String())

		c.JSON(http.StatusOK, dto.ClassifyEmailResponse{
			Category: result.Category.String(),
		})
	}
}
