package triage

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	custom_err "github.com/mailwise/triagestack/api/errors"
	"github.com/mailwise/triagestack/dto"
	"github.com/mailwise/triagestack/internal/enum"
	"github.com/mailwise/triagestack/internal/tracing"
)

// GenerateResponse handles POST /generate_response/. Unlike classification
// there is no safe fallback text, so a provider failure is a 502 rather than
// a fabricated draft.
func (h *TriageHandler) GenerateResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TriageHandler.GenerateResponse", c.Request.Header)
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
		if payload.Category == "" {
			errs.Add("category", "please provide the classified category", errors.New("category is empty"))
		} else if !enum.IsValidCategory(payload.Category) {
			errs.Add("category", "category is not one of the known categories", errors.New("unknown category"))
		}
		if errs.HasErrors() {
			tracing.TraceErr(span, errs)
			c.JSON(http.StatusBadRequest, gin.H{"error": errs.Error()})
			return
		}

		category := enum.DecodeCategory(payload.Category)
		tracing.TagCategory(span, category.String())

		draft, err := h.triageService.Draft(ctx, payload.Subject, payload.Body, category)
		if err != nil {
			h.log.Errorf("response generation %s failed: %v", requestId, err)
			h.respondWithError(c, span, http.StatusBadGateway, "Failed to generate response", err)
			return
		}

		c.JSON(http.StatusOK, dto.GenerateResponseResponse{
			ResponseText: draft,
		})
	}
}
