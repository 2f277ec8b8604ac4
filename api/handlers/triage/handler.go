package triage

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/mailwise/triagestack/interfaces"
	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/internal/tracing"
	"github.com/mailwise/triagestack/internal/utils"
)

type TriageHandler struct {
	log           logger.Logger
	triageService interfaces.TriageService
}

func NewTriageHandler(log logger.Logger, triageService interfaces.TriageService) *TriageHandler {
	return &TriageHandler{
		log:           log,
		triageService: triageService,
	}
}

// emailPayload is the common shape of both endpoint payloads. Category is only
// populated for /generate_response/.
type emailPayload struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// parseEmailPayload decodes the request body, falling back to best-effort
// field recovery when the orchestrator produced malformed JSON (raw HTML with
// unescaped quotes inside the body field).
func (h *TriageHandler) parseEmailPayload(c *gin.Context) (emailPayload, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return emailPayload{}, err
	}

	var payload emailPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	rawStr := string(raw)
	h.log.Warnf("request payload is not valid JSON, recovering fields (%d bytes)", len(raw))

	payload.Subject, _ = utils.ExtractJSONStringField(rawStr, "subject")
	payload.Category, _ = utils.ExtractJSONStringField(rawStr, "category")
	payload.Body, _ = utils.ExtractJSONStringField(rawStr, "body")
	// Unescaped attribute quotes inside the HTML body make the field regex
	// stop early, so a non-empty result can still be truncated. The embedded
	// slice recovery handles that case.
	if payload.Body == "" || strings.Contains(rawStr, `dir="`) {
		if recovered, ok := utils.ExtractEmbeddedBodyField(rawStr); ok {
			payload.Body = recovered
		}
	}

	return payload, nil
}

// Helper method to respond with an error
func (h *TriageHandler) respondWithError(c *gin.Context, span opentracing.Span, statusCode int, message string, err error) {
	tracing.TraceErr(span, err)
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.JSON(statusCode, gin.H{"error": message, "details": details})
}
