package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailwise/triagestack/interfaces"
	"github.com/mailwise/triagestack/internal/enum"
	internal_err "github.com/mailwise/triagestack/internal/errors"
	"github.com/mailwise/triagestack/internal/logger"
)

type mockTriageService struct {
	mock.Mock
}

func (m *mockTriageService) Classify(ctx context.Context, subject, body string) interfaces.ClassificationResult {
	args := m.Called(ctx, subject, body)
	return args.Get(0).(interfaces.ClassificationResult)
}

func (m *mockTriageService) Draft(ctx context.Context, subject, body string, category enum.Category) (string, error) {
	args := m.Called(ctx, subject, body, category)
	return args.String(0), args.Error(1)
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func setupRouter(svc *mockTriageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTriageHandler(getLogger(), svc)
	r.POST("/classify_email/", h.Classify())
	r.POST("/generate_response/", h.GenerateResponse())
	return r
}

func postJSON(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestClassify_ReturnsCategory(t *testing.T) {
	svc := &mockTriageService{}
	svc.On("Classify", mock.Anything, "Necesito ayuda con mi router", "<p>No tengo internet desde ayer</p>").
		Return(interfaces.ClassificationResult{Category: enum.CategoryTechnicalSupport})
	r := setupRouter(svc)

	w := postJSON(r, "/classify_email/", `{"subject": "Necesito ayuda con mi router", "body": "<p>No tengo internet desde ayer</p>"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Technical Support", resp["category"])
	svc.AssertExpectations(t)
}

func TestClassify_MissingBodyRejected(t *testing.T) {
	svc := &mockTriageService{}
	r := setupRouter(svc)

	w := postJSON(r, "/classify_email/", `{"subject": "no body here"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	svc.AssertNotCalled(t, "Classify")
}

func TestClassify_ProviderFailureStillAnswersWithFallback(t *testing.T) {
	svc := &mockTriageService{}
	svc.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(interfaces.ClassificationResult{
			Category: enum.CategoryOther,
			Degraded: true,
			Err:      internal_err.ErrProviderTimeout,
		})
	r := setupRouter(svc)

	w := postJSON(r, "/classify_email/", `{"subject": "s", "body": "b"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Other", resp["category"])
}

func TestClassify_MalformedPayloadRecovered(t *testing.T) {
	svc := &mockTriageService{}
	var gotBody string
	svc.On("Classify", mock.Anything, "ayuda", mock.Anything).
		Run(func(args mock.Arguments) { gotBody = args.String(2) }).
		Return(interfaces.ClassificationResult{Category: enum.CategoryTechnicalSupport})
	r := setupRouter(svc)

	// unescaped quotes inside the body field, as sent by the orchestrator
	raw := "{\n\"subject\": \"ayuda\",\n\"body\": \"<p dir=\"ltr\">No tengo internet</p>\"\n}"
	w := postJSON(r, "/classify_email/", raw)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `<p dir="ltr">No tengo internet</p>`, gotBody)
}

func TestGenerateResponse_ReturnsDraft(t *testing.T) {
	svc := &mockTriageService{}
	svc.On("Draft", mock.Anything, "router", "no internet", enum.CategoryTechnicalSupport).
		Return("We are on it.", nil)
	r := setupRouter(svc)

	w := postJSON(r, "/generate_response/", `{"subject": "router", "body": "no internet", "category": "Technical Support"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "We are on it.", resp["response_text"])
}

func TestGenerateResponse_UnknownCategoryRejected(t *testing.T) {
	svc := &mockTriageService{}
	r := setupRouter(svc)

	w := postJSON(r, "/generate_response/", `{"subject": "s", "body": "b", "category": "Spam"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Draft")
}

func TestGenerateResponse_MissingFieldsRejected(t *testing.T) {
	svc := &mockTriageService{}
	r := setupRouter(svc)

	w := postJSON(r, "/generate_response/", `{"subject": "s"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "body")
	assert.Contains(t, w.Body.String(), "category")
	svc.AssertNotCalled(t, "Draft")
}

func TestGenerateResponse_ProviderFailureIsServerError(t *testing.T) {
	svc := &mockTriageService{}
	svc.On("Draft", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", internal_err.ErrProviderUnavailable)
	r := setupRouter(svc)

	w := postJSON(r, "/generate_response/", `{"subject": "s", "body": "b", "category": "Billing"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "response_text")
}
