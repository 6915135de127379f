package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/repository/memory"
	"ai-supportbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(string, string, map[string]interface{}) {}
func (testLogger) Info(string, string, map[string]interface{})  {}
func (testLogger) Warn(string, string, map[string]interface{})  {}
func (testLogger) Error(string, string, map[string]interface{}) {}
func (testLogger) Sync() error                                  { return nil }

func newFeedbackApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")

	svc := service.NewFeedbackService(memory.NewFeedbackRepository(), testLogger{})
	NewFeedbackController(svc).RegisterRoutes(api)
	return app
}

func postFeedback(t *testing.T, app *fiber.App, body string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/feedback/v1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRecordFeedbackCounts(t *testing.T) {
	app := newFeedbackApp()

	postFeedback(t, app, `{"messageId":"m1","feedback":"up"}`)
	postFeedback(t, app, `{"messageId":"m1","feedback":"up"}`)
	postFeedback(t, app, `{"messageId":"m1","feedback":"down"}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/feedback/v1?messageId=m1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var count dto.FeedbackCount
	require.NoError(t, json.Unmarshal(body, &count))
	assert.Equal(t, int64(2), count.ThumbsUp)
	assert.Equal(t, int64(1), count.ThumbsDown)
}

func TestRecordFeedbackRejectsInvalidType(t *testing.T) {
	app := newFeedbackApp()

	req := httptest.NewRequest("POST", "/api/feedback/v1",
		strings.NewReader(`{"messageId":"m1","feedback":"sideways"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestShowFeedbackUnknownMessageIsZero(t *testing.T) {
	app := newFeedbackApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/feedback/v1?messageId=ghost", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"thumbsUp":0,"thumbsDown":0}`, string(body))
}

func TestShowFeedbackRequiresMessageId(t *testing.T) {
	app := newFeedbackApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/feedback/v1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
