package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/service"
	"ai-supportbot-be/pkg/evaluation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChatService scripts the orchestrator for controller tests.
type stubChatService struct {
	frames  []dto.Frame
	err     error
	cleared []string
}

func (s *stubChatService) Stream(ctx context.Context, clientKey string, request *dto.ChatRequest) (<-chan dto.Frame, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(chan dto.Frame)
	go func() {
		defer close(out)
		for _, frame := range s.frames {
			select {
			case out <- frame:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *stubChatService) ClearHistory(sessionId string) {
	s.cleared = append(s.cleared, sessionId)
}

func newChatApp(stub *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(stub, "AI Support Bot").RegisterRoutes(api)
	return app
}

func TestSendStreamsFramesInOrder(t *testing.T) {
	metrics := evaluation.Metrics{ResponseTime: 42, ResponseLength: 11, RelevanceScore: 50}
	stub := &stubChatService{frames: []dto.Frame{
		{Kind: dto.FrameContent, Id: "turn-1", Content: "Hello"},
		{Kind: dto.FrameContent, Id: "turn-1", Content: " world"},
		{Kind: dto.FrameMetrics, Id: "turn-1", Metrics: &metrics},
		{Kind: dto.FrameDone},
	}}
	app := newChatApp(stub)

	req := httptest.NewRequest("POST", "/api/chat/v1",
		strings.NewReader(`{"prompt":"hi","sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	expected := `data: {"content":"Hello","id":"turn-1"}` + "\n\n" +
		`data: {"content":" world","id":"turn-1"}` + "\n\n" +
		`data: {"metrics":{"responseTime":42,"responseLength":11,"relevanceScore":50},"id":"turn-1"}` + "\n\n" +
		"data: [DONE]\n\n"
	assert.Equal(t, expected, string(body))
}

func TestSendErrorFrame(t *testing.T) {
	stub := &stubChatService{frames: []dto.Frame{
		{Kind: dto.FrameError, Err: "An error occurred while processing your request."},
		{Kind: dto.FrameDone},
	}}
	app := newChatApp(stub)

	req := httptest.NewRequest("POST", "/api/chat/v1",
		strings.NewReader(`{"prompt":"hi","sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t,
		`data: {"error":"An error occurred while processing your request."}`+"\n\n"+"data: [DONE]\n\n",
		string(body))
}

func TestSendRejectsInvalidPrompt(t *testing.T) {
	stub := &stubChatService{err: service.ErrInvalidPrompt}
	app := newChatApp(stub)

	req := httptest.NewRequest("POST", "/api/chat/v1",
		strings.NewReader(`{"prompt":"   ","sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendRejectsMissingFields(t *testing.T) {
	stub := &stubChatService{}
	app := newChatApp(stub)

	req := httptest.NewRequest("POST", "/api/chat/v1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendRejectsThrottledClient(t *testing.T) {
	stub := &stubChatService{err: service.ErrRateLimited}
	app := newChatApp(stub)

	req := httptest.NewRequest("POST", "/api/chat/v1",
		strings.NewReader(`{"prompt":"hi","sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestClearHistory(t *testing.T) {
	stub := &stubChatService{}
	app := newChatApp(stub)

	req := httptest.NewRequest("DELETE", "/api/chat/v1/history",
		strings.NewReader(`{"sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"s1"}, stub.cleared)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestConfig(t *testing.T) {
	app := newChatApp(&stubChatService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/v1/config", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"title":"AI Support Bot"`)
	assert.Contains(t, string(body), "initialMessage")
}
