package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	Config(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	appTitle    string
}

func NewChatController(chatService service.IChatService, appTitle string) IChatController {
	return &chatController{
		chatService: chatService,
		appTitle:    appTitle,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Send)
	h.Delete("history", c.ClearHistory)
	h.Get("config", c.Config)
}

// Send runs one conversational turn and streams the answer back as SSE
// frames terminated by the [DONE] sentinel.
func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	clientKey := ctx.IP()

	// The stream outlives this handler, so it gets its own context that is
	// cancelled once the client stops reading.
	streamCtx, cancel := context.WithCancel(context.Background())

	frames, err := c.chatService.Stream(streamCtx, clientKey, &req)
	if err != nil {
		cancel()
		switch {
		case errors.Is(err, service.ErrInvalidPrompt):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or missing prompt. Please provide a valid question.")
		case errors.Is(err, service.ErrRateLimited):
			return fiber.NewError(fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		default:
			return err
		}
	}

	ctx.Set("Content-Type", "text/event-stream")
	ctx.Set("Cache-Control", "no-cache")
	ctx.Set("Connection", "keep-alive")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for frame := range frames {
			if !writeFrame(w, frame) {
				return // client disconnected; cancel stops the producer
			}
		}
	}))

	return nil
}

// writeFrame encodes one frame as `data: <json>\n\n` and flushes it
// immediately so token-by-token latency is preserved. It reports whether
// the client is still reading.
func writeFrame(w *bufio.Writer, frame dto.Frame) bool {
	var payload any
	switch frame.Kind {
	case dto.FrameContent:
		payload = dto.ContentFramePayload{Content: frame.Content, Id: frame.Id}
	case dto.FrameMetrics:
		payload = dto.MetricsFramePayload{Metrics: *frame.Metrics, Id: frame.Id}
	case dto.FrameError:
		payload = dto.ErrorFramePayload{Error: frame.Err}
	case dto.FrameDone:
		if _, err := w.WriteString("data: [DONE]\n\n"); err != nil {
			return false
		}
		return w.Flush() == nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return false
	}
	return w.Flush() == nil
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	var req dto.ClearHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.chatService.ClearHistory(req.SessionId)
	return ctx.JSON(dto.ClearHistoryResponse{Success: true})
}

func (c *chatController) Config(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.ChatConfigResponse{
		Title:          c.appTitle,
		InitialMessage: constant.InitialMessage,
	})
}
