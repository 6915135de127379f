package controller

import (
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/serverutils"
	"ai-supportbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackController(feedbackService service.IFeedbackService) IFeedbackController {
	return &feedbackController{
		feedbackService: feedbackService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")
	h.Post("", c.Record)
	h.Get("", c.Show)
}

func (c *feedbackController) Record(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Record(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *feedbackController) Show(ctx *fiber.Ctx) error {
	messageId := ctx.Query("messageId")
	if messageId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Message ID is required")
	}

	res, err := c.feedbackService.Get(ctx.Context(), messageId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
