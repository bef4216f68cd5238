package controller

import (
	"campusflow-be/internal/dto"
	"campusflow-be/internal/pkg/serverutils"
	"campusflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Classify(ctx *fiber.Ctx) error
	Flagged(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event/v1/:eventId/assistant")
	h.Post("ask", c.Ask)
	h.Post("classify", c.Classify)
	h.Get("flagged", c.Flagged)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	eventId, err := uuid.Parse(ctx.Params("eventId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.assistantService.Answer(ctx.Context(), eventId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *assistantController) Classify(ctx *fiber.Ctx) error {
	eventId, err := uuid.Parse(ctx.Params("eventId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.ClassifyMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.assistantService.ClassifyMessage(ctx.Context(), eventId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success classify message", res))
}

func (c *assistantController) Flagged(ctx *fiber.Ctx) error {
	eventId, err := uuid.Parse(ctx.Params("eventId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	res, err := c.assistantService.ListFlaggedMessages(ctx.Context(), eventId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list flagged messages", res))
}
