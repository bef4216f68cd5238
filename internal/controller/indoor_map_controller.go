package controller

import (
	"io"

	"campusflow-be/internal/pkg/serverutils"
	"campusflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIndoorMapController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type indoorMapController struct {
	indoorMapService service.IIndoorMapService
}

func NewIndoorMapController(indoorMapService service.IIndoorMapService) IIndoorMapController {
	return &indoorMapController{
		indoorMapService: indoorMapService,
	}
}

func (c *indoorMapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event/v1/:eventId/map")
	h.Post("", c.Upload)
	h.Get("", c.Show)
}

func (c *indoorMapController) Upload(ctx *fiber.Ctx) error {
	eventId, err := uuid.Parse(ctx.Params("eventId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Map image file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := c.indoorMapService.UploadIndoorMap(ctx.Context(), eventId, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Map uploaded, indexing queued", res))
}

func (c *indoorMapController) Show(ctx *fiber.Ctx) error {
	eventId, err := uuid.Parse(ctx.Params("eventId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	res, err := c.indoorMapService.ShowIndoorMap(ctx.Context(), eventId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show indoor map", res))
}
