package serverutils

import (
	"errors"

	"campusflow-be/pkg/embedding"
	"campusflow-be/pkg/llm"
	"campusflow-be/pkg/parser"
	"campusflow-be/pkg/rag/classify"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers panics and maps pipeline error kinds to
// HTTP statuses, so controllers can just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusForError(err)
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusForError(err error) int {
	var unsupported *parser.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, parser.ErrParseFailure):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, embedding.ErrEmbeddingFailure),
		errors.Is(err, llm.ErrGenerationFailure),
		errors.Is(err, llm.ErrDescriptionFailure),
		errors.Is(err, classify.ErrMalformedOutput):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
