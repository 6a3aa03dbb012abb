package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/interview-assistant/internal/usecase"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody binds and validates a JSON request body. On failure it writes the
// error response and returns a non-nil error so the caller just returns it.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fe := range validationErrors {
				fields[fe.Field()] = fmt.Sprintf("failed on %s validation", fe.Tag())
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "validation failed",
				Details: fields,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
		}, err)
	}
	return nil
}

// writeError maps usecase errors to HTTP statuses: lookup misses to 404,
// state-machine rejections to 422, everything unclassified to 500.
func writeError(c *fiber.Ctx, err error) error {
	var notFound usecase.NotFoundError
	if errors.As(err, &notFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: notFound.Error(),
		})
	}
	var precondition usecase.PreconditionError
	if errors.As(err, &precondition) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: precondition.Error(),
		})
	}
	var conflict usecase.ConflictError
	if errors.As(err, &conflict) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: conflict.Error(),
		})
	}
	var unauthorized usecase.UnauthorizedError
	if errors.As(err, &unauthorized) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: unauthorized.Error(),
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "internal server error",
	}, err)
}
