package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, data interface{}) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

// RaiseValidationError reports the full field-rule error list so the
// form can show one message per failed field.
func RaiseValidationError(context *fiber.Ctx, errs []string) error {
	return RaiseError(context, fiber.StatusBadRequest, "validation failed", errs)
}

// RaiseConfigurationError covers missing hosting credentials and other
// server-side misconfiguration.
func RaiseConfigurationError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "service not configured", data)
}

// RaiseUploadError surfaces a hosting-service failure.
func RaiseUploadError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadGateway, "upload failed", data)
}

// RaiseLockedError answers login attempts past the three-strike limit.
func RaiseLockedError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusLocked, "too many attempts", data)
}
