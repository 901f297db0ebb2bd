package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
)

// GetEventDetails returns the symposium-wide singleton rendered on the
// hero section and countdown.
func GetEventDetails(c *fiber.Ctx) error {
	detail, dbErr := database.GetEventDetail()
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, "event details are not published yet")
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "event details", "data": detail})
}

// SaveEventDetails writes the singleton under its fixed document id.
func SaveEventDetails(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	detail := new(model.EventDetail)
	if jsonErr := c.BodyParser(detail); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable details parameters: %v", jsonErr))
	}

	if dbErr := database.SaveEventDetail(*detail); dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "event details saved", "data": detail})
}
