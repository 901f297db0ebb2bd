package handlers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
)

func eventNameParam(c *fiber.Ctx) string {
	name := c.Params("eventName")
	if unescaped, err := url.QueryUnescape(name); err == nil {
		return unescaped
	}
	return name
}

func GetRules(c *fiber.Ctx) error {
	rules, dbErr := database.GetRules()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "event rules", "data": rules})
}

// GetRule feeds the rules modal shown before registration.
func GetRule(c *fiber.Ctx) error {
	eventName := eventNameParam(c)

	rule, dbErr := database.GetRule(eventName)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("no rules found for event %v", eventName))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "event rule", "data": rule})
}

// SaveRule upserts a rule sheet. The document id derives from the event
// name and the last-updated stamp is set server-side.
func SaveRule(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	rule := new(model.EventRule)
	if jsonErr := c.BodyParser(rule); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable rule parameters: %v", jsonErr))
	}

	if rule.EventName == "" {
		return errors.RaiseBadRequestError(c, "event name is required")
	}
	if rule.Id == "" {
		rule.Id = model.RuleId(rule.EventName)
	}

	if dbErr := database.SaveRule(*rule); dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "rule saved", "data": rule})
}

func DeleteRule(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	eventName := eventNameParam(c)

	deleteErr := database.DeleteRule(eventName)
	if deleteErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("no rules found for event %v", eventName))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("rules for event %v were deleted", eventName)})
}
