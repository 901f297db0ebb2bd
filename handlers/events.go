package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
)

// GetEvents lists the event catalog. Optional department and type query
// filters narrow the list so the form can recompute its choices after
// a department or event-type change.
func GetEvents(c *fiber.Ctx) error {
	events, dbErr := database.GetEvents()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	dept := model.Department(c.Query("department"))
	eventType := model.EventType(c.Query("type"))

	filtered := []model.TechEvent{}
	for _, event := range events {
		if dept != "" && event.Department != dept {
			continue
		}
		if eventType != "" && event.Type != eventType {
			continue
		}
		filtered = append(filtered, event)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "events", "data": filtered})
}

// SaveEvent creates or replaces a catalog entry by id.
func SaveEvent(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	event := new(model.TechEvent)
	if jsonErr := c.BodyParser(event); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", jsonErr))
	}

	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return errors.RaiseBadRequestError(c, "event name is required")
	}
	if !event.Department.IsValid() {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown department %v", event.Department))
	}
	if !event.Type.IsValid() {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown event type %v", event.Type))
	}
	if event.Id == "" {
		event.Id = uuid.New().String()
	}

	if dbErr := database.SaveEvent(*event); dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "event saved", "data": event})
}

func DeleteEvent(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	deleteErr := database.DeleteEvent(c.Params("id"))
	if deleteErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", c.Params("id")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("event with id %v was deleted", c.Params("id"))})
}
