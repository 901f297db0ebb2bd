package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
)

func GetPaperTopics(c *fiber.Ctx) error {
	topics, dbErr := database.GetPaperTopics()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "paper topics", "data": topics})
}

// GetDepartmentTopics returns the suggested topics for one department.
func GetDepartmentTopics(c *fiber.Ctx) error {
	dept := model.Department(c.Params("department"))
	if !dept.IsValid() {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("unknown department %v", c.Params("department")))
	}

	topics, dbErr := database.GetPaperTopics()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	for _, topic := range topics {
		if topic.Department == dept {
			return c.JSON(fiber.Map{"status": "success", "message": "paper topics", "data": topic})
		}
	}

	return errors.RaiseNotFoundError(c, fmt.Sprintf("no paper topics for department %v", dept))
}

// SavePaperTopics replaces a department's suggested topic list.
func SavePaperTopics(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	topic := new(model.PaperTopic)
	if jsonErr := c.BodyParser(topic); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable topic parameters: %v", jsonErr))
	}

	if !topic.Department.IsValid() {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown department %v", topic.Department))
	}

	if dbErr := database.SavePaperTopics(*topic); dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "paper topics saved", "data": topic})
}
