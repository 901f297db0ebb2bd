package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
)

// GetDepartments feeds the public coordinators section.
func GetDepartments(c *fiber.Ctx) error {
	departments, dbErr := database.GetDepartments()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "departments", "data": departments})
}

// SaveDepartment replaces a department's coordinator directory entry.
func SaveDepartment(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	dept := new(model.DepartmentInfo)
	if jsonErr := c.BodyParser(dept); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable department parameters: %v", jsonErr))
	}

	if !dept.Id.IsValid() {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown department %v", dept.Id))
	}

	if dbErr := database.SaveDepartment(*dept); dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "department saved", "data": dept})
}
