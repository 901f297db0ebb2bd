package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/model"
	"symposium-portal/validation"
)

// CreateRegistration is the intake workflow: parse the submitted form,
// block when the payment proof is missing, validate the field rules,
// then route the record to its partition with a server timestamp.
func CreateRegistration(c *fiber.Ctx) error {
	reg := new(model.Registration)
	if jsonErr := c.BodyParser(reg); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", jsonErr))
	}

	reg.Name = strings.TrimSpace(reg.Name)
	reg.College = strings.TrimSpace(reg.College)

	// A registration is never persisted without a payment proof,
	// whatever the rest of the form looks like.
	if strings.TrimSpace(reg.PaymentScreenshot) == "" {
		return errors.RaiseBadRequestError(c, "payment screenshot is required before submitting")
	}

	if result := validation.ValidateRegistration(*reg); !result.IsValid {
		return errors.RaiseValidationError(c, result.Errors)
	}

	id, collection, dbErr := database.SaveRegistration(*reg)
	if dbErr != nil {
		logrus.Errorf("registration persist failed: %v", dbErr)
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	logrus.WithFields(logrus.Fields{
		"id":         id,
		"collection": collection,
		"event":      reg.EventName,
	}).Info("registration saved")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Registration saved successfully!",
		"data":    fiber.Map{"id": id, "collection": collection}})
}

// ValidateRegistrationDraft runs the advisory field validation without
// touching the store, so the form can surface errors before upload.
func ValidateRegistrationDraft(c *fiber.Ctx) error {
	reg := new(model.Registration)
	if jsonErr := c.BodyParser(reg); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", jsonErr))
	}

	result := validation.ValidateRegistration(*reg)
	return c.JSON(fiber.Map{"status": "success", "message": "validation result", "data": result})
}
