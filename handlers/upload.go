package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"symposium-portal/errors"
	"symposium-portal/upload"
)

// UploadPayment stores a payment screenshot with the file host and
// returns its public URL for the registration form to keep.
func UploadPayment(c *fiber.Ctx) error {
	uploader, err := upload.NewFromEnv()
	if err != nil {
		return errors.RaiseConfigurationError(c, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.RaiseBadRequestError(c, "payment screenshot file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot read uploaded file: %v", err))
	}
	defer file.Close()

	url, err := uploader.UploadPaymentScreenshot(fileHeader.Filename, file)
	if err != nil {
		logrus.Errorf("payment screenshot upload failed: %v", err)
		return errors.RaiseUploadError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "file uploaded",
		"data":    fiber.Map{"url": url}})
}

// UploadPaper stores a paper-presentation document. Type and size are
// checked before any network call; the returned URL forces a download.
func UploadPaper(c *fiber.Ctx) error {
	uploader, err := upload.NewFromEnv()
	if err != nil {
		return errors.RaiseConfigurationError(c, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.RaiseBadRequestError(c, "paper file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot read uploaded file: %v", err))
	}
	defer file.Close()

	url, err := uploader.UploadPaperFile(fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if fileErr, ok := err.(*upload.FileError); ok {
			return errors.RaiseBadRequestError(c, fileErr.Reason)
		}
		logrus.Errorf("paper file upload failed: %v", err)
		return errors.RaiseUploadError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "file uploaded",
		"data":    fiber.Map{"url": url, "file_name": fileHeader.Filename}})
}
