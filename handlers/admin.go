package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"symposium-portal/database"
	"symposium-portal/errors"
	"symposium-portal/export"
	"symposium-portal/model"
)

// Stats are the dashboard aggregates computed over the loaded list.
type Stats struct {
	Total        int            `json:"total"`
	ByDepartment map[string]int `json:"by_department"`
	ByEventType  map[string]int `json:"by_event_type"`
	ByYear       map[string]int `json:"by_year"`
}

// FilterRegistrations applies a case-insensitive substring search over
// name, email, phone and event name, ANDed with exact department and
// event-type filters. Empty criteria match everything.
func FilterRegistrations(regs []model.Registration, search string, dept string, eventType string) []model.Registration {
	needle := strings.ToLower(search)

	matched := []model.Registration{}
	for _, reg := range regs {
		if needle != "" {
			hit := strings.Contains(strings.ToLower(reg.Name), needle) ||
				strings.Contains(strings.ToLower(reg.Email), needle) ||
				strings.Contains(strings.ToLower(reg.Phone), needle) ||
				strings.Contains(strings.ToLower(reg.EventName), needle)
			if !hit {
				continue
			}
		}
		if dept != "" && string(reg.Department) != dept {
			continue
		}
		if eventType != "" && string(reg.EventType) != eventType {
			continue
		}
		matched = append(matched, reg)
	}

	return matched
}

// RegistrationStats counts totals per department, event type and year.
func RegistrationStats(regs []model.Registration) Stats {
	stats := Stats{
		Total:        len(regs),
		ByDepartment: map[string]int{},
		ByEventType:  map[string]int{},
		ByYear:       map[string]int{},
	}

	for _, reg := range regs {
		stats.ByDepartment[string(reg.Department)]++
		stats.ByEventType[string(reg.EventType)]++
		stats.ByYear[reg.Year]++
	}

	return stats
}

// GetRegistrations aggregates all six partitions for the admin viewer
// and applies the search and filter query parameters in memory. Stats
// cover the full loaded list, not the filtered view.
func GetRegistrations(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	regs, dbErr := database.GetAllRegistrations()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	filtered := FilterRegistrations(regs, c.Query("search"), c.Query("department"), c.Query("event_type"))

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "registrations",
		"data": fiber.Map{
			"registrations": filtered,
			"stats":         RegistrationStats(regs),
		}})
}

// ExportRegistrations streams the loaded (unfiltered) list as a
// spreadsheet attachment stamped with the export date.
func ExportRegistrations(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	regs, dbErr := database.GetAllRegistrations()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	workbook, exportErr := export.Workbook(regs)
	if exportErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("export error: %v", exportErr))
	}

	buf, writeErr := workbook.WriteToBuffer()
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("export error: %v", writeErr))
	}

	filename := export.Filename(time.Now())
	logrus.WithField("rows", len(regs)).Infof("exporting registrations to %v", filename)

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
