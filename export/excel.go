package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"symposium-portal/model"
)

const sheetName = "Registrations"

var headers = []string{
	"ID", "Name", "College", "Department", "Year", "Phone", "Email",
	"Event Type", "Event Name", "Payment Screenshot", "Paper File",
	"Paper File Name", "Registered On",
}

var columnWidths = []float64{25, 20, 25, 15, 8, 15, 25, 18, 25, 40, 40, 25, 20}

// Filename stamps the export with its date, e.g.
// TECH_BLITZ_2K26_Registrations_2026-02-13.xlsx.
func Filename(now time.Time) string {
	return fmt.Sprintf("TECH_BLITZ_2K26_Registrations_%s.xlsx", now.Format("2006-01-02"))
}

// Workbook renders one row per registration in input order. Absent
// payment proofs are exported as "N/A"; a paper presentation missing
// its document reads "Not Uploaded".
func Workbook(registrations []model.Registration) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, reg := range registrations {
		row := registrationRow(reg)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func registrationRow(reg model.Registration) []interface{} {
	payment := reg.PaymentScreenshot
	if payment == "" {
		payment = "N/A"
	}

	paperFile := "N/A"
	paperFileName := "N/A"
	if reg.EventType == model.EventPaperPresentation {
		paperFile = "Not Uploaded"
		if reg.PaperFile != "" {
			paperFile = reg.PaperFile
		}
		if reg.PaperFileName != "" {
			paperFileName = reg.PaperFileName
		}
	}

	return []interface{}{
		reg.Id.Hex(),
		reg.Name,
		reg.College,
		string(reg.Department),
		reg.Year,
		reg.Phone,
		reg.Email,
		string(reg.EventType),
		reg.EventName,
		payment,
		paperFile,
		paperFileName,
		formatTimestamp(reg.Timestamp),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2/1/2006, 3:04:05 pm")
}
