package employees

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/utils"
)

const rosterSheet = "Employees"

var rosterHeader = []interface{}{
	"ID", "First name", "Last name", "Email", "Employment type",
	"Status", "Start date", "Position", "Department",
}

// ExportWorkbook writes the roster to a single-sheet workbook.
func ExportWorkbook(employees []models.Employee) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{
			e.ID,
			e.FirstName,
			e.LastName,
			e.Email,
			e.EmploymentType,
			e.Status,
			e.StartDate.Format(utils.DateLayout),
			utils.Format(e.Position),
			utils.Format(e.Department),
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row for employee %d: %w", e.ID, err)
		}
	}

	if err := f.SetPanes(rosterSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
