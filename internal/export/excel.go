package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
)

const leadSheet = "Leads"

var leadHeaders = []string{
	"Name", "Email", "Phone", "Program", "Study Level",
	"Country", "Message", "Consent", "Status", "Created At",
}

// WriteLeads renders the given leads as an xlsx workbook.
func WriteLeads(w io.Writer, leads []lead.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(leadSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	for col, header := range leadHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(leadSheet, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, l := range leads {
		consent := "no"
		if l.Consent {
			consent = "yes"
		}
		values := []interface{}{
			l.Name, l.Email, l.Phone, l.Program, l.StudyLevel,
			l.Country, l.Message, consent, string(l.Status),
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(leadSheet, cell, value); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
