package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
)

func TestWriteLeads(t *testing.T) {
	leads := []lead.Lead{
		{
			Name:       "Asha Rao",
			Email:      "asha@example.com",
			Phone:      "+911234567890",
			Program:    "study-abroad",
			StudyLevel: "masters",
			Country:    "Canada",
			Consent:    true,
			Status:     lead.StatusNew,
			CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := WriteLeads(&buf, leads); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("expected readable workbook, got %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Leads")
	if err != nil {
		t.Fatalf("expected Leads sheet, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][1] != "Email" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "Asha Rao" || rows[1][1] != "asha@example.com" {
		t.Fatalf("unexpected data row %v", rows[1])
	}
	if rows[1][7] != "yes" {
		t.Fatalf("expected consent yes, got %q", rows[1][7])
	}
}

func TestWriteLeadsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLeads(&buf, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected workbook bytes even with no leads")
	}
}
