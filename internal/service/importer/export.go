package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var exportHeader = []string{
	"O Quê?", "Por Quê?", "Área", "Prioridade", "Status",
	"Quem?", "Quando?", "Onde?", "Como?", "Quanto?",
}

// exportWidths are the workbook column widths, in characters.
var exportWidths = []float64{40, 50, 15, 12, 15, 30, 20, 25, 50, 20}

const exportSheet = "Atividades"

// ExportFilter narrows Export and picks the output format. The zero
// Format is xlsx.
type ExportFilter struct {
	Status *domain.ActivityStatus
	Area   *string
	Format Format
}

// Export writes the caller's active activities to w with Portuguese
// headers and labels, in the column order the upload parser accepts. It
// returns the number of rows written.
func (s *Service) Export(ctx context.Context, w io.Writer, f ExportFilter) (int, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return 0, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return 0, domain.NewValidationError("status", "must be pending, in_progress or completed")
	}
	format, err := ParseFormat(string(f.Format))
	if err != nil {
		return 0, err
	}

	list, err := s.activities.List(ctx, domain.ActivityFilter{
		OwnerID: &actor.ID,
		Status:  f.Status,
		Area:    domain.TrimOrNil(f.Area),
	})
	if err != nil {
		return 0, fmt.Errorf("importer.Export: %w", err)
	}

	records := make([][]string, 0, len(list))
	for _, a := range list {
		records = append(records, exportRecord(a))
	}

	if format == FormatCSV {
		err = writeCSV(w, records)
	} else {
		err = writeXLSX(w, records)
	}
	if err != nil {
		return 0, fmt.Errorf("importer.Export: %w", err)
	}
	return len(list), nil
}

func exportRecord(a domain.Activity) []string {
	return []string{
		a.Title,
		deref(a.Description),
		a.Area,
		a.Priority.Label(),
		a.Status.Label(),
		deref(a.Responsible),
		deref(a.Deadline),
		deref(a.Location),
		deref(a.How),
		deref(a.Cost),
	}
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

func writeXLSX(w io.Writer, records [][]string) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if err := wb.SetSheetName(wb.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for i, width := range exportWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := wb.SetColWidth(exportSheet, col, col, width); err != nil {
			return fmt.Errorf("set width: %w", err)
		}
	}

	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := setRow(wb, 1, exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := wb.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i, record := range records {
		if err := setRow(wb, i+2, record); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(wb *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return wb.SetSheetRow(exportSheet, cell, &cells)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
