// Package export writes the assembled case register as an XLSX workbook
// for the investigation units that still work off spreadsheets.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
)

const sheetName = "Casos"

var headers = []string{
	"Nº Causa", "Patente", "Marca", "Modelo", "Año", "Color", "VIN",
	"Nº Motor", "Propietario", "RUT", "Advertencias", "Creado",
}

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteCases renders one row per case. Cases must be loaded with their
// vehicle and owners edges.
func (s *Service) WriteCases(cases []*ent.InvestigationCase, outPath string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", "error", err)
		}
	}()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, c := range cases {
		row := i + 2
		values := caseRow(c)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write case %s: %w", c.CaseNumber, err)
			}
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	s.logger.Info("case register exported", "path", outPath, "cases", len(cases))
	return nil
}

func caseRow(c *ent.InvestigationCase) []any {
	var plate, make_, model, color, vin, engine string
	var year any
	if v := c.Edges.Vehicle; v != nil {
		plate = v.Plate
		make_ = deref(v.Make)
		model = deref(v.Model)
		color = deref(v.Color)
		vin = deref(v.Vin)
		engine = deref(v.EngineNumber)
		if v.Year != nil {
			year = *v.Year
		}
	}
	var ownerName, ownerRUT string
	// the first owner is the highest-precedence source
	if len(c.Edges.Owners) > 0 {
		ownerName = deref(c.Edges.Owners[0].FullName)
		ownerRUT = deref(c.Edges.Owners[0].NationalID)
	}
	return []any{
		c.CaseNumber, plate, make_, model, year, color, vin, engine,
		ownerName, ownerRUT, len(c.Warnings),
		c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
