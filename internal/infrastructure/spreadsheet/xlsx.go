package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

// readXLSX lee la primera hoja del libro. Las celdas numéricas conservan su valor crudo
// (sin formato de visualización) para que 10.5 no llegue como "10,50".
func readXLSX(data []byte) (*pricing.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w: %w", domain.ErrInvalidInput, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &pricing.Sheet{}, nil
	}
	name := sheets[0]
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", name, err)
	}
	if len(rows) == 0 {
		return &pricing.Sheet{}, nil
	}

	body := make([][]pricing.Cell, 0, len(rows)-1)
	for r, values := range rows[1:] {
		cells := make([]pricing.Cell, len(values))
		for c, v := range values {
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			cells[c] = xlsxCell(f, name, axis, v)
		}
		body = append(body, cells)
	}
	return buildSheet(rows[0], body), nil
}

func xlsxCell(f *excelize.File, sheet, axis, raw string) pricing.Cell {
	if raw == "" {
		return pricing.Cell{}
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return pricing.TextCell(raw)
	}
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeFormula:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return pricing.NumberCell(n)
		}
	}
	return pricing.TextCell(raw)
}
