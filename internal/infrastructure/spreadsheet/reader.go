// Package spreadsheet lee la primera hoja de archivos xlsx o csv como filas clave/valor
// indexadas por el encabezado de la primera fila.
package spreadsheet

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

// ErrUnsupportedFormat el archivo no es xlsx ni csv. Es una entrada inválida.
var ErrUnsupportedFormat = fmt.Errorf("formato de archivo no soportado: %w", domain.ErrInvalidInput)

// Reader implementa pricelist.SpreadsheetReader.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// ReadFirstSheet decide el formato por extensión; sin extensión conocida mira la firma zip.
func (r *Reader) ReadFirstSheet(name string, data []byte) (*pricing.Sheet, error) {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(name, "\\", "/"))) {
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	case ".csv", ".txt":
		return readCSV(data)
	case ".xls":
		return nil, fmt.Errorf("%w: xls binario, guardar como xlsx", ErrUnsupportedFormat)
	}
	if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return readXLSX(data)
	}
	return readCSV(data)
}

// uniqueHeaders nombra columnas sin encabezado como __EMPTY, __EMPTY_1, ... y
// desambigua repetidos como H_1, H_2.
func uniqueHeaders(raw []string) []string {
	out := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	empty := 0
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "__EMPTY"
			if empty > 0 {
				h += "_" + strconv.Itoa(empty)
			}
			empty++
		}
		name := h
		for n := 1; used[name]; n++ {
			name = h + "_" + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// buildSheet arma la hoja a partir de filas de celdas ya tipadas; omite filas totalmente vacías.
func buildSheet(header []string, body [][]pricing.Cell) *pricing.Sheet {
	headers := uniqueHeaders(header)
	sheet := &pricing.Sheet{Headers: headers}
	for _, cells := range body {
		row := pricing.Row{}
		for i, c := range cells {
			if i >= len(headers) || c.Kind == pricing.CellEmpty {
				continue
			}
			row[headers[i]] = c
		}
		if len(row) > 0 {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet
}
