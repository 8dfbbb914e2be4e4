package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CellKind tipo de valor de una celda de hoja de cálculo.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell valor de celda etiquetado: vacío, texto o número.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell construye una celda de texto; el texto vacío es una celda vacía.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell construye una celda numérica.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// String representación textual: números en su forma más corta (10.5), vacío -> "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// Float interpreta la celda como número. Para texto, la primera coma se toma como
// separador decimal y se lee el prefijo numérico más largo ("10,50 Bs" -> 10.5).
// Devuelve false si no hay número o no es finito.
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return 0, false
		}
		return c.Number, true
	case CellText:
		return parseLooseFloat(strings.Replace(c.Text, ",", ".", 1))
	}
	return 0, false
}

var floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func parseLooseFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Row fila de hoja de cálculo indexada por encabezado original.
type Row map[string]Cell

// Sheet primera hoja de un archivo: encabezados en orden de columna y filas de datos.
type Sheet struct {
	Headers []string
	Rows    []Row
}
