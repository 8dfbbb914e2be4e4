package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

// readCSV lee un csv; todas las celdas son texto. Si los bytes no son UTF-8 válido se
// decodifican como Windows-1252 (exportaciones de Excel en español).
func readCSV(data []byte) (*pricing.Sheet, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decodificar csv: %w", err)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &pricing.Sheet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezados csv: %w: %w", domain.ErrInvalidInput, err)
	}

	var body [][]pricing.Cell
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w: %w", domain.ErrInvalidInput, err)
		}
		cells := make([]pricing.Cell, len(record))
		for i, v := range record {
			cells[i] = pricing.TextCell(strings.TrimSpace(v))
		}
		body = append(body, cells)
	}
	return buildSheet(header, body), nil
}

// detectDelimiter elige entre ',', ';' y tab según cuál aparece más en la primera línea.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(string(line), string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
