// Package pricing contiene la lógica pura de listas de precios de proveedor:
// normalización de encabezados, detección de columnas, validación de filas,
// cálculo de costos neto/bruto e identificadores de oferta.
package pricing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader convierte un encabezado crudo en un token comparable:
// minúsculas, sin tildes, sin espacios y solo [a-z0-9_].
// Es total e idempotente.
func NormalizeHeader(h string) string {
	s := strings.ToLower(h)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
