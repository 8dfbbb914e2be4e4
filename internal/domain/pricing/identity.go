package pricing

import (
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultSupplierID proveedor usado cuando el nombre de archivo no sigue el patrón.
const DefaultSupplierID = "proveedor"

var (
	offerIDStrip    = regexp.MustCompile(`[^a-z0-9_-]`)
	supplierIDStrip = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	sourceNameRe    = regexp.MustCompile(`(.+?)_(\d{4})(\d{2})(\d{2})`)
)

// OfferID identificador determinístico de oferta: lower(proveedor_sku) sin caracteres
// fuera de [a-z0-9_-].
func OfferID(supplierID, supplierSKU string) string {
	return offerIDStrip.ReplaceAllString(strings.ToLower(supplierID+"_"+supplierSKU), "")
}

// SanitizeSupplierID deja solo [a-zA-Z0-9_-] y pasa a minúsculas.
func SanitizeSupplierID(s string) string {
	return strings.ToLower(supplierIDStrip.ReplaceAllString(s, ""))
}

// ParseSourceName obtiene proveedor y fecha de corte de un nombre de archivo
// "<proveedor>_<AAAA><MM><DD>...". Si no coincide, devuelve DefaultSupplierID y now.
func ParseSourceName(name string, now time.Time) (supplierID string, cutoff time.Time) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	m := sourceNameRe.FindStringSubmatch(base)
	if m == nil {
		return DefaultSupplierID, now
	}
	supplierID = SanitizeSupplierID(m[1])
	if supplierID == "" {
		supplierID = DefaultSupplierID
	}
	y, _ := strconv.Atoi(m[2])
	mo, _ := strconv.Atoi(m[3])
	d, _ := strconv.Atoi(m[4])
	return supplierID, time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
}
