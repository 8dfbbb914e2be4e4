package pricing

// Field campo semántico de una lista de precios.
type Field int

const (
	FieldSKU Field = iota
	FieldName
	FieldUnit
	FieldPrice
	FieldTax
	FieldBarcode
)

var fieldNames = [...]string{"sku", "nombre", "unidad", "precio", "iva", "barcode"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "desconocido"
	}
	return fieldNames[f]
}

// fieldAliases alias normalizados por campo, en orden de prioridad.
var fieldAliases = map[Field][]string{
	FieldSKU:     {"sku", "codigo", "codigoproducto", "codigoprov", "codproducto", "cod"},
	FieldName:    {"nombre", "producto", "descripcion", "detalle"},
	FieldUnit:    {"unidad", "unid", "um"},
	FieldPrice:   {"precio", "costo", "costounitario", "pvp", "neto"},
	FieldTax:     {"iva", "impuesto"},
	FieldBarcode: {"barcode", "ean", "ean13", "codebar", "codigobarra"},
}

// fallbackHeaders encabezado literal que se lee cuando la detección no encontró columna.
// IVA y barcode no tienen respaldo.
var fallbackHeaders = map[Field]string{
	FieldSKU:   "SKU",
	FieldName:  "NOMBRE",
	FieldUnit:  "UNIDAD",
	FieldPrice: "PRECIO",
}

// Columns encabezado original asignado a cada campo ("" = no encontrado).
type Columns struct {
	SKU     string
	Name    string
	Unit    string
	Price   string
	Tax     string
	Barcode string
}

// Get devuelve el encabezado detectado para f.
func (c Columns) Get(f Field) string {
	switch f {
	case FieldSKU:
		return c.SKU
	case FieldName:
		return c.Name
	case FieldUnit:
		return c.Unit
	case FieldPrice:
		return c.Price
	case FieldTax:
		return c.Tax
	case FieldBarcode:
		return c.Barcode
	}
	return ""
}

// Found indica si el campo fue detectado.
func (c Columns) Found(f Field) bool { return c.Get(f) != "" }

// header devuelve el encabezado a leer para f: el detectado o el literal de respaldo.
func (c Columns) header(f Field) (string, bool) {
	if h := c.Get(f); h != "" {
		return h, true
	}
	h, ok := fallbackHeaders[f]
	return h, ok
}

// DetectColumns asigna a cada campo el primer encabezado (en orden de columna) cuyo
// token normalizado pertenece a su conjunto de alias. Ningún campo es obligatorio.
func DetectColumns(headers []string) Columns {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}
	find := func(f Field) string {
		aliases := fieldAliases[f]
		for i, n := range normalized {
			for _, a := range aliases {
				if n == a {
					return headers[i]
				}
			}
		}
		return ""
	}
	return Columns{
		SKU:     find(FieldSKU),
		Name:    find(FieldName),
		Unit:    find(FieldUnit),
		Price:   find(FieldPrice),
		Tax:     find(FieldTax),
		Barcode: find(FieldBarcode),
	}
}
