package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/listas-precios/internal/domain/entity"
)

// DefaultUnit unidad usada cuando la fila no trae unidad.
const DefaultUnit = "u"

var hundred = decimal.NewFromInt(100)

// RowDefaults valores heredados de la lista para cada fila.
type RowDefaults struct {
	TaxInclusive bool
	TaxRate      decimal.Decimal
}

func (r Row) text(cols Columns, f Field) string {
	h, ok := cols.header(f)
	if !ok {
		return ""
	}
	return strings.TrimSpace(r[h].String())
}

// ParseRow convierte una fila cruda en un ítem normalizado.
// Devuelve false (descarte silencioso) si falta SKU, nombre o el precio es cero o inválido.
func ParseRow(r Row, cols Columns, def RowDefaults) (*entity.PriceListItem, bool) {
	sku := r.text(cols, FieldSKU)
	name := r.text(cols, FieldName)
	unit := r.text(cols, FieldUnit)
	if unit == "" {
		unit = DefaultUnit
	}

	priceHeader, _ := cols.header(FieldPrice)
	price, ok := r[priceHeader].Float()
	if !ok {
		price = 0
	}
	if sku == "" || name == "" || price == 0 {
		return nil, false
	}

	rate := def.TaxRate
	if cols.Found(FieldTax) {
		// Con -100% o menos, 1 + tasa <= 0: se usa la tasa de la lista.
		if pct, ok := r[cols.Tax].Float(); ok && pct > -100 {
			rate = decimal.NewFromFloat(pct).Div(hundred)
		}
	}

	var barcode string
	if cols.Found(FieldBarcode) {
		barcode = strings.TrimSpace(r[cols.Barcode].String())
	}

	return &entity.PriceListItem{
		SupplierSKU:  sku,
		SupplierName: name,
		Unit:         unit,
		Barcode:      barcode,
		Cost:         decimal.NewFromFloat(price),
		TaxInclusive: def.TaxInclusive,
		TaxRate:      rate,
	}, true
}
