package entity

import "github.com/shopspring/decimal"

// PriceListItem línea normalizada de una lista de precios. Pertenece a una sola lista
// y no se modifica después de la ingesta.
type PriceListItem struct {
	ID           string
	PriceListID  string
	SupplierSKU  string
	SupplierName string
	Unit         string
	Barcode      string
	Cost         decimal.Decimal // costo tal como vino en el archivo
	TaxInclusive bool
	TaxRate      decimal.Decimal
	PackUnits    *decimal.Decimal // unidades contenidas por empaque (opcional)
	Notes        string
}
