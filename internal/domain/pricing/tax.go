package pricing

import "github.com/shopspring/decimal"

const (
	// StoragePlaces precisión con la que se guardan costos neto/bruto en ofertas.
	StoragePlaces int32 = 5
	// DisplayPlaces precisión de moneda para totales de punto de venta.
	DisplayPlaces int32 = 2
)

var one = decimal.NewFromInt(1)

// CostSplit costo sin impuesto (Net) y con impuesto (Gross).
type CostSplit struct {
	Net   decimal.Decimal
	Gross decimal.Decimal
}

// SplitCost separa un costo en neto y bruto según si ya incluye el impuesto.
// rate es fracción (0.13). El lado calculado se redondea a StoragePlaces
// (mitad lejos de cero); el lado de entrada se conserva sin redondear.
func SplitCost(cost decimal.Decimal, taxInclusive bool, rate decimal.Decimal) CostSplit {
	factor := one.Add(rate)
	if taxInclusive {
		return CostSplit{Net: cost.Div(factor).Round(StoragePlaces), Gross: cost}
	}
	return CostSplit{Net: cost, Gross: cost.Mul(factor).Round(StoragePlaces)}
}

// ToNet convierte un precio bruto a neto con precisión de moneda (punto de venta).
func ToNet(gross, rate decimal.Decimal) decimal.Decimal {
	return gross.Div(one.Add(rate)).Round(DisplayPlaces)
}

// TaxPart parte de impuesto contenida en un precio bruto, con precisión de moneda.
func TaxPart(gross, rate decimal.Decimal) decimal.Decimal {
	return gross.Sub(ToNet(gross, rate)).Round(DisplayPlaces)
}
