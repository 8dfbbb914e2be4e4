// Package pdf genera el reporte imprimible de una lista de precios de proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proveedor + fecha de corte │ Estado + moneda         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Descripción | Unidad | Neto | IVA | Bruto      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cantidad de ítems, modo de IVA, archivo de origen │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PriceListGenerator implementa pricelist.PriceListPDFGenerator usando Maroto v2.
type PriceListGenerator struct{}

// NewPriceListGenerator construye el generador.
func NewPriceListGenerator() *PriceListGenerator { return &PriceListGenerator{} }

// GeneratePriceListPDF genera el PDF y devuelve sus bytes. Montos a 2 decimales.
func (g *PriceListGenerator) GeneratePriceListPDF(
	_ context.Context,
	list *entity.PriceList,
	items []*entity.PriceListItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de precios "+list.SupplierID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(list.Currency))
	m.AddRows(itemRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(list, len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(list *entity.PriceList) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(strings.ToUpper(list.SupplierID), props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Corte: "+list.CutoffDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("Estado: %s   |   Moneda: %s", list.Status, list.Currency), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Neto "+currency, 2, align.Right),
		h("IVA", 1, align.Right),
		h("Bruto "+currency, 2, align.Right),
	)
}

func itemRows(items []*entity.PriceListItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		a := DisplayAmounts(it)
		rows = append(rows, row.New(6).Add(
			cell(it.SupplierSKU, 2, align.Left),
			cell(it.SupplierName, 4, align.Left),
			cell(it.Unit, 1, align.Center),
			cell(formatMoney(a.Net), 2, align.Right),
			cell(formatMoney(a.Tax), 1, align.Right),
			cell(formatMoney(a.Gross), 2, align.Right),
		))
	}
	return rows
}

func summaryRow(list *entity.PriceList, n int) core.Row {
	mode := "IVA no incluido"
	if list.TaxInclusive {
		mode = "IVA incluido"
	}
	return row.New(14).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d ítems   |   %s (%s%%)", n, mode, list.TaxRate.Mul(decimal.NewFromInt(100)).String()), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		}),
		text.New("Archivo: "+list.SourceFile, props.Text{Size: 7, Top: 8, Color: colorGray}),
	))
}

// Amounts montos de un ítem a precisión de visualización.
type Amounts struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Gross decimal.Decimal
}

// DisplayAmounts calcula neto, IVA y bruto a 2 decimales; IVA = bruto - neto.
func DisplayAmounts(it *entity.PriceListItem) Amounts {
	split := pricing.SplitCost(it.Cost, it.TaxInclusive, it.TaxRate)
	gross := split.Gross.Round(pricing.DisplayPlaces)
	return Amounts{
		Net:   pricing.ToNet(gross, it.TaxRate),
		Tax:   pricing.TaxPart(gross, it.TaxRate),
		Gross: gross,
	}
}

// formatMoney 2 decimales con coma y puntos de miles. Ej: 1234.5 -> "1.234,50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(pricing.DisplayPlaces)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
