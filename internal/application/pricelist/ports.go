package pricelist

import (
	"context"

	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

// SpreadsheetReader lee la primera hoja de un archivo (xlsx o csv según el nombre).
// Las celdas faltantes se devuelven vacías.
type SpreadsheetReader interface {
	ReadFirstSheet(name string, data []byte) (*pricing.Sheet, error)
}

// FileStorage descarga un objeto de un bucket.
type FileStorage interface {
	Download(ctx context.Context, bucket, path string) ([]byte, error)
}

// PriceListPDFGenerator genera el reporte PDF de una lista con sus ítems.
type PriceListPDFGenerator interface {
	GeneratePriceListPDF(ctx context.Context, list *entity.PriceList, items []*entity.PriceListItem) ([]byte, error)
}
