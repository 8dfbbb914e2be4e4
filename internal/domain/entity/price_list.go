package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceListStatus estado del ciclo de vida de una lista de precios.
type PriceListStatus string

const (
	PriceListUploaded  PriceListStatus = "uploaded"
	PriceListProcessed PriceListStatus = "processed"
	PriceListPublished PriceListStatus = "published"
)

func (s PriceListStatus) rank() int {
	switch s {
	case PriceListUploaded:
		return 1
	case PriceListProcessed:
		return 2
	case PriceListPublished:
		return 3
	}
	return 0
}

// Valid indica si el estado es uno de los conocidos.
func (s PriceListStatus) Valid() bool { return s.rank() > 0 }

// CanAdvanceTo indica si la transición s -> next respeta el orden
// uploaded -> processed -> published. Se puede publicar desde cualquier estado: una lista
// con ingesta incompleta (uploaded) se publica con los ítems ya confirmados, y
// published -> published es la republicación.
func (s PriceListStatus) CanAdvanceTo(next PriceListStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if next == PriceListPublished {
		return true
	}
	return next.rank() == s.rank()+1
}

// PriceList representa una lista de precios de un proveedor (una por archivo subido).
// Solo Status cambia después de creada.
type PriceList struct {
	ID           string
	SupplierID   string
	CutoffDate   time.Time
	Currency     string
	TaxInclusive bool
	TaxRate      decimal.Decimal // fracción, ej. 0.13
	SourceFile   string
	Status       PriceListStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CutoffMillis fecha de corte en milisegundos epoch.
func (l *PriceList) CutoffMillis() int64 {
	return l.CutoffDate.UnixMilli()
}
