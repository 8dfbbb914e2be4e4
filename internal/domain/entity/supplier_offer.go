package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierOffer condiciones de costo vigentes de un proveedor para uno de sus SKU.
// ID = OfferID(SupplierID, SupplierSKU); la última publicación gana.
type SupplierOffer struct {
	ID            string
	SupplierID    string
	SupplierSKU   string
	ProductID     *string // nil hasta que un proceso externo lo concilie con el catálogo
	Name          string
	Barcode       *string
	Unit          string
	NetCost       decimal.Decimal
	GrossCost     decimal.Decimal
	TaxInclusive  bool
	TaxRate       decimal.Decimal
	EffectiveFrom time.Time
	Active        bool
	SourceListID  string
	UpdatedAt     time.Time
}
