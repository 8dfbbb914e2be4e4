package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngestResponse resultado de procesar un archivo de lista de precios.
// ListID vacío indica que la hoja no tenía filas (no se creó nada).
type IngestResponse struct {
	ListID     string `json:"list_id"`
	SupplierID string `json:"supplier_id,omitempty"`
	Rows       int    `json:"rows"`
	Accepted   int    `json:"accepted"`
	Rejected   int    `json:"rejected"`
}

// PublishResponse contrato de la operación publicar: { ok: true, items: n }.
type PublishResponse struct {
	OK    bool `json:"ok"`
	Items int  `json:"items"`
}

// PriceListResponse salida de una lista de precios.
type PriceListResponse struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	CutoffDate   time.Time       `json:"cutoff_date"`
	CutoffMillis int64           `json:"cutoff_date_ms"`
	Currency     string          `json:"currency"`
	TaxInclusive bool            `json:"tax_inclusive"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	SourceFile   string          `json:"source_file"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PriceListListResponse lista paginada de listas de precios.
type PriceListListResponse struct {
	Items []PriceListResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// PriceListItemResponse salida de un ítem de lista.
type PriceListItemResponse struct {
	ID           string           `json:"id"`
	SupplierSKU  string           `json:"supplier_sku"`
	SupplierName string           `json:"supplier_name"`
	Unit         string           `json:"unit"`
	Barcode      string           `json:"barcode,omitempty"`
	Cost         decimal.Decimal  `json:"cost"`
	TaxInclusive bool             `json:"tax_inclusive"`
	TaxRate      decimal.Decimal  `json:"tax_rate"`
	PackUnits    *decimal.Decimal `json:"pack_units,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// PriceListItemsResponse ítems de una lista.
type PriceListItemsResponse struct {
	ListID string                  `json:"list_id"`
	Items  []PriceListItemResponse `json:"items"`
}

// SupplierOfferResponse salida de una oferta de proveedor.
type SupplierOfferResponse struct {
	ID            string          `json:"id"`
	SupplierID    string          `json:"supplier_id"`
	SupplierSKU   string          `json:"supplier_sku"`
	ProductID     *string         `json:"product_id"`
	Name          string          `json:"name"`
	Barcode       *string         `json:"barcode"`
	Unit          string          `json:"unit"`
	NetCost       decimal.Decimal `json:"net_cost"`
	GrossCost     decimal.Decimal `json:"gross_cost"`
	TaxInclusive  bool            `json:"tax_inclusive"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	Active        bool            `json:"active"`
	SourceListID  string          `json:"source_list_id"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SupplierOfferListResponse lista paginada de ofertas.
type SupplierOfferListResponse struct {
	Items []SupplierOfferResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
