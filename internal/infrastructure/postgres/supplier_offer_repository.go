package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

var _ repository.SupplierOfferRepository = (*SupplierOfferRepo)(nil)

// SupplierOfferRepo implementación de SupplierOfferRepository (usable con pool o tx).
type SupplierOfferRepo struct {
	q Querier
}

// NewSupplierOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOfferRepository(q Querier) *SupplierOfferRepo {
	return &SupplierOfferRepo{q: q}
}

// upsertOfferSQL merge por id: product_id y created_at no se tocan en el conflicto.
const upsertOfferSQL = `
	INSERT INTO supplier_offers
		(id, supplier_id, supplier_sku, product_id, name, barcode, unit, net_cost, gross_cost,
		 tax_inclusive, tax_rate, effective_from, active, source_list_id, created_at, updated_at)
	VALUES ($1, $2, $3, NULL, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	ON CONFLICT (id) DO UPDATE SET
		supplier_id    = EXCLUDED.supplier_id,
		supplier_sku   = EXCLUDED.supplier_sku,
		name           = EXCLUDED.name,
		barcode        = EXCLUDED.barcode,
		unit           = EXCLUDED.unit,
		net_cost       = EXCLUDED.net_cost,
		gross_cost     = EXCLUDED.gross_cost,
		tax_inclusive  = EXCLUDED.tax_inclusive,
		tax_rate       = EXCLUDED.tax_rate,
		effective_from = EXCLUDED.effective_from,
		active         = EXCLUDED.active,
		source_list_id = EXCLUDED.source_list_id,
		updated_at     = EXCLUDED.updated_at`

const offerColumns = `id, supplier_id, supplier_sku, product_id, name, barcode, unit, net_cost, gross_cost,
	tax_inclusive, tax_rate, effective_from, active, source_list_id, updated_at`

// UpsertBatch hace merge de las ofertas en un único lote atómico.
func (r *SupplierOfferRepo) UpsertBatch(ctx context.Context, offers []*entity.SupplierOffer) error {
	if len(offers) == 0 {
		return nil
	}
	if len(offers) > repository.MaxBatchWrites {
		return domain.ErrBatchTooLarge
	}
	b := &pgx.Batch{}
	for _, o := range offers {
		b.Queue(upsertOfferSQL,
			o.ID, o.SupplierID, o.SupplierSKU, o.Name, o.Barcode, o.Unit, o.NetCost, o.GrossCost,
			o.TaxInclusive, o.TaxRate, o.EffectiveFrom, o.Active, o.SourceListID, o.UpdatedAt,
		)
	}
	if err := commitBatch(ctx, r.q, b); err != nil {
		return fmt.Errorf("upsert supplier offers: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por su id determinístico.
func (r *SupplierOfferRepo) GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error) {
	o, err := scanOffer(r.q.QueryRow(ctx, `SELECT `+offerColumns+` FROM supplier_offers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier offer: %w", err)
	}
	return o, nil
}

// ListBySupplier lista ofertas por SKU; supplierID vacío = todas.
func (r *SupplierOfferRepo) ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM supplier_offers
		WHERE ($1 = '' OR supplier_id = $1)
		ORDER BY supplier_id, supplier_sku LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplier offers: %w", err)
	}
	defer rows.Close()
	var out []*entity.SupplierOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier offer: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOffer(row pgx.Row) (*entity.SupplierOffer, error) {
	var o entity.SupplierOffer
	if err := row.Scan(&o.ID, &o.SupplierID, &o.SupplierSKU, &o.ProductID, &o.Name, &o.Barcode, &o.Unit,
		&o.NetCost, &o.GrossCost, &o.TaxInclusive, &o.TaxRate, &o.EffectiveFrom, &o.Active,
		&o.SourceListID, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
