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

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

var allStatuses = []entity.PriceListStatus{
	entity.PriceListUploaded,
	entity.PriceListProcessed,
	entity.PriceListPublished,
}

// PriceListRepo implementación de PriceListRepository sobre PostgreSQL (usable con pool o tx).
type PriceListRepo struct {
	q Querier
}

// NewPriceListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

const priceListColumns = `id, supplier_id, cutoff_date, currency, tax_inclusive, tax_rate, source_file, status, created_at, updated_at`

// Create persiste la cabecera de la lista.
func (r *PriceListRepo) Create(ctx context.Context, l *entity.PriceList) error {
	query := `INSERT INTO price_lists (` + priceListColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.SupplierID, l.CutoffDate, l.Currency, l.TaxInclusive, l.TaxRate,
		l.SourceFile, string(l.Status), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista por ID.
func (r *PriceListRepo) GetByID(ctx context.Context, id string) (*entity.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists WHERE id = $1`
	l, err := scanPriceList(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list: %w", err)
	}
	return l, nil
}

// List lista por fecha de corte descendente; supplierID vacío = todos los proveedores.
func (r *PriceListRepo) List(ctx context.Context, supplierID string, limit, offset int) ([]*entity.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists
		WHERE ($1 = '' OR supplier_id = $1)
		ORDER BY cutoff_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price lists: %w", err)
	}
	defer rows.Close()
	var out []*entity.PriceList
	for rows.Next() {
		l, err := scanPriceList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price list: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateStatus solo aplica si el estado actual puede avanzar a status.
func (r *PriceListRepo) UpdateStatus(ctx context.Context, id string, status entity.PriceListStatus) error {
	from := make([]string, 0, len(allStatuses))
	for _, s := range allStatuses {
		if s.CanAdvanceTo(status) {
			from = append(from, string(s))
		}
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE price_lists SET status = $2, updated_at = now() WHERE id = $1 AND status = ANY($3)`,
		id, string(status), from,
	)
	if err != nil {
		return fmt.Errorf("update price list status: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM price_lists WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check price list: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// CreateItems escribe los ítems en un único lote atómico.
func (r *PriceListRepo) CreateItems(ctx context.Context, listID string, items []*entity.PriceListItem) error {
	if len(items) == 0 {
		return nil
	}
	if len(items) > repository.MaxBatchWrites {
		return domain.ErrBatchTooLarge
	}
	query := `INSERT INTO price_list_items
		(id, price_list_id, supplier_sku, supplier_name, unit, barcode, cost, tax_inclusive, tax_rate, pack_units, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	b := &pgx.Batch{}
	for _, it := range items {
		b.Queue(query,
			it.ID, listID, it.SupplierSKU, it.SupplierName, it.Unit, nullIfEmpty(it.Barcode),
			it.Cost, it.TaxInclusive, it.TaxRate, it.PackUnits, nullIfEmpty(it.Notes),
		)
	}
	if err := commitBatch(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert price list items: %w", err)
	}
	return nil
}

// ListItems ítems de la lista en el orden en que fueron escritos.
func (r *PriceListRepo) ListItems(ctx context.Context, listID string) ([]*entity.PriceListItem, error) {
	query := `SELECT id, price_list_id, supplier_sku, supplier_name, unit, barcode, cost, tax_inclusive, tax_rate, pack_units, notes
		FROM price_list_items WHERE price_list_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("list price list items: %w", err)
	}
	defer rows.Close()
	var out []*entity.PriceListItem
	for rows.Next() {
		var it entity.PriceListItem
		var barcode, notes *string
		if err := rows.Scan(&it.ID, &it.PriceListID, &it.SupplierSKU, &it.SupplierName, &it.Unit, &barcode,
			&it.Cost, &it.TaxInclusive, &it.TaxRate, &it.PackUnits, &notes); err != nil {
			return nil, fmt.Errorf("scan price list item: %w", err)
		}
		it.Barcode = derefString(barcode)
		it.Notes = derefString(notes)
		out = append(out, &it)
	}
	return out, rows.Err()
}

func scanPriceList(row pgx.Row) (*entity.PriceList, error) {
	var l entity.PriceList
	var status string
	if err := row.Scan(&l.ID, &l.SupplierID, &l.CutoffDate, &l.Currency, &l.TaxInclusive, &l.TaxRate,
		&l.SourceFile, &status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.Status = entity.PriceListStatus(status)
	return &l, nil
}
